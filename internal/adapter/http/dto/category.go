package dto

type CategoryItem struct {
	ID          uint64  `json:"id"`
	Name        string  `json:"name"`
	Color       string  `json:"color"`
	Icon        string  `json:"icon"`
	Description *string `json:"description"`
	TaskCount   int     `json:"taskCount"`
	CreatedAt   string  `json:"createdAt"`
	UpdatedAt   string  `json:"updatedAt"`
}

type CreateCategoryRequest struct {
	Name        string  `json:"name"`
	Color       *string `json:"color"`
	Icon        *string `json:"icon"`
	Description *string `json:"description"`
}

type UpdateCategoryRequest struct {
	Name        *string `json:"name"`
	Color       *string `json:"color"`
	Icon        *string `json:"icon"`
	Description *string `json:"description"`
}
