package dto

type SubtaskItem struct {
	ID          uint64      `json:"id"`
	TaskID      uint64      `json:"taskId"`
	Title       string      `json:"title"`
	Description *string     `json:"description"`
	Completed   bool        `json:"completed"`
	CreatedAt   string      `json:"createdAt"`
	UpdatedAt   string      `json:"updatedAt"`
	Notes       *[]NoteItem `json:"notes,omitempty"`
}

type CreateSubtaskRequest struct {
	Title       string  `json:"title"`
	Description *string `json:"description"`
	Completed   *bool   `json:"completed"`
}

type UpdateSubtaskRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Completed   *bool   `json:"completed"`
}
