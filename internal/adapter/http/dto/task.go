package dto

type TaskItem struct {
	ID          uint64           `json:"id"`
	Title       string           `json:"title"`
	Description *string          `json:"description"`
	DueDate     *string          `json:"dueDate"`
	Priority    string           `json:"priority"`
	Status      string           `json:"status"`
	CategoryID  *uint64          `json:"categoryId"`
	Position    uint64           `json:"position"`
	Attachments []AttachmentItem `json:"attachments"`
	CreatedAt   string           `json:"createdAt"`
	UpdatedAt   string           `json:"updatedAt"`
	Category    *TaskCategory    `json:"category"`
	Subtasks    []SubtaskItem    `json:"subtasks"`
	Notes       *[]NoteItem      `json:"notes,omitempty"`
}

type TaskCategory struct {
	ID    uint64 `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
	Icon  string `json:"icon"`
}

type AttachmentItem struct {
	Filename   string `json:"filename"`
	Path       string `json:"path"`
	UploadedAt string `json:"uploadedAt"`
}

type CreateTaskRequest struct {
	Title       string            `json:"title"`
	Description *string           `json:"description"`
	DueDate     *string           `json:"dueDate"`
	Priority    *string           `json:"priority"`
	Status      *string           `json:"status"`
	CategoryID  *uint64           `json:"categoryId"`
	Attachments []AttachmentInput `json:"attachments"`
}

type UpdateTaskRequest struct {
	Title       *string           `json:"title"`
	Description *string           `json:"description"`
	DueDate     *string           `json:"dueDate"`
	Priority    *string           `json:"priority"`
	Status      *string           `json:"status"`
	CategoryID  *uint64           `json:"categoryId"`
	Attachments []AttachmentInput `json:"attachments"`
}

// AttachmentInput keeps every field nullable so a missing field can be told
// apart from an empty one.
type AttachmentInput struct {
	Filename   *string `json:"filename"`
	Path       *string `json:"path"`
	UploadedAt *string `json:"uploadedAt"`
}

type TaskStats struct {
	Total      int            `json:"total"`
	ByStatus   map[string]int `json:"byStatus"`
	ByPriority map[string]int `json:"byPriority"`
	Recent     []TaskItem     `json:"recent"`
	DueSoon    []TaskItem     `json:"dueSoon"`
}
