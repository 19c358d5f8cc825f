package dto

type NoteItem struct {
	ID        uint64  `json:"id"`
	TaskID    uint64  `json:"taskId"`
	SubtaskID *uint64 `json:"subtaskId"`
	Content   *string `json:"content"`
	CreatedAt string  `json:"createdAt"`
	UpdatedAt string  `json:"updatedAt"`
}

type NoteRequest struct {
	Content *string `json:"content"`
}
