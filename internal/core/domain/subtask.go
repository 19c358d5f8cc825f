package domain

import "time"

type Subtask struct {
	ID          uint64
	TaskID      uint64
	Title       string
	Description *string
	Completed   bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
	Notes       []Note
}

type CreateSubtaskInput struct {
	Title       string
	Description *string
	Completed   bool
}

type UpdateSubtaskInput struct {
	Title          *string
	Description    *string
	DescriptionSet bool
	Completed      *bool
}
