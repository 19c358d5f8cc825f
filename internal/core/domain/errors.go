package domain

import "errors"

var (
	ErrTaskNotFound      = errors.New("task not found")
	ErrSubtaskNotFound   = errors.New("subtask not found")
	ErrNoteNotFound      = errors.New("note not found")
	ErrCategoryNotFound  = errors.New("category not found")
	ErrCategoryNameTaken = errors.New("category name already exists")

	ErrInvalidTask     = errors.New("invalid task")
	ErrInvalidSubtask  = errors.New("invalid subtask")
	ErrInvalidCategory = errors.New("invalid category")
	ErrInvalidPosition = errors.New("invalid position")
)
