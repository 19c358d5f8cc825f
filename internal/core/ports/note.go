package ports

import (
	"context"

	"tasktracker/internal/core/domain"
)

type NoteRepository interface {
	ListTaskNotes(ctx context.Context, taskID uint64) ([]domain.Note, error)
	ListSubtaskNotes(ctx context.Context, subtaskID uint64) ([]domain.Note, error)
	CreateNote(ctx context.Context, taskID uint64, subtaskID *uint64, content *string) (domain.Note, error)
	UpdateNote(ctx context.Context, noteID uint64, content *string) (domain.Note, error)
	DeleteNote(ctx context.Context, noteID uint64) error
}

type NoteService interface {
	ListTaskNotes(ctx context.Context, taskID uint64) ([]domain.Note, error)
	ListSubtaskNotes(ctx context.Context, subtaskID uint64) ([]domain.Note, error)
	CreateTaskNote(ctx context.Context, taskID uint64, content *string) (domain.Note, error)
	CreateSubtaskNote(ctx context.Context, taskID, subtaskID uint64, content *string) (domain.Note, error)
	UpdateNote(ctx context.Context, noteID uint64, content *string) (domain.Note, error)
	DeleteNote(ctx context.Context, noteID uint64) error
}
