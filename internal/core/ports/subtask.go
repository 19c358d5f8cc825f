package ports

import (
	"context"

	"tasktracker/internal/core/domain"
)

type SubtaskRepository interface {
	ListSubtasks(ctx context.Context, taskID uint64) ([]domain.Subtask, error)
	GetSubtask(ctx context.Context, taskID, subtaskID uint64) (domain.Subtask, error)
	CreateSubtask(ctx context.Context, taskID uint64, input domain.CreateSubtaskInput) (domain.Subtask, error)
	UpdateSubtask(ctx context.Context, taskID, subtaskID uint64, input domain.UpdateSubtaskInput) (domain.Subtask, error)
	DeleteSubtask(ctx context.Context, taskID, subtaskID uint64) error
	ToggleSubtask(ctx context.Context, taskID, subtaskID uint64) (domain.Subtask, error)
}

type SubtaskService interface {
	ListSubtasks(ctx context.Context, taskID uint64) ([]domain.Subtask, error)
	CreateSubtask(ctx context.Context, taskID uint64, input domain.CreateSubtaskInput) (domain.Subtask, error)
	UpdateSubtask(ctx context.Context, taskID, subtaskID uint64, input domain.UpdateSubtaskInput) (domain.Subtask, error)
	DeleteSubtask(ctx context.Context, taskID, subtaskID uint64) error
	ToggleSubtask(ctx context.Context, taskID, subtaskID uint64) (domain.Subtask, error)
}
