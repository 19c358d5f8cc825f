package ports

import (
	"context"

	"tasktracker/internal/core/domain"
)

type TaskRepository interface {
	ListTasks(ctx context.Context) ([]domain.Task, error)
	GetTask(ctx context.Context, taskID uint64) (domain.Task, error)
	CreateTask(ctx context.Context, input domain.CreateTaskInput) (domain.Task, error)
	UpdateTask(ctx context.Context, taskID uint64, input domain.UpdateTaskInput) (domain.Task, error)
	DeleteTask(ctx context.Context, taskID uint64) error
	ReorderTasks(ctx context.Context, orders []domain.TaskOrder) ([]domain.Task, error)
	MoveTask(ctx context.Context, taskID uint64, position uint64) (domain.Task, error)
}

type TaskService interface {
	ListTasks(ctx context.Context) ([]domain.Task, error)
	GetTask(ctx context.Context, taskID uint64) (domain.Task, error)
	CreateTask(ctx context.Context, input domain.CreateTaskInput) (domain.Task, error)
	UpdateTask(ctx context.Context, taskID uint64, input domain.UpdateTaskInput) (domain.Task, error)
	DeleteTask(ctx context.Context, taskID uint64) error
	ReorderTasks(ctx context.Context, orders []domain.TaskOrder) ([]domain.Task, error)
	MoveTask(ctx context.Context, taskID uint64, position uint64) (domain.Task, error)
	TaskStats(ctx context.Context) (domain.TaskStats, error)
}

// TaskExporter renders an ordered task list into a downloadable document.
type TaskExporter interface {
	ExportTasks(tasks []domain.Task) ([]byte, error)
}
