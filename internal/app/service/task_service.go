package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"
	"unicode/utf8"

	"go.opentelemetry.io/otel/attribute"

	"tasktracker/internal/core/domain"
	"tasktracker/internal/core/ports"
)

const (
	maxTaskTitleLength = 255
	statsRecentLimit   = 5
	statsDueSoonLimit  = 5
	statsDueSoonWindow = 7 * 24 * time.Hour
)

type TaskService struct {
	taskRepository ports.TaskRepository
	now            func() time.Time
}

var _ ports.TaskService = (*TaskService)(nil)

func NewTaskService(taskRepository ports.TaskRepository) *TaskService {
	return &TaskService{taskRepository: taskRepository, now: time.Now}
}

func (s *TaskService) ListTasks(ctx context.Context) (tasks []domain.Task, err error) {
	ctx, span := startSpan(ctx, "TaskService.ListTasks")
	defer func() { endSpan(span, err) }()

	return s.taskRepository.ListTasks(ctx)
}

func (s *TaskService) GetTask(ctx context.Context, taskID uint64) (task domain.Task, err error) {
	ctx, span := startSpan(ctx, "TaskService.GetTask", attribute.Int64("task.id", int64(taskID)))
	defer func() { endSpan(span, err) }()

	return s.taskRepository.GetTask(ctx, taskID)
}

func (s *TaskService) CreateTask(ctx context.Context, input domain.CreateTaskInput) (task domain.Task, err error) {
	ctx, span := startSpan(ctx, "TaskService.CreateTask")
	defer func() { endSpan(span, err) }()

	title, err := normalizeTaskTitle(input.Title)
	if err != nil {
		return domain.Task{}, err
	}
	input.Title = title

	if input.Priority == "" {
		input.Priority = domain.TaskPriorityMedium
	}
	if !input.Priority.Valid() {
		return domain.Task{}, fmt.Errorf("%w: unknown priority %q", domain.ErrInvalidTask, input.Priority)
	}
	if input.Status == "" {
		input.Status = domain.TaskStatusTodo
	}
	if !input.Status.Valid() {
		return domain.Task{}, fmt.Errorf("%w: unknown status %q", domain.ErrInvalidTask, input.Status)
	}
	if err := validateAttachments(input.Attachments); err != nil {
		return domain.Task{}, err
	}

	return s.taskRepository.CreateTask(ctx, input)
}

func (s *TaskService) UpdateTask(ctx context.Context, taskID uint64, input domain.UpdateTaskInput) (task domain.Task, err error) {
	ctx, span := startSpan(ctx, "TaskService.UpdateTask", attribute.Int64("task.id", int64(taskID)))
	defer func() { endSpan(span, err) }()

	if input.Title != nil {
		title, err := normalizeTaskTitle(*input.Title)
		if err != nil {
			return domain.Task{}, err
		}
		input.Title = &title
	}
	if input.Priority != nil && !input.Priority.Valid() {
		return domain.Task{}, fmt.Errorf("%w: unknown priority %q", domain.ErrInvalidTask, *input.Priority)
	}
	if input.Status != nil && !input.Status.Valid() {
		return domain.Task{}, fmt.Errorf("%w: unknown status %q", domain.ErrInvalidTask, *input.Status)
	}
	if input.AttachmentsSet {
		if err := validateAttachments(input.Attachments); err != nil {
			return domain.Task{}, err
		}
	}

	return s.taskRepository.UpdateTask(ctx, taskID, input)
}

func (s *TaskService) DeleteTask(ctx context.Context, taskID uint64) (err error) {
	ctx, span := startSpan(ctx, "TaskService.DeleteTask", attribute.Int64("task.id", int64(taskID)))
	defer func() { endSpan(span, err) }()

	return s.taskRepository.DeleteTask(ctx, taskID)
}

func (s *TaskService) ReorderTasks(ctx context.Context, orders []domain.TaskOrder) (tasks []domain.Task, err error) {
	ctx, span := startSpan(ctx, "TaskService.ReorderTasks", attribute.Int("reorder.size", len(orders)))
	defer func() { endSpan(span, err) }()

	for _, order := range orders {
		if order.ID == 0 {
			return nil, fmt.Errorf("%w: task id must be positive", domain.ErrInvalidPosition)
		}
	}

	return s.taskRepository.ReorderTasks(ctx, orders)
}

func (s *TaskService) MoveTask(ctx context.Context, taskID uint64, position uint64) (task domain.Task, err error) {
	ctx, span := startSpan(ctx, "TaskService.MoveTask",
		attribute.Int64("task.id", int64(taskID)),
		attribute.Int64("task.position", int64(position)),
	)
	defer func() { endSpan(span, err) }()

	return s.taskRepository.MoveTask(ctx, taskID, position)
}

// TaskStats summarises the task list for the dashboard.
func (s *TaskService) TaskStats(ctx context.Context) (stats domain.TaskStats, err error) {
	ctx, span := startSpan(ctx, "TaskService.TaskStats")
	defer func() { endSpan(span, err) }()

	tasks, err := s.taskRepository.ListTasks(ctx)
	if err != nil {
		return domain.TaskStats{}, err
	}

	return buildTaskStats(tasks, s.now()), nil
}

func buildTaskStats(tasks []domain.Task, now time.Time) domain.TaskStats {
	stats := domain.TaskStats{
		Total: len(tasks),
		ByStatus: map[domain.TaskStatus]int{
			domain.TaskStatusTodo:       0,
			domain.TaskStatusInProgress: 0,
			domain.TaskStatusCompleted:  0,
		},
		ByPriority: map[domain.TaskPriority]int{
			domain.TaskPriorityLow:    0,
			domain.TaskPriorityMedium: 0,
			domain.TaskPriorityHigh:   0,
		},
		Recent:  []domain.Task{},
		DueSoon: []domain.Task{},
	}

	horizon := now.Add(statsDueSoonWindow)
	for _, task := range tasks {
		stats.ByStatus[task.Status]++
		stats.ByPriority[task.Priority]++

		if task.Status != domain.TaskStatusCompleted && task.DueDate != nil &&
			task.DueDate.After(now) && !task.DueDate.After(horizon) {
			stats.DueSoon = append(stats.DueSoon, task)
		}
	}

	recent := append([]domain.Task(nil), tasks...)
	sort.SliceStable(recent, func(i, j int) bool {
		if recent[i].CreatedAt.Equal(recent[j].CreatedAt) {
			return recent[i].ID > recent[j].ID
		}
		return recent[i].CreatedAt.After(recent[j].CreatedAt)
	})
	if len(recent) > statsRecentLimit {
		recent = recent[:statsRecentLimit]
	}
	stats.Recent = append(stats.Recent, recent...)

	sort.SliceStable(stats.DueSoon, func(i, j int) bool {
		return stats.DueSoon[i].DueDate.Before(*stats.DueSoon[j].DueDate)
	})
	if len(stats.DueSoon) > statsDueSoonLimit {
		stats.DueSoon = stats.DueSoon[:statsDueSoonLimit]
	}

	return stats
}

func normalizeTaskTitle(title string) (string, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return "", fmt.Errorf("%w: title is required", domain.ErrInvalidTask)
	}
	if utf8.RuneCountInString(title) > maxTaskTitleLength {
		return "", fmt.Errorf("%w: title exceeds %d characters", domain.ErrInvalidTask, maxTaskTitleLength)
	}
	return title, nil
}

func validateAttachments(attachments []domain.Attachment) error {
	for i, attachment := range attachments {
		if !attachment.Valid() {
			return fmt.Errorf("%w: attachment %d needs filename, path and uploadedAt", domain.ErrInvalidTask, i)
		}
	}
	return nil
}
