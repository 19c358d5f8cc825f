package service

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"go.opentelemetry.io/otel/attribute"

	"tasktracker/internal/core/domain"
	"tasktracker/internal/core/ports"
)

const maxSubtaskTitleLength = 255

type SubtaskService struct {
	subtaskRepository ports.SubtaskRepository
}

var _ ports.SubtaskService = (*SubtaskService)(nil)

func NewSubtaskService(subtaskRepository ports.SubtaskRepository) *SubtaskService {
	return &SubtaskService{subtaskRepository: subtaskRepository}
}

func (s *SubtaskService) ListSubtasks(ctx context.Context, taskID uint64) (subtasks []domain.Subtask, err error) {
	ctx, span := startSpan(ctx, "SubtaskService.ListSubtasks", attribute.Int64("task.id", int64(taskID)))
	defer func() { endSpan(span, err) }()

	return s.subtaskRepository.ListSubtasks(ctx, taskID)
}

func (s *SubtaskService) CreateSubtask(ctx context.Context, taskID uint64, input domain.CreateSubtaskInput) (subtask domain.Subtask, err error) {
	ctx, span := startSpan(ctx, "SubtaskService.CreateSubtask", attribute.Int64("task.id", int64(taskID)))
	defer func() { endSpan(span, err) }()

	title, err := normalizeSubtaskTitle(input.Title)
	if err != nil {
		return domain.Subtask{}, err
	}
	input.Title = title

	return s.subtaskRepository.CreateSubtask(ctx, taskID, input)
}

func (s *SubtaskService) UpdateSubtask(ctx context.Context, taskID, subtaskID uint64, input domain.UpdateSubtaskInput) (subtask domain.Subtask, err error) {
	ctx, span := startSpan(ctx, "SubtaskService.UpdateSubtask",
		attribute.Int64("task.id", int64(taskID)),
		attribute.Int64("subtask.id", int64(subtaskID)),
	)
	defer func() { endSpan(span, err) }()

	if input.Title != nil {
		title, err := normalizeSubtaskTitle(*input.Title)
		if err != nil {
			return domain.Subtask{}, err
		}
		input.Title = &title
	}

	return s.subtaskRepository.UpdateSubtask(ctx, taskID, subtaskID, input)
}

func (s *SubtaskService) DeleteSubtask(ctx context.Context, taskID, subtaskID uint64) (err error) {
	ctx, span := startSpan(ctx, "SubtaskService.DeleteSubtask",
		attribute.Int64("task.id", int64(taskID)),
		attribute.Int64("subtask.id", int64(subtaskID)),
	)
	defer func() { endSpan(span, err) }()

	return s.subtaskRepository.DeleteSubtask(ctx, taskID, subtaskID)
}

func (s *SubtaskService) ToggleSubtask(ctx context.Context, taskID, subtaskID uint64) (subtask domain.Subtask, err error) {
	ctx, span := startSpan(ctx, "SubtaskService.ToggleSubtask",
		attribute.Int64("task.id", int64(taskID)),
		attribute.Int64("subtask.id", int64(subtaskID)),
	)
	defer func() { endSpan(span, err) }()

	return s.subtaskRepository.ToggleSubtask(ctx, taskID, subtaskID)
}

func normalizeSubtaskTitle(title string) (string, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return "", fmt.Errorf("%w: title is required", domain.ErrInvalidSubtask)
	}
	if utf8.RuneCountInString(title) > maxSubtaskTitleLength {
		return "", fmt.Errorf("%w: title exceeds %d characters", domain.ErrInvalidSubtask, maxSubtaskTitleLength)
	}
	return title, nil
}
