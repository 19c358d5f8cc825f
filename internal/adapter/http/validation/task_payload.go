package validation

import (
	"encoding/json"
	"strings"

	"tasktracker/internal/adapter/http/dto"
	"tasktracker/internal/core/domain"
)

var taskUpdateFields = []string{"title", "description", "dueDate", "priority", "status", "categoryId", "attachments"}

func BuildCreateTaskInput(req dto.CreateTaskRequest, raw map[string]json.RawMessage) (domain.CreateTaskInput, error) {
	if isExplicitNull(raw, "status") || isExplicitNull(raw, "priority") || isExplicitNull(raw, "attachments") {
		return domain.CreateTaskInput{}, ErrInvalidTaskPayload
	}

	title := strings.TrimSpace(req.Title)
	if title == "" {
		return domain.CreateTaskInput{}, ErrInvalidTaskPayload
	}

	input := domain.CreateTaskInput{
		Title:       title,
		Description: req.Description,
		Priority:    domain.TaskPriorityMedium,
		Status:      domain.TaskStatusTodo,
		CategoryID:  req.CategoryID,
	}

	if req.Priority != nil {
		input.Priority = domain.TaskPriority(*req.Priority)
		if !input.Priority.Valid() {
			return domain.CreateTaskInput{}, ErrInvalidTaskPayload
		}
	}
	if req.Status != nil {
		input.Status = domain.TaskStatus(*req.Status)
		if !input.Status.Valid() {
			return domain.CreateTaskInput{}, ErrInvalidTaskPayload
		}
	}
	if req.CategoryID != nil && *req.CategoryID == 0 {
		return domain.CreateTaskInput{}, ErrInvalidTaskPayload
	}

	if req.DueDate != nil {
		dueDate, err := ParseTime(*req.DueDate)
		if err != nil {
			return domain.CreateTaskInput{}, ErrInvalidTaskPayload
		}
		input.DueDate = &dueDate
	}

	attachments, err := buildAttachments(req.Attachments)
	if err != nil {
		return domain.CreateTaskInput{}, err
	}
	input.Attachments = attachments

	return input, nil
}

func BuildUpdateTaskInput(req dto.UpdateTaskRequest, raw map[string]json.RawMessage) (domain.UpdateTaskInput, error) {
	if !hasAnyJSONField(raw, taskUpdateFields...) {
		return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
	}
	for _, field := range []string{"title", "priority", "status"} {
		if isExplicitNull(raw, field) {
			return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
		}
	}

	input := domain.UpdateTaskInput{
		Description:    req.Description,
		DescriptionSet: hasJSONField(raw, "description"),
		DueDateSet:     hasJSONField(raw, "dueDate"),
		CategoryID:     req.CategoryID,
		CategoryIDSet:  hasJSONField(raw, "categoryId"),
		AttachmentsSet: hasJSONField(raw, "attachments"),
	}

	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		if title == "" {
			return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
		}
		input.Title = &title
	}
	if req.Priority != nil {
		priority := domain.TaskPriority(*req.Priority)
		if !priority.Valid() {
			return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
		}
		input.Priority = &priority
	}
	if req.Status != nil {
		status := domain.TaskStatus(*req.Status)
		if !status.Valid() {
			return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
		}
		input.Status = &status
	}
	if req.CategoryID != nil && *req.CategoryID == 0 {
		return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
	}

	if req.DueDate != nil {
		dueDate, err := ParseTime(*req.DueDate)
		if err != nil {
			return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
		}
		input.DueDate = &dueDate
	}

	if input.AttachmentsSet {
		attachments, err := buildAttachments(req.Attachments)
		if err != nil {
			return domain.UpdateTaskInput{}, err
		}
		input.Attachments = attachments
	}

	return input, nil
}

// buildAttachments requires filename, path and uploadedAt on every element.
func buildAttachments(items []dto.AttachmentInput) ([]domain.Attachment, error) {
	attachments := make([]domain.Attachment, 0, len(items))
	for _, item := range items {
		if item.Filename == nil || item.Path == nil || item.UploadedAt == nil {
			return nil, ErrInvalidTaskPayload
		}
		uploadedAt, err := ParseTime(*item.UploadedAt)
		if err != nil {
			return nil, ErrInvalidTaskPayload
		}
		attachment := domain.Attachment{
			Filename:   strings.TrimSpace(*item.Filename),
			Path:       strings.TrimSpace(*item.Path),
			UploadedAt: uploadedAt,
		}
		if !attachment.Valid() {
			return nil, ErrInvalidTaskPayload
		}
		attachments = append(attachments, attachment)
	}
	return attachments, nil
}
