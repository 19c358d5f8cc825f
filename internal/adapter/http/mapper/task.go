package mapper

import (
	"time"

	"tasktracker/internal/adapter/http/dto"
	"tasktracker/internal/core/domain"
)

func ToTaskItems(tasks []domain.Task) []dto.TaskItem {
	items := make([]dto.TaskItem, 0, len(tasks))
	for _, task := range tasks {
		items = append(items, ToTaskItem(task))
	}
	return items
}

func ToTaskItem(task domain.Task) dto.TaskItem {
	item := dto.TaskItem{
		ID:          task.ID,
		Title:       task.Title,
		Description: copyString(task.Description),
		Priority:    string(task.Priority),
		Status:      string(task.Status),
		Position:    task.Position,
		Attachments: make([]dto.AttachmentItem, 0, len(task.Attachments)),
		CreatedAt:   formatTime(task.CreatedAt),
		UpdatedAt:   formatTime(task.UpdatedAt),
		Subtasks:    ToSubtaskItems(task.Subtasks),
	}

	if task.DueDate != nil {
		value := formatTime(*task.DueDate)
		item.DueDate = &value
	}

	if task.CategoryID != nil {
		value := *task.CategoryID
		item.CategoryID = &value
	}

	for _, attachment := range task.Attachments {
		item.Attachments = append(item.Attachments, dto.AttachmentItem{
			Filename:   attachment.Filename,
			Path:       attachment.Path,
			UploadedAt: formatTime(attachment.UploadedAt),
		})
	}

	if task.Category != nil {
		item.Category = &dto.TaskCategory{
			ID:    task.Category.ID,
			Name:  task.Category.Name,
			Color: task.Category.Color,
			Icon:  task.Category.Icon,
		}
	}

	if task.Notes != nil {
		notes := ToNoteItems(task.Notes)
		item.Notes = &notes
	}

	return item
}

func ToTaskStats(stats domain.TaskStats) dto.TaskStats {
	out := dto.TaskStats{
		Total:      stats.Total,
		ByStatus:   make(map[string]int, len(stats.ByStatus)),
		ByPriority: make(map[string]int, len(stats.ByPriority)),
		Recent:     ToTaskItems(stats.Recent),
		DueSoon:    ToTaskItems(stats.DueSoon),
	}
	for status, count := range stats.ByStatus {
		out.ByStatus[string(status)] = count
	}
	for priority, count := range stats.ByPriority {
		out.ByPriority[string(priority)] = count
	}
	return out
}

func formatTime(value time.Time) string {
	return value.UTC().Format(time.RFC3339)
}

func copyString(value *string) *string {
	if value == nil {
		return nil
	}
	out := *value
	return &out
}
