package mapper

import (
	"tasktracker/internal/adapter/http/dto"
	"tasktracker/internal/core/domain"
)

func ToSubtaskItems(subtasks []domain.Subtask) []dto.SubtaskItem {
	items := make([]dto.SubtaskItem, 0, len(subtasks))
	for _, subtask := range subtasks {
		items = append(items, ToSubtaskItem(subtask))
	}
	return items
}

func ToSubtaskItem(subtask domain.Subtask) dto.SubtaskItem {
	item := dto.SubtaskItem{
		ID:          subtask.ID,
		TaskID:      subtask.TaskID,
		Title:       subtask.Title,
		Description: copyString(subtask.Description),
		Completed:   subtask.Completed,
		CreatedAt:   formatTime(subtask.CreatedAt),
		UpdatedAt:   formatTime(subtask.UpdatedAt),
	}
	if subtask.Notes != nil {
		notes := ToNoteItems(subtask.Notes)
		item.Notes = &notes
	}
	return item
}
