package mapper

import (
	"tasktracker/internal/adapter/http/dto"
	"tasktracker/internal/core/domain"
)

func ToNoteItems(notes []domain.Note) []dto.NoteItem {
	items := make([]dto.NoteItem, 0, len(notes))
	for _, note := range notes {
		items = append(items, ToNoteItem(note))
	}
	return items
}

func ToNoteItem(note domain.Note) dto.NoteItem {
	item := dto.NoteItem{
		ID:        note.ID,
		TaskID:    note.TaskID,
		Content:   copyString(note.Content),
		CreatedAt: formatTime(note.CreatedAt),
		UpdatedAt: formatTime(note.UpdatedAt),
	}
	if note.SubtaskID != nil {
		value := *note.SubtaskID
		item.SubtaskID = &value
	}
	return item
}
