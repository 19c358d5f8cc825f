package service

import (
	"context"

	"go.opentelemetry.io/otel/attribute"

	"tasktracker/internal/core/domain"
	"tasktracker/internal/core/ports"
)

type NoteService struct {
	noteRepository ports.NoteRepository
}

var _ ports.NoteService = (*NoteService)(nil)

func NewNoteService(noteRepository ports.NoteRepository) *NoteService {
	return &NoteService{noteRepository: noteRepository}
}

func (s *NoteService) ListTaskNotes(ctx context.Context, taskID uint64) (notes []domain.Note, err error) {
	ctx, span := startSpan(ctx, "NoteService.ListTaskNotes", attribute.Int64("task.id", int64(taskID)))
	defer func() { endSpan(span, err) }()

	return s.noteRepository.ListTaskNotes(ctx, taskID)
}

func (s *NoteService) ListSubtaskNotes(ctx context.Context, subtaskID uint64) (notes []domain.Note, err error) {
	ctx, span := startSpan(ctx, "NoteService.ListSubtaskNotes", attribute.Int64("subtask.id", int64(subtaskID)))
	defer func() { endSpan(span, err) }()

	return s.noteRepository.ListSubtaskNotes(ctx, subtaskID)
}

func (s *NoteService) CreateTaskNote(ctx context.Context, taskID uint64, content *string) (note domain.Note, err error) {
	ctx, span := startSpan(ctx, "NoteService.CreateTaskNote", attribute.Int64("task.id", int64(taskID)))
	defer func() { endSpan(span, err) }()

	return s.noteRepository.CreateNote(ctx, taskID, nil, content)
}

// CreateSubtaskNote attaches a note to a subtask. The subtask has to belong to
// taskID, otherwise the repository reports it as missing.
func (s *NoteService) CreateSubtaskNote(ctx context.Context, taskID, subtaskID uint64, content *string) (note domain.Note, err error) {
	ctx, span := startSpan(ctx, "NoteService.CreateSubtaskNote",
		attribute.Int64("task.id", int64(taskID)),
		attribute.Int64("subtask.id", int64(subtaskID)),
	)
	defer func() { endSpan(span, err) }()

	return s.noteRepository.CreateNote(ctx, taskID, &subtaskID, content)
}

func (s *NoteService) UpdateNote(ctx context.Context, noteID uint64, content *string) (note domain.Note, err error) {
	ctx, span := startSpan(ctx, "NoteService.UpdateNote", attribute.Int64("note.id", int64(noteID)))
	defer func() { endSpan(span, err) }()

	return s.noteRepository.UpdateNote(ctx, noteID, content)
}

func (s *NoteService) DeleteNote(ctx context.Context, noteID uint64) (err error) {
	ctx, span := startSpan(ctx, "NoteService.DeleteNote", attribute.Int64("note.id", int64(noteID)))
	defer func() { endSpan(span, err) }()

	return s.noteRepository.DeleteNote(ctx, noteID)
}
