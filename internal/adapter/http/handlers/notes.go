package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"tasktracker/internal/adapter/http/dto"
	"tasktracker/internal/adapter/http/mapper"
	"tasktracker/internal/adapter/http/validation"
	"tasktracker/internal/core/ports"
	"tasktracker/pkg/apierrors"
)

type NoteHandler struct {
	noteService ports.NoteService
}

func NewNoteHandler(noteService ports.NoteService) *NoteHandler {
	return &NoteHandler{noteService: noteService}
}

func (h *NoteHandler) ListTaskNotes(c *gin.Context) {
	taskID, ok := parseID(c, "taskId")
	if !ok {
		return
	}

	notes, err := h.noteService.ListTaskNotes(c.Request.Context(), taskID)
	if err != nil {
		writeServiceError(c, err, apierrors.MsgFailListNotes, "failed to list task notes", zap.Uint64("task_id", taskID))
		return
	}

	c.JSON(http.StatusOK, mapper.ToNoteItems(notes))
}

func (h *NoteHandler) ListSubtaskNotes(c *gin.Context) {
	subtaskID, ok := parseID(c, "subtaskId")
	if !ok {
		return
	}

	notes, err := h.noteService.ListSubtaskNotes(c.Request.Context(), subtaskID)
	if err != nil {
		writeServiceError(c, err, apierrors.MsgFailListNotes, "failed to list subtask notes", zap.Uint64("subtask_id", subtaskID))
		return
	}

	c.JSON(http.StatusOK, mapper.ToNoteItems(notes))
}

func (h *NoteHandler) CreateTaskNote(c *gin.Context) {
	taskID, ok := parseID(c, "taskId")
	if !ok {
		return
	}
	content, ok := h.readContent(c, false)
	if !ok {
		return
	}

	note, err := h.noteService.CreateTaskNote(c.Request.Context(), taskID, content)
	if err != nil {
		writeServiceError(c, err, apierrors.MsgFailCreateNote, "failed to create task note", zap.Uint64("task_id", taskID))
		return
	}

	c.JSON(http.StatusCreated, mapper.ToNoteItem(note))
}

func (h *NoteHandler) CreateSubtaskNote(c *gin.Context) {
	taskID, ok := parseID(c, "taskId")
	if !ok {
		return
	}
	subtaskID, ok := parseID(c, "subtaskId")
	if !ok {
		return
	}
	content, ok := h.readContent(c, false)
	if !ok {
		return
	}

	note, err := h.noteService.CreateSubtaskNote(c.Request.Context(), taskID, subtaskID, content)
	if err != nil {
		writeServiceError(c, err, apierrors.MsgFailCreateNote, "failed to create subtask note",
			zap.Uint64("task_id", taskID), zap.Uint64("subtask_id", subtaskID))
		return
	}

	c.JSON(http.StatusCreated, mapper.ToNoteItem(note))
}

func (h *NoteHandler) UpdateNote(c *gin.Context) {
	noteID, ok := parseID(c, "noteId")
	if !ok {
		return
	}
	content, ok := h.readContent(c, true)
	if !ok {
		return
	}

	note, err := h.noteService.UpdateNote(c.Request.Context(), noteID, content)
	if err != nil {
		writeServiceError(c, err, apierrors.MsgFailUpdateNote, "failed to update note", zap.Uint64("note_id", noteID))
		return
	}

	c.JSON(http.StatusOK, mapper.ToNoteItem(note))
}

func (h *NoteHandler) DeleteNote(c *gin.Context) {
	noteID, ok := parseID(c, "noteId")
	if !ok {
		return
	}

	if err := h.noteService.DeleteNote(c.Request.Context(), noteID); err != nil {
		writeServiceError(c, err, apierrors.MsgFailDeleteNote, "failed to delete note", zap.Uint64("note_id", noteID))
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *NoteHandler) readContent(c *gin.Context, requireField bool) (*string, bool) {
	var req dto.NoteRequest
	raw, err := decodeBody(c, &req)
	if err != nil {
		writeError(c, http.StatusBadRequest, apierrors.MsgInvalidNotePayload)
		return nil, false
	}
	content, err := validation.BuildNoteContent(req, raw, requireField)
	if err != nil {
		writeError(c, http.StatusBadRequest, apierrors.MsgInvalidNotePayload)
		return nil, false
	}
	return content, true
}
