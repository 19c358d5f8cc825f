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

type SubtaskHandler struct {
	subtaskService ports.SubtaskService
}

func NewSubtaskHandler(subtaskService ports.SubtaskService) *SubtaskHandler {
	return &SubtaskHandler{subtaskService: subtaskService}
}

func (h *SubtaskHandler) ListSubtasks(c *gin.Context) {
	taskID, ok := parseID(c, "id")
	if !ok {
		return
	}

	subtasks, err := h.subtaskService.ListSubtasks(c.Request.Context(), taskID)
	if err != nil {
		writeServiceError(c, err, apierrors.MsgFailListSubtasks, "failed to list subtasks", zap.Uint64("task_id", taskID))
		return
	}

	c.JSON(http.StatusOK, mapper.ToSubtaskItems(subtasks))
}

func (h *SubtaskHandler) CreateSubtask(c *gin.Context) {
	taskID, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req dto.CreateSubtaskRequest
	raw, err := decodeBody(c, &req)
	if err != nil {
		writeError(c, http.StatusBadRequest, apierrors.MsgInvalidSubtaskPayload)
		return
	}
	input, err := validation.BuildCreateSubtaskInput(req, raw)
	if err != nil {
		writeError(c, http.StatusBadRequest, apierrors.MsgInvalidSubtaskPayload)
		return
	}

	subtask, err := h.subtaskService.CreateSubtask(c.Request.Context(), taskID, input)
	if err != nil {
		writeServiceError(c, err, apierrors.MsgFailCreateSubtask, "failed to create subtask", zap.Uint64("task_id", taskID))
		return
	}

	c.JSON(http.StatusCreated, mapper.ToSubtaskItem(subtask))
}

func (h *SubtaskHandler) UpdateSubtask(c *gin.Context) {
	taskID, ok := parseID(c, "id")
	if !ok {
		return
	}
	subtaskID, ok := parseID(c, "subtaskId")
	if !ok {
		return
	}

	var req dto.UpdateSubtaskRequest
	raw, err := decodeBody(c, &req)
	if err != nil {
		writeError(c, http.StatusBadRequest, apierrors.MsgInvalidSubtaskPayload)
		return
	}
	input, err := validation.BuildUpdateSubtaskInput(req, raw)
	if err != nil {
		writeError(c, http.StatusBadRequest, apierrors.MsgInvalidSubtaskPayload)
		return
	}

	subtask, err := h.subtaskService.UpdateSubtask(c.Request.Context(), taskID, subtaskID, input)
	if err != nil {
		writeServiceError(c, err, apierrors.MsgFailUpdateSubtask, "failed to update subtask",
			zap.Uint64("task_id", taskID), zap.Uint64("subtask_id", subtaskID))
		return
	}

	c.JSON(http.StatusOK, mapper.ToSubtaskItem(subtask))
}

func (h *SubtaskHandler) DeleteSubtask(c *gin.Context) {
	taskID, ok := parseID(c, "id")
	if !ok {
		return
	}
	subtaskID, ok := parseID(c, "subtaskId")
	if !ok {
		return
	}

	if err := h.subtaskService.DeleteSubtask(c.Request.Context(), taskID, subtaskID); err != nil {
		writeServiceError(c, err, apierrors.MsgFailDeleteSubtask, "failed to delete subtask",
			zap.Uint64("task_id", taskID), zap.Uint64("subtask_id", subtaskID))
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *SubtaskHandler) ToggleSubtask(c *gin.Context) {
	taskID, ok := parseID(c, "id")
	if !ok {
		return
	}
	subtaskID, ok := parseID(c, "subtaskId")
	if !ok {
		return
	}

	subtask, err := h.subtaskService.ToggleSubtask(c.Request.Context(), taskID, subtaskID)
	if err != nil {
		writeServiceError(c, err, apierrors.MsgFailToggleSubtask, "failed to toggle subtask",
			zap.Uint64("task_id", taskID), zap.Uint64("subtask_id", subtaskID))
		return
	}

	c.JSON(http.StatusOK, mapper.ToSubtaskItem(subtask))
}
