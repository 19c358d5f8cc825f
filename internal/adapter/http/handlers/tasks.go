package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"tasktracker/internal/adapter/export"
	"tasktracker/internal/adapter/http/dto"
	"tasktracker/internal/adapter/http/mapper"
	"tasktracker/internal/adapter/http/validation"
	"tasktracker/internal/core/ports"
	"tasktracker/pkg/apierrors"
)

type TaskHandler struct {
	taskService  ports.TaskService
	taskExporter ports.TaskExporter
}

func NewTaskHandler(taskService ports.TaskService, taskExporter ports.TaskExporter) *TaskHandler {
	return &TaskHandler{taskService: taskService, taskExporter: taskExporter}
}

func (h *TaskHandler) ListTasks(c *gin.Context) {
	tasks, err := h.taskService.ListTasks(c.Request.Context())
	if err != nil {
		writeServiceError(c, err, apierrors.MsgFailListTasks, "failed to list tasks")
		return
	}

	c.JSON(http.StatusOK, mapper.ToTaskItems(tasks))
}

func (h *TaskHandler) GetTask(c *gin.Context) {
	taskID, ok := parseID(c, "id")
	if !ok {
		return
	}

	task, err := h.taskService.GetTask(c.Request.Context(), taskID)
	if err != nil {
		writeServiceError(c, err, apierrors.MsgFailGetTask, "failed to get task", zap.Uint64("task_id", taskID))
		return
	}

	c.JSON(http.StatusOK, mapper.ToTaskItem(task))
}

func (h *TaskHandler) CreateTask(c *gin.Context) {
	var req dto.CreateTaskRequest
	raw, err := decodeBody(c, &req)
	if err != nil {
		writeError(c, http.StatusBadRequest, apierrors.MsgInvalidTaskPayload)
		return
	}

	input, err := validation.BuildCreateTaskInput(req, raw)
	if err != nil {
		writeError(c, http.StatusBadRequest, apierrors.MsgInvalidTaskPayload)
		return
	}

	task, err := h.taskService.CreateTask(c.Request.Context(), input)
	if err != nil {
		writeServiceError(c, err, apierrors.MsgFailCreateTask, "failed to create task")
		return
	}

	c.JSON(http.StatusCreated, mapper.ToTaskItem(task))
}

// UpdateTask serves both PUT and PATCH; only the fields present in the body
// are written.
func (h *TaskHandler) UpdateTask(c *gin.Context) {
	taskID, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateTaskRequest
	raw, err := decodeBody(c, &req)
	if err != nil {
		writeError(c, http.StatusBadRequest, apierrors.MsgInvalidTaskPayload)
		return
	}

	input, err := validation.BuildUpdateTaskInput(req, raw)
	if err != nil {
		writeError(c, http.StatusBadRequest, apierrors.MsgInvalidTaskPayload)
		return
	}

	task, err := h.taskService.UpdateTask(c.Request.Context(), taskID, input)
	if err != nil {
		writeServiceError(c, err, apierrors.MsgFailUpdateTask, "failed to update task", zap.Uint64("task_id", taskID))
		return
	}

	c.JSON(http.StatusOK, mapper.ToTaskItem(task))
}

func (h *TaskHandler) DeleteTask(c *gin.Context) {
	taskID, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.taskService.DeleteTask(c.Request.Context(), taskID); err != nil {
		writeServiceError(c, err, apierrors.MsgFailDeleteTask, "failed to delete task", zap.Uint64("task_id", taskID))
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *TaskHandler) ReorderTasks(c *gin.Context) {
	raw, err := decodeBody(c, nil)
	if err != nil {
		writeError(c, http.StatusBadRequest, apierrors.MsgInvalidReorderPayload)
		return
	}

	orders, err := validation.BuildReorderInput(raw)
	if err != nil {
		writeError(c, http.StatusBadRequest, apierrors.MsgInvalidReorderPayload)
		return
	}

	tasks, err := h.taskService.ReorderTasks(c.Request.Context(), orders)
	if err != nil {
		writeServiceError(c, err, apierrors.MsgFailReorderTasks, "failed to reorder tasks", zap.Int("orders", len(orders)))
		return
	}

	c.JSON(http.StatusOK, mapper.ToTaskItems(tasks))
}

func (h *TaskHandler) MoveTask(c *gin.Context) {
	taskID, ok := parseID(c, "id")
	if !ok {
		return
	}

	raw, err := decodeBody(c, nil)
	if err != nil {
		writeError(c, http.StatusBadRequest, apierrors.MsgInvalidPosition)
		return
	}

	position, err := validation.BuildMoveInput(raw)
	if err != nil {
		writeError(c, http.StatusBadRequest, apierrors.MsgInvalidPosition)
		return
	}

	task, err := h.taskService.MoveTask(c.Request.Context(), taskID, position)
	if err != nil {
		writeServiceError(c, err, apierrors.MsgFailMoveTask, "failed to move task",
			zap.Uint64("task_id", taskID), zap.Uint64("position", position))
		return
	}

	c.JSON(http.StatusOK, mapper.ToTaskItem(task))
}

func (h *TaskHandler) TaskStats(c *gin.Context) {
	stats, err := h.taskService.TaskStats(c.Request.Context())
	if err != nil {
		writeServiceError(c, err, apierrors.MsgFailTaskStats, "failed to compute task stats")
		return
	}

	c.JSON(http.StatusOK, mapper.ToTaskStats(stats))
}

func (h *TaskHandler) ExportTasks(c *gin.Context) {
	tasks, err := h.taskService.ListTasks(c.Request.Context())
	if err != nil {
		writeServiceError(c, err, apierrors.MsgFailExportTasks, "failed to list tasks for export")
		return
	}

	content, err := h.taskExporter.ExportTasks(tasks)
	if err != nil {
		writeServiceError(c, err, apierrors.MsgFailExportTasks, "failed to render task export", zap.Int("tasks", len(tasks)))
		return
	}

	c.Header("Content-Disposition", `attachment; filename="tasks.xlsx"`)
	c.Data(http.StatusOK, export.XLSXContentType, content)
}
