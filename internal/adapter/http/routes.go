package http

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

	"tasktracker/internal/adapter/http/handlers"
	"tasktracker/internal/adapter/http/middleware"
)

type Handlers struct {
	fx.In

	Health   *handlers.HealthHandler
	Task     *handlers.TaskHandler
	Subtask  *handlers.SubtaskHandler
	Note     *handlers.NoteHandler
	Category *handlers.CategoryHandler
	Settings *handlers.SettingsHandler
}

func RegisterRoutes(r *gin.Engine, h Handlers) {
	api := r.Group("/api")
	api.Use(middleware.LanguageMiddleware())
	{
		api.GET("/health", h.Health.CheckHealth)
		api.GET("/health/report", h.Health.CheckHealthReport)
	}

	// Static segments are registered before /tasks/:id.
	tasks := api.Group("/tasks")
	{
		tasks.GET("", h.Task.ListTasks)
		tasks.POST("", h.Task.CreateTask)
		tasks.GET("/stats", h.Task.TaskStats)
		tasks.GET("/export", h.Task.ExportTasks)
		tasks.POST("/reorder", h.Task.ReorderTasks)
		tasks.GET("/:id", h.Task.GetTask)
		tasks.PUT("/:id", h.Task.UpdateTask)
		tasks.PATCH("/:id", h.Task.UpdateTask)
		tasks.DELETE("/:id", h.Task.DeleteTask)
		tasks.PATCH("/:id/position", h.Task.MoveTask)

		tasks.GET("/:id/subtasks", h.Subtask.ListSubtasks)
		tasks.POST("/:id/subtasks", h.Subtask.CreateSubtask)
		tasks.PUT("/:id/subtasks/:subtaskId", h.Subtask.UpdateSubtask)
		tasks.PATCH("/:id/subtasks/:subtaskId", h.Subtask.UpdateSubtask)
		tasks.DELETE("/:id/subtasks/:subtaskId", h.Subtask.DeleteSubtask)
		tasks.PATCH("/:id/subtasks/:subtaskId/toggle", h.Subtask.ToggleSubtask)
	}

	notes := api.Group("/notes")
	{
		notes.GET("/task/:taskId", h.Note.ListTaskNotes)
		notes.POST("/task/:taskId", h.Note.CreateTaskNote)
		notes.GET("/subtask/:subtaskId", h.Note.ListSubtaskNotes)
		notes.POST("/subtask/:taskId/:subtaskId", h.Note.CreateSubtaskNote)
		notes.PUT("/:noteId", h.Note.UpdateNote)
		notes.PATCH("/:noteId", h.Note.UpdateNote)
		notes.DELETE("/:noteId", h.Note.DeleteNote)
	}

	categories := api.Group("/categories")
	{
		categories.GET("", h.Category.ListCategories)
		categories.POST("", h.Category.CreateCategory)
		categories.GET("/:id", h.Category.GetCategory)
		categories.PUT("/:id", h.Category.UpdateCategory)
		categories.PATCH("/:id", h.Category.UpdateCategory)
		categories.DELETE("/:id", h.Category.DeleteCategory)
	}

	settings := api.Group("/settings")
	{
		settings.POST("/clear-data", h.Settings.ClearData)
		settings.POST("/clear-all", h.Settings.ClearData)
	}
}
