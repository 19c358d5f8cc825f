package service

import (
	"go.uber.org/fx"

	"tasktracker/internal/core/ports"
)

var Module = fx.Options(
	fx.Provide(
		fx.Annotate(NewTaskService, fx.As(new(ports.TaskService))),
		fx.Annotate(NewSubtaskService, fx.As(new(ports.SubtaskService))),
		fx.Annotate(NewNoteService, fx.As(new(ports.NoteService))),
		fx.Annotate(NewCategoryService, fx.As(new(ports.CategoryService))),
		fx.Annotate(NewSettingsService, fx.As(new(ports.SettingsService))),
	),
)
