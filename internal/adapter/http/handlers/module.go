package handlers

import (
	"go.uber.org/fx"
)

// Module provides every handler except HealthHandler, which needs the raw
// database handle and is wired by the caller.
var Module = fx.Options(
	fx.Provide(
		NewTaskHandler,
		NewSubtaskHandler,
		NewNoteHandler,
		NewCategoryHandler,
		NewSettingsHandler,
	),
)
