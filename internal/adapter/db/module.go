package db

import (
	"context"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"tasktracker/internal/config"
	"tasktracker/internal/core/ports"
)

var Module = fx.Options(
	fx.Provide(NewLifecycleStore),
	fx.Provide(
		fx.Annotate(NewTaskRepository, fx.As(new(ports.TaskRepository))),
		fx.Annotate(NewSubtaskRepository, fx.As(new(ports.SubtaskRepository))),
		fx.Annotate(NewNoteRepository, fx.As(new(ports.NoteRepository))),
		fx.Annotate(NewCategoryRepository, fx.As(new(ports.CategoryRepository))),
		fx.Annotate(NewSettingsRepository, fx.As(new(ports.SettingsRepository))),
	),
)

// NewLifecycleStore opens the configured database, migrates it on start when
// enabled and closes it on stop.
func NewLifecycleStore(lc fx.Lifecycle, cfg *config.Config, logger *zap.Logger) (*Store, error) {
	store, err := ConnectDB(cfg)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if !cfg.AutoMigrate {
				return nil
			}
			if err := MigrateUp(ctx, store); err != nil {
				return err
			}
			logger.Info("database migrated", zap.String("driver", store.Driver))
			return nil
		},
		OnStop: func(context.Context) error {
			return store.Close()
		},
	})

	return store, nil
}
