package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/trace"
	_ "go.uber.org/automaxprocs"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	dbadapter "tasktracker/internal/adapter/db"
	"tasktracker/internal/adapter/export"
	httpadapter "tasktracker/internal/adapter/http"
	"tasktracker/internal/adapter/http/handlers"
	appservice "tasktracker/internal/app/service"
	"tasktracker/internal/config"
	"tasktracker/internal/core/ports"
	"tasktracker/internal/logger"
	"tasktracker/internal/telemetry"
	"tasktracker/pkg/translator"
)

func main() {
	cfg := config.LoadConfig()

	app := fx.New(
		fx.Supply(cfg),
		fx.StopTimeout(cfg.ShutdownTimeout),
		fx.WithLogger(func(l *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: l}
		}),
		fx.Provide(
			logger.NewLogger,
			telemetry.NewTracerProvider,
			fx.Annotate(export.NewTaskWorkbook, fx.As(new(ports.TaskExporter))),
			newHealthHandler,
			newRouter,
		),
		dbadapter.Module,
		appservice.Module,
		handlers.Module,
		fx.Invoke(
			initTranslator,
			func(trace.TracerProvider) {},
			seedCategories,
			serverLifecycle,
		),
	)
	app.Run()
}

func initTranslator(cfg *config.Config) {
	translator.InitTranslator(translator.Config{
		TranslationFolder:  cfg.TranslationFolder,
		SupportedLanguages: []string{translator.LanguageFr, translator.LanguageEn},
	})
}

func newHealthHandler(store *dbadapter.Store) *handlers.HealthHandler {
	return handlers.NewHealthHandler(store.DB, store.Driver)
}

func newRouter(cfg *config.Config, logger *zap.Logger, h httpadapter.Handlers) (*gin.Engine, error) {
	if !logger.Core().Enabled(zapcore.DebugLevel) {
		gin.SetMode(gin.ReleaseMode)
	}
	return httpadapter.NewRouter(logger, cfg.TrustedProxies, h)
}

// seedCategories fills an empty category table once migrations have run.
func seedCategories(lc fx.Lifecycle, cfg *config.Config, categoryService ports.CategoryService) {
	if !cfg.SeedDefaults {
		return
	}
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			_, err := categoryService.SeedDefaults(ctx)
			return err
		},
	})
}

func serverLifecycle(lc fx.Lifecycle, cfg *config.Config, router *gin.Engine, logger *zap.Logger) {
	server := &http.Server{
		Addr:              ":" + cfg.AppPort,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			listener, err := net.Listen("tcp", server.Addr)
			if err != nil {
				return err
			}
			logger.Info("starting server", zap.String("addr", server.Addr))
			go func() {
				if err := server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
					logger.Error("server stopped unexpectedly", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("shutting down server")
			return server.Shutdown(ctx)
		},
	})
}
