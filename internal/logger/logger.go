package logger

import (
	"context"
	"strings"

	"go.uber.org/fx"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"tasktracker/internal/config"
)

// NewLogger builds the process logger and makes it the zap global so packages
// can log through zap.L().
func NewLogger(lc fx.Lifecycle, cfg *config.Config) (*zap.Logger, error) {
	zapConfig := zap.NewProductionConfig()
	zapConfig.Level = zap.NewAtomicLevelAt(ParseLevel(cfg.LogLevel))

	logger, err := zapConfig.Build()
	if err != nil {
		return nil, err
	}
	restore := zap.ReplaceGlobals(logger)

	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			restore()
			// Sync fails on stdout/stderr for some platforms.
			_ = logger.Sync()
			return nil
		},
	})

	return logger, nil
}

func ParseLevel(level string) zapcore.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return zapcore.DebugLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}
