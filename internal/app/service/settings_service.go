package service

import (
	"context"

	"go.uber.org/zap"

	"tasktracker/internal/core/ports"
)

type SettingsService struct {
	settingsRepository ports.SettingsRepository
}

var _ ports.SettingsService = (*SettingsService)(nil)

func NewSettingsService(settingsRepository ports.SettingsRepository) *SettingsService {
	return &SettingsService{settingsRepository: settingsRepository}
}

// ClearAll wipes notes, subtasks, tasks and categories in one transaction.
func (s *SettingsService) ClearAll(ctx context.Context) (err error) {
	ctx, span := startSpan(ctx, "SettingsService.ClearAll")
	defer func() { endSpan(span, err) }()

	if err := s.settingsRepository.ClearAll(ctx); err != nil {
		return err
	}

	zap.L().Warn("all task tracker data cleared")
	return nil
}
