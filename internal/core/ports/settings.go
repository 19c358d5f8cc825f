package ports

import "context"

type SettingsRepository interface {
	ClearAll(ctx context.Context) error
}

type SettingsService interface {
	ClearAll(ctx context.Context) error
}
