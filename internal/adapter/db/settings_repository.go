package db

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"tasktracker/internal/core/ports"
)

type SettingsRepository struct {
	store *Store
}

var _ ports.SettingsRepository = (*SettingsRepository)(nil)

func NewSettingsRepository(store *Store) *SettingsRepository {
	return &SettingsRepository{store: store}
}

// ClearAll empties every table. Children go first since no foreign key
// cascades on delete.
func (r *SettingsRepository) ClearAll(ctx context.Context) error {
	return r.store.withTx(ctx, func(tx *sqlx.Tx) error {
		for _, table := range []string{"notes", "subtasks", "tasks", "categories"} {
			if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
				return fmt.Errorf("clear %s: %w", table, err)
			}
		}
		return nil
	})
}
