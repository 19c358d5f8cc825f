package db

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"sort"
)

//go:embed migrations
var migrationFiles embed.FS

func MigrateUp(ctx context.Context, s *Store) error {
	entries, err := migrationEntries(s.Driver, ".up.sql")
	if err != nil {
		return err
	}
	sort.Strings(entries)
	return applyMigrations(ctx, s, entries)
}

func MigrateDown(ctx context.Context, s *Store) error {
	entries, err := migrationEntries(s.Driver, ".down.sql")
	if err != nil {
		return err
	}
	sort.Sort(sort.Reverse(sort.StringSlice(entries)))
	return applyMigrations(ctx, s, entries)
}

func migrationEntries(driver, suffix string) ([]string, error) {
	entries, err := fs.Glob(migrationFiles, "migrations/"+driver+"/*"+suffix)
	if err != nil {
		return nil, fmt.Errorf("glob migrations: %w", err)
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("no migrations for driver %q", driver)
	}
	return entries, nil
}

func applyMigrations(ctx context.Context, s *Store, entries []string) error {
	for _, name := range entries {
		sqlBytes, readErr := migrationFiles.ReadFile(name)
		if readErr != nil {
			return fmt.Errorf("read migration %s: %w", name, readErr)
		}
		if _, execErr := s.DB.ExecContext(ctx, string(sqlBytes)); execErr != nil {
			return fmt.Errorf("apply migration %s: %w", name, execErr)
		}
	}
	return nil
}
