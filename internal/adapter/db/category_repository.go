package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"tasktracker/internal/core/domain"
	"tasktracker/internal/core/ports"
)

const categorySelect = `
SELECT
  c.id,
  c.name,
  c.color,
  c.icon,
  c.description,
  c.created_at,
  c.updated_at,
  (SELECT COUNT(*) FROM tasks t WHERE t.category_id = c.id) AS task_count
FROM categories c`

type CategoryRepository struct {
	store *Store
}

var _ ports.CategoryRepository = (*CategoryRepository)(nil)

func NewCategoryRepository(store *Store) *CategoryRepository {
	return &CategoryRepository{store: store}
}

func (r *CategoryRepository) ListCategories(ctx context.Context) ([]domain.Category, error) {
	var rows []categoryRow
	if err := r.store.DB.SelectContext(ctx, &rows, categorySelect+` ORDER BY c.name ASC`); err != nil {
		return nil, err
	}

	categories := make([]domain.Category, 0, len(rows))
	for _, row := range rows {
		categories = append(categories, mapCategoryRow(row))
	}
	return categories, nil
}

func (r *CategoryRepository) GetCategory(ctx context.Context, categoryID uint64) (domain.Category, error) {
	return getCategory(ctx, r.store.DB, categoryID)
}

func (r *CategoryRepository) CountCategories(ctx context.Context) (int, error) {
	var count int
	if err := r.store.DB.GetContext(ctx, &count, `SELECT COUNT(*) FROM categories`); err != nil {
		return 0, err
	}
	return count, nil
}

func (r *CategoryRepository) CreateCategory(ctx context.Context, input domain.CreateCategoryInput) (domain.Category, error) {
	var categoryID uint64
	err := r.store.withTx(ctx, func(tx *sqlx.Tx) error {
		if err := ensureCategoryNameFree(ctx, tx, input.Name, 0); err != nil {
			return err
		}

		now := r.store.now()
		result, err := tx.ExecContext(ctx, `
INSERT INTO categories (name, color, icon, description, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?)`,
			input.Name, input.Color, input.Icon, nullableString(input.Description), now, now,
		)
		if err != nil {
			if isUniqueViolation(err) {
				return domain.ErrCategoryNameTaken
			}
			return fmt.Errorf("insert category: %w", err)
		}
		id, err := result.LastInsertId()
		if err != nil {
			return fmt.Errorf("read category id: %w", err)
		}
		categoryID = uint64(id)
		return nil
	})
	if err != nil {
		return domain.Category{}, err
	}

	return getCategory(ctx, r.store.DB, categoryID)
}

func (r *CategoryRepository) UpdateCategory(ctx context.Context, categoryID uint64, input domain.UpdateCategoryInput) (domain.Category, error) {
	sets := make([]string, 0, 5)
	args := make([]any, 0, 6)
	if input.Name != nil {
		sets = append(sets, "name = ?")
		args = append(args, *input.Name)
	}
	if input.Color != nil {
		sets = append(sets, "color = ?")
		args = append(args, *input.Color)
	}
	if input.Icon != nil {
		sets = append(sets, "icon = ?")
		args = append(args, *input.Icon)
	}
	if input.DescriptionSet {
		sets = append(sets, "description = ?")
		args = append(args, nullableString(input.Description))
	}

	err := r.store.withTx(ctx, func(tx *sqlx.Tx) error {
		if err := ensureCategoryExists(ctx, tx, categoryID); err != nil {
			return err
		}
		if input.Name != nil {
			if err := ensureCategoryNameFree(ctx, tx, *input.Name, categoryID); err != nil {
				return err
			}
		}

		query := "UPDATE categories SET " + strings.Join(append(sets, "updated_at = ?"), ", ") + " WHERE id = ?"
		if _, err := tx.ExecContext(ctx, query, append(args, r.store.now(), categoryID)...); err != nil {
			if isUniqueViolation(err) {
				return domain.ErrCategoryNameTaken
			}
			return fmt.Errorf("update category %d: %w", categoryID, err)
		}
		return nil
	})
	if err != nil {
		return domain.Category{}, err
	}

	return getCategory(ctx, r.store.DB, categoryID)
}

// DeleteCategory detaches every referencing task before removing the
// category; tasks themselves are never deleted here.
func (r *CategoryRepository) DeleteCategory(ctx context.Context, categoryID uint64) error {
	return r.store.withTx(ctx, func(tx *sqlx.Tx) error {
		if err := ensureCategoryExists(ctx, tx, categoryID); err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx,
			`UPDATE tasks SET category_id = NULL, updated_at = ? WHERE category_id = ?`,
			r.store.now(), categoryID,
		); err != nil {
			return fmt.Errorf("detach tasks from category %d: %w", categoryID, err)
		}
		if _, err := tx.ExecContext(ctx, `DELETE FROM categories WHERE id = ?`, categoryID); err != nil {
			return fmt.Errorf("delete category %d: %w", categoryID, err)
		}
		return nil
	})
}

func getCategory(ctx context.Context, q sqlx.ExtContext, categoryID uint64) (domain.Category, error) {
	var row categoryRow
	if err := sqlx.GetContext(ctx, q, &row, categorySelect+` WHERE c.id = ?`, categoryID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Category{}, domain.ErrCategoryNotFound
		}
		return domain.Category{}, err
	}
	return mapCategoryRow(row), nil
}

func ensureCategoryExists(ctx context.Context, q sqlx.ExtContext, categoryID uint64) error {
	var count int
	if err := sqlx.GetContext(ctx, q, &count, `SELECT COUNT(*) FROM categories WHERE id = ?`, categoryID); err != nil {
		return fmt.Errorf("check category %d: %w", categoryID, err)
	}
	if count == 0 {
		return domain.ErrCategoryNotFound
	}
	return nil
}

func ensureCategoryNameFree(ctx context.Context, q sqlx.ExtContext, name string, exceptID uint64) error {
	var count int
	if err := sqlx.GetContext(ctx, q, &count,
		`SELECT COUNT(*) FROM categories WHERE name = ? AND id <> ?`, name, exceptID,
	); err != nil {
		return fmt.Errorf("check category name: %w", err)
	}
	if count > 0 {
		return domain.ErrCategoryNameTaken
	}
	return nil
}
