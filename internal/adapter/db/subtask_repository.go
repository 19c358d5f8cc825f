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

const subtaskColumns = `id, task_id, title, description, completed, created_at, updated_at`

type SubtaskRepository struct {
	store *Store
}

var _ ports.SubtaskRepository = (*SubtaskRepository)(nil)

func NewSubtaskRepository(store *Store) *SubtaskRepository {
	return &SubtaskRepository{store: store}
}

func (r *SubtaskRepository) ListSubtasks(ctx context.Context, taskID uint64) ([]domain.Subtask, error) {
	if err := ensureTaskExists(ctx, r.store.DB, taskID); err != nil {
		return nil, err
	}

	grouped, err := subtasksByTask(ctx, r.store.DB, []uint64{taskID})
	if err != nil {
		return nil, err
	}
	subtasks := grouped[taskID]
	if subtasks == nil {
		return []domain.Subtask{}, nil
	}

	ids := make([]uint64, 0, len(subtasks))
	for _, subtask := range subtasks {
		ids = append(ids, subtask.ID)
	}
	notes, err := notesBySubtask(ctx, r.store.DB, ids)
	if err != nil {
		return nil, err
	}
	for i := range subtasks {
		subtasks[i].Notes = notes[subtasks[i].ID]
		if subtasks[i].Notes == nil {
			subtasks[i].Notes = []domain.Note{}
		}
	}

	return subtasks, nil
}

func (r *SubtaskRepository) GetSubtask(ctx context.Context, taskID, subtaskID uint64) (domain.Subtask, error) {
	return getSubtask(ctx, r.store.DB, taskID, subtaskID)
}

func (r *SubtaskRepository) CreateSubtask(ctx context.Context, taskID uint64, input domain.CreateSubtaskInput) (domain.Subtask, error) {
	var subtaskID uint64
	err := r.store.withTx(ctx, func(tx *sqlx.Tx) error {
		if err := ensureTaskExists(ctx, tx, taskID); err != nil {
			return err
		}

		now := r.store.now()
		result, err := tx.ExecContext(ctx, `
INSERT INTO subtasks (task_id, title, description, completed, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?)`,
			taskID, input.Title, nullableString(input.Description), input.Completed, now, now,
		)
		if err != nil {
			return fmt.Errorf("insert subtask: %w", err)
		}
		id, err := result.LastInsertId()
		if err != nil {
			return fmt.Errorf("read subtask id: %w", err)
		}
		subtaskID = uint64(id)
		return nil
	})
	if err != nil {
		return domain.Subtask{}, err
	}

	return getSubtask(ctx, r.store.DB, taskID, subtaskID)
}

func (r *SubtaskRepository) UpdateSubtask(ctx context.Context, taskID, subtaskID uint64, input domain.UpdateSubtaskInput) (domain.Subtask, error) {
	sets := make([]string, 0, 4)
	args := make([]any, 0, 5)
	if input.Title != nil {
		sets = append(sets, "title = ?")
		args = append(args, *input.Title)
	}
	if input.DescriptionSet {
		sets = append(sets, "description = ?")
		args = append(args, nullableString(input.Description))
	}
	if input.Completed != nil {
		sets = append(sets, "completed = ?")
		args = append(args, *input.Completed)
	}

	err := r.store.withTx(ctx, func(tx *sqlx.Tx) error {
		if _, err := getSubtask(ctx, tx, taskID, subtaskID); err != nil {
			return err
		}
		query := "UPDATE subtasks SET " + strings.Join(append(sets, "updated_at = ?"), ", ") + " WHERE id = ?"
		if _, err := tx.ExecContext(ctx, query, append(args, r.store.now(), subtaskID)...); err != nil {
			return fmt.Errorf("update subtask %d: %w", subtaskID, err)
		}
		return nil
	})
	if err != nil {
		return domain.Subtask{}, err
	}

	return getSubtask(ctx, r.store.DB, taskID, subtaskID)
}

func (r *SubtaskRepository) DeleteSubtask(ctx context.Context, taskID, subtaskID uint64) error {
	return r.store.withTx(ctx, func(tx *sqlx.Tx) error {
		if _, err := getSubtask(ctx, tx, taskID, subtaskID); err != nil {
			return err
		}
		return deleteSubtaskCascade(ctx, tx, subtaskID)
	})
}

func (r *SubtaskRepository) ToggleSubtask(ctx context.Context, taskID, subtaskID uint64) (domain.Subtask, error) {
	err := r.store.withTx(ctx, func(tx *sqlx.Tx) error {
		subtask, err := getSubtask(ctx, tx, taskID, subtaskID)
		if err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx,
			`UPDATE subtasks SET completed = ?, updated_at = ? WHERE id = ?`,
			!subtask.Completed, r.store.now(), subtaskID,
		); err != nil {
			return fmt.Errorf("toggle subtask %d: %w", subtaskID, err)
		}
		return nil
	})
	if err != nil {
		return domain.Subtask{}, err
	}

	return getSubtask(ctx, r.store.DB, taskID, subtaskID)
}

// getSubtask only finds a subtask through the task that owns it.
func getSubtask(ctx context.Context, q sqlx.ExtContext, taskID, subtaskID uint64) (domain.Subtask, error) {
	var row subtaskRow
	err := sqlx.GetContext(ctx, q, &row,
		`SELECT `+subtaskColumns+` FROM subtasks WHERE id = ? AND task_id = ?`,
		subtaskID, taskID,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Subtask{}, domain.ErrSubtaskNotFound
		}
		return domain.Subtask{}, err
	}
	return mapSubtaskRow(row), nil
}

func subtasksByTask(ctx context.Context, q sqlx.ExtContext, taskIDs []uint64) (map[uint64][]domain.Subtask, error) {
	grouped := make(map[uint64][]domain.Subtask, len(taskIDs))
	if len(taskIDs) == 0 {
		return grouped, nil
	}

	query, args, err := inClause(q,
		`SELECT `+subtaskColumns+` FROM subtasks WHERE task_id IN (?) ORDER BY id ASC`, taskIDs)
	if err != nil {
		return nil, err
	}

	var rows []subtaskRow
	if err := sqlx.SelectContext(ctx, q, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("load subtasks: %w", err)
	}
	for _, row := range rows {
		grouped[row.TaskID] = append(grouped[row.TaskID], mapSubtaskRow(row))
	}
	return grouped, nil
}
