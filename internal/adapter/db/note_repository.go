package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"tasktracker/internal/core/domain"
	"tasktracker/internal/core/ports"
)

const noteColumns = `id, task_id, subtask_id, content, created_at, updated_at`

type NoteRepository struct {
	store *Store
}

var _ ports.NoteRepository = (*NoteRepository)(nil)

func NewNoteRepository(store *Store) *NoteRepository {
	return &NoteRepository{store: store}
}

func (r *NoteRepository) ListTaskNotes(ctx context.Context, taskID uint64) ([]domain.Note, error) {
	if err := ensureTaskExists(ctx, r.store.DB, taskID); err != nil {
		return nil, err
	}

	var rows []noteRow
	if err := r.store.DB.SelectContext(ctx, &rows,
		`SELECT `+noteColumns+` FROM notes WHERE task_id = ? AND subtask_id IS NULL ORDER BY id ASC`, taskID,
	); err != nil {
		return nil, fmt.Errorf("list notes of task %d: %w", taskID, err)
	}
	return mapNoteRows(rows), nil
}

func (r *NoteRepository) ListSubtaskNotes(ctx context.Context, subtaskID uint64) ([]domain.Note, error) {
	var count int
	if err := r.store.DB.GetContext(ctx, &count, `SELECT COUNT(*) FROM subtasks WHERE id = ?`, subtaskID); err != nil {
		return nil, fmt.Errorf("check subtask %d: %w", subtaskID, err)
	}
	if count == 0 {
		return nil, domain.ErrSubtaskNotFound
	}

	grouped, err := notesBySubtask(ctx, r.store.DB, []uint64{subtaskID})
	if err != nil {
		return nil, err
	}
	if grouped[subtaskID] == nil {
		return []domain.Note{}, nil
	}
	return grouped[subtaskID], nil
}

// CreateNote attaches a note to a task, or to one of that task's subtasks
// when subtaskID is set.
func (r *NoteRepository) CreateNote(ctx context.Context, taskID uint64, subtaskID *uint64, content *string) (domain.Note, error) {
	var noteID uint64
	err := r.store.withTx(ctx, func(tx *sqlx.Tx) error {
		if err := ensureTaskExists(ctx, tx, taskID); err != nil {
			return err
		}
		if subtaskID != nil {
			if _, err := getSubtask(ctx, tx, taskID, *subtaskID); err != nil {
				return err
			}
		}

		now := r.store.now()
		result, err := tx.ExecContext(ctx, `
INSERT INTO notes (task_id, subtask_id, content, created_at, updated_at)
VALUES (?, ?, ?, ?, ?)`,
			taskID, nullableID(subtaskID), nullableString(content), now, now,
		)
		if err != nil {
			return fmt.Errorf("insert note: %w", err)
		}
		id, err := result.LastInsertId()
		if err != nil {
			return fmt.Errorf("read note id: %w", err)
		}
		noteID = uint64(id)
		return nil
	})
	if err != nil {
		return domain.Note{}, err
	}

	return getNote(ctx, r.store.DB, noteID)
}

func (r *NoteRepository) UpdateNote(ctx context.Context, noteID uint64, content *string) (domain.Note, error) {
	err := r.store.withTx(ctx, func(tx *sqlx.Tx) error {
		if _, err := getNote(ctx, tx, noteID); err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx,
			`UPDATE notes SET content = ?, updated_at = ? WHERE id = ?`,
			nullableString(content), r.store.now(), noteID,
		); err != nil {
			return fmt.Errorf("update note %d: %w", noteID, err)
		}
		return nil
	})
	if err != nil {
		return domain.Note{}, err
	}

	return getNote(ctx, r.store.DB, noteID)
}

func (r *NoteRepository) DeleteNote(ctx context.Context, noteID uint64) error {
	result, err := r.store.DB.ExecContext(ctx, `DELETE FROM notes WHERE id = ?`, noteID)
	if err != nil {
		return fmt.Errorf("delete note %d: %w", noteID, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete note %d: %w", noteID, err)
	}
	if affected == 0 {
		return domain.ErrNoteNotFound
	}
	return nil
}

func getNote(ctx context.Context, q sqlx.ExtContext, noteID uint64) (domain.Note, error) {
	var row noteRow
	if err := sqlx.GetContext(ctx, q, &row, `SELECT `+noteColumns+` FROM notes WHERE id = ?`, noteID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Note{}, domain.ErrNoteNotFound
		}
		return domain.Note{}, err
	}
	return mapNoteRow(row), nil
}

func notesBySubtask(ctx context.Context, q sqlx.ExtContext, subtaskIDs []uint64) (map[uint64][]domain.Note, error) {
	grouped := make(map[uint64][]domain.Note, len(subtaskIDs))
	if len(subtaskIDs) == 0 {
		return grouped, nil
	}

	query, args, err := inClause(q,
		`SELECT `+noteColumns+` FROM notes WHERE subtask_id IN (?) ORDER BY id ASC`, subtaskIDs)
	if err != nil {
		return nil, err
	}

	var rows []noteRow
	if err := sqlx.SelectContext(ctx, q, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("load subtask notes: %w", err)
	}
	for _, row := range rows {
		note := mapNoteRow(row)
		grouped[*note.SubtaskID] = append(grouped[*note.SubtaskID], note)
	}
	return grouped, nil
}

func mapNoteRows(rows []noteRow) []domain.Note {
	notes := make([]domain.Note, 0, len(rows))
	for _, row := range rows {
		notes = append(notes, mapNoteRow(row))
	}
	return notes
}
