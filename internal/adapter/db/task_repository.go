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

const listTasksQuery = `SELECT` + taskColumns + taskFromClause + `
ORDER BY t.position ASC, t.id ASC`

const getTaskQuery = `SELECT` + taskColumns + taskFromClause + `
WHERE t.id = ?`

// Lowest id wins when several rows share the target position.
const findPositionOccupantQuery = `
SELECT id, position
FROM tasks
WHERE position = ? AND id <> ?
ORDER BY id ASC
LIMIT 1`

type TaskRepository struct {
	store *Store
}

var _ ports.TaskRepository = (*TaskRepository)(nil)

func NewTaskRepository(store *Store) *TaskRepository {
	return &TaskRepository{store: store}
}

func (r *TaskRepository) ListTasks(ctx context.Context) ([]domain.Task, error) {
	return listTasks(ctx, r.store.DB)
}

func (r *TaskRepository) GetTask(ctx context.Context, taskID uint64) (domain.Task, error) {
	return loadTaskGraph(ctx, r.store.DB, taskID)
}

func (r *TaskRepository) CreateTask(ctx context.Context, input domain.CreateTaskInput) (domain.Task, error) {
	attachments, err := encodeAttachments(input.Attachments)
	if err != nil {
		return domain.Task{}, err
	}

	var taskID uint64
	err = r.store.withTx(ctx, func(tx *sqlx.Tx) error {
		if input.CategoryID != nil {
			if err := ensureCategoryExists(ctx, tx, *input.CategoryID); err != nil {
				return err
			}
		}

		// Read and insert share the transaction; concurrent creators can still
		// pick the same value under read-committed.
		var maxPosition sql.NullInt64
		if err := tx.GetContext(ctx, &maxPosition, `SELECT MAX(position) FROM tasks`); err != nil {
			return fmt.Errorf("read max position: %w", err)
		}
		position := uint64(1)
		if maxPosition.Valid {
			position = uint64(maxPosition.Int64) + 1
		}

		now := r.store.now()
		result, err := tx.ExecContext(ctx, `
INSERT INTO tasks (title, description, due_date, priority, status, category_id, position, attachments, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			input.Title,
			nullableString(input.Description),
			nullableTime(input.DueDate),
			string(input.Priority),
			string(input.Status),
			nullableID(input.CategoryID),
			position,
			attachments,
			now,
			now,
		)
		if err != nil {
			return fmt.Errorf("insert task: %w", err)
		}

		id, err := result.LastInsertId()
		if err != nil {
			return fmt.Errorf("read task id: %w", err)
		}
		taskID = uint64(id)
		return nil
	})
	if err != nil {
		return domain.Task{}, err
	}

	return loadTaskGraph(ctx, r.store.DB, taskID)
}

func (r *TaskRepository) UpdateTask(ctx context.Context, taskID uint64, input domain.UpdateTaskInput) (domain.Task, error) {
	sets := make([]string, 0, 8)
	args := make([]any, 0, 9)

	if input.Title != nil {
		sets = append(sets, "title = ?")
		args = append(args, *input.Title)
	}
	if input.DescriptionSet {
		sets = append(sets, "description = ?")
		args = append(args, nullableString(input.Description))
	}
	if input.DueDateSet {
		sets = append(sets, "due_date = ?")
		args = append(args, nullableTime(input.DueDate))
	}
	if input.Priority != nil {
		sets = append(sets, "priority = ?")
		args = append(args, string(*input.Priority))
	}
	if input.Status != nil {
		sets = append(sets, "status = ?")
		args = append(args, string(*input.Status))
	}
	if input.CategoryIDSet {
		sets = append(sets, "category_id = ?")
		args = append(args, nullableID(input.CategoryID))
	}
	if input.AttachmentsSet {
		attachments, err := encodeAttachments(input.Attachments)
		if err != nil {
			return domain.Task{}, err
		}
		sets = append(sets, "attachments = ?")
		args = append(args, attachments)
	}

	err := r.store.withTx(ctx, func(tx *sqlx.Tx) error {
		if err := ensureTaskExists(ctx, tx, taskID); err != nil {
			return err
		}
		if input.CategoryIDSet && input.CategoryID != nil {
			if err := ensureCategoryExists(ctx, tx, *input.CategoryID); err != nil {
				return err
			}
		}

		query := "UPDATE tasks SET " + strings.Join(append(sets, "updated_at = ?"), ", ") + " WHERE id = ?"
		if _, err := tx.ExecContext(ctx, query, append(args, r.store.now(), taskID)...); err != nil {
			return fmt.Errorf("update task %d: %w", taskID, err)
		}
		return nil
	})
	if err != nil {
		return domain.Task{}, err
	}

	return loadTaskGraph(ctx, r.store.DB, taskID)
}

func (r *TaskRepository) DeleteTask(ctx context.Context, taskID uint64) error {
	return r.store.withTx(ctx, func(tx *sqlx.Tx) error {
		return deleteTaskCascade(ctx, tx, taskID)
	})
}

// ReorderTasks overwrites the position of every listed task. Positions are
// taken as given: duplicates and gaps are stored without complaint.
func (r *TaskRepository) ReorderTasks(ctx context.Context, orders []domain.TaskOrder) ([]domain.Task, error) {
	err := r.store.withTx(ctx, func(tx *sqlx.Tx) error {
		if len(orders) == 0 {
			return nil
		}

		ids := make([]uint64, 0, len(orders))
		unique := make(map[uint64]struct{}, len(orders))
		for _, order := range orders {
			if _, seen := unique[order.ID]; seen {
				continue
			}
			unique[order.ID] = struct{}{}
			ids = append(ids, order.ID)
		}

		query, args, err := inClause(tx, `SELECT COUNT(*) FROM tasks WHERE id IN (?)`, ids)
		if err != nil {
			return err
		}
		var found int
		if err := tx.GetContext(ctx, &found, query, args...); err != nil {
			return fmt.Errorf("check reorder targets: %w", err)
		}
		if found != len(ids) {
			return domain.ErrTaskNotFound
		}

		now := r.store.now()
		for _, order := range orders {
			if _, err := tx.ExecContext(ctx,
				`UPDATE tasks SET position = ?, updated_at = ? WHERE id = ?`,
				order.Position, now, order.ID,
			); err != nil {
				return fmt.Errorf("update position of task %d: %w", order.ID, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return listTasks(ctx, r.store.DB)
}

// MoveTask swaps positions with whichever task currently holds the target
// position. Intervening tasks are left alone.
func (r *TaskRepository) MoveTask(ctx context.Context, taskID uint64, position uint64) (domain.Task, error) {
	err := r.store.withTx(ctx, func(tx *sqlx.Tx) error {
		var current struct {
			ID       uint64 `db:"id"`
			Position uint64 `db:"position"`
		}
		if err := tx.GetContext(ctx, &current, `SELECT id, position FROM tasks WHERE id = ?`, taskID); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return domain.ErrTaskNotFound
			}
			return fmt.Errorf("load task %d: %w", taskID, err)
		}

		var occupant struct {
			ID       uint64 `db:"id"`
			Position uint64 `db:"position"`
		}
		err := tx.GetContext(ctx, &occupant, findPositionOccupantQuery, position, taskID)
		switch {
		case errors.Is(err, sql.ErrNoRows):
		case err != nil:
			return fmt.Errorf("find task at position %d: %w", position, err)
		default:
			if _, err := tx.ExecContext(ctx,
				`UPDATE tasks SET position = ?, updated_at = ? WHERE id = ?`,
				current.Position, r.store.now(), occupant.ID,
			); err != nil {
				return fmt.Errorf("swap task %d: %w", occupant.ID, err)
			}
		}

		if _, err := tx.ExecContext(ctx,
			`UPDATE tasks SET position = ?, updated_at = ? WHERE id = ?`,
			position, r.store.now(), taskID,
		); err != nil {
			return fmt.Errorf("move task %d: %w", taskID, err)
		}
		return nil
	})
	if err != nil {
		return domain.Task{}, err
	}

	return loadTaskGraph(ctx, r.store.DB, taskID)
}

func listTasks(ctx context.Context, q sqlx.ExtContext) ([]domain.Task, error) {
	var rows []taskRow
	if err := sqlx.SelectContext(ctx, q, &rows, listTasksQuery); err != nil {
		return nil, err
	}

	tasks := make([]domain.Task, 0, len(rows))
	ids := make([]uint64, 0, len(rows))
	for _, row := range rows {
		task, err := mapTaskRowToDomainTask(row)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
		ids = append(ids, task.ID)
	}

	subtasks, err := subtasksByTask(ctx, q, ids)
	if err != nil {
		return nil, err
	}
	for i := range tasks {
		tasks[i].Subtasks = subtasks[tasks[i].ID]
		if tasks[i].Subtasks == nil {
			tasks[i].Subtasks = []domain.Subtask{}
		}
	}

	return tasks, nil
}

func getTaskRow(ctx context.Context, q sqlx.ExtContext, taskID uint64) (domain.Task, error) {
	var row taskRow
	if err := sqlx.GetContext(ctx, q, &row, getTaskQuery, taskID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Task{}, domain.ErrTaskNotFound
		}
		return domain.Task{}, err
	}
	return mapTaskRowToDomainTask(row)
}

// loadTaskGraph returns a task with its category, its subtasks and every note
// owned by the task or by one of its subtasks.
func loadTaskGraph(ctx context.Context, q sqlx.ExtContext, taskID uint64) (domain.Task, error) {
	task, err := getTaskRow(ctx, q, taskID)
	if err != nil {
		return domain.Task{}, err
	}

	var subtaskRows []subtaskRow
	if err := sqlx.SelectContext(ctx, q, &subtaskRows, `
SELECT id, task_id, title, description, completed, created_at, updated_at
FROM subtasks
WHERE task_id = ?
ORDER BY id ASC`, taskID); err != nil {
		return domain.Task{}, fmt.Errorf("load subtasks of task %d: %w", taskID, err)
	}

	var noteRows []noteRow
	if err := sqlx.SelectContext(ctx, q, &noteRows, `
SELECT id, task_id, subtask_id, content, created_at, updated_at
FROM notes
WHERE task_id = ? OR subtask_id IN (SELECT id FROM subtasks WHERE task_id = ?)
ORDER BY id ASC`, taskID, taskID); err != nil {
		return domain.Task{}, fmt.Errorf("load notes of task %d: %w", taskID, err)
	}

	task.Subtasks = make([]domain.Subtask, 0, len(subtaskRows))
	index := make(map[uint64]int, len(subtaskRows))
	for _, row := range subtaskRows {
		subtask := mapSubtaskRow(row)
		subtask.Notes = []domain.Note{}
		index[subtask.ID] = len(task.Subtasks)
		task.Subtasks = append(task.Subtasks, subtask)
	}

	task.Notes = []domain.Note{}
	for _, row := range noteRows {
		note := mapNoteRow(row)
		if note.SubtaskID == nil {
			task.Notes = append(task.Notes, note)
			continue
		}
		if i, ok := index[*note.SubtaskID]; ok {
			task.Subtasks[i].Notes = append(task.Subtasks[i].Notes, note)
		}
	}

	return task, nil
}

func ensureTaskExists(ctx context.Context, q sqlx.ExtContext, taskID uint64) error {
	var count int
	if err := sqlx.GetContext(ctx, q, &count, `SELECT COUNT(*) FROM tasks WHERE id = ?`, taskID); err != nil {
		return fmt.Errorf("check task %d: %w", taskID, err)
	}
	if count == 0 {
		return domain.ErrTaskNotFound
	}
	return nil
}
