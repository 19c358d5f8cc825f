package db

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// deleteTaskCascade removes a task together with its task notes, its subtask
// notes and its subtasks, in that order. It must run inside a transaction:
// the schema declares no ON DELETE CASCADE for these relations, so a failure
// half way leaves the caller to roll back.
func deleteTaskCascade(ctx context.Context, tx sqlx.ExtContext, taskID uint64) error {
	task, err := loadTaskGraph(ctx, tx, taskID)
	if err != nil {
		return err
	}

	if len(task.Notes) > 0 {
		if _, err := tx.ExecContext(ctx,
			`DELETE FROM notes WHERE task_id = ? AND subtask_id IS NULL`, taskID,
		); err != nil {
			return fmt.Errorf("delete notes of task %d: %w", taskID, err)
		}
	}

	for _, subtask := range task.Subtasks {
		if len(subtask.Notes) == 0 {
			continue
		}
		if _, err := tx.ExecContext(ctx,
			`DELETE FROM notes WHERE subtask_id = ?`, subtask.ID,
		); err != nil {
			return fmt.Errorf("delete notes of subtask %d: %w", subtask.ID, err)
		}
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM subtasks WHERE task_id = ?`, taskID); err != nil {
		return fmt.Errorf("delete subtasks of task %d: %w", taskID, err)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM tasks WHERE id = ?`, taskID); err != nil {
		return fmt.Errorf("delete task %d: %w", taskID, err)
	}

	return nil
}

// deleteSubtaskCascade removes one subtask and the notes attached to it.
func deleteSubtaskCascade(ctx context.Context, tx sqlx.ExtContext, subtaskID uint64) error {
	if _, err := tx.ExecContext(ctx, `DELETE FROM notes WHERE subtask_id = ?`, subtaskID); err != nil {
		return fmt.Errorf("delete notes of subtask %d: %w", subtaskID, err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM subtasks WHERE id = ?`, subtaskID); err != nil {
		return fmt.Errorf("delete subtask %d: %w", subtaskID, err)
	}
	return nil
}
