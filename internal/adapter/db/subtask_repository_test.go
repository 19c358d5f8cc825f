package db

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tasktracker/internal/core/domain"
)

func TestSubtaskRepository_CRUD(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()
	task := createTask(t, NewTaskRepository(store), "Parent")
	repo := NewSubtaskRepository(store)

	created, err := repo.CreateSubtask(ctx, task.ID, domain.CreateSubtaskInput{Title: "Buy milk", Description: ptr("2 litres")})
	require.NoError(t, err)
	assert.Equal(t, task.ID, created.TaskID)
	assert.False(t, created.Completed)

	updated, err := repo.UpdateSubtask(ctx, task.ID, created.ID, domain.UpdateSubtaskInput{
		Title:     ptr("Buy oat milk"),
		Completed: ptr(true),
	})
	require.NoError(t, err)
	assert.Equal(t, "Buy oat milk", updated.Title)
	assert.True(t, updated.Completed)
	assert.Equal(t, "2 litres", *updated.Description)

	list, err := repo.ListSubtasks(ctx, task.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Empty(t, list[0].Notes)

	require.NoError(t, repo.DeleteSubtask(ctx, task.ID, created.ID))
	list, err = repo.ListSubtasks(ctx, task.ID)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestSubtaskRepository_Toggle(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()
	task := createTask(t, NewTaskRepository(store), "Parent")
	repo := NewSubtaskRepository(store)
	subtask, err := repo.CreateSubtask(ctx, task.ID, domain.CreateSubtaskInput{Title: "Flip"})
	require.NoError(t, err)

	toggled, err := repo.ToggleSubtask(ctx, task.ID, subtask.ID)
	require.NoError(t, err)
	assert.True(t, toggled.Completed)

	toggled, err = repo.ToggleSubtask(ctx, task.ID, subtask.ID)
	require.NoError(t, err)
	assert.False(t, toggled.Completed)
}

func TestSubtaskRepository_ScopedToOwningTask(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()
	tasks := NewTaskRepository(store)
	owner := createTask(t, tasks, "Owner")
	other := createTask(t, tasks, "Other")
	repo := NewSubtaskRepository(store)
	subtask, err := repo.CreateSubtask(ctx, owner.ID, domain.CreateSubtaskInput{Title: "Mine"})
	require.NoError(t, err)

	_, err = repo.ToggleSubtask(ctx, other.ID, subtask.ID)
	require.ErrorIs(t, err, domain.ErrSubtaskNotFound)
	require.ErrorIs(t, repo.DeleteSubtask(ctx, other.ID, subtask.ID), domain.ErrSubtaskNotFound)
}

func TestSubtaskRepository_MissingTask(t *testing.T) {
	repo := NewSubtaskRepository(setupStore(t))

	_, err := repo.CreateSubtask(context.Background(), 99, domain.CreateSubtaskInput{Title: "x"})
	require.ErrorIs(t, err, domain.ErrTaskNotFound)
	_, err = repo.ListSubtasks(context.Background(), 99)
	require.ErrorIs(t, err, domain.ErrTaskNotFound)
}

func TestSubtaskRepository_DeleteRemovesItsNotes(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()
	fixture := seedTaskTree(t, store, "Tree")
	repo := NewSubtaskRepository(store)

	require.NoError(t, repo.DeleteSubtask(ctx, fixture.task.ID, fixture.subtasks[0].ID))

	assert.Zero(t, countRows(t, store, `SELECT COUNT(*) FROM notes WHERE subtask_id = ?`, fixture.subtasks[0].ID))
	assert.Equal(t, 1, countRows(t, store, `SELECT COUNT(*) FROM notes WHERE subtask_id = ?`, fixture.subtasks[1].ID))
	assert.Equal(t, 1, countRows(t, store, `SELECT COUNT(*) FROM notes WHERE task_id = ? AND subtask_id IS NULL`, fixture.task.ID))
}
