package db

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tasktracker/internal/core/domain"
)

type taskFixture struct {
	task     domain.Task
	subtasks []domain.Subtask
	notes    []domain.Note
}

// seedTaskTree creates a task with two subtasks, one task note and one note on
// each subtask.
func seedTaskTree(t *testing.T, store *Store, title string) taskFixture {
	t.Helper()
	ctx := context.Background()

	tasks := NewTaskRepository(store)
	subtasks := NewSubtaskRepository(store)
	notes := NewNoteRepository(store)

	fixture := taskFixture{task: createTask(t, tasks, title)}
	for _, name := range []string{"first step", "second step"} {
		subtask, err := subtasks.CreateSubtask(ctx, fixture.task.ID, domain.CreateSubtaskInput{Title: name})
		require.NoError(t, err)
		fixture.subtasks = append(fixture.subtasks, subtask)
	}

	note, err := notes.CreateNote(ctx, fixture.task.ID, nil, ptr("task note"))
	require.NoError(t, err)
	fixture.notes = append(fixture.notes, note)

	for _, subtask := range fixture.subtasks {
		note, err := notes.CreateNote(ctx, fixture.task.ID, &subtask.ID, ptr("note on "+subtask.Title))
		require.NoError(t, err)
		fixture.notes = append(fixture.notes, note)
	}

	return fixture
}

func TestLoadTaskGraph_SplitsTaskAndSubtaskNotes(t *testing.T) {
	store := setupStore(t)
	fixture := seedTaskTree(t, store, "Tree")

	task, err := NewTaskRepository(store).GetTask(context.Background(), fixture.task.ID)
	require.NoError(t, err)

	require.Len(t, task.Notes, 1)
	assert.Equal(t, "task note", *task.Notes[0].Content)
	require.Len(t, task.Subtasks, 2)
	for _, subtask := range task.Subtasks {
		require.Len(t, subtask.Notes, 1)
		require.NotNil(t, subtask.Notes[0].SubtaskID)
		assert.Equal(t, subtask.ID, *subtask.Notes[0].SubtaskID)
	}
}

func TestDeleteTask_RemovesWholeTree(t *testing.T) {
	store := setupStore(t)
	repo := NewTaskRepository(store)
	fixture := seedTaskTree(t, store, "Doomed")

	require.NoError(t, repo.DeleteTask(context.Background(), fixture.task.ID))

	_, err := repo.GetTask(context.Background(), fixture.task.ID)
	require.ErrorIs(t, err, domain.ErrTaskNotFound)
	assert.Zero(t, countRows(t, store, `SELECT COUNT(*) FROM subtasks WHERE task_id = ?`, fixture.task.ID))
	assert.Zero(t, countRows(t, store, `SELECT COUNT(*) FROM notes WHERE task_id = ?`, fixture.task.ID))
	for _, subtask := range fixture.subtasks {
		_, err := NewSubtaskRepository(store).GetSubtask(context.Background(), fixture.task.ID, subtask.ID)
		require.ErrorIs(t, err, domain.ErrSubtaskNotFound)
	}
	for _, note := range fixture.notes {
		_, err := getNote(context.Background(), store.DB, note.ID)
		require.ErrorIs(t, err, domain.ErrNoteNotFound)
	}
}

func TestDeleteTask_LeavesOtherTasksAlone(t *testing.T) {
	store := setupStore(t)
	repo := NewTaskRepository(store)
	doomed := seedTaskTree(t, store, "Doomed")
	kept := seedTaskTree(t, store, "Kept")

	require.NoError(t, repo.DeleteTask(context.Background(), doomed.task.ID))

	task, err := repo.GetTask(context.Background(), kept.task.ID)
	require.NoError(t, err)
	assert.Len(t, task.Subtasks, 2)
	assert.Len(t, task.Notes, 1)
	assert.Equal(t, 3, countRows(t, store, `SELECT COUNT(*) FROM notes WHERE task_id = ?`, kept.task.ID))
}

func TestDeleteTask_TaskWithoutChildren(t *testing.T) {
	store := setupStore(t)
	repo := NewTaskRepository(store)
	task := createTask(t, repo, "Lonely")

	require.NoError(t, repo.DeleteTask(context.Background(), task.ID))
	assert.Zero(t, countRows(t, store, `SELECT COUNT(*) FROM tasks`))
}

func TestDeleteTask_NotFound(t *testing.T) {
	repo := NewTaskRepository(setupStore(t))

	require.ErrorIs(t, repo.DeleteTask(context.Background(), 12345), domain.ErrTaskNotFound)
}

func TestDeleteTask_FailureKeepsEverything(t *testing.T) {
	store := setupStore(t)
	repo := NewTaskRepository(store)
	fixture := seedTaskTree(t, store, "Guarded")

	// Abort the final step so every earlier delete has to be undone.
	_, err := store.DB.Exec(`
CREATE TRIGGER block_task_delete BEFORE DELETE ON tasks
BEGIN
  SELECT RAISE(ABORT, 'task delete blocked');
END`)
	require.NoError(t, err)

	err = repo.DeleteTask(context.Background(), fixture.task.ID)
	require.Error(t, err)
	require.NotErrorIs(t, err, domain.ErrTaskNotFound)

	task, err := repo.GetTask(context.Background(), fixture.task.ID)
	require.NoError(t, err)
	assert.Len(t, task.Subtasks, 2)
	assert.Len(t, task.Notes, 1)
	assert.Equal(t, len(fixture.notes), countRows(t, store, `SELECT COUNT(*) FROM notes`))
}
