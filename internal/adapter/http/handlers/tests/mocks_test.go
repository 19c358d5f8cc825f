package tests

import (
	"context"

	"github.com/stretchr/testify/mock"

	"tasktracker/internal/core/domain"
)

type taskServiceMock struct {
	mock.Mock
}

func (m *taskServiceMock) ListTasks(ctx context.Context) ([]domain.Task, error) {
	args := m.Called(ctx)
	return tasksArg(args, 0), args.Error(1)
}

func (m *taskServiceMock) GetTask(ctx context.Context, taskID uint64) (domain.Task, error) {
	args := m.Called(ctx, taskID)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskServiceMock) CreateTask(ctx context.Context, input domain.CreateTaskInput) (domain.Task, error) {
	args := m.Called(ctx, input)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskServiceMock) UpdateTask(ctx context.Context, taskID uint64, input domain.UpdateTaskInput) (domain.Task, error) {
	args := m.Called(ctx, taskID, input)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskServiceMock) DeleteTask(ctx context.Context, taskID uint64) error {
	return m.Called(ctx, taskID).Error(0)
}

func (m *taskServiceMock) ReorderTasks(ctx context.Context, orders []domain.TaskOrder) ([]domain.Task, error) {
	args := m.Called(ctx, orders)
	return tasksArg(args, 0), args.Error(1)
}

func (m *taskServiceMock) MoveTask(ctx context.Context, taskID uint64, position uint64) (domain.Task, error) {
	args := m.Called(ctx, taskID, position)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskServiceMock) TaskStats(ctx context.Context) (domain.TaskStats, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.TaskStats), args.Error(1)
}

type taskExporterMock struct {
	mock.Mock
}

func (m *taskExporterMock) ExportTasks(tasks []domain.Task) ([]byte, error) {
	args := m.Called(tasks)
	var content []byte
	if value := args.Get(0); value != nil {
		content = value.([]byte)
	}
	return content, args.Error(1)
}

type subtaskServiceMock struct {
	mock.Mock
}

func (m *subtaskServiceMock) ListSubtasks(ctx context.Context, taskID uint64) ([]domain.Subtask, error) {
	args := m.Called(ctx, taskID)
	var subtasks []domain.Subtask
	if value := args.Get(0); value != nil {
		subtasks = value.([]domain.Subtask)
	}
	return subtasks, args.Error(1)
}

func (m *subtaskServiceMock) CreateSubtask(ctx context.Context, taskID uint64, input domain.CreateSubtaskInput) (domain.Subtask, error) {
	args := m.Called(ctx, taskID, input)
	return args.Get(0).(domain.Subtask), args.Error(1)
}

func (m *subtaskServiceMock) UpdateSubtask(ctx context.Context, taskID, subtaskID uint64, input domain.UpdateSubtaskInput) (domain.Subtask, error) {
	args := m.Called(ctx, taskID, subtaskID, input)
	return args.Get(0).(domain.Subtask), args.Error(1)
}

func (m *subtaskServiceMock) DeleteSubtask(ctx context.Context, taskID, subtaskID uint64) error {
	return m.Called(ctx, taskID, subtaskID).Error(0)
}

func (m *subtaskServiceMock) ToggleSubtask(ctx context.Context, taskID, subtaskID uint64) (domain.Subtask, error) {
	args := m.Called(ctx, taskID, subtaskID)
	return args.Get(0).(domain.Subtask), args.Error(1)
}

type noteServiceMock struct {
	mock.Mock
}

func (m *noteServiceMock) ListTaskNotes(ctx context.Context, taskID uint64) ([]domain.Note, error) {
	args := m.Called(ctx, taskID)
	return notesArg(args, 0), args.Error(1)
}

func (m *noteServiceMock) ListSubtaskNotes(ctx context.Context, subtaskID uint64) ([]domain.Note, error) {
	args := m.Called(ctx, subtaskID)
	return notesArg(args, 0), args.Error(1)
}

func (m *noteServiceMock) CreateTaskNote(ctx context.Context, taskID uint64, content *string) (domain.Note, error) {
	args := m.Called(ctx, taskID, content)
	return args.Get(0).(domain.Note), args.Error(1)
}

func (m *noteServiceMock) CreateSubtaskNote(ctx context.Context, taskID, subtaskID uint64, content *string) (domain.Note, error) {
	args := m.Called(ctx, taskID, subtaskID, content)
	return args.Get(0).(domain.Note), args.Error(1)
}

func (m *noteServiceMock) UpdateNote(ctx context.Context, noteID uint64, content *string) (domain.Note, error) {
	args := m.Called(ctx, noteID, content)
	return args.Get(0).(domain.Note), args.Error(1)
}

func (m *noteServiceMock) DeleteNote(ctx context.Context, noteID uint64) error {
	return m.Called(ctx, noteID).Error(0)
}

type categoryServiceMock struct {
	mock.Mock
}

func (m *categoryServiceMock) ListCategories(ctx context.Context) ([]domain.Category, error) {
	args := m.Called(ctx)
	var categories []domain.Category
	if value := args.Get(0); value != nil {
		categories = value.([]domain.Category)
	}
	return categories, args.Error(1)
}

func (m *categoryServiceMock) GetCategory(ctx context.Context, categoryID uint64) (domain.Category, error) {
	args := m.Called(ctx, categoryID)
	return args.Get(0).(domain.Category), args.Error(1)
}

func (m *categoryServiceMock) CreateCategory(ctx context.Context, input domain.CreateCategoryInput) (domain.Category, error) {
	args := m.Called(ctx, input)
	return args.Get(0).(domain.Category), args.Error(1)
}

func (m *categoryServiceMock) UpdateCategory(ctx context.Context, categoryID uint64, input domain.UpdateCategoryInput) (domain.Category, error) {
	args := m.Called(ctx, categoryID, input)
	return args.Get(0).(domain.Category), args.Error(1)
}

func (m *categoryServiceMock) DeleteCategory(ctx context.Context, categoryID uint64) error {
	return m.Called(ctx, categoryID).Error(0)
}

func (m *categoryServiceMock) SeedDefaults(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

type settingsServiceMock struct {
	mock.Mock
}

func (m *settingsServiceMock) ClearAll(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func tasksArg(args mock.Arguments, index int) []domain.Task {
	var tasks []domain.Task
	if value := args.Get(index); value != nil {
		tasks = value.([]domain.Task)
	}
	return tasks
}

func notesArg(args mock.Arguments, index int) []domain.Note {
	var notes []domain.Note
	if value := args.Get(index); value != nil {
		notes = value.([]domain.Note)
	}
	return notes
}
