package service

import (
	"context"

	"github.com/stretchr/testify/mock"

	"tasktracker/internal/core/domain"
)

type taskRepositoryMock struct {
	mock.Mock
}

func (m *taskRepositoryMock) ListTasks(ctx context.Context) ([]domain.Task, error) {
	args := m.Called(ctx)

	var tasks []domain.Task
	if value := args.Get(0); value != nil {
		tasks = value.([]domain.Task)
	}
	return tasks, args.Error(1)
}

func (m *taskRepositoryMock) GetTask(ctx context.Context, taskID uint64) (domain.Task, error) {
	args := m.Called(ctx, taskID)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskRepositoryMock) CreateTask(ctx context.Context, input domain.CreateTaskInput) (domain.Task, error) {
	args := m.Called(ctx, input)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskRepositoryMock) UpdateTask(ctx context.Context, taskID uint64, input domain.UpdateTaskInput) (domain.Task, error) {
	args := m.Called(ctx, taskID, input)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskRepositoryMock) DeleteTask(ctx context.Context, taskID uint64) error {
	return m.Called(ctx, taskID).Error(0)
}

func (m *taskRepositoryMock) ReorderTasks(ctx context.Context, orders []domain.TaskOrder) ([]domain.Task, error) {
	args := m.Called(ctx, orders)

	var tasks []domain.Task
	if value := args.Get(0); value != nil {
		tasks = value.([]domain.Task)
	}
	return tasks, args.Error(1)
}

func (m *taskRepositoryMock) MoveTask(ctx context.Context, taskID uint64, position uint64) (domain.Task, error) {
	args := m.Called(ctx, taskID, position)
	return args.Get(0).(domain.Task), args.Error(1)
}

type subtaskRepositoryMock struct {
	mock.Mock
}

func (m *subtaskRepositoryMock) ListSubtasks(ctx context.Context, taskID uint64) ([]domain.Subtask, error) {
	args := m.Called(ctx, taskID)

	var subtasks []domain.Subtask
	if value := args.Get(0); value != nil {
		subtasks = value.([]domain.Subtask)
	}
	return subtasks, args.Error(1)
}

func (m *subtaskRepositoryMock) GetSubtask(ctx context.Context, taskID, subtaskID uint64) (domain.Subtask, error) {
	args := m.Called(ctx, taskID, subtaskID)
	return args.Get(0).(domain.Subtask), args.Error(1)
}

func (m *subtaskRepositoryMock) CreateSubtask(ctx context.Context, taskID uint64, input domain.CreateSubtaskInput) (domain.Subtask, error) {
	args := m.Called(ctx, taskID, input)
	return args.Get(0).(domain.Subtask), args.Error(1)
}

func (m *subtaskRepositoryMock) UpdateSubtask(ctx context.Context, taskID, subtaskID uint64, input domain.UpdateSubtaskInput) (domain.Subtask, error) {
	args := m.Called(ctx, taskID, subtaskID, input)
	return args.Get(0).(domain.Subtask), args.Error(1)
}

func (m *subtaskRepositoryMock) DeleteSubtask(ctx context.Context, taskID, subtaskID uint64) error {
	return m.Called(ctx, taskID, subtaskID).Error(0)
}

func (m *subtaskRepositoryMock) ToggleSubtask(ctx context.Context, taskID, subtaskID uint64) (domain.Subtask, error) {
	args := m.Called(ctx, taskID, subtaskID)
	return args.Get(0).(domain.Subtask), args.Error(1)
}

type noteRepositoryMock struct {
	mock.Mock
}

func (m *noteRepositoryMock) ListTaskNotes(ctx context.Context, taskID uint64) ([]domain.Note, error) {
	args := m.Called(ctx, taskID)

	var notes []domain.Note
	if value := args.Get(0); value != nil {
		notes = value.([]domain.Note)
	}
	return notes, args.Error(1)
}

func (m *noteRepositoryMock) ListSubtaskNotes(ctx context.Context, subtaskID uint64) ([]domain.Note, error) {
	args := m.Called(ctx, subtaskID)

	var notes []domain.Note
	if value := args.Get(0); value != nil {
		notes = value.([]domain.Note)
	}
	return notes, args.Error(1)
}

func (m *noteRepositoryMock) CreateNote(ctx context.Context, taskID uint64, subtaskID *uint64, content *string) (domain.Note, error) {
	args := m.Called(ctx, taskID, subtaskID, content)
	return args.Get(0).(domain.Note), args.Error(1)
}

func (m *noteRepositoryMock) UpdateNote(ctx context.Context, noteID uint64, content *string) (domain.Note, error) {
	args := m.Called(ctx, noteID, content)
	return args.Get(0).(domain.Note), args.Error(1)
}

func (m *noteRepositoryMock) DeleteNote(ctx context.Context, noteID uint64) error {
	return m.Called(ctx, noteID).Error(0)
}

type categoryRepositoryMock struct {
	mock.Mock
}

func (m *categoryRepositoryMock) ListCategories(ctx context.Context) ([]domain.Category, error) {
	args := m.Called(ctx)

	var categories []domain.Category
	if value := args.Get(0); value != nil {
		categories = value.([]domain.Category)
	}
	return categories, args.Error(1)
}

func (m *categoryRepositoryMock) GetCategory(ctx context.Context, categoryID uint64) (domain.Category, error) {
	args := m.Called(ctx, categoryID)
	return args.Get(0).(domain.Category), args.Error(1)
}

func (m *categoryRepositoryMock) CreateCategory(ctx context.Context, input domain.CreateCategoryInput) (domain.Category, error) {
	args := m.Called(ctx, input)
	return args.Get(0).(domain.Category), args.Error(1)
}

func (m *categoryRepositoryMock) UpdateCategory(ctx context.Context, categoryID uint64, input domain.UpdateCategoryInput) (domain.Category, error) {
	args := m.Called(ctx, categoryID, input)
	return args.Get(0).(domain.Category), args.Error(1)
}

func (m *categoryRepositoryMock) DeleteCategory(ctx context.Context, categoryID uint64) error {
	return m.Called(ctx, categoryID).Error(0)
}

func (m *categoryRepositoryMock) CountCategories(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

type settingsRepositoryMock struct {
	mock.Mock
}

func (m *settingsRepositoryMock) ClearAll(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func ptr[T any](value T) *T {
	return &value
}
