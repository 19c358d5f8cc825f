package tests

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"tasktracker/internal/adapter/http/dto"
	"tasktracker/internal/adapter/http/handlers"
	"tasktracker/internal/core/domain"
)

func newSubtaskRouter(service *subtaskServiceMock) *gin.Engine {
	handler := handlers.NewSubtaskHandler(service)

	router := newRouter()
	router.GET("/api/tasks/:id/subtasks", handler.ListSubtasks)
	router.POST("/api/tasks/:id/subtasks", handler.CreateSubtask)
	router.PUT("/api/tasks/:id/subtasks/:subtaskId", handler.UpdateSubtask)
	router.DELETE("/api/tasks/:id/subtasks/:subtaskId", handler.DeleteSubtask)
	router.PATCH("/api/tasks/:id/subtasks/:subtaskId/toggle", handler.ToggleSubtask)
	return router
}

func TestSubtaskHandler_ListSubtasks(t *testing.T) {
	service := new(subtaskServiceMock)
	service.On("ListSubtasks", mock.Anything, uint64(1)).Return([]domain.Subtask{
		{ID: 2, TaskID: 1, Title: "draft", Notes: []domain.Note{}},
	}, nil).Once()
	service.On("ListSubtasks", mock.Anything, uint64(5)).Return(nil, domain.ErrTaskNotFound).Once()
	router := newSubtaskRouter(service)

	rec := performRequest(router, http.MethodGet, "/api/tasks/1/subtasks", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var got []dto.SubtaskItem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 1)
	require.Equal(t, "draft", got[0].Title)
	require.NotNil(t, got[0].Notes)
	require.Empty(t, *got[0].Notes)

	rec = performRequest(router, http.MethodGet, "/api/tasks/5/subtasks", "", "")
	requireAPIError(t, rec, http.StatusNotFound, "Task not found")
}

func TestSubtaskHandler_CreateSubtask(t *testing.T) {
	service := new(subtaskServiceMock)
	service.On("CreateSubtask", mock.Anything, uint64(1), domain.CreateSubtaskInput{Title: "review", Completed: true}).
		Return(domain.Subtask{ID: 3, TaskID: 1, Title: "review", Completed: true}, nil).Once()
	router := newSubtaskRouter(service)

	rec := performRequest(router, http.MethodPost, "/api/tasks/1/subtasks", `{"title":" review ","completed":true}`, "")
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = performRequest(router, http.MethodPost, "/api/tasks/1/subtasks", `{"title":"   "}`, "")
	requireAPIError(t, rec, http.StatusBadRequest, "Invalid subtask payload")
	service.AssertNumberOfCalls(t, "CreateSubtask", 1)
}

func TestSubtaskHandler_UpdateSubtask(t *testing.T) {
	service := new(subtaskServiceMock)
	service.On("UpdateSubtask", mock.Anything, uint64(1), uint64(2), mock.MatchedBy(func(input domain.UpdateSubtaskInput) bool {
		return input.Title != nil && *input.Title == "renamed" && input.Completed == nil && !input.DescriptionSet
	})).Return(domain.Subtask{ID: 2, TaskID: 1, Title: "renamed"}, nil).Once()
	router := newSubtaskRouter(service)

	rec := performRequest(router, http.MethodPut, "/api/tasks/1/subtasks/2", `{"title":"renamed"}`, "")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = performRequest(router, http.MethodPut, "/api/tasks/1/subtasks/2", `{}`, "")
	requireAPIError(t, rec, http.StatusBadRequest, "Invalid subtask payload")
	service.AssertExpectations(t)
}

func TestSubtaskHandler_DeleteSubtask(t *testing.T) {
	service := new(subtaskServiceMock)
	service.On("DeleteSubtask", mock.Anything, uint64(1), uint64(2)).Return(nil).Once()
	service.On("DeleteSubtask", mock.Anything, uint64(1), uint64(3)).Return(errors.New("locked")).Once()
	router := newSubtaskRouter(service)

	rec := performRequest(router, http.MethodDelete, "/api/tasks/1/subtasks/2", "", "")
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = performRequest(router, http.MethodDelete, "/api/tasks/1/subtasks/3", "", "")
	requireAPIError(t, rec, http.StatusInternalServerError, "Error deleting the subtask")
}

func TestSubtaskHandler_ToggleSubtask(t *testing.T) {
	service := new(subtaskServiceMock)
	service.On("ToggleSubtask", mock.Anything, uint64(1), uint64(2)).
		Return(domain.Subtask{ID: 2, TaskID: 1, Completed: true}, nil).Once()
	service.On("ToggleSubtask", mock.Anything, uint64(1), uint64(9)).
		Return(domain.Subtask{}, domain.ErrSubtaskNotFound).Once()
	router := newSubtaskRouter(service)

	rec := performRequest(router, http.MethodPatch, "/api/tasks/1/subtasks/2/toggle", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var got dto.SubtaskItem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.True(t, got.Completed)

	rec = performRequest(router, http.MethodPatch, "/api/tasks/1/subtasks/9/toggle", "", "")
	requireAPIError(t, rec, http.StatusNotFound, "Subtask not found")

	rec = performRequest(router, http.MethodPatch, "/api/tasks/1/subtasks/zero/toggle", "", "")
	requireAPIError(t, rec, http.StatusBadRequest, "Invalid id")
	service.AssertExpectations(t)
}
