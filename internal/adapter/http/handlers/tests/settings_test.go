package tests

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"tasktracker/internal/adapter/http/dto"
	"tasktracker/internal/adapter/http/handlers"
	"tasktracker/pkg/translator"
)

func TestSettingsHandler_ClearData(t *testing.T) {
	service := new(settingsServiceMock)
	service.On("ClearAll", mock.Anything).Return(nil).Twice()
	handler := handlers.NewSettingsHandler(service)

	router := newRouter()
	router.POST("/api/settings/clear-data", handler.ClearData)

	rec := performRequest(router, http.MethodPost, "/api/settings/clear-data", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var got dto.MessageResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "All data has been cleared", got.Message)

	rec = performRequest(router, http.MethodPost, "/api/settings/clear-data", "", translator.LanguageFr)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.NotEqual(t, "All data has been cleared", got.Message)
	service.AssertExpectations(t)
}

func TestSettingsHandler_ClearData_Failure(t *testing.T) {
	service := new(settingsServiceMock)
	service.On("ClearAll", mock.Anything).Return(errors.New("rollback")).Once()
	handler := handlers.NewSettingsHandler(service)

	router := newRouter()
	router.POST("/api/settings/clear-data", handler.ClearData)

	rec := performRequest(router, http.MethodPost, "/api/settings/clear-data", "", "")

	requireAPIError(t, rec, http.StatusInternalServerError, "Error clearing the data")
}
