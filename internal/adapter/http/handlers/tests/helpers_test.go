package tests

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"tasktracker/internal/adapter/http/middleware"
	"tasktracker/pkg/apierrors"
	"tasktracker/pkg/translator"
)

func newRouter() *gin.Engine {
	router := gin.New()
	router.Use(middleware.RequestIDMiddleware(), middleware.LanguageMiddleware())
	return router
}

func performRequest(router *gin.Engine, method, path, body, lang string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if lang == "" {
		lang = translator.LanguageEn
	}
	req.Header.Set("Accept-Language", lang)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func requireAPIError(t *testing.T, rec *httptest.ResponseRecorder, status int, message string) {
	t.Helper()

	require.Equal(t, status, rec.Code)
	var got apierrors.JsonErr
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, status, got.ErrDetails.Code)
	require.Equal(t, message, got.ErrDetails.Message)
}

func ptr[T any](value T) *T {
	return &value
}
