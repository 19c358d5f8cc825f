package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"tasktracker/internal/adapter/http/middleware"
	"tasktracker/internal/adapter/http/validation"
	"tasktracker/internal/core/domain"
	"tasktracker/pkg/apierrors"
)

const maxBodyBytes = 1 << 20

type errorMapping struct {
	target error
	status int
	msgKey string
}

// Domain errors that reach the client as 4xx. Anything else is a 500.
var clientErrors = []errorMapping{
	{domain.ErrTaskNotFound, http.StatusNotFound, apierrors.MsgTaskNotFound},
	{domain.ErrSubtaskNotFound, http.StatusNotFound, apierrors.MsgSubtaskNotFound},
	{domain.ErrNoteNotFound, http.StatusNotFound, apierrors.MsgNoteNotFound},
	{domain.ErrCategoryNotFound, http.StatusNotFound, apierrors.MsgCategoryNotFound},
	{domain.ErrCategoryNameTaken, http.StatusConflict, apierrors.MsgCategoryNameTaken},
	{domain.ErrInvalidTask, http.StatusBadRequest, apierrors.MsgInvalidTaskPayload},
	{domain.ErrInvalidSubtask, http.StatusBadRequest, apierrors.MsgInvalidSubtaskPayload},
	{domain.ErrInvalidCategory, http.StatusBadRequest, apierrors.MsgInvalidCategoryPayload},
	{domain.ErrInvalidPosition, http.StatusBadRequest, apierrors.MsgInvalidPosition},
}

func writeError(c *gin.Context, status int, msgKey string) {
	c.JSON(status, apierrors.CreateError(status, msgKey, middleware.GetLang(c)))
}

// writeServiceError maps err onto a translated error response. Unknown errors
// are logged and reported with failMsg.
func writeServiceError(c *gin.Context, err error, failMsg string, logMsg string, fields ...zap.Field) {
	for _, mapping := range clientErrors {
		if errors.Is(err, mapping.target) {
			writeError(c, mapping.status, mapping.msgKey)
			return
		}
	}

	fields = append(fields, zap.String("request_id", middleware.GetRequestID(c)), zap.Error(err))
	zap.L().Error(logMsg, fields...)
	_ = c.Error(err)
	writeError(c, http.StatusInternalServerError, failMsg)
}

// parseID reads a positive integer path parameter.
func parseID(c *gin.Context, name string) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		writeError(c, http.StatusBadRequest, apierrors.MsgInvalidID)
		return 0, false
	}
	return id, true
}

// decodeBody reads the JSON object body into req and returns its raw fields.
// An empty body reads as {}.
func decodeBody(c *gin.Context, req any) (map[string]json.RawMessage, error) {
	body, err := io.ReadAll(io.LimitReader(c.Request.Body, maxBodyBytes))
	if err != nil {
		return nil, err
	}
	if len(bytes.TrimSpace(body)) == 0 {
		return map[string]json.RawMessage{}, nil
	}
	return validation.DecodeBody(body, req)
}
