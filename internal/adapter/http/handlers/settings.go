package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tasktracker/internal/adapter/http/dto"
	"tasktracker/internal/adapter/http/middleware"
	"tasktracker/internal/core/ports"
	"tasktracker/pkg/apierrors"
)

type SettingsHandler struct {
	settingsService ports.SettingsService
}

func NewSettingsHandler(settingsService ports.SettingsService) *SettingsHandler {
	return &SettingsHandler{settingsService: settingsService}
}

func (h *SettingsHandler) ClearData(c *gin.Context) {
	if err := h.settingsService.ClearAll(c.Request.Context()); err != nil {
		writeServiceError(c, err, apierrors.MsgFailClearData, "failed to clear data")
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{
		Message: apierrors.GetTransErrorMsg(apierrors.MsgDataCleared, middleware.GetLang(c)),
	})
}
