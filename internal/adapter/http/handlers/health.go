package handlers

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"

	"tasktracker/internal/adapter/http/middleware"
)

const (
	StatusOk        = "ok"
	StatusDown      = "down"
	healthDBTimeout = 2 * time.Second
)

type HealthBasic struct {
	AppName           string `json:"appName"`
	AppVersion        string `json:"appVersion"`
	CurrentSystemTime string `json:"currentSystemTime"`
	Message           string `json:"message"`
}

type HealthServices struct {
	Database string `json:"database"`
	Driver   string `json:"driver"`
}

type HealthAdvanced struct {
	AppName           string         `json:"appName"`
	AppVersion        string         `json:"appVersion"`
	CurrentSystemTime string         `json:"currentSystemTime"`
	Language          string         `json:"language"`
	Status            HealthServices `json:"status"`
}

type HealthHandler struct {
	db     *sqlx.DB
	driver string
}

func NewHealthHandler(db *sqlx.DB, driver string) *HealthHandler {
	return &HealthHandler{db: db, driver: driver}
}

func (h *HealthHandler) CheckHealth(c *gin.Context) {
	statusCode := http.StatusOK
	message := StatusOk

	if !h.checkConnectionToDatabase(c.Request.Context()) {
		statusCode = http.StatusServiceUnavailable
		message = StatusDown
	}

	c.JSON(statusCode, HealthBasic{
		AppName:           getAppName(),
		AppVersion:        getAppVersion(),
		CurrentSystemTime: time.Now().UTC().Format(time.RFC3339),
		Message:           message,
	})
}

func (h *HealthHandler) CheckHealthReport(c *gin.Context) {
	databaseStatus := StatusDown
	if h.checkConnectionToDatabase(c.Request.Context()) {
		databaseStatus = StatusOk
	}

	c.JSON(http.StatusOK, HealthAdvanced{
		AppName:           getAppName(),
		AppVersion:        getAppVersion(),
		CurrentSystemTime: time.Now().UTC().Format(time.RFC3339),
		Language:          middleware.GetLang(c),
		Status: HealthServices{
			Database: databaseStatus,
			Driver:   h.driver,
		},
	})
}

func (h *HealthHandler) checkConnectionToDatabase(ctx context.Context) bool {
	if h.db == nil {
		return false
	}
	timeoutCtx, cancel := context.WithTimeout(ctx, healthDBTimeout)
	defer cancel()
	return h.db.PingContext(timeoutCtx) == nil
}

func getAppName() string {
	name := os.Getenv("APP_NAME")
	if name == "" {
		return "tasktracker"
	}
	return name
}

func getAppVersion() string {
	version := os.Getenv("APP_VERSION")
	if version == "" {
		return "dev"
	}
	return version
}
