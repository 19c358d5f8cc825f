package http

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"tasktracker/internal/adapter/http/middleware"
)

// NewRouter builds the gin engine with the shared middleware chain and every
// API route registered.
func NewRouter(logger *zap.Logger, trustedProxies []string, h Handlers) (*gin.Engine, error) {
	r := gin.New()
	if err := r.SetTrustedProxies(trustedProxies); err != nil {
		return nil, err
	}
	r.Use(gin.Recovery(), middleware.RequestIDMiddleware(), middleware.GinZapMiddleware(logger))

	RegisterRoutes(r, h)
	return r, nil
}
