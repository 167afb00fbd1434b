package handler

import (
	"context"
	"net/http"

	"github.com/amirhossein-jamali/user-leveling/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// Pinger reports whether a dependency is reachable
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler serves the liveness endpoint
type HealthHandler struct {
	db Pinger
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(db Pinger) *HealthHandler {
	return &HealthHandler{db: db}
}

// Health handles the GET /health endpoint
func (h *HealthHandler) Health(c *gin.Context) {
	if err := h.db.Ping(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, dto.HealthResponse{
			Status:   "unavailable",
			Database: "down",
			Error:    err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, dto.HealthResponse{
		Status:   "ok",
		Database: "up",
	})
}
