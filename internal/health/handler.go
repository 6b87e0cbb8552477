// Package health provides health check endpoint handler.
package health

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/festy23/team_recruitment/internal/database/database"
)

const checkTimeout = 5 * time.Second

// Handler handles health check requests.
type Handler struct {
	db     *gorm.DB
	redis  *redis.Client
	logger *zap.SugaredLogger
}

// New creates a new health handler instance. rdb may be nil when the
// Redis event publisher is disabled.
func New(db *gorm.DB, rdb *redis.Client, logger *zap.SugaredLogger) *Handler {
	return &Handler{
		db:     db,
		redis:  rdb,
		logger: logger,
	}
}

// Response represents health check response.
type Response struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks,omitempty"`
}

// Check handles GET /health request.
func (h *Handler) Check(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), checkTimeout)
	defer cancel()

	checks := map[string]string{"database": "ok"}
	healthy := true

	if err := database.HealthCheck(ctx, h.db); err != nil {
		h.logger.Warnw("database health check failed", "error", err)
		checks["database"] = "unavailable"
		healthy = false
	}

	if h.redis != nil {
		checks["redis"] = "ok"
		if err := h.redis.Ping(ctx).Err(); err != nil {
			h.logger.Warnw("redis health check failed", "error", err)
			checks["redis"] = "unavailable"
			healthy = false
		}
	}

	if !healthy {
		c.JSON(http.StatusServiceUnavailable, Response{Status: "unhealthy", Checks: checks})
		return
	}
	c.JSON(http.StatusOK, Response{Status: "ok", Checks: checks})
}
