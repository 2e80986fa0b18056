package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

const healthPingTimeout = 2 * time.Second

// HealthHandler reports service readiness
type HealthHandler struct {
	candidateCacheReady func() bool
	pingDB              func(ctx context.Context) error
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(candidateCacheReady func() bool, pingDB func(ctx context.Context) error) *HealthHandler {
	return &HealthHandler{
		candidateCacheReady: candidateCacheReady,
		pingDB:              pingDB,
	}
}

// Healthcheck handles GET /api/healthcheck
func (h *HealthHandler) Healthcheck(c *gin.Context) {
	c.Header("Cache-Control", "no-cache, no-store, max-age=0, must-revalidate")

	if !h.candidateCacheReady() {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "unavailable",
			"reason": "candidate cache not initialized",
		})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), healthPingTimeout)
	defer cancel()
	if err := h.pingDB(ctx); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "unavailable",
			"reason": "database unreachable",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
	})
}
