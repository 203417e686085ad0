package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/artjalyuzi/admin-panel/src/gateway"
	"github.com/gin-gonic/gin"
)

var startTime = time.Now()

// HealthHandler reports panel liveness and upstream reachability.
type HealthHandler struct {
	client *gateway.Client
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(client *gateway.Client) *HealthHandler {
	return &HealthHandler{client: client}
}

// HandleHealth answers uptime probes. The panel is degraded but still
// serving when the upstream API is unreachable, so that case stays a
// 200 with a flag rather than a 503.
func (h *HealthHandler) HandleHealth(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	upstream := "reachable"
	start := time.Now()
	if err := h.client.Ping(ctx); err != nil {
		upstream = "unreachable"
	}

	c.JSON(http.StatusOK, gin.H{
		"status":           "ok",
		"upstream":         upstream,
		"upstream_latency": time.Since(start).String(),
		"uptime":           time.Since(startTime).String(),
	})
}
