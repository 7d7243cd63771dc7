// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// healthCheckTimeout bounds each dependency probe.
const healthCheckTimeout = 2 * time.Second

// Pinger reports whether a backing service is reachable.
type Pinger func(ctx context.Context) error

// HealthController handles health check endpoints.
type HealthController struct {
	database Pinger
	sessions Pinger
}

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status    string `json:"status"`
	Database  string `json:"database"`
	Sessions  string `json:"sessions"`
	Timestamp string `json:"timestamp"`
}

func NewHealthController(database, sessions Pinger) *HealthController {
	return &HealthController{database: database, sessions: sessions}
}

// Check handles GET /health.
// It answers 503 when either the database or the session store is unreachable.
func (h *HealthController) Check(c *gin.Context) {
	response := HealthResponse{
		Status:    "ok",
		Database:  probe(c.Request.Context(), h.database),
		Sessions:  probe(c.Request.Context(), h.sessions),
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}

	status := http.StatusOK
	if response.Database != "connected" || response.Sessions != "connected" {
		response.Status = "degraded"
		status = http.StatusServiceUnavailable
	}

	c.JSON(status, response)
}

func probe(ctx context.Context, ping Pinger) string {
	if ping == nil {
		return "disconnected"
	}
	ctx, cancel := context.WithTimeout(ctx, healthCheckTimeout)
	defer cancel()
	if err := ping(ctx); err != nil {
		return "disconnected"
	}
	return "connected"
}
