// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// StorageHealthChecker reports whether the configured store is reachable.
type StorageHealthChecker func(ctx context.Context) bool

// HealthController handles health check endpoints.
type HealthController struct {
	backend        string
	storageChecker StorageHealthChecker
	now            func() time.Time
}

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status    string `json:"status"`
	Backend   string `json:"backend"`
	Storage   string `json:"storage"`
	Timestamp string `json:"timestamp"`
}

// NewHealthController creates a new health controller instance.
func NewHealthController(backend string, storageChecker StorageHealthChecker) *HealthController {
	return &HealthController{
		backend:        backend,
		storageChecker: storageChecker,
		now:            time.Now,
	}
}

// Check handles GET /health requests.
// It returns the current health status of the API and its store.
func (h *HealthController) Check(c *gin.Context) {
	status := "ok"
	storageStatus := "disconnected"
	if h.storageChecker != nil && h.storageChecker(c.Request.Context()) {
		storageStatus = "connected"
	} else {
		status = "degraded"
	}

	response := HealthResponse{
		Status:    status,
		Backend:   h.backend,
		Storage:   storageStatus,
		Timestamp: h.now().UTC().Format(time.RFC3339),
	}

	c.JSON(http.StatusOK, response)
}
