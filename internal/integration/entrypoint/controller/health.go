// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// HealthController reports liveness of the API and its database.
type HealthController struct {
	pingDB func() error
}

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status    string `json:"status"`
	Database  string `json:"database"`
	Timestamp string `json:"timestamp"`
}

// NewHealthController creates a new health controller instance. pingDB is
// called on every check and should round-trip to the database.
func NewHealthController(pingDB func() error) *HealthController {
	return &HealthController{pingDB: pingDB}
}

// Check handles GET /health requests. A failing database ping degrades the
// response to 503 so a process supervisor can act on it.
func (h *HealthController) Check(c *gin.Context) {
	response := HealthResponse{
		Status:    "ok",
		Database:  "connected",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}

	if h.pingDB == nil || h.pingDB() != nil {
		response.Status = "degraded"
		response.Database = "disconnected"
		c.JSON(http.StatusServiceUnavailable, response)
		return
	}

	c.JSON(http.StatusOK, response)
}
