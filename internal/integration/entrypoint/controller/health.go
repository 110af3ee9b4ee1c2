// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HealthController handles health check endpoints.
type HealthController struct {
	dbHealthChecker func() bool
}

// NewHealthController creates a new health controller instance.
func NewHealthController(dbHealthChecker func() bool) *HealthController {
	return &HealthController{
		dbHealthChecker: dbHealthChecker,
	}
}

// Check handles GET /health requests.
func (c *HealthController) Check(ctx *gin.Context) {
	dbHealthy := c.dbHealthChecker()

	status := http.StatusOK
	overall := "healthy"
	if !dbHealthy {
		status = http.StatusServiceUnavailable
		overall = "degraded"
	}

	ctx.JSON(status, gin.H{
		"status": overall,
		"checks": gin.H{
			"database": dbHealthy,
		},
	})
}
