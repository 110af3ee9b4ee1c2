// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/finance-ledger/backend/internal/integration/entrypoint/controller"
	"github.com/finance-ledger/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine                *gin.Engine
	healthController      *controller.HealthController
	transactionController *controller.TransactionController
	reportController      *controller.ReportController
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	transactionController *controller.TransactionController,
	reportController *controller.ReportController,
) *Router {
	return &Router{
		healthController:      healthController,
		transactionController: transactionController,
		reportController:      reportController,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	// Set Gin mode based on environment
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	r.engine = gin.New()
	r.engine.Use(gin.Recovery())
	r.engine.Use(middleware.RequestID())

	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	v1 := r.engine.Group("/api/v1")
	{
		users := v1.Group("/users/:userID")
		{
			if r.transactionController != nil {
				transactions := users.Group("/transactions")
				{
					transactions.POST("", r.transactionController.Create)
					transactions.GET("", r.transactionController.List)
					transactions.GET("/:id", r.transactionController.Get)
					transactions.PUT("/:id", r.transactionController.Update)
					transactions.DELETE("/:id", r.transactionController.Delete)
				}
			}

			if r.reportController != nil {
				reports := users.Group("/reports")
				{
					reports.GET("/total", r.reportController.GetTotal)
					reports.GET("/by-category", r.reportController.GetByCategory)
					reports.GET("/by-date", r.reportController.GetByDate)
					reports.GET("/categories", r.reportController.GetCategories)
					reports.GET("/count", r.reportController.GetCount)
					reports.GET("/latest", r.reportController.GetLatest)
					reports.GET("/monthly-total", r.reportController.GetMonthlyTotal)
				}
			}
		}
	}
}
