// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/grocery-pos/backend/internal/integration/entrypoint/controller"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine              *gin.Engine
	healthController    *controller.HealthController
	catalogController   *controller.CatalogController
	billingController   *controller.BillingController
	billsController     *controller.BillsController
	analyticsController *controller.AnalyticsController
	reportController    *controller.ReportController
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	catalogController *controller.CatalogController,
	billingController *controller.BillingController,
	billsController *controller.BillsController,
	analyticsController *controller.AnalyticsController,
	reportController *controller.ReportController,
) *Router {
	return &Router{
		healthController:    healthController,
		catalogController:   catalogController,
		billingController:   billingController,
		billsController:     billsController,
		analyticsController: analyticsController,
		reportController:    reportController,
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

	// Create router with default middleware (logger and recovery)
	r.engine = gin.Default()

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
	// API v1 group
	v1 := r.engine.Group("/api/v1")
	{
		v1.GET("/catalog", r.catalogController.Get)

		bills := v1.Group("/bills")
		{
			bills.POST("", r.billingController.Calculate)
			bills.POST("/save", r.billingController.Save)
			bills.POST("/email", r.billingController.Email)
			bills.POST("/print", r.billingController.Print)

			bills.GET("", r.billsController.List)
			// Registered before :number so it is not captured as a bill number.
			bills.GET("/search", r.billsController.Search)
			bills.GET("/:number", r.billsController.Get)
		}

		v1.GET("/analytics", r.analyticsController.Get)
		v1.GET("/reports/:kind", r.reportController.Export)
	}
}
