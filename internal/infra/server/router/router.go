// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/brokerledger/backend/internal/integration/entrypoint/controller"
	"github.com/brokerledger/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine                *gin.Engine
	healthController      *controller.HealthController
	partyController       *controller.PartyController
	transactionController *controller.TransactionController
	paymentController     *controller.PaymentController
	calculationController *controller.CalculationController
	backupController      *controller.BackupController
	backupRateLimiter     *middleware.RateLimiter
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	partyController *controller.PartyController,
	transactionController *controller.TransactionController,
	paymentController *controller.PaymentController,
	calculationController *controller.CalculationController,
	backupController *controller.BackupController,
	backupRateLimiter *middleware.RateLimiter,
) *Router {
	return &Router{
		healthController:      healthController,
		partyController:       partyController,
		transactionController: transactionController,
		paymentController:     paymentController,
		calculationController: calculationController,
		backupController:      backupController,
		backupRateLimiter:     backupRateLimiter,
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
		// Party directory routes
		if r.partyController != nil {
			parties := v1.Group("/parties")
			{
				parties.POST("", r.partyController.Create)
				parties.GET("", r.partyController.List)
				parties.DELETE("/:id", r.partyController.Delete)
			}
		}

		// Transaction routes, with the payment ledger nested under each
		// transaction
		if r.transactionController != nil {
			transactions := v1.Group("/transactions")
			{
				transactions.POST("", r.transactionController.Create)
				transactions.GET("", r.transactionController.List)
				transactions.GET("/summary", r.transactionController.Summary)
				transactions.GET("/export", r.transactionController.Export)
				transactions.GET("/:id", r.transactionController.Get)
				transactions.PUT("/:id", r.transactionController.Update)
				transactions.DELETE("/:id", r.transactionController.Delete)
				transactions.PATCH("/:id/received", r.transactionController.SetReceived)

				if r.paymentController != nil {
					transactions.POST("/:id/payments", r.paymentController.Record)
					transactions.GET("/:id/payments", r.paymentController.List)
					transactions.GET("/:id/pending", r.paymentController.PendingBalance)
				}
			}
		}

		// Payment reversal addresses the payment itself, not its transaction
		if r.paymentController != nil {
			payments := v1.Group("/payments")
			{
				payments.DELETE("/:id", r.paymentController.Reverse)
			}
		}

		// Stateless calculation preview
		if r.calculationController != nil {
			calculations := v1.Group("/calculations")
			{
				calculations.POST("/preview", r.calculationController.Preview)
			}
		}

		// Backup routes (rate limited: each create writes a full archive)
		if r.backupController != nil && r.backupRateLimiter != nil {
			backups := v1.Group("/backups")
			{
				backups.POST("", r.backupRateLimiter.Middleware(), r.backupController.Create)
				backups.GET("", r.backupController.List)
				backups.POST("/restore", r.backupRateLimiter.Middleware(), r.backupController.Restore)
			}
		}
	}
}

// Engine returns the underlying Gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
