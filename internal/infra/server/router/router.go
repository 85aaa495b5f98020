// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/duitku/backend/internal/integration/entrypoint/controller"
	"github.com/duitku/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine                *gin.Engine
	healthController      *controller.HealthController
	authController        *controller.AuthController
	transactionController *controller.TransactionController
	budgetController      *controller.BudgetController
	goalController        *controller.GoalController
	receivableController  *controller.ReceivableController
	workspaceController   *controller.WorkspaceController
	portabilityController *controller.PortabilityController
	adminController       *controller.AdminController
	loginThrottle         *middleware.LoginThrottle
	authMiddleware        *middleware.AuthMiddleware
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	authController *controller.AuthController,
	transactionController *controller.TransactionController,
	budgetController *controller.BudgetController,
	goalController *controller.GoalController,
	receivableController *controller.ReceivableController,
	workspaceController *controller.WorkspaceController,
	portabilityController *controller.PortabilityController,
	adminController *controller.AdminController,
	loginThrottle *middleware.LoginThrottle,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		healthController:      healthController,
		authController:        authController,
		transactionController: transactionController,
		budgetController:      budgetController,
		goalController:        goalController,
		receivableController:  receivableController,
		workspaceController:   workspaceController,
		portabilityController: portabilityController,
		adminController:       adminController,
		loginThrottle:         loginThrottle,
		authMiddleware:        authMiddleware,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

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
	v1 := r.engine.Group("/api/v1")
	{
		if r.authController != nil && r.loginThrottle != nil {
			auth := v1.Group("/auth")
			{
				auth.POST("/login", r.loginThrottle.Middleware(), r.authController.Login)
			}

			authSession := v1.Group("/auth")
			authSession.Use(r.authMiddleware.Authenticate())
			{
				authSession.POST("/resume", r.authController.ResumeSession)
				authSession.POST("/logout", r.authController.Logout)
				authSession.PUT("/pin", r.authController.SetPin)
				authSession.DELETE("/pin", r.authController.RemovePin)
			}
		}

		if r.transactionController != nil && r.authMiddleware != nil {
			transactions := v1.Group("/transactions")
			transactions.Use(r.authMiddleware.Authenticate())
			{
				transactions.GET("", r.transactionController.List)
				transactions.POST("", r.transactionController.Create)
				transactions.PUT("/:id", r.transactionController.Update)
				transactions.DELETE("/:id", r.transactionController.Delete)
				transactions.DELETE("", r.transactionController.Wipe)
			}
		}

		if r.budgetController != nil && r.authMiddleware != nil {
			budgets := v1.Group("/budgets")
			budgets.Use(r.authMiddleware.Authenticate())
			{
				budgets.GET("", r.budgetController.List)
				budgets.POST("", r.budgetController.Create)
				budgets.PUT("/:id", r.budgetController.Update)
				budgets.DELETE("/:id", r.budgetController.Delete)
				budgets.POST("/:id/payments", r.budgetController.RecordPayment)
			}
		}

		if r.goalController != nil && r.authMiddleware != nil {
			goals := v1.Group("/goals")
			goals.Use(r.authMiddleware.Authenticate())
			{
				goals.GET("", r.goalController.List)
				goals.POST("", r.goalController.Create)
				goals.PUT("/:id", r.goalController.Update)
				goals.DELETE("/:id", r.goalController.Delete)
				goals.POST("/:id/funds", r.goalController.AddFunds)
			}
		}

		if r.receivableController != nil && r.authMiddleware != nil {
			receivables := v1.Group("/receivables")
			receivables.Use(r.authMiddleware.Authenticate())
			{
				receivables.GET("", r.receivableController.List)
				receivables.POST("", r.receivableController.Create)
				receivables.PUT("/:id", r.receivableController.Update)
				receivables.DELETE("/:id", r.receivableController.Delete)
				receivables.POST("/:id/installments", r.receivableController.AddInstallment)
				receivables.POST("/:id/settle", r.receivableController.Settle)
			}
		}

		if r.workspaceController != nil && r.authMiddleware != nil {
			workspace := v1.Group("/workspace")
			workspace.Use(r.authMiddleware.Authenticate())
			{
				workspace.GET("", r.workspaceController.Get)
				workspace.POST("/navigate", r.workspaceController.Navigate)
				workspace.POST("/cursor/page", r.workspaceController.GoToPage)
				workspace.POST("/cursor/per-page", r.workspaceController.SetPerPage)
				workspace.POST("/filter", r.workspaceController.SetFilter)
				workspace.POST("/date-range", r.workspaceController.SetDateRange)
			}
		}

		if r.portabilityController != nil && r.authMiddleware != nil {
			portability := v1.Group("/portability")
			portability.Use(r.authMiddleware.Authenticate())
			{
				portability.GET("/export/csv", r.portabilityController.ExportCSV)
				portability.GET("/export/snapshot", r.portabilityController.ExportSnapshot)
				portability.POST("/import", r.portabilityController.ImportCSV)
			}
		}

		if r.adminController != nil && r.authMiddleware != nil {
			admin := v1.Group("/admin")
			admin.Use(r.authMiddleware.Authenticate(), r.authMiddleware.RequireAdmin())
			{
				admin.GET("/overview", r.adminController.SystemOverview)
				admin.GET("/accounts", r.adminController.ListAccounts)
				admin.POST("/accounts", r.adminController.ProvisionAccount)
				admin.GET("/accounts/:id/summary", r.adminController.AccountSummary)
				admin.DELETE("/accounts/:id", r.adminController.DeleteAccount)
			}
		}
	}
}

// Engine returns the underlying Gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
