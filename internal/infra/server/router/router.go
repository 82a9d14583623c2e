// Package router sets up the HTTP routing for the application.
package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/finance-tracker/paycycle/internal/application/adapter"
	"github.com/finance-tracker/paycycle/internal/integration/entrypoint/controller"
	"github.com/finance-tracker/paycycle/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine             *gin.Engine
	healthController   *controller.HealthController
	categoryController *controller.CategoryController
	cycleController    *controller.CycleController
	expenseController  *controller.ExpenseController
	budgetController   *controller.BudgetController
	savingsController  *controller.SavingsController
	writeRateLimiter   *middleware.RateLimiter
	userLocker         adapter.UserLocker
	allowedOrigins     []string
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	categoryController *controller.CategoryController,
	cycleController *controller.CycleController,
	expenseController *controller.ExpenseController,
	budgetController *controller.BudgetController,
	savingsController *controller.SavingsController,
	writeRateLimiter *middleware.RateLimiter,
	userLocker adapter.UserLocker,
	allowedOrigins []string,
) *Router {
	return &Router{
		healthController:   healthController,
		categoryController: categoryController,
		cycleController:    cycleController,
		expenseController:  expenseController,
		budgetController:   budgetController,
		savingsController:  savingsController,
		writeRateLimiter:   writeRateLimiter,
		userLocker:         userLocker,
		allowedOrigins:     allowedOrigins,
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
	if len(r.allowedOrigins) > 0 {
		r.engine.Use(cors.New(r.corsConfig()))
	}

	// Setup routes
	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// corsConfig allows the configured browser origins to call the API with the user scope header.
func (r *Router) corsConfig() cors.Config {
	corsConfig := cors.DefaultConfig()
	if len(r.allowedOrigins) == 1 && r.allowedOrigins[0] == "*" {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = r.allowedOrigins
	}
	corsConfig.AddAllowMethods("PATCH")
	corsConfig.AddAllowHeaders(middleware.UserIDHeader)
	corsConfig.AddExposeHeaders("Content-Disposition")
	corsConfig.MaxAge = 12 * time.Hour
	return corsConfig
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes.
// Every route is scoped to the user named by the X-User-ID header.
func (r *Router) setupAPIRoutes() {
	// API v1 group
	v1 := r.engine.Group("/api/v1")
	v1.Use(middleware.RequireUserScope())
	if r.writeRateLimiter != nil {
		v1.Use(r.writeRateLimiter.Middleware())
	}
	if r.userLocker != nil {
		v1.Use(middleware.SerializeWrites(r.userLocker))
	}
	{
		v1.GET("/categories", r.categoryController.List)

		// Pay cycle routes
		cycles := v1.Group("/cycles")
		{
			cycles.GET("", r.cycleController.List)
			cycles.POST("", r.cycleController.Create)
			cycles.PUT("/active", r.cycleController.SetActive)
			cycles.PATCH("/:id", r.cycleController.Update)
			cycles.DELETE("/:id", r.cycleController.Delete)
		}
		v1.GET("/period", r.cycleController.CurrentPeriod)
		v1.POST("/reconcile", r.cycleController.Reconcile)

		// Expense routes, all recorded against the active cycle
		expenses := v1.Group("/expenses")
		{
			expenses.GET("/daily", r.expenseController.ListDaily)
			expenses.POST("/daily", r.expenseController.AddDaily)
			expenses.DELETE("/daily/:date/:id", r.expenseController.DeleteDaily)
			expenses.GET("/future", r.expenseController.ListFuture)
			expenses.POST("/future", r.expenseController.AddFuture)
			expenses.DELETE("/future/:id", r.expenseController.DeleteFuture)
		}
		v1.GET("/summary", r.budgetController.Summary)

		// Budget routes
		budgets := v1.Group("/budgets")
		{
			budgets.GET("/live", r.budgetController.Live)
			budgets.GET("", r.budgetController.List)
			budgets.POST("", r.budgetController.Save)
			budgets.POST("/force", r.budgetController.ForceCreate)
			budgets.GET("/:id", r.budgetController.Get)
			budgets.PATCH("/:id", r.budgetController.Update)
			budgets.DELETE("/:id", r.budgetController.Delete)
			budgets.GET("/:id/export", r.budgetController.Export)
			budgets.POST("/:id/deposit", r.savingsController.Deposit)
		}

		// Savings routes
		v1.GET("/savings", r.savingsController.Get)
		v1.PUT("/savings", r.savingsController.Update)
	}
}

// Engine returns the underlying Gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
