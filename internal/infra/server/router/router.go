// Package router sets up the HTTP routing for the application.
package router

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	"github.com/personal-finance/tracker/internal/integration/entrypoint/controller"
	"github.com/personal-finance/tracker/internal/integration/entrypoint/middleware"
)

// Controllers groups the HTTP handlers mounted by the router.
type Controllers struct {
	Health      *controller.HealthController
	Auth        *controller.AuthController
	User        *controller.UserController
	Category    *controller.CategoryController
	Transaction *controller.TransactionController
	Budget      *controller.BudgetController
	Goal        *controller.GoalController
	Dashboard   *controller.DashboardController
}

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine           *gin.Engine
	controllers      Controllers
	loginRateLimiter *middleware.RateLimiter
	authMiddleware   *middleware.AuthMiddleware
	logger           *slog.Logger
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	controllers Controllers,
	loginRateLimiter *middleware.RateLimiter,
	authMiddleware *middleware.AuthMiddleware,
	logger *slog.Logger,
) *Router {
	return &Router{
		controllers:      controllers,
		loginRateLimiter: loginRateLimiter,
		authMiddleware:   authMiddleware,
		logger:           logger,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	switch environment {
	case "production":
		gin.SetMode(gin.ReleaseMode)
	case "test":
		gin.SetMode(gin.TestMode)
	}

	r.engine = gin.New()
	r.engine.Use(gin.Recovery(), middleware.RequestLogger(r.logger))

	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.controllers.Health.Check)
}

func (r *Router) setupAPIRoutes() {
	c := r.controllers
	v1 := r.engine.Group("/api/v1")

	auth := v1.Group("/auth")
	{
		auth.POST("/register", c.Auth.Register)
		auth.POST("/login", r.loginRateLimiter.Middleware(), c.Auth.Login)
		auth.POST("/logout", r.authMiddleware.Authenticate(), c.Auth.Logout)
	}

	protected := v1.Group("")
	protected.Use(r.authMiddleware.Authenticate())

	users := protected.Group("/users")
	{
		users.GET("/profile", c.User.GetProfile)
		users.PATCH("/profile", c.User.UpdateProfile)
		users.DELETE("/me", c.User.DeleteAccount)
	}

	categories := protected.Group("/categories")
	{
		categories.GET("", c.Category.List)
		categories.POST("", c.Category.Create)
		categories.GET("/:id", c.Category.Get)
		categories.PUT("/:id", c.Category.Update)
		categories.DELETE("/:id", c.Category.Delete)
	}

	transactions := protected.Group("/transactions")
	{
		transactions.GET("", c.Transaction.List)
		transactions.POST("", c.Transaction.Create)
		transactions.GET("/summary", c.Transaction.Summary)
		transactions.GET("/:id", c.Transaction.Get)
		transactions.PUT("/:id", c.Transaction.Update)
		transactions.DELETE("/:id", c.Transaction.Delete)
	}

	budgets := protected.Group("/budgets")
	{
		budgets.GET("", c.Budget.List)
		budgets.POST("", c.Budget.Create)
		budgets.GET("/analytics", c.Budget.Analytics)
		budgets.GET("/:id", c.Budget.Get)
		budgets.PUT("/:id", c.Budget.Update)
		budgets.DELETE("/:id", c.Budget.Delete)
	}

	goals := protected.Group("/goals")
	{
		goals.GET("", c.Goal.List)
		goals.POST("", c.Goal.Create)
		goals.GET("/analytics", c.Goal.Analytics)
		goals.GET("/:id", c.Goal.Get)
		goals.PUT("/:id", c.Goal.Update)
		goals.PATCH("/:id/progress", c.Goal.UpdateProgress)
		goals.DELETE("/:id", c.Goal.Delete)
	}

	protected.GET("/dashboard", c.Dashboard.Get)
}

// Engine returns the underlying Gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
