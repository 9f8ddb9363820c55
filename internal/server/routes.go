package server

import (
	"github.com/labstack/echo/v4"

	"example.com/meal-planner/backend/internal/handlers"
)

func registerRoutes(
	e *echo.Echo,
	authHandler *handlers.AuthHandler,
	menuHandler *handlers.MenuHandler,
	recurringHandler *handlers.RecurringHandler,
	expenseHandler *handlers.ExpenseHandler,
	activityHandler *handlers.ActivityHandler,
	notificationHandler *handlers.NotificationHandler,
	authMiddleware echo.MiddlewareFunc,
	authRateLimiter echo.MiddlewareFunc,
) {
	e.GET("/health", handlers.Health)

	api := e.Group("/api/v1")
	authGroup := api.Group("/auth", authRateLimiter)

	authGroup.POST("/register", authHandler.Register)
	authGroup.POST("/login", authHandler.Login)
	authGroup.POST("/refresh", authHandler.Refresh)
	authGroup.POST("/logout", authHandler.Logout)
	authGroup.GET("/me", authHandler.Me, authMiddleware)

	menus := api.Group("/menus", authMiddleware)
	menus.GET("", menuHandler.List)
	menus.POST("", menuHandler.Create)
	menus.GET("/:date", menuHandler.Get)
	menus.PUT("/:date", menuHandler.Update)
	menus.DELETE("/:date", menuHandler.Delete)

	recurring := api.Group("/recurring-meals", authMiddleware)
	recurring.GET("", recurringHandler.Get)
	recurring.POST("", recurringHandler.Upsert)

	expenses := api.Group("/expenses", authMiddleware)
	expenses.GET("", expenseHandler.Report)
	expenses.GET("/analysis", expenseHandler.Analysis)
	expenses.GET("/export/csv", expenseHandler.ExportCSV)

	users := api.Group("/users", authMiddleware)
	users.GET("/:id/activity", activityHandler.Get)

	notifications := api.Group("/notifications", authMiddleware)
	notifications.GET("/stream", notificationHandler.Stream)
}
