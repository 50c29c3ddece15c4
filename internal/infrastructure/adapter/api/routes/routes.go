package routes

import (
	"github.com/gin-gonic/gin"

	coreport "github.com/Ginu5952/Goldenia-Backend/internal/domain/port/core"
	"github.com/Ginu5952/Goldenia-Backend/internal/infrastructure/adapter/api/handler"
	"github.com/Ginu5952/Goldenia-Backend/internal/infrastructure/adapter/api/middleware"
	"github.com/Ginu5952/Goldenia-Backend/internal/infrastructure/auth"
)

// SetupRoutes configures all the routes for the API
func SetupRoutes(
	router *gin.Engine,
	tokens *auth.TokenManager,
	authHandler *handler.AuthHandler,
	ledgerHandler *handler.LedgerHandler,
	userHandler *handler.UserHandler,
	adminHandler *handler.AdminHandler,
	logger coreport.Logger,
) {
	// Public auth routes
	authRoutes := router.Group("/auth")
	{
		authRoutes.POST("/signup", authHandler.Signup)
		authRoutes.POST("/login", authHandler.Login)
	}

	// Authenticated user routes
	userRoutes := router.Group("/user")
	userRoutes.Use(middleware.Auth(tokens, logger))
	{
		userRoutes.GET("/profile", userHandler.GetProfile)
		userRoutes.POST("/top-up", ledgerHandler.TopUp)
		userRoutes.POST("/transfer", ledgerHandler.Transfer)
		userRoutes.POST("/exchange", ledgerHandler.Exchange)
		userRoutes.GET("/transactions", ledgerHandler.GetTransactions)
	}

	// Admin routes, guarded again at the usecase level
	adminRoutes := router.Group("/admin")
	adminRoutes.Use(middleware.Auth(tokens, logger))
	{
		adminRoutes.GET("/users", adminHandler.ListUsers)
		adminRoutes.GET("/transactions", adminHandler.ListTransactions)
		adminRoutes.GET("/user/:id", adminHandler.GetUser)
	}
}

// SetupMiddlewares configures global middlewares for the API
func SetupMiddlewares(router *gin.Engine, logger coreport.Logger) {
	// Apply middlewares in the correct order
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(logger))
	router.Use(middleware.CORS())
}
