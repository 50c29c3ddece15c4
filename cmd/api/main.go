package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	historyUseCase "github.com/Ginu5952/Goldenia-Backend/internal/domain/usecase/history"
	ledgerUseCase "github.com/Ginu5952/Goldenia-Backend/internal/domain/usecase/ledger"
	userUseCase "github.com/Ginu5952/Goldenia-Backend/internal/domain/usecase/user"

	coreport "github.com/Ginu5952/Goldenia-Backend/internal/domain/port/core"
	"github.com/Ginu5952/Goldenia-Backend/internal/infrastructure/adapter/api/handler"
	"github.com/Ginu5952/Goldenia-Backend/internal/infrastructure/adapter/api/routes"
	"github.com/Ginu5952/Goldenia-Backend/internal/infrastructure/adapter/database"
	"github.com/Ginu5952/Goldenia-Backend/internal/infrastructure/adapter/database/migration"
	"github.com/Ginu5952/Goldenia-Backend/internal/infrastructure/adapter/logger"
	"github.com/Ginu5952/Goldenia-Backend/internal/infrastructure/adapter/repository"
	timeProvider "github.com/Ginu5952/Goldenia-Backend/internal/infrastructure/adapter/time"
	"github.com/Ginu5952/Goldenia-Backend/internal/infrastructure/auth"
	"github.com/Ginu5952/Goldenia-Backend/internal/infrastructure/config"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := cfg.Validate(); err != nil {
		log.Fatalf("Configuration validation failed: %v", err)
	}

	// Set Gin mode based on environment
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create logger
	appLogger := logger.NewZapLogger(cfg.Environment == "production", cfg.Logger.Level)
	defer func() {
		_ = appLogger.Flush()
	}()

	// Initialize time provider
	tp := timeProvider.NewRealTimeProvider()

	// Connect to the database
	dbManager := database.NewManager(cfg.Database, appLogger, tp)
	if _, err := dbManager.Connect(); err != nil {
		appLogger.Error("Failed to connect to database", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}
	defer func() {
		_ = dbManager.Close()
	}()

	// Run migrations
	migrationMgr := migration.NewMigrationManager(dbManager.DB(), appLogger, tp)
	if err := migrationMgr.MigrateAll(); err != nil {
		appLogger.Error("Failed to run migrations", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}

	// Initialize repositories and the unit of work
	userRepo := repository.NewUserRepository(dbManager.DB(), appLogger)
	balanceRepo := repository.NewBalanceRepository(dbManager.DB(), appLogger)
	transactionRepo := repository.NewTransactionRepository(dbManager.DB(), appLogger)
	uow := database.NewUnitOfWork(dbManager.DB(), appLogger)

	// Seed the default admin account
	if err := migration.SeedDefaultAdmin(context.Background(), userRepo, tp, appLogger); err != nil {
		appLogger.Error("Failed to seed default admin", map[string]any{
			"error": err.Error(),
		})
	}

	// Initialize use cases
	rateTable := buildRateTable(cfg.Exchange, appLogger)
	ledgerService := ledgerUseCase.NewService(uow, rateTable, tp, appLogger)
	historyReconstructor := historyUseCase.NewReconstructor(transactionRepo, userRepo, appLogger)
	userService := userUseCase.NewUserUseCase(userRepo, balanceRepo, transactionRepo, tp, appLogger)

	// Token manager for the auth surface
	tokens := auth.NewTokenManager(cfg.JWT, tp)

	// Initialize API handlers
	authHandler := handler.NewAuthHandler(userService, tokens, appLogger)
	ledgerHandler := handler.NewLedgerHandler(ledgerService, historyReconstructor, appLogger)
	userHandler := handler.NewUserHandler(userService, appLogger)
	adminHandler := handler.NewAdminHandler(userService, appLogger)

	// Initialize Gin router
	router := gin.New()
	routes.SetupMiddlewares(router, appLogger)
	routes.SetupRoutes(router, tokens, authHandler, ledgerHandler, userHandler, adminHandler, appLogger)

	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	// Start the server in a goroutine
	go func() {
		appLogger.Info("Starting server", map[string]any{
			"port": cfg.Server.Port,
			"env":  cfg.Environment,
		})

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Error("Failed to start server", map[string]any{
				"error": err.Error(),
			})
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...", nil)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		appLogger.Error("Server forced to shutdown", map[string]any{
			"error": err.Error(),
		})
	}

	appLogger.Info("Server exited gracefully", nil)
}

// buildRateTable parses the configured exchange rates, falling back to the
// built-in table when configuration is empty or unusable
func buildRateTable(cfg config.ExchangeConfig, appLogger coreport.Logger) *ledgerUseCase.RateTable {
	entries := make([]ledgerUseCase.RateEntry, 0, len(cfg.Rates))
	for _, rc := range cfg.Rates {
		rate, err := decimal.NewFromString(rc.Rate)
		if err != nil {
			appLogger.Warn("Skipping malformed exchange rate", map[string]any{
				"from": rc.From,
				"to":   rc.To,
				"rate": rc.Rate,
			})
			continue
		}
		entries = append(entries, ledgerUseCase.RateEntry{From: rc.From, To: rc.To, Rate: rate})
	}

	if len(entries) == 0 {
		return ledgerUseCase.DefaultRateTable()
	}
	return ledgerUseCase.NewRateTable(entries)
}
