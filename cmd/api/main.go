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

	coreport "github.com/rewardly-app/rewards-processor/internal/domain/port/core"
	"github.com/rewardly-app/rewards-processor/internal/domain/port/persistence"
	referralUseCase "github.com/rewardly-app/rewards-processor/internal/domain/usecase/referral"
	"github.com/rewardly-app/rewards-processor/internal/domain/usecase/scan"
	userUseCase "github.com/rewardly-app/rewards-processor/internal/domain/usecase/user"
	withdrawalUseCase "github.com/rewardly-app/rewards-processor/internal/domain/usecase/withdrawal"

	"github.com/rewardly-app/rewards-processor/internal/infrastructure/adapter/api/handler"
	"github.com/rewardly-app/rewards-processor/internal/infrastructure/adapter/api/middleware"
	"github.com/rewardly-app/rewards-processor/internal/infrastructure/adapter/api/routes"
	fsadapter "github.com/rewardly-app/rewards-processor/internal/infrastructure/adapter/firestore"
	"github.com/rewardly-app/rewards-processor/internal/infrastructure/adapter/logger"
	"github.com/rewardly-app/rewards-processor/internal/infrastructure/adapter/registry"
	timeProvider "github.com/rewardly-app/rewards-processor/internal/infrastructure/adapter/time"
	"github.com/rewardly-app/rewards-processor/internal/infrastructure/config"
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
	if cfg.Environment == config.Production {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create logger
	appLogger := logger.NewZapLogger(cfg.Environment == config.Production)
	defer func() { _ = appLogger.Flush() }()

	// Initialize time provider
	tp := timeProvider.NewRealTimeProvider()

	ctx := context.Background()

	// Dial every configured shard and build its store and auth verifier
	stores := make([]persistence.ShardStore, 0, len(cfg.Shards))
	verifiers := make(map[string]middleware.TokenVerifier, len(cfg.Shards))
	for _, shard := range cfg.Shards {
		clients, err := fsadapter.Dial(ctx, shard.ID, cfg.ShardCredentials(shard))
		if err != nil {
			appLogger.Error("Failed to connect to shard", map[string]any{
				"shard": shard.ID,
				"error": err.Error(),
			})
			os.Exit(1)
		}
		defer func() { _ = clients.Close() }()

		stores = append(stores, fsadapter.NewStore(shard.ID, clients.Firestore, tp, appLogger))
		verifiers[shard.ID] = fsadapter.NewAuthVerifier(shard.ID, clients.Auth)
	}

	shardRegistry, err := registry.NewStatic(stores...)
	if err != nil {
		appLogger.Error("Failed to build shard registry", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}

	// Initialize use cases
	userUseCaseImpl := userUseCase.NewUserUseCase(shardRegistry, tp, appLogger, cfg.Rewards.FreeSpinsPerDay)
	withdrawalUseCaseImpl := withdrawalUseCase.NewWithdrawalUseCase(shardRegistry, tp, appLogger)
	referralUseCaseImpl := referralUseCase.NewReferralUseCase(
		shardRegistry,
		scan.NewSequential(appLogger),
		nil,
		tp,
		appLogger,
		referralUseCase.Config{
			MaxAttempts:   cfg.Rewards.CodeMaxAttempts,
			RetryBackoff:  coreport.Duration(cfg.Rewards.CodeRetryBackoff),
			FastPathBonus: cfg.Rewards.ReferralFastPathBonus,
		},
	)

	// Initialize API handlers
	userHandler := handler.NewUserHandler(userUseCaseImpl, appLogger)
	referralHandler := handler.NewReferralHandler(referralUseCaseImpl, appLogger)
	eventHandler := handler.NewEventHandler(withdrawalUseCaseImpl, referralUseCaseImpl, appLogger)

	// Initialize Gin router
	router := gin.New()

	// Setup middlewares
	routes.SetupMiddlewares(router, appLogger)

	// Setup routes
	routes.SetupRoutes(router, userHandler, referralHandler, eventHandler, verifiers, appLogger)

	// Create HTTP server with configurable timeout values
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
			"port":   cfg.Server.Port,
			"env":    cfg.Environment,
			"shards": len(cfg.Shards),
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

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		appLogger.Error("Server forced to shutdown", map[string]any{
			"error": err.Error(),
		})
	}

	appLogger.Info("Server exited gracefully", nil)
}
