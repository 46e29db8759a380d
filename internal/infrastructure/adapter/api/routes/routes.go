package routes

import (
	"github.com/gin-gonic/gin"

	coreport "github.com/rewardly-app/rewards-processor/internal/domain/port/core"
	"github.com/rewardly-app/rewards-processor/internal/infrastructure/adapter/api/handler"
	"github.com/rewardly-app/rewards-processor/internal/infrastructure/adapter/api/middleware"
)

// SetupRoutes configures all the routes for the API
func SetupRoutes(
	router *gin.Engine,
	userHandler *handler.UserHandler,
	referralHandler *handler.ReferralHandler,
	eventHandler *handler.EventHandler,
	verifiers map[string]middleware.TokenVerifier,
	logger coreport.Logger,
) {
	// Authenticated client surface
	v1 := router.Group("/v1")
	v1.Use(middleware.Auth(verifiers, logger))
	{
		// POST /v1/ads/watched
		v1.POST("/ads/watched", userHandler.RecordAdWatch)

		// POST /v1/spins/reset
		v1.POST("/spins/reset", userHandler.ResetSpinWheel)

		// GET /v1/admin/status
		v1.GET("/admin/status", userHandler.CheckAdminStatus)

		// GET /v1/coins
		v1.GET("/coins", userHandler.GetCoins)

		// POST /v1/referral/code
		v1.POST("/referral/code", referralHandler.GenerateCode)
	}

	// Document-creation events forwarded by the shard event bridges. These
	// arrive over the private network, not from clients, so no ID token.
	events := router.Group("/events")
	{
		// POST /events/withdrawals
		events.POST("/withdrawals", eventHandler.WithdrawalCreated)

		// POST /events/users
		events.POST("/users", eventHandler.UserCreated)
	}
}

// SetupMiddlewares configures global middlewares for the API
func SetupMiddlewares(router *gin.Engine, logger coreport.Logger) {
	// Apply middlewares in the correct order
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.Logger(logger))
	router.Use(middleware.CORS())
}
