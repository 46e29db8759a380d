package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	domainerr "github.com/rewardly-app/rewards-processor/internal/domain/error"
	coreport "github.com/rewardly-app/rewards-processor/internal/domain/port/core"
	usecaseport "github.com/rewardly-app/rewards-processor/internal/domain/port/usecase"
	"github.com/rewardly-app/rewards-processor/internal/infrastructure/adapter/api/dto"
	"github.com/rewardly-app/rewards-processor/internal/infrastructure/adapter/api/middleware"
)

// UserHandler handles the authenticated per-user endpoints
type UserHandler struct {
	userService usecaseport.UserUseCase
	logger      coreport.Logger
}

// NewUserHandler creates a new user handler instance
func NewUserHandler(userService usecaseport.UserUseCase, logger coreport.Logger) *UserHandler {
	return &UserHandler{
		userService: userService,
		logger:      logger,
	}
}

// callerIdentity extracts the identity placed on the context by the auth middleware
func callerIdentity(c *gin.Context) (uid, projectID string, ok bool) {
	uid = c.GetString(middleware.ContextUID)
	projectID = c.GetString(middleware.ContextProjectID)
	if uid == "" || projectID == "" {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Kind:    domainerr.KindUnauthenticated,
			Message: "Caller identity missing",
		})
		return "", "", false
	}
	return uid, projectID, true
}

// resolveProjectID prefers an explicit body/query project over the token's
// project; both name the caller's home shard
func resolveProjectID(explicit, fromToken string) string {
	if explicit != "" {
		return explicit
	}
	return fromToken
}

// writeError converts a domain error into the structured API response
func writeError(c *gin.Context, err error, message string) {
	body := dto.NewErrorResponse(err, message)
	c.JSON(dto.HTTPStatus(body.Kind), body)
}

// RecordAdWatch handles POST /v1/ads/watched
func (h *UserHandler) RecordAdWatch(c *gin.Context) {
	uid, tokenProject, ok := callerIdentity(c)
	if !ok {
		return
	}

	var req dto.ProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, domainerr.ErrInvalidRequest, "User ID and Project ID are required")
		return
	}

	result, err := h.userService.RecordAdWatch(c.Request.Context(), resolveProjectID(req.ProjectID, tokenProject), uid)
	if err != nil {
		writeError(c, err, "Failed to update ads watched today")
		return
	}

	c.JSON(http.StatusOK, dto.AdWatchResponse{
		Success:         true,
		AdsWatchedToday: result.AdsWatchedToday,
		LastAdWatchDate: result.LastAdWatchDate,
	})
}

// ResetSpinWheel handles POST /v1/spins/reset
func (h *UserHandler) ResetSpinWheel(c *gin.Context) {
	uid, tokenProject, ok := callerIdentity(c)
	if !ok {
		return
	}

	var req dto.ProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, domainerr.ErrInvalidRequest, "User ID and Project ID are required")
		return
	}

	result, err := h.userService.ResetSpinWheel(c.Request.Context(), resolveProjectID(req.ProjectID, tokenProject), uid)
	if err != nil {
		writeError(c, err, "Failed to reset spin wheel daily counts")
		return
	}

	c.JSON(http.StatusOK, dto.SpinWheelResponse{
		Success:           true,
		FreeSpinsToday:    result.FreeSpinsToday,
		AdSpinsToday:      result.AdSpinsToday,
		LastSpinWheelDate: result.LastSpinWheelDate,
		WasReset:          result.WasReset,
	})
}

// CheckAdminStatus handles GET /v1/admin/status
func (h *UserHandler) CheckAdminStatus(c *gin.Context) {
	uid, tokenProject, ok := callerIdentity(c)
	if !ok {
		return
	}

	projectID := resolveProjectID(c.Query("projectId"), tokenProject)
	isAdmin, err := h.userService.CheckAdminStatus(c.Request.Context(), projectID, uid)
	if err != nil {
		writeError(c, err, "Failed to check admin status")
		return
	}

	c.JSON(http.StatusOK, dto.AdminStatusResponse{IsAdmin: isAdmin})
}

// GetCoins handles GET /v1/coins
func (h *UserHandler) GetCoins(c *gin.Context) {
	uid, tokenProject, ok := callerIdentity(c)
	if !ok {
		return
	}

	projectID := resolveProjectID(c.Query("projectId"), tokenProject)
	coins, err := h.userService.GetCoins(c.Request.Context(), projectID, uid)
	if err != nil {
		writeError(c, err, "Failed to get coin balance")
		return
	}

	c.JSON(http.StatusOK, dto.CoinsResponse{UID: uid, Coins: coins})
}
