package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	domainerr "github.com/rewardly-app/rewards-processor/internal/domain/error"
	coreport "github.com/rewardly-app/rewards-processor/internal/domain/port/core"
	usecaseport "github.com/rewardly-app/rewards-processor/internal/domain/port/usecase"
	"github.com/rewardly-app/rewards-processor/internal/infrastructure/adapter/api/dto"
)

// EventHandler receives document-creation events forwarded by the shard
// event bridges. These endpoints are not part of the authenticated client
// surface; the outcome of a withdrawal event lives on the request document,
// the HTTP response exists for the bridge's delivery bookkeeping only.
type EventHandler struct {
	withdrawalService usecaseport.WithdrawalUseCase
	referralService   usecaseport.ReferralUseCase
	logger            coreport.Logger
}

// NewEventHandler creates a new event handler instance
func NewEventHandler(
	withdrawalService usecaseport.WithdrawalUseCase,
	referralService usecaseport.ReferralUseCase,
	logger coreport.Logger,
) *EventHandler {
	return &EventHandler{
		withdrawalService: withdrawalService,
		referralService:   referralService,
		logger:            logger,
	}
}

// WithdrawalCreated handles POST /events/withdrawals
func (h *EventHandler) WithdrawalCreated(c *gin.Context) {
	var req dto.WithdrawalEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, domainerr.ErrInvalidRequest, "Request ID is required")
		return
	}

	result, err := h.withdrawalService.Process(c.Request.Context(), usecaseport.WithdrawalEvent{
		RequestID: req.RequestID,
		UID:       req.UID,
		Amount:    req.Amount,
		ProjectID: req.ProjectID,
	})
	if err != nil && result == nil {
		// No terminal status could be written back; the bridge may redeliver
		writeError(c, err, "Failed to process withdrawal request")
		return
	}

	resp := dto.WithdrawalEventResponse{
		RequestID: result.ID,
		Status:    string(result.Status),
		Error:     result.Error,
	}
	c.JSON(http.StatusOK, resp)
}

// UserCreated handles POST /events/users
func (h *EventHandler) UserCreated(c *gin.Context) {
	var req dto.UserCreatedEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, domainerr.ErrInvalidRequest, "User ID and Project ID are required")
		return
	}

	err := h.referralService.LinkNewUser(c.Request.Context(), usecaseport.UserCreatedEvent{
		UID:        req.UID,
		ProjectID:  req.ProjectID,
		ReferredBy: req.ReferredBy,
	})
	if err != nil {
		// The reconciliation sweep retries anything the fast path misses,
		// so the event is still acknowledged
		h.logger.Warn("Referral fast path failed, deferring to sweep", map[string]any{
			"uid":        req.UID,
			"projectId":  req.ProjectID,
			"referredBy": req.ReferredBy,
			"error":      err.Error(),
		})
	}

	c.JSON(http.StatusOK, dto.EventAck{Accepted: true})
}
