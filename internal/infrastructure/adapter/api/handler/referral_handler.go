package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	coreport "github.com/rewardly-app/rewards-processor/internal/domain/port/core"
	usecaseport "github.com/rewardly-app/rewards-processor/internal/domain/port/usecase"
	"github.com/rewardly-app/rewards-processor/internal/infrastructure/adapter/api/dto"
)

// ReferralHandler handles referral-code issuance
type ReferralHandler struct {
	referralService usecaseport.ReferralUseCase
	logger          coreport.Logger
}

// NewReferralHandler creates a new referral handler instance
func NewReferralHandler(referralService usecaseport.ReferralUseCase, logger coreport.Logger) *ReferralHandler {
	return &ReferralHandler{
		referralService: referralService,
		logger:          logger,
	}
}

// GenerateCode handles POST /v1/referral/code
func (h *ReferralHandler) GenerateCode(c *gin.Context) {
	uid, _, ok := callerIdentity(c)
	if !ok {
		return
	}

	code, err := h.referralService.GenerateUniqueCode(c.Request.Context())
	if err != nil {
		h.logger.Error("Referral code generation failed", map[string]any{
			"uid":   uid,
			"error": err.Error(),
		})
		writeError(c, err, "Failed to generate referral code")
		return
	}

	c.JSON(http.StatusOK, dto.ReferralCodeResponse{ReferralCode: code})
}
