package usecase

import (
	"context"

	"github.com/rewardly-app/rewards-processor/internal/domain/entity"
)

// WithdrawalEvent is the payload of a withdrawal-request creation event
type WithdrawalEvent struct {
	RequestID string `json:"requestId"`
	UID       string `json:"uid"`
	Amount    int64  `json:"amount"`
	ProjectID string `json:"projectId"`
}

// WithdrawalUseCase processes withdrawal-request creation events. The entry
// point has no response path: outcomes are written back onto the triggering
// request document as a terminal status.
type WithdrawalUseCase interface {
	// Process settles the withdrawal named by the event: validation, shard
	// resolution, then an atomic deduct-and-mark transaction on the requester's
	// shard. The returned request reflects the terminal status.
	Process(ctx context.Context, event WithdrawalEvent) (*entity.WithdrawalRequest, error)
}
