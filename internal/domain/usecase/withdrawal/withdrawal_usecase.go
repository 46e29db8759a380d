package withdrawal

import (
	"context"
	"errors"

	"github.com/rewardly-app/rewards-processor/internal/domain/entity"
	errs "github.com/rewardly-app/rewards-processor/internal/domain/error"
	coreport "github.com/rewardly-app/rewards-processor/internal/domain/port/core"
	"github.com/rewardly-app/rewards-processor/internal/domain/port/persistence"
	usecaseport "github.com/rewardly-app/rewards-processor/internal/domain/port/usecase"
)

// WithdrawalUseCase settles withdrawal requests created by clients. All
// balance state lives in the requester's shard; the settle transaction couples
// the coin deduction with the request's terminal status flip so the two can
// never diverge.
type WithdrawalUseCase struct {
	registry     persistence.ShardRegistry
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// Compile-time check that WithdrawalUseCase satisfies the port interface
var _ usecaseport.WithdrawalUseCase = (*WithdrawalUseCase)(nil)

// NewWithdrawalUseCase creates a new WithdrawalUseCase
func NewWithdrawalUseCase(
	registry persistence.ShardRegistry,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *WithdrawalUseCase {
	return &WithdrawalUseCase{
		registry:     registry,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Process settles the withdrawal named by the creation event.
//
// Validation rejects the event before any shard access; when the shard can
// still be resolved a terminal failed status is written onto the request so
// the client sees the outcome. Precondition failures (missing user,
// insufficient coins) are recorded by the settle transaction itself.
func (w *WithdrawalUseCase) Process(ctx context.Context, event usecaseport.WithdrawalEvent) (*entity.WithdrawalRequest, error) {
	if err := w.validate(event); err != nil {
		w.logger.Error("Invalid withdrawal request data", map[string]any{
			"request_id": event.RequestID,
			"uid":        event.UID,
			"amount":     event.Amount,
			"project_id": event.ProjectID,
		})
		w.failBestEffort(ctx, event, "Invalid request data")
		return nil, errs.ErrInvalidRequest
	}

	store, err := w.registry.Resolve(event.ProjectID)
	if err != nil {
		w.logger.Error("Withdrawal names unknown shard", map[string]any{
			"request_id": event.RequestID,
			"project_id": event.ProjectID,
		})
		return nil, err
	}

	settled, err := store.SettleWithdrawal(ctx, event.RequestID)
	if err != nil {
		if errors.Is(err, errs.ErrWithdrawalSettled) {
			// A replayed creation event; the first settlement already decided
			// the outcome.
			w.logger.Warn("Withdrawal already settled, ignoring replay", map[string]any{
				"request_id": event.RequestID,
				"project_id": event.ProjectID,
			})
			return settled, err
		}
		w.logger.Error("Error processing withdrawal", map[string]any{
			"request_id": event.RequestID,
			"uid":        event.UID,
			"project_id": event.ProjectID,
			"error":      err.Error(),
		})
		return settled, err
	}

	w.logger.Info("Withdrawal processed successfully", map[string]any{
		"request_id": event.RequestID,
		"uid":        event.UID,
		"amount":     event.Amount,
		"project_id": event.ProjectID,
	})
	return settled, nil
}

// validate checks the caller-supplied event fields before any shard access
func (w *WithdrawalUseCase) validate(event usecaseport.WithdrawalEvent) error {
	if event.RequestID == "" || event.UID == "" || event.ProjectID == "" {
		return errs.ErrInvalidRequest
	}
	if event.Amount <= 0 {
		return errs.ErrInvalidRequest
	}
	return nil
}

// failBestEffort writes a terminal failed status onto the request document
// when settlement never ran. Event entry points have no response path, so
// this write is the only signal back to the client; its own failure is only
// logged.
func (w *WithdrawalUseCase) failBestEffort(ctx context.Context, event usecaseport.WithdrawalEvent, reason string) {
	if event.ProjectID == "" || event.RequestID == "" {
		return
	}
	store, err := w.registry.Resolve(event.ProjectID)
	if err != nil {
		return
	}
	if err := store.FailWithdrawal(ctx, event.RequestID, reason); err != nil {
		w.logger.Warn("Could not record withdrawal failure status", map[string]any{
			"request_id": event.RequestID,
			"project_id": event.ProjectID,
			"error":      err.Error(),
		})
	}
}
