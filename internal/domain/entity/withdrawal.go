package entity

import (
	"time"

	errs "github.com/rewardly-app/rewards-processor/internal/domain/error"
	coreport "github.com/rewardly-app/rewards-processor/internal/domain/port/core"
)

// WithdrawalStatus defines possible status values for a withdrawal request
type WithdrawalStatus string

// WithdrawalStatus constants
const (
	WithdrawalPending   WithdrawalStatus = "pending"
	WithdrawalProcessed WithdrawalStatus = "processed"
	WithdrawalFailed    WithdrawalStatus = "failed"
)

// WithdrawalRequest represents a client-created request to withdraw coins.
// A request is mutated exactly once: it is terminal after its first transition
// out of pending, with no retries.
type WithdrawalRequest struct {
	ID          string           // Document identifier of the request
	UID         string           // Requester identifier, shard-local
	Amount      int64            // Requested amount, positive
	ProjectID   string           // Identifier of the shard holding the requester
	Status      WithdrawalStatus // pending -> processed | failed
	Error       string           // Terminal error detail on failure
	CreatedAt   time.Time
	ProcessedAt *time.Time // When the request reached a terminal status (nullable)
}

// NewWithdrawalRequest creates a pending withdrawal request with basic validation
func NewWithdrawalRequest(id, uid string, amount int64, projectID string, timeProvider coreport.TimeProvider) (*WithdrawalRequest, error) {
	if id == "" || uid == "" || projectID == "" {
		return nil, errs.ErrInvalidRequest
	}
	if amount <= 0 {
		return nil, errs.ErrInvalidRequest
	}

	return &WithdrawalRequest{
		ID:        id,
		UID:       uid,
		Amount:    amount,
		ProjectID: projectID,
		Status:    WithdrawalPending,
		CreatedAt: timeProvider.Now(),
	}, nil
}

// Validate checks the caller-supplied fields before any shard access
func (w *WithdrawalRequest) Validate() error {
	if w.ID == "" || w.UID == "" || w.ProjectID == "" || w.Amount <= 0 {
		return errs.ErrInvalidRequest
	}
	return nil
}

// IsSettled reports whether the request already reached a terminal status
func (w *WithdrawalRequest) IsSettled() bool {
	return w.Status != WithdrawalPending
}

// MarkProcessed marks the request as successfully deducted
func (w *WithdrawalRequest) MarkProcessed(timeProvider coreport.TimeProvider) {
	now := timeProvider.Now()
	w.ProcessedAt = &now
	w.Status = WithdrawalProcessed
	w.Error = ""
}

// MarkFailed marks the request as terminally failed with the captured reason
func (w *WithdrawalRequest) MarkFailed(timeProvider coreport.TimeProvider, reason string) {
	now := timeProvider.Now()
	w.ProcessedAt = &now
	w.Status = WithdrawalFailed
	w.Error = reason
}
