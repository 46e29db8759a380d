package error

import (
	"errors"
	"fmt"
)

// Kind values for standardized callable API responses
const (
	KindUnauthenticated    = "unauthenticated"
	KindInvalidArgument    = "invalid-argument"
	KindNotFound           = "not-found"
	KindFailedPrecondition = "failed-precondition"
	KindResourceExhausted  = "resource-exhausted"
	KindUnavailable        = "unavailable"
	KindAborted            = "aborted"
	KindInternal           = "internal"
)

// Base error types
var (
	// ErrInvalidRequest is returned when caller-supplied fields are missing or
	// malformed; it is raised before any shard access
	ErrInvalidRequest = errors.New("invalid request data")

	// ErrUnauthenticated is returned when the caller identity cannot be verified
	ErrUnauthenticated = errors.New("caller is not authenticated")

	// ErrUserNotFound is returned when the referenced user document is absent
	ErrUserNotFound = errors.New("user not found")

	// ErrWithdrawalNotFound is returned when the referenced withdrawal request is absent
	ErrWithdrawalNotFound = errors.New("withdrawal request not found")

	// ErrShardNotFound is returned when a shard identifier is absent from the registry
	ErrShardNotFound = errors.New("shard not found in registry")

	// ErrInsufficientCoins is returned when a deduction would drive the balance negative.
	// The text matches the terminal error detail written onto failed withdrawal requests.
	ErrInsufficientCoins = errors.New("Insufficient coins for withdrawal")

	// ErrPreconditionFailed is returned when a transactional precondition other than
	// balance sufficiency does not hold (e.g. a stale daily-counter date)
	ErrPreconditionFailed = errors.New("transaction precondition failed")

	// ErrTransactionConflict is returned when the shard's transaction layer exhausted
	// its automatic retries against a concurrent writer
	ErrTransactionConflict = errors.New("transaction aborted after retry exhaustion")

	// ErrShardUnreachable is returned on network or credential failures talking to a shard
	ErrShardUnreachable = errors.New("shard unreachable")

	// ErrExhaustedRetries is returned when referral-code generation gives up after the
	// configured attempt cap
	ErrExhaustedRetries = errors.New("exhausted referral code generation attempts")

	// ErrAlreadyAwarded signals that a referral bonus was already paid out; it marks
	// an idempotent no-op, not a failure
	ErrAlreadyAwarded = errors.New("referral bonus already awarded")

	// ErrWithdrawalSettled is returned when a withdrawal request already reached a
	// terminal status; requests are mutated exactly once
	ErrWithdrawalSettled = errors.New("withdrawal request already settled")

	// ErrInternal is returned for unexpected server-side errors
	ErrInternal = errors.New("internal error")
)

// Kind maps known errors to the structured kind returned to callable-API callers
func Kind(err error) string {
	switch {
	case errors.Is(err, ErrUnauthenticated):
		return KindUnauthenticated
	case errors.Is(err, ErrInvalidRequest):
		return KindInvalidArgument
	case errors.Is(err, ErrUserNotFound),
		errors.Is(err, ErrWithdrawalNotFound),
		errors.Is(err, ErrShardNotFound):
		return KindNotFound
	case errors.Is(err, ErrInsufficientCoins),
		errors.Is(err, ErrPreconditionFailed),
		errors.Is(err, ErrWithdrawalSettled):
		return KindFailedPrecondition
	case errors.Is(err, ErrExhaustedRetries):
		return KindResourceExhausted
	case errors.Is(err, ErrShardUnreachable):
		return KindUnavailable
	case errors.Is(err, ErrTransactionConflict):
		return KindAborted
	default:
		return KindInternal
	}
}

// InsufficientCoinsError provides balance detail for a rejected deduction
type InsufficientCoinsError struct {
	UID          string
	ShardID      string
	Amount       int64
	CurrentCoins int64
}

// Error implements the error interface
func (e *InsufficientCoinsError) Error() string {
	return fmt.Sprintf("insufficient coins for user %s in shard %s: required %d, available %d",
		e.UID, e.ShardID, e.Amount, e.CurrentCoins)
}

// Is checks if the target error is an ErrInsufficientCoins
func (e *InsufficientCoinsError) Is(target error) bool {
	return target == ErrInsufficientCoins
}

// LogFields returns a map of fields for structured logging
func (e *InsufficientCoinsError) LogFields() map[string]any {
	return map[string]any{
		"error_type":    "insufficient_coins",
		"uid":           e.UID,
		"shard_id":      e.ShardID,
		"amount":        e.Amount,
		"current_coins": e.CurrentCoins,
	}
}

// NewInsufficientCoinsError creates a new detailed insufficient coins error
func NewInsufficientCoinsError(uid, shardID string, amount, currentCoins int64) error {
	return &InsufficientCoinsError{
		UID:          uid,
		ShardID:      shardID,
		Amount:       amount,
		CurrentCoins: currentCoins,
	}
}

// ShardError wraps a failure scoped to a single shard
type ShardError struct {
	ShardID string
	Op      string
	Err     error
}

// Error implements the error interface
func (e *ShardError) Error() string {
	return fmt.Sprintf("shard %s: %s: %v", e.ShardID, e.Op, e.Err)
}

// Unwrap returns the underlying error
func (e *ShardError) Unwrap() error {
	return e.Err
}

// LogFields returns a map of fields for structured logging
func (e *ShardError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "shard_error",
		"shard_id":   e.ShardID,
		"op":         e.Op,
		"error":      e.Err.Error(),
	}
}

// NewShardError creates a shard-scoped error
func NewShardError(shardID, op string, err error) error {
	return &ShardError{ShardID: shardID, Op: op, Err: err}
}

// IsInsufficientCoinsError checks if the error is an insufficient coins error
func IsInsufficientCoinsError(err error) bool {
	return errors.Is(err, ErrInsufficientCoins)
}

// IsUserNotFoundError checks if the error is a user not found error
func IsUserNotFoundError(err error) bool {
	return errors.Is(err, ErrUserNotFound)
}

// IsNotFoundError checks if the error is any "not found" type of error
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrUserNotFound) ||
		errors.Is(err, ErrWithdrawalNotFound) ||
		errors.Is(err, ErrShardNotFound)
}

// IsShardUnreachableError checks if the error is a shard connectivity failure
func IsShardUnreachableError(err error) bool {
	return errors.Is(err, ErrShardUnreachable)
}
