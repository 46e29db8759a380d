package error

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKind(t *testing.T) {
	testCases := []struct {
		name string
		err  error
		kind string
	}{
		{"unauthenticated", ErrUnauthenticated, KindUnauthenticated},
		{"invalid request", ErrInvalidRequest, KindInvalidArgument},
		{"user not found", ErrUserNotFound, KindNotFound},
		{"withdrawal not found", ErrWithdrawalNotFound, KindNotFound},
		{"shard not found", ErrShardNotFound, KindNotFound},
		{"insufficient coins", ErrInsufficientCoins, KindFailedPrecondition},
		{"precondition failed", ErrPreconditionFailed, KindFailedPrecondition},
		{"withdrawal settled", ErrWithdrawalSettled, KindFailedPrecondition},
		{"exhausted retries", ErrExhaustedRetries, KindResourceExhausted},
		{"shard unreachable", ErrShardUnreachable, KindUnavailable},
		{"transaction conflict", ErrTransactionConflict, KindAborted},
		{"unknown error", errors.New("boom"), KindInternal},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.kind, Kind(tc.err))
		})
	}

	t.Run("wrapped errors keep their kind", func(t *testing.T) {
		wrapped := fmt.Errorf("%w: user u1 in shard s1", ErrUserNotFound)
		assert.Equal(t, KindNotFound, Kind(wrapped))
	})
}

func TestInsufficientCoinsError(t *testing.T) {
	err := NewInsufficientCoinsError("user-1", "rewardly-prod01", 900, 600)

	t.Run("matches the sentinel", func(t *testing.T) {
		assert.ErrorIs(t, err, ErrInsufficientCoins)
		assert.True(t, IsInsufficientCoinsError(err))
		assert.Equal(t, KindFailedPrecondition, Kind(err))
	})

	t.Run("carries balance detail", func(t *testing.T) {
		var detailed *InsufficientCoinsError
		assert.ErrorAs(t, err, &detailed)
		assert.Equal(t, int64(900), detailed.Amount)
		assert.Equal(t, int64(600), detailed.CurrentCoins)

		fields := detailed.LogFields()
		assert.Equal(t, "rewardly-prod01", fields["shard_id"])
	})
}

func TestShardError(t *testing.T) {
	cause := fmt.Errorf("%w: dial timeout", ErrShardUnreachable)
	err := NewShardError("rewardly-prod02", "query sync candidates", cause)

	t.Run("unwraps to the cause", func(t *testing.T) {
		assert.ErrorIs(t, err, ErrShardUnreachable)
		assert.True(t, IsShardUnreachableError(err))
		assert.Equal(t, KindUnavailable, Kind(err))
	})

	t.Run("names the shard and operation", func(t *testing.T) {
		assert.Contains(t, err.Error(), "rewardly-prod02")
		assert.Contains(t, err.Error(), "query sync candidates")
	})
}

func TestIsNotFoundError(t *testing.T) {
	assert.True(t, IsNotFoundError(ErrUserNotFound))
	assert.True(t, IsNotFoundError(ErrWithdrawalNotFound))
	assert.True(t, IsNotFoundError(ErrShardNotFound))
	assert.False(t, IsNotFoundError(ErrInsufficientCoins))
	assert.False(t, IsNotFoundError(nil))
}
