package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errs "github.com/rewardly-app/rewards-processor/internal/domain/error"
	coremocks "github.com/rewardly-app/rewards-processor/mocks/port/core"
)

func TestNewWithdrawalRequest(t *testing.T) {
	fixedTime := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(fixedTime).Maybe()

	t.Run("Valid request creation", func(t *testing.T) {
		req, err := NewWithdrawalRequest("req-1", "user-1", 400, "rewardly-prod01", mockTime)

		require.NoError(t, err)
		assert.Equal(t, "req-1", req.ID)
		assert.Equal(t, WithdrawalPending, req.Status)
		assert.Equal(t, fixedTime, req.CreatedAt)
		assert.Nil(t, req.ProcessedAt)
		assert.False(t, req.IsSettled())
	})

	t.Run("Invalid fields are rejected", func(t *testing.T) {
		testCases := []struct {
			name      string
			id        string
			uid       string
			amount    int64
			projectID string
		}{
			{"missing id", "", "user-1", 400, "rewardly-prod01"},
			{"missing uid", "req-1", "", 400, "rewardly-prod01"},
			{"missing project", "req-1", "user-1", 400, ""},
			{"zero amount", "req-1", "user-1", 0, "rewardly-prod01"},
			{"negative amount", "req-1", "user-1", -50, "rewardly-prod01"},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				req, err := NewWithdrawalRequest(tc.id, tc.uid, tc.amount, tc.projectID, mockTime)
				assert.ErrorIs(t, err, errs.ErrInvalidRequest)
				assert.Nil(t, req)
			})
		}
	})
}

func TestWithdrawalTerminalTransitions(t *testing.T) {
	fixedTime := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(fixedTime).Maybe()

	t.Run("MarkProcessed", func(t *testing.T) {
		req, _ := NewWithdrawalRequest("req-1", "user-1", 400, "rewardly-prod01", mockTime)

		req.MarkProcessed(mockTime)

		assert.Equal(t, WithdrawalProcessed, req.Status)
		assert.Empty(t, req.Error)
		require.NotNil(t, req.ProcessedAt)
		assert.Equal(t, fixedTime, *req.ProcessedAt)
		assert.True(t, req.IsSettled())
	})

	t.Run("MarkFailed keeps the reason", func(t *testing.T) {
		req, _ := NewWithdrawalRequest("req-1", "user-1", 900, "rewardly-prod01", mockTime)

		req.MarkFailed(mockTime, "Insufficient coins for withdrawal")

		assert.Equal(t, WithdrawalFailed, req.Status)
		assert.Equal(t, "Insufficient coins for withdrawal", req.Error)
		assert.True(t, req.IsSettled())
	})
}
