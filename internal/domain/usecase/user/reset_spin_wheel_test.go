package user

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rewardly-app/rewards-processor/internal/domain/entity"
	errs "github.com/rewardly-app/rewards-processor/internal/domain/error"
	persistencemocks "github.com/rewardly-app/rewards-processor/mocks/port/persistence"
)

func TestUserUseCase_ResetSpinWheel(t *testing.T) {
	serverTime := time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC)

	t.Run("new day resets the counters", func(t *testing.T) {
		// Arrange
		ctx := context.Background()
		record := &entity.User{
			UID:                     "user-1",
			SpinWheelFreeSpinsToday: 0,
			SpinWheelAdSpinsToday:   4,
			LastSpinWheelDate:       "2025-06-01",
		}
		mockStore := new(persistencemocks.MockShardStore)
		mutateThrough(mockStore, "user-1", record)

		useCase := NewUserUseCase(registryWith("rewardly-prod01", mockStore), fixedClock(t, serverTime), relaxedLogger(), 3)

		// Act
		result, err := useCase.ResetSpinWheel(ctx, "rewardly-prod01", "user-1")

		// Assert
		require.NoError(t, err)
		assert.True(t, result.WasReset)
		assert.Equal(t, 3, result.FreeSpinsToday)
		assert.Equal(t, 0, result.AdSpinsToday)
		assert.Equal(t, "2025-06-02", result.LastSpinWheelDate)
	})

	t.Run("same day leaves counters untouched", func(t *testing.T) {
		ctx := context.Background()
		record := &entity.User{
			UID:                     "user-1",
			SpinWheelFreeSpinsToday: 1,
			SpinWheelAdSpinsToday:   2,
			LastSpinWheelDate:       "2025-06-02",
		}
		mockStore := new(persistencemocks.MockShardStore)
		mutateThrough(mockStore, "user-1", record)

		useCase := NewUserUseCase(registryWith("rewardly-prod01", mockStore), fixedClock(t, serverTime), relaxedLogger(), 3)

		result, err := useCase.ResetSpinWheel(ctx, "rewardly-prod01", "user-1")

		require.NoError(t, err)
		assert.False(t, result.WasReset)
		assert.Equal(t, 1, result.FreeSpinsToday, "spent spins must not be refilled within a day")
		assert.Equal(t, 2, result.AdSpinsToday)
	})

	t.Run("repeated calls reset at most once per day", func(t *testing.T) {
		ctx := context.Background()
		record := &entity.User{
			UID:               "user-1",
			LastSpinWheelDate: "2025-06-01",
		}
		mockStore := new(persistencemocks.MockShardStore)
		mutateThrough(mockStore, "user-1", record)

		useCase := NewUserUseCase(registryWith("rewardly-prod01", mockStore), fixedClock(t, serverTime), relaxedLogger(), 3)

		first, err := useCase.ResetSpinWheel(ctx, "rewardly-prod01", "user-1")
		require.NoError(t, err)
		assert.True(t, first.WasReset)

		record.SpinWheelFreeSpinsToday = 2 // one spin spent between calls

		second, err := useCase.ResetSpinWheel(ctx, "rewardly-prod01", "user-1")
		require.NoError(t, err)
		assert.False(t, second.WasReset)
		assert.Equal(t, 2, second.FreeSpinsToday)
	})

	t.Run("missing identifiers are rejected", func(t *testing.T) {
		ctx := context.Background()
		registry := new(persistencemocks.MockShardRegistry)

		useCase := NewUserUseCase(registry, fixedClock(t, serverTime), relaxedLogger(), 3)

		_, err := useCase.ResetSpinWheel(ctx, "rewardly-prod01", "")

		assert.ErrorIs(t, err, errs.ErrInvalidRequest)
	})
}
