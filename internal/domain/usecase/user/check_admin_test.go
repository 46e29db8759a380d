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

func TestUserUseCase_CheckAdminStatus(t *testing.T) {
	serverTime := time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC)
	ctx := context.Background()

	t.Run("admin user reports true", func(t *testing.T) {
		// Arrange
		mockStore := new(persistencemocks.MockShardStore)
		mockStore.On("GetUser", ctx, "admin-1").Return(&entity.User{UID: "admin-1", IsAdmin: true}, nil)

		useCase := NewUserUseCase(registryWith("rewardly-prod01", mockStore), fixedClock(t, serverTime), relaxedLogger(), 3)

		// Act
		isAdmin, err := useCase.CheckAdminStatus(ctx, "rewardly-prod01", "admin-1")

		// Assert
		require.NoError(t, err)
		assert.True(t, isAdmin)
	})

	t.Run("regular user reports false", func(t *testing.T) {
		mockStore := new(persistencemocks.MockShardStore)
		mockStore.On("GetUser", ctx, "user-1").Return(&entity.User{UID: "user-1"}, nil)

		useCase := NewUserUseCase(registryWith("rewardly-prod01", mockStore), fixedClock(t, serverTime), relaxedLogger(), 3)

		isAdmin, err := useCase.CheckAdminStatus(ctx, "rewardly-prod01", "user-1")

		require.NoError(t, err)
		assert.False(t, isAdmin)
	})

	t.Run("missing user reports false without error", func(t *testing.T) {
		mockStore := new(persistencemocks.MockShardStore)
		mockStore.On("GetUser", ctx, "ghost-1").Return(nil, errs.ErrUserNotFound)

		useCase := NewUserUseCase(registryWith("rewardly-prod01", mockStore), fixedClock(t, serverTime), relaxedLogger(), 3)

		isAdmin, err := useCase.CheckAdminStatus(ctx, "rewardly-prod01", "ghost-1")

		assert.NoError(t, err, "a missing document is a valid non-admin answer")
		assert.False(t, isAdmin)
	})

	t.Run("shard failure is surfaced", func(t *testing.T) {
		mockStore := new(persistencemocks.MockShardStore)
		mockStore.On("GetUser", ctx, "user-1").Return(nil, errs.ErrShardUnreachable)

		useCase := NewUserUseCase(registryWith("rewardly-prod01", mockStore), fixedClock(t, serverTime), relaxedLogger(), 3)

		isAdmin, err := useCase.CheckAdminStatus(ctx, "rewardly-prod01", "user-1")

		assert.ErrorIs(t, err, errs.ErrShardUnreachable)
		assert.False(t, isAdmin)
	})

	t.Run("missing identifiers are rejected", func(t *testing.T) {
		registry := new(persistencemocks.MockShardRegistry)
		useCase := NewUserUseCase(registry, fixedClock(t, serverTime), relaxedLogger(), 3)

		_, err := useCase.CheckAdminStatus(ctx, "", "user-1")

		assert.ErrorIs(t, err, errs.ErrInvalidRequest)
	})
}

func TestUserUseCase_GetCoins(t *testing.T) {
	serverTime := time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC)
	ctx := context.Background()

	t.Run("returns the current balance", func(t *testing.T) {
		record := &entity.User{UID: "user-1"}
		record.SetCoins(1500)
		mockStore := new(persistencemocks.MockShardStore)
		mockStore.On("GetUser", ctx, "user-1").Return(record, nil)

		useCase := NewUserUseCase(registryWith("rewardly-prod01", mockStore), fixedClock(t, serverTime), relaxedLogger(), 3)

		coins, err := useCase.GetCoins(ctx, "rewardly-prod01", "user-1")

		require.NoError(t, err)
		assert.Equal(t, int64(1500), coins)
	})

	t.Run("missing user is an error here", func(t *testing.T) {
		mockStore := new(persistencemocks.MockShardStore)
		mockStore.On("GetUser", ctx, "ghost-1").Return(nil, errs.ErrUserNotFound)

		useCase := NewUserUseCase(registryWith("rewardly-prod01", mockStore), fixedClock(t, serverTime), relaxedLogger(), 3)

		coins, err := useCase.GetCoins(ctx, "rewardly-prod01", "ghost-1")

		assert.ErrorIs(t, err, errs.ErrUserNotFound)
		assert.Equal(t, int64(0), coins)
	})
}
