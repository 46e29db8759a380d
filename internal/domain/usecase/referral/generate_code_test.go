package referral

import (
	"context"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/rewardly-app/rewards-processor/internal/domain/entity"
	errs "github.com/rewardly-app/rewards-processor/internal/domain/error"
	coreport "github.com/rewardly-app/rewards-processor/internal/domain/port/core"
	"github.com/rewardly-app/rewards-processor/internal/domain/port/persistence"
	"github.com/rewardly-app/rewards-processor/internal/domain/usecase/scan"
	coremocks "github.com/rewardly-app/rewards-processor/mocks/port/core"
	persistencemocks "github.com/rewardly-app/rewards-processor/mocks/port/persistence"
)

func relaxedLogger() *coremocks.MockLogger {
	logger := new(coremocks.MockLogger)
	logger.On("Debug", mock.Anything, mock.Anything).Maybe()
	logger.On("Info", mock.Anything, mock.Anything).Maybe()
	logger.On("Warn", mock.Anything, mock.Anything).Maybe()
	logger.On("Error", mock.Anything, mock.Anything).Maybe()
	return logger
}

// sleeplessClock swallows backoff sleeps so retry tests run instantly
func sleeplessClock(t *testing.T) *coremocks.MockTimeProvider {
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Sleep(mock.Anything).Maybe()
	return mockTime
}

// codeQueue hands out the given codes in order, repeating the last one when
// the queue runs dry
func codeQueue(codes ...string) CodeSource {
	i := 0
	return func() string {
		code := codes[i]
		if i < len(codes)-1 {
			i++
		}
		return code
	}
}

func newShard(shardID string) *persistencemocks.MockShardStore {
	shard := new(persistencemocks.MockShardStore)
	shard.On("ShardID").Return(shardID).Maybe()
	return shard
}

func registryOf(shards ...persistence.ShardStore) *persistencemocks.MockShardRegistry {
	registry := new(persistencemocks.MockShardRegistry)
	registry.On("All").Return(shards)
	return registry
}

func TestUUIDCodeSource(t *testing.T) {
	pattern := regexp.MustCompile(`^[0-9A-F]{8}$`)

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		code := UUIDCodeSource()
		assert.Len(t, code, entity.ReferralCodeLength)
		assert.Regexp(t, pattern, code)
		seen[code] = true
	}
	// UUID-derived codes collide rarely; 100 draws should all differ
	assert.Greater(t, len(seen), 95)
}

func TestReferralUseCase_GenerateUniqueCode(t *testing.T) {
	ctx := context.Background()
	cfg := Config{MaxAttempts: 3, RetryBackoff: 10 * coreport.Millisecond, FastPathBonus: 500}

	t.Run("first candidate free on all shards", func(t *testing.T) {
		// Arrange
		shardA := newShard("shard-a")
		shardB := newShard("shard-b")
		shardA.On("FindUserByReferralCode", ctx, "AAAA1111").Return(nil, errs.ErrUserNotFound).Once()
		shardB.On("FindUserByReferralCode", ctx, "AAAA1111").Return(nil, errs.ErrUserNotFound).Once()

		useCase := NewReferralUseCase(registryOf(shardA, shardB), scan.NewSequential(relaxedLogger()), codeQueue("AAAA1111"), sleeplessClock(t), relaxedLogger(), cfg)

		// Act
		code, err := useCase.GenerateUniqueCode(ctx)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, "AAAA1111", code)
		shardA.AssertExpectations(t)
		shardB.AssertExpectations(t)
	})

	t.Run("collision regenerates until free", func(t *testing.T) {
		taken := &entity.User{UID: "referrer-1", ReferralCode: "AAAA1111"}
		shardA := newShard("shard-a")
		shardA.On("FindUserByReferralCode", ctx, "AAAA1111").Return(taken, nil).Once()
		shardA.On("FindUserByReferralCode", ctx, "BBBB2222").Return(nil, errs.ErrUserNotFound).Once()

		mockTime := coremocks.NewMockTimeProvider(t)
		mockTime.EXPECT().Sleep(cfg.RetryBackoff).Once()

		useCase := NewReferralUseCase(registryOf(shardA), scan.NewSequential(relaxedLogger()), codeQueue("AAAA1111", "BBBB2222"), mockTime, relaxedLogger(), cfg)

		code, err := useCase.GenerateUniqueCode(ctx)

		require.NoError(t, err)
		assert.Equal(t, "BBBB2222", code)
	})

	t.Run("probe failure conservatively discards the candidate", func(t *testing.T) {
		// The unreachable shard might hold the candidate, so it must not be
		// issued even though no collision was observed.
		shardA := newShard("shard-a")
		shardA.On("FindUserByReferralCode", ctx, "AAAA1111").Return(nil, errs.ErrShardUnreachable).Once()
		shardA.On("FindUserByReferralCode", ctx, "BBBB2222").Return(nil, errs.ErrUserNotFound).Once()

		useCase := NewReferralUseCase(registryOf(shardA), scan.NewSequential(relaxedLogger()), codeQueue("AAAA1111", "BBBB2222"), sleeplessClock(t), relaxedLogger(), cfg)

		code, err := useCase.GenerateUniqueCode(ctx)

		require.NoError(t, err)
		assert.Equal(t, "BBBB2222", code)
	})

	t.Run("exhausted attempts return ErrExhaustedRetries", func(t *testing.T) {
		taken := &entity.User{UID: "referrer-1", ReferralCode: "AAAA1111"}
		shardA := newShard("shard-a")
		shardA.On("FindUserByReferralCode", ctx, "AAAA1111").Return(taken, nil).Times(cfg.MaxAttempts)

		useCase := NewReferralUseCase(registryOf(shardA), scan.NewSequential(relaxedLogger()), codeQueue("AAAA1111"), sleeplessClock(t), relaxedLogger(), cfg)

		code, err := useCase.GenerateUniqueCode(ctx)

		assert.Empty(t, code)
		assert.ErrorIs(t, err, errs.ErrExhaustedRetries)
	})

	t.Run("cancelled context stops the loop", func(t *testing.T) {
		cancelled, cancel := context.WithCancel(context.Background())
		cancel()

		registry := new(persistencemocks.MockShardRegistry)
		useCase := NewReferralUseCase(registry, scan.NewSequential(relaxedLogger()), codeQueue("AAAA1111"), sleeplessClock(t), relaxedLogger(), cfg)

		code, err := useCase.GenerateUniqueCode(cancelled)

		assert.Empty(t, code)
		assert.ErrorIs(t, err, context.Canceled)
		registry.AssertNotCalled(t, "All")
	})

	t.Run("default code source is used when nil", func(t *testing.T) {
		shardA := newShard("shard-a")
		shardA.On("FindUserByReferralCode", ctx, mock.AnythingOfType("string")).Return(nil, errs.ErrUserNotFound).Once()

		useCase := NewReferralUseCase(registryOf(shardA), scan.NewSequential(relaxedLogger()), nil, sleeplessClock(t), relaxedLogger(), cfg)

		code, err := useCase.GenerateUniqueCode(ctx)

		require.NoError(t, err)
		assert.Len(t, code, entity.ReferralCodeLength)
	})
}
