package scan

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/rewardly-app/rewards-processor/internal/domain/entity"
	errs "github.com/rewardly-app/rewards-processor/internal/domain/error"
	"github.com/rewardly-app/rewards-processor/internal/domain/port/persistence"
	coremocks "github.com/rewardly-app/rewards-processor/mocks/port/core"
	persistencemocks "github.com/rewardly-app/rewards-processor/mocks/port/persistence"
)

// lookupByCode builds the referral-code lookup the production callers use
func lookupByCode(code string) Lookup {
	return func(ctx context.Context, shard persistence.ShardStore) (*entity.User, error) {
		return shard.FindUserByReferralCode(ctx, code)
	}
}

func newShard(shardID string) *persistencemocks.MockShardStore {
	shard := new(persistencemocks.MockShardStore)
	shard.On("ShardID").Return(shardID).Maybe()
	return shard
}

func newRegistry(shards ...persistence.ShardStore) *persistencemocks.MockShardRegistry {
	registry := new(persistencemocks.MockShardRegistry)
	registry.On("All").Return(shards)
	return registry
}

func quietLogger() *coremocks.MockLogger {
	logger := new(coremocks.MockLogger)
	logger.On("Warn", mock.Anything, mock.Anything).Maybe()
	return logger
}

func TestSequentialFindFirst(t *testing.T) {
	ctx := context.Background()

	t.Run("finds match and short-circuits", func(t *testing.T) {
		// Arrange
		found := &entity.User{UID: "referrer-1", ReferralCode: "ABCD1234"}
		shardA := newShard("shard-a")
		shardB := newShard("shard-b")
		shardA.On("FindUserByReferralCode", ctx, "ABCD1234").Return(found, nil).Once()

		policy := NewSequential(quietLogger())

		// Act
		match, err := policy.FindFirst(ctx, newRegistry(shardA, shardB), lookupByCode("ABCD1234"))

		// Assert
		require.NoError(t, err)
		require.NotNil(t, match)
		assert.Equal(t, "referrer-1", match.User.UID)
		assert.Equal(t, "shard-a", match.Shard.ShardID())
		shardB.AssertNotCalled(t, "FindUserByReferralCode", mock.Anything, mock.Anything)
	})

	t.Run("registry order is the tie-break", func(t *testing.T) {
		// Both shards hold the code; the first registered shard must win.
		inA := &entity.User{UID: "referrer-a", ReferralCode: "ABCD1234"}
		shardA := newShard("shard-a")
		shardB := newShard("shard-b")
		shardA.On("FindUserByReferralCode", ctx, "ABCD1234").Return(inA, nil).Once()

		policy := NewSequential(quietLogger())

		match, err := policy.FindFirst(ctx, newRegistry(shardA, shardB), lookupByCode("ABCD1234"))

		require.NoError(t, err)
		require.NotNil(t, match)
		assert.Equal(t, "referrer-a", match.User.UID)
	})

	t.Run("clean miss returns nil nil", func(t *testing.T) {
		shardA := newShard("shard-a")
		shardB := newShard("shard-b")
		shardA.On("FindUserByReferralCode", ctx, "ZZZZ9999").Return(nil, errs.ErrUserNotFound).Once()
		shardB.On("FindUserByReferralCode", ctx, "ZZZZ9999").Return(nil, errs.ErrUserNotFound).Once()

		policy := NewSequential(quietLogger())

		match, err := policy.FindFirst(ctx, newRegistry(shardA, shardB), lookupByCode("ZZZZ9999"))

		assert.NoError(t, err)
		assert.Nil(t, match)
	})

	t.Run("failed probe makes the miss inconclusive", func(t *testing.T) {
		shardA := newShard("shard-a")
		shardB := newShard("shard-b")
		shardA.On("FindUserByReferralCode", ctx, "ZZZZ9999").Return(nil, errs.ErrShardUnreachable).Once()
		shardB.On("FindUserByReferralCode", ctx, "ZZZZ9999").Return(nil, errs.ErrUserNotFound).Once()

		policy := NewSequential(quietLogger())

		match, err := policy.FindFirst(ctx, newRegistry(shardA, shardB), lookupByCode("ZZZZ9999"))

		assert.Nil(t, match)
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrShardUnreachable)
	})

	t.Run("match after a failed probe still wins", func(t *testing.T) {
		found := &entity.User{UID: "referrer-b", ReferralCode: "ABCD1234"}
		shardA := newShard("shard-a")
		shardB := newShard("shard-b")
		shardA.On("FindUserByReferralCode", ctx, "ABCD1234").Return(nil, errs.ErrShardUnreachable).Once()
		shardB.On("FindUserByReferralCode", ctx, "ABCD1234").Return(found, nil).Once()

		policy := NewSequential(quietLogger())

		match, err := policy.FindFirst(ctx, newRegistry(shardA, shardB), lookupByCode("ABCD1234"))

		require.NoError(t, err)
		require.NotNil(t, match)
		assert.Equal(t, "referrer-b", match.User.UID)
	})
}

func TestParallelFindFirst(t *testing.T) {
	ctx := context.Background()

	t.Run("finds match across shards", func(t *testing.T) {
		found := &entity.User{UID: "referrer-2", ReferralCode: "WXYZ5678"}
		shardA := newShard("shard-a")
		shardB := newShard("shard-b")
		shardA.On("FindUserByReferralCode", mock.Anything, "WXYZ5678").Return(nil, errs.ErrUserNotFound).Maybe()
		shardB.On("FindUserByReferralCode", mock.Anything, "WXYZ5678").Return(found, nil).Once()

		policy := NewParallel(quietLogger())

		match, err := policy.FindFirst(ctx, newRegistry(shardA, shardB), lookupByCode("WXYZ5678"))

		require.NoError(t, err)
		require.NotNil(t, match)
		assert.Equal(t, "referrer-2", match.User.UID)
		assert.Equal(t, "shard-b", match.Shard.ShardID())
	})

	t.Run("clean miss returns nil nil", func(t *testing.T) {
		shardA := newShard("shard-a")
		shardB := newShard("shard-b")
		shardA.On("FindUserByReferralCode", mock.Anything, "ZZZZ9999").Return(nil, errs.ErrUserNotFound).Once()
		shardB.On("FindUserByReferralCode", mock.Anything, "ZZZZ9999").Return(nil, errs.ErrUserNotFound).Once()

		policy := NewParallel(quietLogger())

		match, err := policy.FindFirst(ctx, newRegistry(shardA, shardB), lookupByCode("ZZZZ9999"))

		assert.NoError(t, err)
		assert.Nil(t, match)
	})

	t.Run("failed probe without match surfaces the error", func(t *testing.T) {
		shardA := newShard("shard-a")
		shardB := newShard("shard-b")
		shardA.On("FindUserByReferralCode", mock.Anything, "ZZZZ9999").Return(nil, errs.ErrShardUnreachable).Once()
		shardB.On("FindUserByReferralCode", mock.Anything, "ZZZZ9999").Return(nil, errs.ErrUserNotFound).Once()

		policy := NewParallel(quietLogger())

		match, err := policy.FindFirst(ctx, newRegistry(shardA, shardB), lookupByCode("ZZZZ9999"))

		assert.Nil(t, match)
		assert.ErrorIs(t, err, errs.ErrShardUnreachable)
	})

	t.Run("match beats a concurrent probe failure", func(t *testing.T) {
		found := &entity.User{UID: "referrer-3", ReferralCode: "ABCD1234"}
		shardA := newShard("shard-a")
		shardB := newShard("shard-b")
		shardA.On("FindUserByReferralCode", mock.Anything, "ABCD1234").Return(nil, errors.New("deadline exceeded")).Maybe()
		shardB.On("FindUserByReferralCode", mock.Anything, "ABCD1234").Return(found, nil).Once()

		policy := NewParallel(quietLogger())

		match, err := policy.FindFirst(ctx, newRegistry(shardA, shardB), lookupByCode("ABCD1234"))

		require.NoError(t, err)
		require.NotNil(t, match)
		assert.Equal(t, "referrer-3", match.User.UID)
	})
}
