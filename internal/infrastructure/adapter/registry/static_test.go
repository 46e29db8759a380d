package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errs "github.com/rewardly-app/rewards-processor/internal/domain/error"
	persistencemocks "github.com/rewardly-app/rewards-processor/mocks/port/persistence"
)

func shardWithID(id string) *persistencemocks.MockShardStore {
	shard := new(persistencemocks.MockShardStore)
	shard.On("ShardID").Return(id).Maybe()
	return shard
}

func TestNewStatic(t *testing.T) {
	t.Run("preserves insertion order", func(t *testing.T) {
		reg, err := NewStatic(
			shardWithID("rewardly-prod01"),
			shardWithID("rewardly-prod02"),
			shardWithID("rewardly-prod03"),
		)

		require.NoError(t, err)
		assert.Equal(t, []string{"rewardly-prod01", "rewardly-prod02", "rewardly-prod03"}, reg.IDs())

		all := reg.All()
		require.Len(t, all, 3)
		assert.Equal(t, "rewardly-prod01", all[0].ShardID())
		assert.Equal(t, "rewardly-prod03", all[2].ShardID())
	})

	t.Run("rejects duplicate shard ids", func(t *testing.T) {
		reg, err := NewStatic(shardWithID("rewardly-prod01"), shardWithID("rewardly-prod01"))

		assert.Error(t, err)
		assert.Nil(t, reg)
	})

	t.Run("empty registry is valid", func(t *testing.T) {
		reg, err := NewStatic()

		require.NoError(t, err)
		assert.Empty(t, reg.All())
	})
}

func TestStaticResolve(t *testing.T) {
	reg, err := NewStatic(shardWithID("rewardly-prod01"), shardWithID("rewardly-prod02"))
	require.NoError(t, err)

	t.Run("resolves a registered shard", func(t *testing.T) {
		store, err := reg.Resolve("rewardly-prod02")

		require.NoError(t, err)
		assert.Equal(t, "rewardly-prod02", store.ShardID())
	})

	t.Run("unknown shard returns ErrShardNotFound", func(t *testing.T) {
		store, err := reg.Resolve("rewardly-prod99")

		assert.Nil(t, store)
		assert.ErrorIs(t, err, errs.ErrShardNotFound)
	})
}
