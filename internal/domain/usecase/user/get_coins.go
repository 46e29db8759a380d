package user

import (
	"context"

	errs "github.com/rewardly-app/rewards-processor/internal/domain/error"
)

// GetCoins retrieves the user's current coin balance from their home shard
func (u *UserUseCase) GetCoins(ctx context.Context, shardID, uid string) (int64, error) {
	if shardID == "" || uid == "" {
		return 0, errs.ErrInvalidRequest
	}

	store, err := u.registry.Resolve(shardID)
	if err != nil {
		return 0, err
	}

	record, err := store.GetUser(ctx, uid)
	if err != nil {
		if !errs.IsUserNotFoundError(err) {
			u.logger.Error("Failed to get user coins", map[string]any{
				"shard_id": shardID,
				"uid":      uid,
				"error":    err.Error(),
			})
		}
		return 0, err
	}

	return record.Coins(), nil
}
