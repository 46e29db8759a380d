package user

import (
	"context"

	"github.com/rewardly-app/rewards-processor/internal/domain/entity"
	errs "github.com/rewardly-app/rewards-processor/internal/domain/error"
	coreport "github.com/rewardly-app/rewards-processor/internal/domain/port/core"
	usecaseport "github.com/rewardly-app/rewards-processor/internal/domain/port/usecase"
)

// RecordAdWatch increments the user's daily ad-watch counter inside a shard
// transaction. The server-side date decides resets: a new calendar day starts
// the counter at 1, the same day increments it. Validating the date against
// the server clock keeps clients from replaying a stale day.
func (u *UserUseCase) RecordAdWatch(ctx context.Context, shardID, uid string) (*usecaseport.AdWatchResult, error) {
	if shardID == "" || uid == "" {
		return nil, errs.ErrInvalidRequest
	}

	store, err := u.registry.Resolve(shardID)
	if err != nil {
		u.logger.Warn("Ad watch update against unknown shard", map[string]any{
			"shard_id": shardID,
			"uid":      uid,
		})
		return nil, err
	}

	today := coreport.DateKey(u.timeProvider.Now())
	updated, err := store.MutateUser(ctx, uid, func(record *entity.User) error {
		record.RecordAdWatch(today, u.timeProvider)
		return nil
	})
	if err != nil {
		u.logger.Error("Failed to update ads watched today", map[string]any{
			"shard_id": shardID,
			"uid":      uid,
			"error":    err.Error(),
		})
		return nil, err
	}

	u.logger.Info("Ads watched today updated", map[string]any{
		"shard_id":          shardID,
		"uid":               uid,
		"ads_watched_today": updated.AdsWatchedToday,
	})

	return &usecaseport.AdWatchResult{
		UID:             uid,
		ProjectID:       shardID,
		AdsWatchedToday: updated.AdsWatchedToday,
		LastAdWatchDate: updated.LastAdWatchDate,
	}, nil
}
