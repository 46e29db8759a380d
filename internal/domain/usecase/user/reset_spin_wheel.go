package user

import (
	"context"

	"github.com/rewardly-app/rewards-processor/internal/domain/entity"
	errs "github.com/rewardly-app/rewards-processor/internal/domain/error"
	coreport "github.com/rewardly-app/rewards-processor/internal/domain/port/core"
	usecaseport "github.com/rewardly-app/rewards-processor/internal/domain/port/usecase"
)

// ResetSpinWheel resets the user's daily spin counters inside a shard
// transaction when the server-side date has advanced. A same-day call leaves
// the counters exactly as they are, so the reset can never fire twice for one
// calendar day regardless of call frequency.
func (u *UserUseCase) ResetSpinWheel(ctx context.Context, shardID, uid string) (*usecaseport.SpinWheelResult, error) {
	if shardID == "" || uid == "" {
		return nil, errs.ErrInvalidRequest
	}

	store, err := u.registry.Resolve(shardID)
	if err != nil {
		u.logger.Warn("Spin wheel reset against unknown shard", map[string]any{
			"shard_id": shardID,
			"uid":      uid,
		})
		return nil, err
	}

	today := coreport.DateKey(u.timeProvider.Now())
	var wasReset bool
	updated, err := store.MutateUser(ctx, uid, func(record *entity.User) error {
		wasReset = record.ResetSpinWheel(today, u.freeSpins, u.timeProvider)
		return nil
	})
	if err != nil {
		u.logger.Error("Failed to reset spin wheel daily counts", map[string]any{
			"shard_id": shardID,
			"uid":      uid,
			"error":    err.Error(),
		})
		return nil, err
	}

	if wasReset {
		u.logger.Info("Spin wheel daily counts reset", map[string]any{
			"shard_id": shardID,
			"uid":      uid,
			"date":     today,
		})
	}

	return &usecaseport.SpinWheelResult{
		UID:               uid,
		ProjectID:         shardID,
		FreeSpinsToday:    updated.SpinWheelFreeSpinsToday,
		AdSpinsToday:      updated.SpinWheelAdSpinsToday,
		LastSpinWheelDate: updated.LastSpinWheelDate,
		WasReset:          wasReset,
	}, nil
}
