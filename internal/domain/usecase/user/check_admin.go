package user

import (
	"context"

	errs "github.com/rewardly-app/rewards-processor/internal/domain/error"
)

// CheckAdminStatus reports whether the user carries the admin flag in their
// home shard. A missing user document reports non-admin rather than an error.
func (u *UserUseCase) CheckAdminStatus(ctx context.Context, shardID, uid string) (bool, error) {
	if shardID == "" || uid == "" {
		return false, errs.ErrInvalidRequest
	}

	store, err := u.registry.Resolve(shardID)
	if err != nil {
		return false, err
	}

	record, err := store.GetUser(ctx, uid)
	if err != nil {
		if errs.IsUserNotFoundError(err) {
			u.logger.Info("Admin status check for missing user", map[string]any{
				"shard_id": shardID,
				"uid":      uid,
			})
			return false, nil
		}
		u.logger.Error("Failed to check admin status", map[string]any{
			"shard_id": shardID,
			"uid":      uid,
			"error":    err.Error(),
		})
		return false, err
	}

	return record.IsAdmin, nil
}
