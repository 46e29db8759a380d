package referral

import (
	"context"

	"github.com/rewardly-app/rewards-processor/internal/domain/entity"
	errs "github.com/rewardly-app/rewards-processor/internal/domain/error"
	"github.com/rewardly-app/rewards-processor/internal/domain/port/persistence"
	usecaseport "github.com/rewardly-app/rewards-processor/internal/domain/port/usecase"
)

// LinkNewUser is the best-effort fast path fired on user creation: locate the
// referrer behind the new user's referredBy code and credit the fast-path
// bonus in an independent transaction on the referrer's shard. First match in
// scan order wins. The new user's own bonus is not paid here; the
// reconciliation sweep handles it together with any fast-path failure, so
// errors are surfaced for logging and otherwise dropped.
func (r *ReferralUseCase) LinkNewUser(ctx context.Context, event usecaseport.UserCreatedEvent) error {
	if event.ReferredBy == "" {
		r.logger.Debug("New user has no referrer, skipping referral bonus", map[string]any{
			"uid":        event.UID,
			"project_id": event.ProjectID,
		})
		return nil
	}

	match, err := r.scanner.FindFirst(ctx, r.registry, func(ctx context.Context, shard persistence.ShardStore) (*entity.User, error) {
		return shard.FindUserByReferralCode(ctx, event.ReferredBy)
	})
	if match == nil {
		if err != nil {
			r.logger.Error("Referrer lookup failed on one or more shards", map[string]any{
				"referred_by": event.ReferredBy,
				"uid":         event.UID,
				"error":       err.Error(),
			})
			return err
		}
		r.logger.Warn("Referrer not found in any shard", map[string]any{
			"referred_by": event.ReferredBy,
			"uid":         event.UID,
		})
		return errs.ErrUserNotFound
	}

	if _, err := match.Shard.ApplyDelta(ctx, match.User.UID, r.cfg.FastPathBonus, nil); err != nil {
		r.logger.Error("Failed to award fast-path referral bonus", map[string]any{
			"referrer_uid":   match.User.UID,
			"referrer_shard": match.Shard.ShardID(),
			"bonus":          r.cfg.FastPathBonus,
			"error":          err.Error(),
		})
		return err
	}

	r.logger.Info("Fast-path referral bonus awarded", map[string]any{
		"referrer_uid":   match.User.UID,
		"referrer_shard": match.Shard.ShardID(),
		"referred_uid":   event.UID,
		"bonus":          r.cfg.FastPathBonus,
	})
	return nil
}
