package sweep

import (
	"context"
	"errors"

	"github.com/rewardly-app/rewards-processor/internal/domain/entity"
	errs "github.com/rewardly-app/rewards-processor/internal/domain/error"
	"github.com/rewardly-app/rewards-processor/internal/domain/port/persistence"
)

// reconcileReferrals re-applies the referral award for every user whose bonus
// flag is still false. The flag filter plus its re-check inside the award
// transaction makes this pass idempotent: re-running over the same data can
// never double-pay.
//
// A referrer in the same shard is paid together with the referred user in one
// transaction. A referrer in another shard cannot share that transaction;
// the referred user's shard commits first (bonus + flag), then the referrer's
// shard is credited independently. A crash between the two commits leaves the
// referrer unpaid with the flag already set; that window is the accepted
// price of not having distributed transactions.
func (s *Sweeper) reconcileReferrals(ctx context.Context, shard persistence.ShardStore) (awarded, errCount int) {
	pending, err := shard.QueryUnawardedReferrals(ctx)
	if err != nil {
		s.logger.Error("Could not list unawarded referrals", map[string]any{
			"shard_id": shard.ShardID(),
			"error":    err.Error(),
		})
		return 0, 1
	}

	for _, referred := range pending {
		if ctx.Err() != nil {
			return awarded, errCount
		}
		if referred.ReferredBy == "" {
			continue
		}

		ok, err := s.awardOne(ctx, shard, referred)
		if err != nil {
			errCount++
			continue
		}
		if ok {
			awarded++
		}
	}
	return awarded, errCount
}

// awardOne resolves the referrer for a single pending referral and pays both
// sides. Returns true when a bonus was actually committed this run.
func (s *Sweeper) awardOne(ctx context.Context, shard persistence.ShardStore, referred *entity.User) (bool, error) {
	// Same-shard referrers are the common case and allow a single atomic
	// award covering both users.
	referrer, err := shard.FindUserByReferralCode(ctx, referred.ReferredBy)
	if err == nil {
		if err := shard.AwardReferralPair(ctx, referred.UID, referrer.UID, s.cfg.ReferredBonus, s.cfg.ReferrerBonus); err != nil {
			if errors.Is(err, errs.ErrAlreadyAwarded) {
				return false, nil
			}
			s.logger.Error("Referral pair award failed", map[string]any{
				"shard_id":     shard.ShardID(),
				"referred_uid": referred.UID,
				"referrer_uid": referrer.UID,
				"error":        err.Error(),
			})
			return false, err
		}
		s.logger.Info("Awarded referral bonus", map[string]any{
			"shard_id":     shard.ShardID(),
			"referred_uid": referred.UID,
			"referrer_uid": referrer.UID,
		})
		return true, nil
	}
	if !errs.IsUserNotFoundError(err) {
		s.logger.Error("Referrer lookup failed", map[string]any{
			"shard_id":    shard.ShardID(),
			"referred_by": referred.ReferredBy,
			"error":       err.Error(),
		})
		return false, err
	}

	// Cross-shard referrer: scan the remaining shards for the code.
	match, scanErr := s.scanner.FindFirst(ctx, s.registry, func(ctx context.Context, candidate persistence.ShardStore) (*entity.User, error) {
		if candidate.ShardID() == shard.ShardID() {
			return nil, errs.ErrUserNotFound
		}
		return candidate.FindUserByReferralCode(ctx, referred.ReferredBy)
	})
	if match == nil {
		if scanErr != nil {
			return false, scanErr
		}
		s.logger.Warn("Referrer not found in any shard", map[string]any{
			"referred_by":  referred.ReferredBy,
			"referred_uid": referred.UID,
			"shard_id":     shard.ShardID(),
		})
		return false, nil
	}

	// Commit the referred user's side first: the flag flip in this
	// transaction is what keeps re-runs idempotent.
	_, err = shard.MutateUser(ctx, referred.UID, func(record *entity.User) error {
		return record.AwardReferralBonus(s.cfg.ReferredBonus, s.timeProvider)
	})
	if err != nil {
		if errors.Is(err, errs.ErrAlreadyAwarded) {
			return false, nil
		}
		s.logger.Error("Referred-user award failed", map[string]any{
			"shard_id":     shard.ShardID(),
			"referred_uid": referred.UID,
			"error":        err.Error(),
		})
		return false, err
	}

	if _, err := match.Shard.ApplyDelta(ctx, match.User.UID, s.cfg.ReferrerBonus, nil); err != nil {
		s.logger.Error("Cross-shard referrer award failed after referred-user commit", map[string]any{
			"referrer_uid":   match.User.UID,
			"referrer_shard": match.Shard.ShardID(),
			"referred_uid":   referred.UID,
			"error":          err.Error(),
		})
		return true, err
	}

	s.logger.Info("Awarded cross-shard referral bonus", map[string]any{
		"referred_uid":   referred.UID,
		"referred_shard": shard.ShardID(),
		"referrer_uid":   match.User.UID,
		"referrer_shard": match.Shard.ShardID(),
	})
	return true, nil
}
