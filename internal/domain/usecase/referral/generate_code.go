package referral

import (
	"context"

	"github.com/rewardly-app/rewards-processor/internal/domain/entity"
	errs "github.com/rewardly-app/rewards-processor/internal/domain/error"
	"github.com/rewardly-app/rewards-processor/internal/domain/port/persistence"
	"github.com/rewardly-app/rewards-processor/internal/domain/usecase/scan"
)

// GenerateUniqueCode draws candidate codes until one is unused across every
// registered shard. A candidate survives only a clean all-shards miss: any
// collision, and any per-shard probe error, conservatively discards it. The
// loop is capped at cfg.MaxAttempts with backoff between draws.
func (r *ReferralUseCase) GenerateUniqueCode(ctx context.Context) (string, error) {
	lookup := func(code string) scan.Lookup {
		return func(ctx context.Context, shard persistence.ShardStore) (*entity.User, error) {
			return shard.FindUserByReferralCode(ctx, code)
		}
	}

	for attempt := 1; attempt <= r.cfg.MaxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		code := r.codes()
		match, err := r.scanner.FindFirst(ctx, r.registry, lookup(code))
		if err == nil && match == nil {
			r.logger.Info("Generated unique referral code", map[string]any{
				"code":     code,
				"attempts": attempt,
			})
			return code, nil
		}

		if match != nil {
			r.logger.Info("Referral code collision, regenerating", map[string]any{
				"code":     code,
				"shard_id": match.Shard.ShardID(),
				"attempt":  attempt,
			})
		} else {
			// A failed probe means the code could exist in the unreachable
			// shard, so the miss is inconclusive.
			r.logger.Warn("Referral code uniqueness check incomplete, regenerating", map[string]any{
				"code":    code,
				"attempt": attempt,
				"error":   err.Error(),
			})
		}

		if attempt < r.cfg.MaxAttempts {
			r.timeProvider.Sleep(r.cfg.RetryBackoff)
		}
	}

	r.logger.Error("Referral code generation exhausted attempts", map[string]any{
		"max_attempts": r.cfg.MaxAttempts,
	})
	return "", errs.ErrExhaustedRetries
}
