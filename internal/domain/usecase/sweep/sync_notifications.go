package sweep

import (
	"context"

	"github.com/rewardly-app/rewards-processor/internal/domain/port/messaging"
	"github.com/rewardly-app/rewards-processor/internal/domain/port/persistence"
)

// dispatchSyncNotifications finds users whose daily sync window is still
// active and asks the notifier to send them a coin-sync push. Partial
// per-recipient delivery failure is tolerated by the notifier contract.
func (s *Sweeper) dispatchSyncNotifications(ctx context.Context, shard persistence.ShardStore) (int, error) {
	candidates, err := shard.QuerySyncCandidates(ctx)
	if err != nil {
		return 0, err
	}

	now := s.timeProvider.Now()
	window := s.cfg.SyncWindow.Std()

	var batch []messaging.SyncMessage
	for _, candidate := range candidates {
		if !candidate.WithinSyncWindow(now, window) {
			continue
		}
		batch = append(batch, messaging.SyncMessage{
			Token:     candidate.FCMToken,
			UID:       candidate.UID,
			ProjectID: shard.ShardID(),
		})
	}

	if len(batch) == 0 {
		s.logger.Info("No sync notifications to send", map[string]any{
			"shard_id": shard.ShardID(),
		})
		return 0, nil
	}

	delivered, err := s.notifier.SendSync(ctx, batch)
	if err != nil {
		return delivered, err
	}

	s.logger.Info("Sync notifications dispatched", map[string]any{
		"shard_id":  shard.ShardID(),
		"requested": len(batch),
		"delivered": delivered,
	})
	return delivered, nil
}
