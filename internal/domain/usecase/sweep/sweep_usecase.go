// Package sweep implements the periodic reconciliation pass over all shards.
// It is the at-least-once delivery mechanism for referral bonuses; the
// user-creation fast path is only a best-effort shortcut in front of it.
package sweep

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"

	coreport "github.com/rewardly-app/rewards-processor/internal/domain/port/core"
	"github.com/rewardly-app/rewards-processor/internal/domain/port/messaging"
	"github.com/rewardly-app/rewards-processor/internal/domain/port/persistence"
	"github.com/rewardly-app/rewards-processor/internal/domain/usecase/scan"
)

// Config tunes the reconciliation sweep
type Config struct {
	// SyncWindow is how long a user's daily sync window stays active after its
	// recorded start time
	SyncWindow coreport.Duration
	// ReferredBonus is credited to the referred user when their pending
	// referral is reconciled
	ReferredBonus int64
	// ReferrerBonus is credited to the referrer in the same pass
	ReferrerBonus int64
}

// DefaultConfig returns the production sweep settings
func DefaultConfig() Config {
	return Config{
		SyncWindow:    12 * coreport.Hour,
		ReferredBonus: 5000,
		ReferrerBonus: 10000,
	}
}

// Summary aggregates the outcome of one sweep run across all shards
type Summary struct {
	ShardsVisited     int
	NotificationsSent int
	BonusesAwarded    int
	ShardErrors       int
}

// Sweeper runs the reconciliation pass. Shards are processed concurrently;
// users within one shard sequentially. Every shard is always visited: a
// failure in one shard is counted and logged, never propagated to the others.
type Sweeper struct {
	registry     persistence.ShardRegistry
	scanner      scan.Policy
	notifier     messaging.Notifier
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
	cfg          Config
}

// NewSweeper creates a new Sweeper
func NewSweeper(
	registry persistence.ShardRegistry,
	scanner scan.Policy,
	notifier messaging.Notifier,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	cfg Config,
) *Sweeper {
	return &Sweeper{
		registry:     registry,
		scanner:      scanner,
		notifier:     notifier,
		timeProvider: timeProvider,
		logger:       logger,
		cfg:          cfg,
	}
}

// Run executes one reconciliation pass over every registered shard
func (s *Sweeper) Run(ctx context.Context) *Summary {
	summary := &Summary{}
	var mu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	for _, shard := range s.registry.All() {
		g.Go(func() error {
			sent, awarded, errCount := s.processShard(gctx, shard)
			mu.Lock()
			summary.ShardsVisited++
			summary.NotificationsSent += sent
			summary.BonusesAwarded += awarded
			summary.ShardErrors += errCount
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()

	s.logger.Info("Reconciliation sweep complete", map[string]any{
		"shards_visited":     summary.ShardsVisited,
		"notifications_sent": summary.NotificationsSent,
		"bonuses_awarded":    summary.BonusesAwarded,
		"shard_errors":       summary.ShardErrors,
	})
	return summary
}

// processShard runs both sweep phases against one shard
func (s *Sweeper) processShard(ctx context.Context, shard persistence.ShardStore) (sent, awarded, errCount int) {
	s.logger.Info("Processing shard", map[string]any{"shard_id": shard.ShardID()})

	sent, err := s.dispatchSyncNotifications(ctx, shard)
	if err != nil {
		s.logger.Error("Sync notification phase failed", map[string]any{
			"shard_id": shard.ShardID(),
			"error":    err.Error(),
		})
		errCount++
	}

	awarded, referralErrs := s.reconcileReferrals(ctx, shard)
	errCount += referralErrs
	return sent, awarded, errCount
}
