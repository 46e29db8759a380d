package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	coreport "github.com/rewardly-app/rewards-processor/internal/domain/port/core"
	msgport "github.com/rewardly-app/rewards-processor/internal/domain/port/messaging"
	"github.com/rewardly-app/rewards-processor/internal/domain/port/persistence"
	"github.com/rewardly-app/rewards-processor/internal/domain/usecase/scan"
	"github.com/rewardly-app/rewards-processor/internal/domain/usecase/sweep"

	fsadapter "github.com/rewardly-app/rewards-processor/internal/infrastructure/adapter/firestore"
	"github.com/rewardly-app/rewards-processor/internal/infrastructure/adapter/logger"
	fcmadapter "github.com/rewardly-app/rewards-processor/internal/infrastructure/adapter/messaging"
	"github.com/rewardly-app/rewards-processor/internal/infrastructure/adapter/registry"
	timeProvider "github.com/rewardly-app/rewards-processor/internal/infrastructure/adapter/time"
	"github.com/rewardly-app/rewards-processor/internal/infrastructure/config"
)

// The sweeper runs one reconciliation pass over every shard and exits. The
// schedule lives outside the binary (cron, Cloud Scheduler).
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Configuration validation failed: %v", err)
	}

	appLogger := logger.NewZapLogger(cfg.Environment == config.Production)
	defer func() { _ = appLogger.Flush() }()

	tp := timeProvider.NewRealTimeProvider()

	// A sweep interrupted by SIGTERM stops between users, never mid-award
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	stores := make([]persistence.ShardStore, 0, len(cfg.Shards))
	notifiers := make(map[string]msgport.Notifier, len(cfg.Shards))
	for _, shard := range cfg.Shards {
		clients, err := fsadapter.Dial(ctx, shard.ID, cfg.ShardCredentials(shard))
		if err != nil {
			appLogger.Error("Failed to connect to shard", map[string]any{
				"shard": shard.ID,
				"error": err.Error(),
			})
			os.Exit(1)
		}
		defer func() { _ = clients.Close() }()

		stores = append(stores, fsadapter.NewStore(shard.ID, clients.Firestore, tp, appLogger))
		notifiers[shard.ID] = fcmadapter.NewFCMNotifier(clients.Messaging, appLogger)
	}

	shardRegistry, err := registry.NewStatic(stores...)
	if err != nil {
		appLogger.Error("Failed to build shard registry", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}

	sweeper := sweep.NewSweeper(
		shardRegistry,
		scan.NewParallel(appLogger),
		fcmadapter.NewRoutingNotifier(notifiers, appLogger),
		tp,
		appLogger,
		sweep.Config{
			SyncWindow:    coreport.Duration(cfg.Rewards.SyncWindow),
			ReferredBonus: cfg.Rewards.SweepReferredBonus,
			ReferrerBonus: cfg.Rewards.SweepReferrerBonus,
		},
	)

	appLogger.Info("Starting reconciliation sweep", map[string]any{
		"shards": len(cfg.Shards),
		"env":    cfg.Environment,
	})

	summary := sweeper.Run(ctx)

	appLogger.Info("Reconciliation sweep finished", map[string]any{
		"shards_visited":     summary.ShardsVisited,
		"notifications_sent": summary.NotificationsSent,
		"bonuses_awarded":    summary.BonusesAwarded,
		"shard_errors":       summary.ShardErrors,
	})

	if summary.ShardErrors > 0 {
		os.Exit(1)
	}
}
