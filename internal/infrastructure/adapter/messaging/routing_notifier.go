package messaging

import (
	"context"

	coreport "github.com/rewardly-app/rewards-processor/internal/domain/port/core"
	msgport "github.com/rewardly-app/rewards-processor/internal/domain/port/messaging"
)

// RoutingNotifier fans messages out to the notifier of the shard each message
// belongs to. Every shard is a separate Firebase project with its own FCM
// endpoint, so a token is only valid against its home shard's client.
type RoutingNotifier struct {
	byShard map[string]msgport.Notifier
	logger  coreport.Logger
}

// Compile-time check that RoutingNotifier satisfies the notifier port
var _ msgport.Notifier = (*RoutingNotifier)(nil)

// NewRoutingNotifier creates a notifier routing on the message's ProjectID
func NewRoutingNotifier(byShard map[string]msgport.Notifier, logger coreport.Logger) *RoutingNotifier {
	return &RoutingNotifier{byShard: byShard, logger: logger}
}

// SendSync groups the batch by home shard and forwards each group. A shard
// whose dispatch fails does not stop the remaining groups.
func (r *RoutingNotifier) SendSync(ctx context.Context, messages []msgport.SyncMessage) (int, error) {
	groups := make(map[string][]msgport.SyncMessage)
	for _, m := range messages {
		groups[m.ProjectID] = append(groups[m.ProjectID], m)
	}

	var delivered int
	var lastErr error
	for shardID, group := range groups {
		notifier, ok := r.byShard[shardID]
		if !ok {
			r.logger.Warn("No notifier registered for shard, dropping messages", map[string]any{
				"shard_id": shardID,
				"dropped":  len(group),
			})
			continue
		}

		sent, err := notifier.SendSync(ctx, group)
		delivered += sent
		if err != nil {
			r.logger.Error("Sync dispatch failed for shard", map[string]any{
				"shard_id": shardID,
				"error":    err.Error(),
			})
			lastErr = err
		}
	}
	return delivered, lastErr
}
