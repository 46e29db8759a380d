// Package messaging adapts the domain notifier port to Firebase Cloud
// Messaging.
package messaging

import (
	"context"

	fcm "firebase.google.com/go/v4/messaging"

	coreport "github.com/rewardly-app/rewards-processor/internal/domain/port/core"
	msgport "github.com/rewardly-app/rewards-processor/internal/domain/port/messaging"
)

// syncMessageType tags the data payload so clients route it to the coin-sync
// handler
const syncMessageType = "hourly_coin_sync"

// FCMNotifier implements the Notifier port over one shard's FCM endpoint
type FCMNotifier struct {
	client *fcm.Client
	logger coreport.Logger
}

// Compile-time check that FCMNotifier satisfies the notifier port
var _ msgport.Notifier = (*FCMNotifier)(nil)

// NewFCMNotifier creates a notifier over an open messaging client
func NewFCMNotifier(client *fcm.Client, logger coreport.Logger) *FCMNotifier {
	return &FCMNotifier{client: client, logger: logger}
}

// SendSync dispatches data-only sync pushes. Per-recipient failures are
// logged and tolerated; only a whole-batch dispatch failure is an error.
func (n *FCMNotifier) SendSync(ctx context.Context, messages []msgport.SyncMessage) (int, error) {
	if len(messages) == 0 {
		return 0, nil
	}

	batch := make([]*fcm.Message, 0, len(messages))
	for _, m := range messages {
		batch = append(batch, &fcm.Message{
			Token: m.Token,
			Data: map[string]string{
				"type":      syncMessageType,
				"uid":       m.UID,
				"projectId": m.ProjectID,
			},
		})
	}

	resp, err := n.client.SendEach(ctx, batch)
	if err != nil {
		return 0, err
	}

	if resp.FailureCount > 0 {
		for i, r := range resp.Responses {
			if r.Error != nil {
				n.logger.Warn("Sync notification delivery failed", map[string]any{
					"uid":   messages[i].UID,
					"error": r.Error.Error(),
				})
			}
		}
	}

	return resp.SuccessCount, nil
}
