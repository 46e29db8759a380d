package messaging

import "context"

// SyncMessage is a data-only push notification asking a client to sync its
// coin balance with the server
type SyncMessage struct {
	Token     string // Recipient notification token
	UID       string
	ProjectID string
}

// Notifier dispatches sync notifications to clients. Delivery is best effort:
// per-recipient failures are tolerated and reported through the delivered
// count rather than an error.
type Notifier interface {
	// SendSync dispatches the given messages and returns how many were
	// accepted for delivery. An error is returned only when the batch as a
	// whole could not be dispatched.
	SendSync(ctx context.Context, messages []SyncMessage) (delivered int, err error)
}
