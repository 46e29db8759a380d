// Package firestore adapts the domain's shard-store port to a Firebase
// project: one Firestore database, one messaging endpoint and one auth
// verifier per shard.
package firestore

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"
)

// ShardClients bundles the per-shard Firebase service clients
type ShardClients struct {
	ShardID   string
	Firestore *firestore.Client
	Messaging *messaging.Client
	Auth      *auth.Client
}

// Dial initializes the Firebase app for one shard and opens its service
// clients. credentialsJSON is the shard's serialized service-account
// credential; when empty, application-default credentials are used (useful
// against the emulator).
func Dial(ctx context.Context, shardID string, credentialsJSON []byte) (*ShardClients, error) {
	var opts []option.ClientOption
	if len(credentialsJSON) > 0 {
		opts = append(opts, option.WithCredentialsJSON(credentialsJSON))
	}

	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: shardID}, opts...)
	if err != nil {
		return nil, fmt.Errorf("initialize firebase app for shard %s: %w", shardID, err)
	}

	fs, err := app.Firestore(ctx)
	if err != nil {
		return nil, fmt.Errorf("open firestore client for shard %s: %w", shardID, err)
	}

	msg, err := app.Messaging(ctx)
	if err != nil {
		_ = fs.Close()
		return nil, fmt.Errorf("open messaging client for shard %s: %w", shardID, err)
	}

	au, err := app.Auth(ctx)
	if err != nil {
		_ = fs.Close()
		return nil, fmt.Errorf("open auth client for shard %s: %w", shardID, err)
	}

	return &ShardClients{
		ShardID:   shardID,
		Firestore: fs,
		Messaging: msg,
		Auth:      au,
	}, nil
}

// Close releases the clients that hold connections
func (c *ShardClients) Close() error {
	if c == nil || c.Firestore == nil {
		return nil
	}
	return c.Firestore.Close()
}
