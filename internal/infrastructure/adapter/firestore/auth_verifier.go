package firestore

import (
	"context"
	"fmt"

	fbauth "firebase.google.com/go/v4/auth"

	errs "github.com/rewardly-app/rewards-processor/internal/domain/error"
)

// AuthVerifier verifies Firebase ID tokens against one shard's auth project.
// Tokens are project-scoped, so the caller must be checked against the shard
// named in the request.
type AuthVerifier struct {
	shardID string
	client  *fbauth.Client
}

// NewAuthVerifier creates a verifier bound to a shard's auth client
func NewAuthVerifier(shardID string, client *fbauth.Client) *AuthVerifier {
	return &AuthVerifier{
		shardID: shardID,
		client:  client,
	}
}

// VerifyIDToken validates the token and returns the caller's UID
func (v *AuthVerifier) VerifyIDToken(ctx context.Context, idToken string) (string, error) {
	token, err := v.client.VerifyIDToken(ctx, idToken)
	if err != nil {
		return "", fmt.Errorf("%w: shard %s: %v", errs.ErrUnauthenticated, v.shardID, err)
	}
	return token.UID, nil
}
