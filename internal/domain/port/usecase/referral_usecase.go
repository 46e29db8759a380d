package usecase

import (
	"context"
)

// UserCreatedEvent is the payload of a user-document creation event
type UserCreatedEvent struct {
	UID        string `json:"uid"`
	ProjectID  string `json:"projectId"`
	ReferredBy string `json:"referredBy"`
}

// ReferralUseCase covers referral-code issuance and the referral-bonus fast
// path triggered on user creation.
type ReferralUseCase interface {
	// GenerateUniqueCode draws random 8-character codes until one is unused
	// across every registered shard, up to a bounded number of attempts with
	// backoff between draws. Any per-shard probe error conservatively discards
	// the candidate. Returns ErrExhaustedRetries when the cap is reached.
	GenerateUniqueCode(ctx context.Context) (string, error)

	// LinkNewUser is the best-effort fast path: when the created user carries a
	// referredBy code it scans all shards for the matching referrer and awards
	// the fast-path bonus in an independent transaction on the referrer's
	// shard. A user without a referrer is a no-op. Failures are surfaced to
	// the caller for logging only; the reconciliation sweep is the retry
	// mechanism.
	LinkNewUser(ctx context.Context, event UserCreatedEvent) error
}
