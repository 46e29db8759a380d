package persistence

import (
	"context"

	"github.com/rewardly-app/rewards-processor/internal/domain/entity"
)

// Precondition is evaluated against the user record as read inside a
// transaction. A non-nil return aborts the transaction with no partial write.
type Precondition func(user *entity.User) error

// ShardStore exposes the operations the domain performs against a single
// shard's document database. Implementations map all failures into the
// domain error taxonomy.
type ShardStore interface {
	// ShardID returns the identifier of the shard this store is bound to
	ShardID() string

	// GetUser retrieves a user by document ID
	//
	// Possible errors:
	// - ErrUserNotFound: if no user document exists for the ID
	// - ErrShardUnreachable: on network or credential failure
	GetUser(ctx context.Context, uid string) (*entity.User, error)

	// FindUserByReferralCode runs a point query (limit 1) for a user whose
	// referralCode field equals code
	//
	// Possible errors:
	// - ErrUserNotFound: if no user in this shard carries the code
	// - ErrShardUnreachable: on network or credential failure
	FindUserByReferralCode(ctx context.Context, code string) (*entity.User, error)

	// QuerySyncCandidates lists users with a registered notification token and
	// a daily sync window start time set
	QuerySyncCandidates(ctx context.Context) ([]*entity.User, error)

	// QueryUnawardedReferrals lists users with referredBy set and
	// referralBonusAwarded still false
	QueryUnawardedReferrals(ctx context.Context) ([]*entity.User, error)

	// ApplyDelta atomically applies a coin delta inside one native transaction:
	// read the record, evaluate the precondition, apply the delta as an atomic
	// increment, commit. A nil precondition skips the check.
	//
	// Possible errors:
	// - ErrUserNotFound: if the user is absent
	// - the precondition's error (e.g. ErrInsufficientCoins): transaction aborts,
	//   no partial write
	// - ErrTransactionConflict: if the transaction layer exhausted its retries
	// - ErrShardUnreachable: on network or credential failure
	ApplyDelta(ctx context.Context, uid string, delta int64, precondition Precondition) (*entity.User, error)

	// MutateUser runs a generic transactional read-modify-write: mutate receives
	// the record read inside the transaction and edits it in place; a non-nil
	// return aborts with no write. Used for daily-counter operations whose
	// updates are not plain increments.
	MutateUser(ctx context.Context, uid string, mutate func(user *entity.User) error) (*entity.User, error)

	// SettleWithdrawal settles a pending withdrawal request in a single
	// transaction: the coin deduction and the request's terminal status flip
	// commit together. On insufficient coins the same transaction records the
	// failed status with its error reason and leaves the balance untouched.
	// This coupling is the at-most-once guarantee: a request is never marked
	// processed without the deduction, nor deducted without the mark.
	//
	// Possible errors:
	// - ErrUserNotFound: requester absent (status failed is still recorded)
	// - ErrInsufficientCoins: balance below amount (status failed is recorded)
	// - ErrWithdrawalNotFound: request document absent
	// - ErrWithdrawalSettled: request already terminal
	// - ErrTransactionConflict, ErrShardUnreachable
	SettleWithdrawal(ctx context.Context, requestID string) (*entity.WithdrawalRequest, error)

	// FailWithdrawal writes a terminal failed status with the captured reason
	// onto a still-pending request. Used as the best-effort fallback when
	// settlement cannot run at all (e.g. validation rejected the event).
	// A request that already reached a terminal status is left untouched.
	FailWithdrawal(ctx context.Context, requestID, reason string) error

	// AwardReferralPair awards a same-shard referral in one transaction: the
	// referred user gains bonusReferred and has referralBonusAwarded flipped,
	// the referrer gains bonusReferrer. The flag is re-read inside the
	// transaction; ErrAlreadyAwarded is returned without writes when it is
	// already set, making the operation idempotent.
	AwardReferralPair(ctx context.Context, referredUID, referrerUID string, bonusReferred, bonusReferrer int64) error
}
