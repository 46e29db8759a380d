package firestore

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/rewardly-app/rewards-processor/internal/domain/entity"
	errs "github.com/rewardly-app/rewards-processor/internal/domain/error"
	coreport "github.com/rewardly-app/rewards-processor/internal/domain/port/core"
	"github.com/rewardly-app/rewards-processor/internal/domain/port/persistence"
)

// Store implements persistence.ShardStore against one shard's Firestore
// database. All atomicity is delegated to Firestore's native transactions;
// the store holds no mutable state of its own.
type Store struct {
	shardID      string
	client       *firestore.Client
	errorMapper  *ErrorMapper
	retryConfig  RetryConfig
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// Compile-time check that Store satisfies the shard-store port
var _ persistence.ShardStore = (*Store)(nil)

// NewStore creates a shard store over an open Firestore client
func NewStore(
	shardID string,
	client *firestore.Client,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *Store {
	return &Store{
		shardID:      shardID,
		client:       client,
		errorMapper:  NewErrorMapper(shardID),
		retryConfig:  DefaultRetryConfig(),
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// ShardID returns the identifier of the shard this store is bound to
func (s *Store) ShardID() string {
	return s.shardID
}

func (s *Store) userRef(uid string) *firestore.DocumentRef {
	return s.client.Collection(usersCollection).Doc(uid)
}

func (s *Store) withdrawalRef(id string) *firestore.DocumentRef {
	return s.client.Collection(withdrawalsCollection).Doc(id)
}

// GetUser retrieves a user by document ID
func (s *Store) GetUser(ctx context.Context, uid string) (*entity.User, error) {
	snap, err := s.userRef(uid).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, fmt.Errorf("%w: %s in shard %s", errs.ErrUserNotFound, uid, s.shardID)
		}
		return nil, s.errorMapper.MapError(err, "get user")
	}

	var doc userDoc
	if err := snap.DataTo(&doc); err != nil {
		return nil, fmt.Errorf("%w: decode user %s: %v", errs.ErrInternal, uid, err)
	}
	return doc.toEntity(snap.Ref.ID), nil
}

// FindUserByReferralCode runs a point query (limit 1) for a user carrying the code
func (s *Store) FindUserByReferralCode(ctx context.Context, code string) (*entity.User, error) {
	var found *entity.User

	err := retryOnTransientError(ctx, s.retryConfig, func() error {
		iter := s.client.Collection(usersCollection).
			Where("referralCode", "==", code).
			Limit(1).
			Documents(ctx)
		defer iter.Stop()

		snap, err := iter.Next()
		if err == iterator.Done {
			return fmt.Errorf("%w: referral code %s in shard %s", errs.ErrUserNotFound, code, s.shardID)
		}
		if err != nil {
			return err
		}

		var doc userDoc
		if err := snap.DataTo(&doc); err != nil {
			return fmt.Errorf("%w: decode user %s: %v", errs.ErrInternal, snap.Ref.ID, err)
		}
		found = doc.toEntity(snap.Ref.ID)
		return nil
	}, s.logger)
	if err != nil {
		if errs.IsUserNotFoundError(err) {
			return nil, err
		}
		return nil, s.errorMapper.MapError(err, "find user by referral code")
	}

	return found, nil
}

// QuerySyncCandidates lists users with a registered notification token.
// Firestore allows a single inequality field per query, so the sync window
// start is filtered by the caller.
func (s *Store) QuerySyncCandidates(ctx context.Context) ([]*entity.User, error) {
	return s.queryUsers(ctx, "query sync candidates",
		s.client.Collection(usersCollection).Where("fcmToken", "!=", ""))
}

// QueryUnawardedReferrals lists users with referredBy set and the bonus flag still false
func (s *Store) QueryUnawardedReferrals(ctx context.Context) ([]*entity.User, error) {
	return s.queryUsers(ctx, "query unawarded referrals",
		s.client.Collection(usersCollection).
			Where("referralBonusAwarded", "==", false).
			Where("referredBy", "!=", ""))
}

// queryUsers materializes a user query with transient-error retry
func (s *Store) queryUsers(ctx context.Context, operation string, q firestore.Query) ([]*entity.User, error) {
	var users []*entity.User

	err := retryOnTransientError(ctx, s.retryConfig, func() error {
		users = users[:0]
		iter := q.Documents(ctx)
		defer iter.Stop()

		for {
			snap, err := iter.Next()
			if err == iterator.Done {
				return nil
			}
			if err != nil {
				return err
			}

			var doc userDoc
			if err := snap.DataTo(&doc); err != nil {
				s.logger.Warn("Skipping undecodable user document", map[string]any{
					"shard_id": s.shardID,
					"uid":      snap.Ref.ID,
					"error":    err.Error(),
				})
				continue
			}
			users = append(users, doc.toEntity(snap.Ref.ID))
		}
	}, s.logger)
	if err != nil {
		return nil, s.errorMapper.MapError(err, operation)
	}
	return users, nil
}

// ApplyDelta atomically applies a coin delta inside one native transaction
func (s *Store) ApplyDelta(ctx context.Context, uid string, delta int64, precondition persistence.Precondition) (*entity.User, error) {
	var result *entity.User

	err := s.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		result = nil

		ref := s.userRef(uid)
		snap, err := tx.Get(ref)
		if err != nil {
			if status.Code(err) == codes.NotFound {
				return fmt.Errorf("%w: %s in shard %s", errs.ErrUserNotFound, uid, s.shardID)
			}
			return err
		}

		var doc userDoc
		if err := snap.DataTo(&doc); err != nil {
			return fmt.Errorf("%w: decode user %s: %v", errs.ErrInternal, uid, err)
		}
		record := doc.toEntity(uid)

		if precondition != nil {
			if err := precondition(record); err != nil {
				return err
			}
		}

		now := s.timeProvider.Now()
		if err := tx.Update(ref, []firestore.Update{
			{Path: "coins", Value: firestore.Increment(delta)},
			{Path: "updatedAt", Value: now},
		}); err != nil {
			return err
		}

		record.SetCoins(record.Coins() + delta)
		record.UpdatedAt = now
		result = record
		return nil
	})
	if err != nil {
		return nil, s.errorMapper.MapError(err, "apply delta")
	}
	return result, nil
}

// MutateUser runs a generic transactional read-modify-write over the record
func (s *Store) MutateUser(ctx context.Context, uid string, mutate func(user *entity.User) error) (*entity.User, error) {
	var result *entity.User

	err := s.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		result = nil

		ref := s.userRef(uid)
		snap, err := tx.Get(ref)
		if err != nil {
			if status.Code(err) == codes.NotFound {
				return fmt.Errorf("%w: %s in shard %s", errs.ErrUserNotFound, uid, s.shardID)
			}
			return err
		}

		var doc userDoc
		if err := snap.DataTo(&doc); err != nil {
			return fmt.Errorf("%w: decode user %s: %v", errs.ErrInternal, uid, err)
		}
		record := doc.toEntity(uid)

		if err := mutate(record); err != nil {
			return err
		}

		if err := tx.Set(ref, fromUserEntity(record)); err != nil {
			return err
		}
		result = record
		return nil
	})
	if err != nil {
		return nil, s.errorMapper.MapError(err, "mutate user")
	}
	return result, nil
}

// SettleWithdrawal settles a pending request in one transaction. Precondition
// failures commit the failed status together with an untouched balance, so a
// request can never be marked processed without the deduction nor deducted
// without the mark.
func (s *Store) SettleWithdrawal(ctx context.Context, requestID string) (*entity.WithdrawalRequest, error) {
	var settled *entity.WithdrawalRequest
	var settleErr error

	err := s.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		// The closure may be re-run on contention; reset the outcome each time.
		settled = nil
		settleErr = nil

		reqRef := s.withdrawalRef(requestID)
		reqSnap, err := tx.Get(reqRef)
		if err != nil {
			if status.Code(err) == codes.NotFound {
				return fmt.Errorf("%w: %s in shard %s", errs.ErrWithdrawalNotFound, requestID, s.shardID)
			}
			return err
		}

		var reqDoc withdrawalDoc
		if err := reqSnap.DataTo(&reqDoc); err != nil {
			return fmt.Errorf("%w: decode withdrawal %s: %v", errs.ErrInternal, requestID, err)
		}
		request := reqDoc.toEntity(requestID)

		if request.IsSettled() {
			settled = request
			return errs.ErrWithdrawalSettled
		}

		userRef := s.userRef(request.UID)
		userSnap, err := tx.Get(userRef)
		userMissing := err != nil && status.Code(err) == codes.NotFound
		if err != nil && !userMissing {
			return err
		}

		now := s.timeProvider.Now()
		fail := func(reason string, cause error) error {
			request.MarkFailed(s.timeProvider, reason)
			settled = request
			settleErr = cause
			return tx.Update(reqRef, []firestore.Update{
				{Path: "status", Value: string(entity.WithdrawalFailed)},
				{Path: "error", Value: reason},
				{Path: "processedAt", Value: now},
			})
		}

		if userMissing {
			return fail("User not found in project "+s.shardID,
				fmt.Errorf("%w: %s in shard %s", errs.ErrUserNotFound, request.UID, s.shardID))
		}

		var usrDoc userDoc
		if err := userSnap.DataTo(&usrDoc); err != nil {
			return fmt.Errorf("%w: decode user %s: %v", errs.ErrInternal, request.UID, err)
		}
		record := usrDoc.toEntity(request.UID)

		if !record.CanDeduct(request.Amount) {
			return fail(errs.ErrInsufficientCoins.Error(),
				errs.NewInsufficientCoinsError(request.UID, s.shardID, request.Amount, record.Coins()))
		}

		if err := tx.Update(userRef, []firestore.Update{
			{Path: "coins", Value: firestore.Increment(-request.Amount)},
			{Path: "updatedAt", Value: now},
		}); err != nil {
			return err
		}
		if err := tx.Update(reqRef, []firestore.Update{
			{Path: "status", Value: string(entity.WithdrawalProcessed)},
			{Path: "error", Value: ""},
			{Path: "processedAt", Value: now},
		}); err != nil {
			return err
		}

		request.MarkProcessed(s.timeProvider)
		settled = request
		return nil
	})
	if err != nil {
		return settled, s.errorMapper.MapError(err, "settle withdrawal")
	}
	// The failure-branch transaction commits; surface its cause to the caller.
	return settled, settleErr
}

// FailWithdrawal writes a terminal failed status onto a still-pending request
func (s *Store) FailWithdrawal(ctx context.Context, requestID, reason string) error {
	err := s.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		reqRef := s.withdrawalRef(requestID)
		snap, err := tx.Get(reqRef)
		if err != nil {
			if status.Code(err) == codes.NotFound {
				return fmt.Errorf("%w: %s in shard %s", errs.ErrWithdrawalNotFound, requestID, s.shardID)
			}
			return err
		}

		var doc withdrawalDoc
		if err := snap.DataTo(&doc); err != nil {
			return fmt.Errorf("%w: decode withdrawal %s: %v", errs.ErrInternal, requestID, err)
		}
		if doc.Status != string(entity.WithdrawalPending) {
			// Terminal statuses are written exactly once.
			return nil
		}

		return tx.Update(reqRef, []firestore.Update{
			{Path: "status", Value: string(entity.WithdrawalFailed)},
			{Path: "error", Value: reason},
			{Path: "processedAt", Value: s.timeProvider.Now()},
		})
	})
	return s.errorMapper.MapError(err, "fail withdrawal")
}

// AwardReferralPair awards a same-shard referral in one transaction
func (s *Store) AwardReferralPair(ctx context.Context, referredUID, referrerUID string, bonusReferred, bonusReferrer int64) error {
	err := s.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		referredRef := s.userRef(referredUID)
		referrerRef := s.userRef(referrerUID)

		// Firestore requires all reads before any write in a transaction.
		referredSnap, err := tx.Get(referredRef)
		if err != nil {
			if status.Code(err) == codes.NotFound {
				return fmt.Errorf("%w: %s in shard %s", errs.ErrUserNotFound, referredUID, s.shardID)
			}
			return err
		}
		if _, err := tx.Get(referrerRef); err != nil {
			if status.Code(err) == codes.NotFound {
				return fmt.Errorf("%w: %s in shard %s", errs.ErrUserNotFound, referrerUID, s.shardID)
			}
			return err
		}

		var referredDoc userDoc
		if err := referredSnap.DataTo(&referredDoc); err != nil {
			return fmt.Errorf("%w: decode user %s: %v", errs.ErrInternal, referredUID, err)
		}
		if referredDoc.ReferralBonusAwarded {
			// Re-checked inside the transaction: repeated sweeps cannot double-pay.
			return errs.ErrAlreadyAwarded
		}

		now := s.timeProvider.Now()
		if err := tx.Update(referredRef, []firestore.Update{
			{Path: "coins", Value: firestore.Increment(bonusReferred)},
			{Path: "referralBonusAwarded", Value: true},
			{Path: "updatedAt", Value: now},
		}); err != nil {
			return err
		}
		return tx.Update(referrerRef, []firestore.Update{
			{Path: "coins", Value: firestore.Increment(bonusReferrer)},
			{Path: "updatedAt", Value: now},
		})
	})
	return s.errorMapper.MapError(err, "award referral pair")
}
