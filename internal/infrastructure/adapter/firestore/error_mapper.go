package firestore

import (
	"fmt"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	domainErr "github.com/rewardly-app/rewards-processor/internal/domain/error"
)

// ErrorMapper maps Firestore RPC errors to domain errors
type ErrorMapper struct {
	shardID string
}

// NewErrorMapper creates a new ErrorMapper bound to one shard
func NewErrorMapper(shardID string) *ErrorMapper {
	return &ErrorMapper{shardID: shardID}
}

// MapError maps a Firestore RPC error to a domain error. Document absence is
// decided at call sites via snapshot existence, so NotFound here refers to
// the collection-level RPC.
func (m *ErrorMapper) MapError(err error, operation string) error {
	if err == nil {
		return nil
	}

	// Domain errors raised inside transaction closures pass through untouched
	if kind := domainErr.Kind(err); kind != domainErr.KindInternal {
		return err
	}

	switch status.Code(err) {
	case codes.NotFound:
		return domainErr.ErrUserNotFound

	case codes.Aborted:
		// The client retried the transaction up to its internal limit before
		// surfacing the conflict.
		return fmt.Errorf("%w: %s on shard %s", domainErr.ErrTransactionConflict, operation, m.shardID)

	case codes.Unavailable, codes.DeadlineExceeded, codes.Unauthenticated, codes.PermissionDenied:
		return fmt.Errorf("%w: %s on shard %s: %v", domainErr.ErrShardUnreachable, operation, m.shardID, err)

	case codes.Canceled:
		return err

	default:
		return fmt.Errorf("%w: %s on shard %s: %v", domainErr.ErrInternal, operation, m.shardID, err)
	}
}

// isTransientCode reports whether a failed RPC is worth retrying
func isTransientCode(err error) bool {
	switch status.Code(err) {
	case codes.Unavailable, codes.DeadlineExceeded, codes.ResourceExhausted:
		return true
	default:
		return false
	}
}
