// Package scan implements the cross-shard find-first operation used by
// referral lookup and code-uniqueness probing. The scan strategy is a
// pluggable policy so callers are not tied to sequential control flow.
package scan

import (
	"context"
	"errors"

	"golang.org/x/sync/errgroup"

	"github.com/rewardly-app/rewards-processor/internal/domain/entity"
	errs "github.com/rewardly-app/rewards-processor/internal/domain/error"
	coreport "github.com/rewardly-app/rewards-processor/internal/domain/port/core"
	"github.com/rewardly-app/rewards-processor/internal/domain/port/persistence"
)

// Lookup queries a single shard. ErrUserNotFound means the shard holds no
// match; any other error counts as a failed probe of that shard.
type Lookup func(ctx context.Context, shard persistence.ShardStore) (*entity.User, error)

// Match pairs a located user with the shard that holds it
type Match struct {
	Shard persistence.ShardStore
	User  *entity.User
}

// Policy finds the first (shard, user) pair satisfying a lookup across the
// registry. Outcomes:
//   - match != nil: a user was found
//   - match == nil, err == nil: every shard was probed cleanly, no match
//   - match == nil, err != nil: no match, but at least one probe failed, so
//     the miss is inconclusive
//
// No caching: every call re-queries the shards.
type Policy interface {
	FindFirst(ctx context.Context, registry persistence.ShardRegistry, lookup Lookup) (*Match, error)
}

// Sequential probes shards one at a time in registry order, short-circuiting
// on the first match. Registry insertion order is the documented tie-break
// when the same code exists in more than one shard.
type Sequential struct {
	logger coreport.Logger
}

// NewSequential creates the default sequential scan policy
func NewSequential(logger coreport.Logger) *Sequential {
	return &Sequential{logger: logger}
}

// FindFirst implements Policy
func (s *Sequential) FindFirst(ctx context.Context, registry persistence.ShardRegistry, lookup Lookup) (*Match, error) {
	var probeErrs []error

	for _, shard := range registry.All() {
		user, err := lookup(ctx, shard)
		if err != nil {
			if errors.Is(err, errs.ErrUserNotFound) {
				continue
			}
			s.logger.Warn("Shard probe failed during scan", map[string]any{
				"shard_id": shard.ShardID(),
				"error":    err.Error(),
			})
			probeErrs = append(probeErrs, errs.NewShardError(shard.ShardID(), "scan", err))
			continue
		}
		return &Match{Shard: shard, User: user}, nil
	}

	return nil, errors.Join(probeErrs...)
}

// Parallel fans the lookup out to every shard at once and returns the first
// result. With concurrent matches the winner is whichever shard answers
// first, so Parallel gives up the registry-order tie-break in exchange for
// latency bounded by the fastest matching shard.
type Parallel struct {
	logger coreport.Logger
}

// NewParallel creates the fan-out scan policy
func NewParallel(logger coreport.Logger) *Parallel {
	return &Parallel{logger: logger}
}

// FindFirst implements Policy
func (p *Parallel) FindFirst(ctx context.Context, registry persistence.ShardRegistry, lookup Lookup) (*Match, error) {
	scanCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	shards := registry.All()
	matches := make(chan *Match, len(shards))
	probeErrs := make(chan error, len(shards))

	g, gctx := errgroup.WithContext(scanCtx)
	for _, shard := range shards {
		g.Go(func() error {
			user, err := lookup(gctx, shard)
			if err != nil {
				if errors.Is(err, errs.ErrUserNotFound) || gctx.Err() != nil {
					return nil
				}
				p.logger.Warn("Shard probe failed during scan", map[string]any{
					"shard_id": shard.ShardID(),
					"error":    err.Error(),
				})
				probeErrs <- errs.NewShardError(shard.ShardID(), "scan", err)
				return nil
			}
			matches <- &Match{Shard: shard, User: user}
			cancel()
			return nil
		})
	}

	_ = g.Wait()
	close(matches)
	close(probeErrs)

	if match, ok := <-matches; ok {
		return match, nil
	}

	var joined []error
	for err := range probeErrs {
		joined = append(joined, err)
	}
	return nil, errors.Join(joined...)
}
