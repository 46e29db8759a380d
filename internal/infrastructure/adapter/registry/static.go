// Package registry provides the static shard registry: an ordered, immutable
// mapping from shard identifiers to their stores, built once at startup from
// injected configuration.
package registry

import (
	"fmt"

	errs "github.com/rewardly-app/rewards-processor/internal/domain/error"
	"github.com/rewardly-app/rewards-processor/internal/domain/port/persistence"
)

// Static implements persistence.ShardRegistry over a fixed, ordered shard
// list. It is read-only after construction, so it is safe for concurrent use
// without locking.
type Static struct {
	order  []string
	stores map[string]persistence.ShardStore
}

// Compile-time check that Static satisfies the registry port
var _ persistence.ShardRegistry = (*Static)(nil)

// NewStatic builds a registry from the given stores, preserving their order.
// Duplicate shard identifiers are rejected.
func NewStatic(stores ...persistence.ShardStore) (*Static, error) {
	r := &Static{
		order:  make([]string, 0, len(stores)),
		stores: make(map[string]persistence.ShardStore, len(stores)),
	}
	for _, store := range stores {
		id := store.ShardID()
		if _, exists := r.stores[id]; exists {
			return nil, fmt.Errorf("duplicate shard id %q in registry", id)
		}
		r.order = append(r.order, id)
		r.stores[id] = store
	}
	return r, nil
}

// Resolve returns the store bound to the given shard identifier
func (r *Static) Resolve(shardID string) (persistence.ShardStore, error) {
	store, ok := r.stores[shardID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", errs.ErrShardNotFound, shardID)
	}
	return store, nil
}

// All returns every registered store in insertion order
func (r *Static) All() []persistence.ShardStore {
	out := make([]persistence.ShardStore, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.stores[id])
	}
	return out
}

// IDs returns the registered shard identifiers in insertion order
func (r *Static) IDs() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}
