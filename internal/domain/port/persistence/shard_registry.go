package persistence

// ShardRegistry is the process-wide mapping from shard identifiers to their
// stores. It is built once at startup from injected configuration and never
// mutated at runtime, so no locking is required around it.
type ShardRegistry interface {
	// Resolve returns the store bound to the given shard identifier
	//
	// Possible errors:
	// - ErrShardNotFound: if the identifier is absent from the registry
	Resolve(shardID string) (ShardStore, error)

	// All returns every registered store in stable insertion order. Scan-based
	// operations rely on this order as their first-match tie-break.
	All() []ShardStore
}
