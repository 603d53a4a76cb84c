// Package storage provides the persistent key-value substrate beneath the
// record stores, counters, and indexes. The substrate is an opaque map with
// point lookups only: no range queries, no transactions. Callers get
// read-your-writes consistency within an operation and durability between
// operations from the backing implementation.
package storage

import "context"

// KV is interface-driven to keep the domain logic testable and to allow
// swapping in-memory, Redis, or other persistence without rewiring business
// code.
type KV interface {
	// Get returns the value stored at key, or ErrNotFound.
	Get(ctx context.Context, key string) ([]byte, error)
	// Put stores value at key, overwriting any previous value.
	Put(ctx context.Context, key string, value []byte) error
	// Has reports whether key exists.
	Has(ctx context.Context, key string) (bool, error)
	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
}
