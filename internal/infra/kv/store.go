// Package kv defines the persistent key-value store the engine uses as its
// system of record. Values are opaque JSON blobs; every key carries a
// monotonically increasing version so read-modify-write cycles can be
// serialized with compare-and-swap instead of cross-process locks.
package kv

import (
	"context"
	"errors"
)

var (
	ErrKeyNotFound = errors.New("key not found")
	// ErrVersionMismatch means another writer won the compare-and-swap race;
	// callers re-read and retry.
	ErrVersionMismatch = errors.New("version mismatch")
)

// NoVersion is the expected version for insert-if-absent semantics.
const NoVersion int64 = 0

type Entry struct {
	Value   []byte
	Version int64
}

type Store interface {
	// Get returns the current entry for key, or ErrKeyNotFound.
	Get(ctx context.Context, key string) (Entry, error)

	// Put unconditionally upserts key.
	Put(ctx context.Context, key string, value []byte) error

	// CompareAndSwap writes value only if the stored version still equals
	// expectedVersion. expectedVersion == NoVersion inserts only when the key
	// is absent. Returns ErrVersionMismatch when another writer got there first.
	CompareAndSwap(ctx context.Context, key string, expectedVersion int64, value []byte) error
}
