package kv

import (
	"context"
	"sync"
)

// MemoryStore is a process-local Store for tests and local development. The
// single mutex makes every CompareAndSwap linearizable, matching the
// guarantees of the durable drivers.
type MemoryStore struct {
	mu      sync.Mutex
	entries map[string]Entry
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		entries: make(map[string]Entry),
	}
}

func (s *MemoryStore) Get(_ context.Context, key string) (Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.entries[key]
	if !ok {
		return Entry{}, ErrKeyNotFound
	}
	return Entry{Value: append([]byte(nil), entry.Value...), Version: entry.Version}, nil
}

func (s *MemoryStore) Put(_ context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	current := s.entries[key]
	s.entries[key] = Entry{
		Value:   append([]byte(nil), value...),
		Version: current.Version + 1,
	}
	return nil
}

func (s *MemoryStore) CompareAndSwap(_ context.Context, key string, expectedVersion int64, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.entries[key]
	if !ok {
		if expectedVersion != NoVersion {
			return ErrVersionMismatch
		}
	} else if current.Version != expectedVersion {
		return ErrVersionMismatch
	}

	s.entries[key] = Entry{
		Value:   append([]byte(nil), value...),
		Version: expectedVersion + 1,
	}
	return nil
}
