package store

import (
	"context"
	"sync"
)

// WarnStore tracks per-user violation counts. Counts only ever go up; there
// is no reset short of a restart (memory backend) or deleting the key
// out-of-band (redis backend).
type WarnStore interface {
	// Incr adds one violation and returns the new count.
	Incr(ctx context.Context, userID int64) (int, error)
	// Count returns the current count, zero for unknown users.
	Count(ctx context.Context, userID int64) (int, error)
}

// MemoryWarnStore is the default backend: counts live for the process
// lifetime only, so a restart amnesties everyone. The redis backend exists
// for deployments that don't want that.
type MemoryWarnStore struct {
	mu     sync.Mutex
	counts map[int64]int
}

func NewMemoryWarnStore() *MemoryWarnStore {
	return &MemoryWarnStore{counts: make(map[int64]int)}
}

func (s *MemoryWarnStore) Incr(_ context.Context, userID int64) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.counts[userID]++
	return s.counts[userID], nil
}

func (s *MemoryWarnStore) Count(_ context.Context, userID int64) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.counts[userID], nil
}
