package store

import (
	"context"
	"sync"

	"match-tracker-service/internal/domain"
)

// MemoryStore keeps tracked fixtures in memory behind a mutex. It is the
// default backend and the one tests run against.
type MemoryStore struct {
	mu       sync.RWMutex
	fixtures map[string]domain.TrackedFixture
}

// NewMemoryStore constructs an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		fixtures: make(map[string]domain.TrackedFixture),
	}
}

// List returns a copy of the currently tracked fixtures.
func (s *MemoryStore) List(ctx context.Context) ([]domain.TrackedFixture, error) {
	_ = ctx
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]domain.TrackedFixture, 0, len(s.fixtures))
	for _, f := range s.fixtures {
		result = append(result, f)
	}
	return result, nil
}

// InsertIfAbsent stores the fixture unless its match ID is already tracked.
func (s *MemoryStore) InsertIfAbsent(ctx context.Context, fixture domain.TrackedFixture) error {
	_ = ctx
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.fixtures[fixture.MatchID]; exists {
		return nil
	}
	s.fixtures[fixture.MatchID] = fixture
	return nil
}

// Delete removes the fixture; unknown IDs are a no-op.
func (s *MemoryStore) Delete(ctx context.Context, matchID string) error {
	_ = ctx
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.fixtures, matchID)
	return nil
}

// Len reports how many fixtures are tracked.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.fixtures)
}
