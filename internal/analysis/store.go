package analysis

import (
	"errors"
	"sync"

	"github.com/google/uuid"
)

// ErrNotFound is returned when an analysis ID is unknown or expired.
var ErrNotFound = errors.New("analysis: not found")

// Store is a mutex-guarded in-memory analysis registry. Analyses are
// session-scoped: nothing is persisted and a restart clears everything.
type Store struct {
	mu   sync.RWMutex
	byID map[uuid.UUID]*Result
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{byID: make(map[uuid.UUID]*Result)}
}

// Put registers a result under its ID.
func (s *Store) Put(res *Result) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.byID[res.ID] = res
}

// Get returns the result for id, or ErrNotFound.
func (s *Store) Get(id uuid.UUID) (*Result, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	res, ok := s.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	return res, nil
}

// Delete discards a result. Deleting an unknown ID is a no-op.
func (s *Store) Delete(id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.byID, id)
}

// Len reports the number of stored analyses.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.byID)
}
