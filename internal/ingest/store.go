// Package ingest handles loading resumes from disk: text extraction per
// file type, an insertion-ordered candidate store, and directory watching.
package ingest

import (
	"sync"

	"resumerank/internal/types"
)

// Store is an insertion-ordered candidate collection. Upserting a
// candidate that already exists replaces it in place; its position in
// the ordering does not change.
type Store struct {
	mu    sync.RWMutex
	order []string
	byID  map[string]types.Candidate
}

// NewStore creates an empty candidate store.
func NewStore() *Store {
	return &Store{
		byID: make(map[string]types.Candidate),
	}
}

// Upsert adds the candidate or replaces an existing one with the same ID.
func (s *Store) Upsert(c types.Candidate) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.byID[c.ID]; !exists {
		s.order = append(s.order, c.ID)
	}
	s.byID[c.ID] = c
}

// UpsertAll adds or replaces a batch of candidates.
func (s *Store) UpsertAll(candidates []types.Candidate) {
	for _, c := range candidates {
		s.Upsert(c)
	}
}

// Get returns the candidate with the given ID.
func (s *Store) Get(id string) (types.Candidate, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.byID[id]
	return c, ok
}

// Remove deletes the candidate with the given ID, if present.
func (s *Store) Remove(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.byID[id]; !exists {
		return
	}
	delete(s.byID, id)
	for i, existing := range s.order {
		if existing == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}

// List returns all candidates in insertion order.
func (s *Store) List() []types.Candidate {
	s.mu.RLock()
	defer s.mu.RUnlock()

	candidates := make([]types.Candidate, 0, len(s.order))
	for _, id := range s.order {
		candidates = append(candidates, s.byID[id])
	}
	return candidates
}

// Len returns the number of stored candidates.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.order)
}
