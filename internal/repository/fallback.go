package repository

import (
	"sync"

	"talentdeck-api/pkg/models"
)

// FallbackStore is the in-memory dataset served when the primary store is
// unreachable. It is an explicit, injected object rather than shared
// package state, so tests can own isolated instances.
type FallbackStore struct {
	mu         sync.RWMutex
	candidates []models.Candidate
}

// NewFallbackStore creates a store holding a copy of the given dataset
func NewFallbackStore(candidates []models.Candidate) *FallbackStore {
	s := &FallbackStore{}
	s.Reset(candidates)
	return s
}

// NewSeededFallbackStore creates a store holding the fixed sample dataset
func NewSeededFallbackStore() *FallbackStore {
	return NewFallbackStore(SeedCandidates())
}

// Reset replaces the store's contents with a copy of the given dataset
func (s *FallbackStore) Reset(candidates []models.Candidate) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.candidates = make([]models.Candidate, len(candidates))
	copy(s.candidates, candidates)
}

// List returns a copy of every candidate in input order
func (s *FallbackStore) List() []models.Candidate {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Candidate, len(s.candidates))
	copy(out, s.candidates)
	return out
}

// Get returns one candidate by id or a NotFoundError
func (s *FallbackStore) Get(id int) (*models.Candidate, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, c := range s.candidates {
		if c.ID == id {
			snapshot := c
			return &snapshot, nil
		}
	}
	return nil, &NotFoundError{ID: id}
}

// UpdateStatus applies a partial update in place. The failover policy
// never routes live writes here; this exists for tests and local
// development where the store is the only dataset.
func (s *FallbackStore) UpdateStatus(id int, update models.UpdateStatusRequest) (*models.Candidate, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.candidates {
		if s.candidates[i].ID != id {
			continue
		}
		if update.Status != "" {
			s.candidates[i].Status = update.Status
		}
		if update.Stage != "" {
			s.candidates[i].Stage = update.Stage
		}
		if update.Rating != nil {
			s.candidates[i].Rating = *update.Rating
		}
		snapshot := s.candidates[i]
		return &snapshot, nil
	}
	return nil, &NotFoundError{ID: id}
}
