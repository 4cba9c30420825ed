package memorandum

import (
	"context"
	"fmt"
	"sync"

	"github.com/ethanbaker/gestuab/pkg/memorandum"
	"github.com/google/uuid"
)

// InMemoryStore provides an in-memory implementation of StoreInterface for testing
// and for running without a database
type InMemoryStore struct {
	memoranda map[uuid.UUID]*memorandum.Memorandum
	order     []uuid.UUID // insertion order, used for listing
	mutex     sync.RWMutex
}

// NewInMemoryStore creates a new in-memory memorandum store
func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{
		memoranda: make(map[uuid.UUID]*memorandum.Memorandum),
		order:     []uuid.UUID{},
		mutex:     sync.RWMutex{},
	}
}

// Create stores a new memorandum
func (s *InMemoryStore) Create(ctx context.Context, m *memorandum.Memorandum) error {
	if m == nil {
		return fmt.Errorf("memorandum cannot be nil")
	}
	if m.Id == uuid.Nil {
		return fmt.Errorf("memorandum id cannot be empty")
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	if _, exists := s.memoranda[m.Id]; exists {
		return fmt.Errorf("memorandum with id '%s' already exists", m.Id)
	}

	// Store a copy to avoid shared references
	s.memoranda[m.Id] = m.Clone()
	s.order = append(s.order, m.Id)
	return nil
}

// Get retrieves a memorandum by ID
func (s *InMemoryStore) Get(ctx context.Context, id uuid.UUID) (*memorandum.Memorandum, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	m, exists := s.memoranda[id]
	if !exists {
		return nil, memorandum.ErrNotFound
	}

	return m.Clone(), nil
}

// Update replaces an existing memorandum
func (s *InMemoryStore) Update(ctx context.Context, m *memorandum.Memorandum) error {
	if m == nil {
		return fmt.Errorf("memorandum cannot be nil")
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	if _, exists := s.memoranda[m.Id]; !exists {
		return memorandum.ErrNotFound
	}

	s.memoranda[m.Id] = m.Clone()
	return nil
}

// Delete removes a memorandum by ID
func (s *InMemoryStore) Delete(ctx context.Context, id uuid.UUID) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if _, exists := s.memoranda[id]; !exists {
		return memorandum.ErrNotFound
	}

	delete(s.memoranda, id)
	for i, existing := range s.order {
		if existing == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}

	return nil
}

// List returns memoranda in insertion order
func (s *InMemoryStore) List(ctx context.Context, opts memorandum.ListOptions) ([]*memorandum.Memorandum, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	memoranda := []*memorandum.Memorandum{}
	skipped := 0
	for _, id := range s.order {
		m := s.memoranda[id]
		if opts.Type != nil && m.Type != *opts.Type {
			continue
		}
		if skipped < opts.Offset {
			skipped++
			continue
		}
		if opts.Limit > 0 && len(memoranda) >= opts.Limit {
			break
		}

		// Create copies to avoid external mutations
		memoranda = append(memoranda, m.Clone())
	}

	return memoranda, nil
}

// Count returns the number of stored memoranda matching the type filter of
// opts. Paging options are ignored.
func (s *InMemoryStore) Count(ctx context.Context, opts memorandum.ListOptions) (int64, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	if opts.Type == nil {
		return int64(len(s.memoranda)), nil
	}

	var count int64
	for _, m := range s.memoranda {
		if m.Type == *opts.Type {
			count++
		}
	}
	return count, nil
}

// Close is a no-op for the in-memory store
func (s *InMemoryStore) Close() error {
	return nil
}
