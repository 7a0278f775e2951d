// Package store owns the open compositions. All access goes through the
// store's lock: reads hand out deep copies and mutations run inside Update,
// which makes each graph operation atomic with respect to the others.
package store

import (
	"fmt"
	"slices"
	"sync"

	"github.com/blackmamba/compgraph/internal/model"
)

// Store is a concurrency-safe container of compositions keyed by id.
type Store struct {
	mu    sync.RWMutex
	comps map[string]*model.Composition
}

// New returns an empty store.
func New() *Store {
	return &Store{comps: make(map[string]*model.Composition)}
}

// Put registers a composition, replacing any previous document with the
// same id.
func (s *Store) Put(c *model.Composition) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.comps[c.ID] = c
}

// Get returns a deep copy of the composition, so callers can never reach
// live graph data.
func (s *Store) Get(id string) (*model.Composition, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.comps[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", model.ErrCompositionNotFound, id)
	}
	return c.Clone(), nil
}

// Delete removes the composition.
func (s *Store) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.comps[id]; !ok {
		return fmt.Errorf("%w: %s", model.ErrCompositionNotFound, id)
	}
	delete(s.comps, id)
	return nil
}

// IDs returns the ids of every open composition in sorted order.
func (s *Store) IDs() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ids := make([]string, 0, len(s.comps))
	for id := range s.comps {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// Len returns the number of open compositions.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.comps)
}

// Update runs fn against the live composition under the write lock and
// stamps the modification time when fn succeeds. The callback must not
// retain the pointer after returning.
func (s *Store) Update(id string, fn func(*model.Composition) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.comps[id]
	if !ok {
		return fmt.Errorf("%w: %s", model.ErrCompositionNotFound, id)
	}
	if err := fn(c); err != nil {
		return err
	}
	c.Touch()
	return nil
}

// View runs fn against the live composition under the read lock. The
// callback must not retain the pointer or mutate the document.
func (s *Store) View(id string, fn func(*model.Composition) error) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.comps[id]
	if !ok {
		return fmt.Errorf("%w: %s", model.ErrCompositionNotFound, id)
	}
	return fn(c)
}
