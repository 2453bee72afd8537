// Package session holds the uploaded dataset for the lifetime of the
// browser session. Nothing here survives a restart; a new upload replaces
// the current dataset wholesale.
package session

import (
	"sync"

	"surveylens/domain/core"
	"surveylens/domain/dataset"
)

// Store is the in-memory home of the current dataset. Analysis itself is
// sequential, but the HTTP server serves concurrent requests, so access is
// guarded.
type Store struct {
	mu      sync.RWMutex
	current *dataset.Dataset
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{}
}

// Put replaces the current dataset.
func (s *Store) Put(ds *dataset.Dataset) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = ds
}

// Current returns the active dataset, if any.
func (s *Store) Current() (*dataset.Dataset, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return nil, false
	}
	return s.current, true
}

// Get returns the dataset only when the given ID matches the active one.
func (s *Store) Get(id core.DatasetID) (*dataset.Dataset, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil || s.current.ID != id {
		return nil, core.ErrDatasetNotFound
	}
	return s.current, nil
}

// Clear drops the current dataset.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = nil
}
