// Package settings persists the scoreboard's customizations in a key/value store.
package settings

import "sync"

// Store is a string key/value store. Get reports false for a missing key.
type Store interface {
	Get(key string) (string, bool, error)
	Set(key, value string) error
}

// MemStore is an in-memory Store.
type MemStore struct {
	mu   sync.RWMutex
	vals map[string]string
}

// NewMemStore creates an empty MemStore.
func NewMemStore() *MemStore {
	return &MemStore{vals: make(map[string]string)}
}

// Get implements Store.
func (s *MemStore) Get(key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.vals[key]
	return v, ok, nil
}

// Set implements Store.
func (s *MemStore) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.vals[key] = value
	return nil
}
