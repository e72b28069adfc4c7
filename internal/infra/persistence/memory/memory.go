// Package memory provides an in-memory Storage implementation. It backs
// ephemeral sessions and is the substitute tests inject in place of the
// durable adapters.
package memory

import (
	"sync"

	"storefront/internal/domain/service"
)

// Store is a concurrency-safe in-memory key-value store.
type Store struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewStore creates an empty in-memory store.
func NewStore() *Store {
	return &Store{values: make(map[string]string)}
}

var _ service.Storage = (*Store)(nil)

func (s *Store) Load(key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.values[key]

	return value, ok, nil
}

func (s *Store) Save(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.values[key] = value

	return nil
}

func (s *Store) Remove(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.values, key)

	return nil
}
