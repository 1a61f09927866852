// Package memstore is an in-process KeyValueStore, used by default and in tests.
package memstore

import (
	"context"
	"sync"

	portsrepo "github.com/SscSPs/bukukas_app/internal/core/ports/repositories"
)

// Store keeps every key in a map guarded by a RWMutex.
type Store struct {
	mu    sync.RWMutex
	items map[string]string
}

// New creates an empty Store.
func New() *Store {
	return &Store{items: make(map[string]string)}
}

var _ portsrepo.BatchStore = (*Store)(nil)

func (s *Store) GetItem(_ context.Context, key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.items[key]
	return v, ok, nil
}

func (s *Store) SetItem(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items[key] = value
	return nil
}

func (s *Store) RemoveItem(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.items, key)
	return nil
}

func (s *Store) SetItems(_ context.Context, items map[string]*string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for k, v := range items {
		if v == nil {
			delete(s.items, k)
			continue
		}
		s.items[k] = *v
	}
	return nil
}

// Keys returns the stored keys, in no particular order.
func (s *Store) Keys() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	keys := make([]string, 0, len(s.items))
	for k := range s.items {
		keys = append(keys, k)
	}
	return keys
}
