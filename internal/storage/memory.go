package storage

import (
	"context"
	"sync"
)

// InMemoryKV keeps the initial deployment lightweight and testable. It
// intentionally favors clarity over performance.
type InMemoryKV struct {
	mu   sync.RWMutex
	data map[string][]byte
}

func NewInMemoryKV() *InMemoryKV {
	return &InMemoryKV{data: make(map[string][]byte)}
}

func (s *InMemoryKV) Get(_ context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	value, ok := s.data[key]
	if !ok {
		return nil, ErrNotFound
	}
	out := make([]byte, len(value))
	copy(out, value)
	return out, nil
}

func (s *InMemoryKV) Put(_ context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	stored := make([]byte, len(value))
	copy(stored, value)
	s.data[key] = stored
	return nil
}

func (s *InMemoryKV) Has(_ context.Context, key string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.data[key]
	return ok, nil
}

func (s *InMemoryKV) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, key)
	return nil
}
