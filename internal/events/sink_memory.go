package events

import (
	"context"
	"sync"
)

// InMemorySink buffers events for tests and local development.
type InMemorySink struct {
	mu     sync.RWMutex
	events []Event
}

func NewInMemorySink() *InMemorySink {
	return &InMemorySink{}
}

func (s *InMemorySink) Publish(_ context.Context, event Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, event)
	return nil
}

// Events returns a copy of everything published so far, in order.
func (s *InMemorySink) Events() []Event {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]Event{}, s.events...)
}

// ByKind filters the published events by kind, preserving order.
func (s *InMemorySink) ByKind(kind Kind) []Event {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []Event
	for _, e := range s.events {
		if e.Kind == kind {
			out = append(out, e)
		}
	}
	return out
}

// Clear drops all buffered events.
func (s *InMemorySink) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = nil
}
