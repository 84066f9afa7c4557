package audit

import (
	"context"
	"sync"

	"crosscall/pkg/domain"
)

// MemoryStore keeps audit events in memory. Used in tests and in
// deployments without a durable backend.
type MemoryStore struct {
	mu     sync.RWMutex
	events map[domain.LineID][]Event
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{events: make(map[domain.LineID][]Event)}
}

func (s *MemoryStore) Append(_ context.Context, event Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events[event.LineID] = append(s.events[event.LineID], event)
	return nil
}

func (s *MemoryStore) ListByLine(_ context.Context, id domain.LineID) ([]Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]Event{}, s.events[id]...), nil
}
