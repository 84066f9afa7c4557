package carrierconfig

import (
	"context"
	"maps"
	"sync"

	"crosscall/pkg/domain"
	"crosscall/pkg/platform/sentinel"
)

// MemoryStore holds carrier configuration in memory. Used in tests and in
// deployments without a shared config backend.
type MemoryStore struct {
	mu      sync.RWMutex
	configs map[domain.LineID]Config
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{configs: make(map[domain.LineID]Config)}
}

// Put replaces the configuration for a line.
func (s *MemoryStore) Put(_ context.Context, id domain.LineID, cfg Config) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.configs[id] = maps.Clone(cfg)
	return nil
}

// Delete removes the configuration for a line.
func (s *MemoryStore) Delete(_ context.Context, id domain.LineID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.configs, id)
	return nil
}

// ConfigFor returns the configuration for a line, or sentinel.ErrNotFound.
func (s *MemoryStore) ConfigFor(_ context.Context, id domain.LineID) (Config, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	cfg, ok := s.configs[id]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	return maps.Clone(cfg), nil
}
