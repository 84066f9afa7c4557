package companion

import (
	"context"
	"sync"

	"crosscall/pkg/domain"
)

// StaticSupport answers support queries from a fixed line set. Used as the
// default wiring and in tests; real deployments substitute an adapter over
// the platform's feature-query service.
type StaticSupport struct {
	mu        sync.RWMutex
	supported map[domain.LineID]bool
}

func NewStaticSupport(lines ...domain.LineID) *StaticSupport {
	s := &StaticSupport{supported: make(map[domain.LineID]bool, len(lines))}
	for _, id := range lines {
		s.supported[id] = true
	}
	return s
}

// SetSupported updates the support status for a line.
func (s *StaticSupport) SetSupported(id domain.LineID, supported bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.supported[id] = supported
}

func (s *StaticSupport) Supported(_ context.Context, id domain.LineID) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.supported[id], nil
}
