package calling

import (
	"context"
	"sync"

	"crosscall/pkg/domain"
	"crosscall/pkg/platform/sentinel"
)

// SimulatedService is an in-process calling service used in tests and
// broker-less deployments. It keeps per-line settings in memory and can
// inject faults on resolution, reads, and writes.
type SimulatedService struct {
	mu      sync.Mutex
	enabled map[domain.LineID]bool

	failResolve bool
	failRead    bool
	failWrite   bool
}

func NewSimulatedService() *SimulatedService {
	return &SimulatedService{enabled: make(map[domain.LineID]bool)}
}

// Provision registers a line with the service so handles resolve for it.
func (s *SimulatedService) Provision(id domain.LineID, enabled bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.enabled[id] = enabled
}

// Deprovision removes a line so subsequent resolutions fail.
func (s *SimulatedService) Deprovision(id domain.LineID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.enabled, id)
}

// FailResolutions makes Handle return a remote error until reset.
func (s *SimulatedService) FailResolutions(fail bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failResolve = fail
}

// FailReads makes Enabled return a remote error until reset.
func (s *SimulatedService) FailReads(fail bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failRead = fail
}

// FailWrites makes SetEnabled return a remote error until reset.
func (s *SimulatedService) FailWrites(fail bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failWrite = fail
}

func (s *SimulatedService) Handle(_ context.Context, id domain.LineID) (Handle, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failResolve {
		return nil, sentinel.ErrRemoteCall
	}
	if _, ok := s.enabled[id]; !ok {
		return nil, sentinel.ErrNotFound
	}
	return &simulatedHandle{service: s, id: id}, nil
}

type simulatedHandle struct {
	service *SimulatedService
	id      domain.LineID
}

func (h *simulatedHandle) Enabled(context.Context) (bool, error) {
	h.service.mu.Lock()
	defer h.service.mu.Unlock()
	if h.service.failRead {
		return false, sentinel.ErrRemoteCall
	}
	enabled, ok := h.service.enabled[h.id]
	if !ok {
		return false, sentinel.ErrNotFound
	}
	return enabled, nil
}

func (h *simulatedHandle) SetEnabled(_ context.Context, enabled bool) error {
	h.service.mu.Lock()
	defer h.service.mu.Unlock()
	if h.service.failWrite {
		return sentinel.ErrRemoteCall
	}
	if _, ok := h.service.enabled[h.id]; !ok {
		return sentinel.ErrNotFound
	}
	h.service.enabled[h.id] = enabled
	return nil
}
