package capability

import (
	"context"
	"sync"
	"time"

	"crosscall/pkg/domain"
	"crosscall/pkg/platform/sentinel"
)

// SimulatedService mimics the external capability service with deterministic
// data and a configurable connect latency. Used as the default wiring when
// no real platform endpoint is configured, and by tests that need to drive
// connection transitions.
type SimulatedService struct {
	// ConnectLatency delays the connected callback to mimic the real
	// service's asynchronous handshake. Zero connects synchronously.
	ConnectLatency time.Duration

	mu        sync.Mutex
	cb        ServiceCallback
	supported map[domain.LineID]bool
	failQuery bool
}

func NewSimulatedService(supported ...domain.LineID) *SimulatedService {
	s := &SimulatedService{supported: make(map[domain.LineID]bool, len(supported))}
	for _, id := range supported {
		s.supported[id] = true
	}
	return s
}

// Connect registers the callback and schedules the connected notification.
func (s *SimulatedService) Connect(cb ServiceCallback) error {
	s.mu.Lock()
	s.cb = cb
	latency := s.ConnectLatency
	s.mu.Unlock()

	if latency == 0 {
		cb.OnConnected()
		return nil
	}
	go func() {
		time.Sleep(latency)
		cb.OnConnected()
	}()
	return nil
}

// Disconnect fires the disconnected callback, mimicking service loss.
func (s *SimulatedService) Disconnect() {
	s.mu.Lock()
	cb := s.cb
	s.mu.Unlock()
	if cb != nil {
		cb.OnDisconnected()
	}
}

// Reconnect fires the connected callback again after a Disconnect.
func (s *SimulatedService) Reconnect() {
	s.mu.Lock()
	cb := s.cb
	s.mu.Unlock()
	if cb != nil {
		cb.OnConnected()
	}
}

// SetSupported updates platform support for a line.
func (s *SimulatedService) SetSupported(id domain.LineID, supported bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.supported[id] = supported
}

// FailQueries makes subsequent QuerySupport calls return a transport error,
// mimicking a remote failure.
func (s *SimulatedService) FailQueries(fail bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failQuery = fail
}

func (s *SimulatedService) QuerySupport(_ context.Context, id domain.LineID) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failQuery {
		return false, sentinel.ErrRemoteCall
	}
	return s.supported[id], nil
}
