// Package capability bridges to the external capability service that
// reports platform-level support for cross-network calling. The service has
// its own lifecycle: it must be connected before queries are valid, and
// connection completion is signaled asynchronously from the service's own
// execution context.
package capability

import (
	"context"
	"log/slog"
	"sync/atomic"

	"crosscall/pkg/domain"
)

// ServiceCallback receives connection lifecycle notifications from the
// remote capability service. Callbacks may arrive concurrently with query
// calls.
type ServiceCallback interface {
	OnConnected()
	OnDisconnected()
}

// RemoteService is the external capability service contract.
// Connect registers the callback and requests a connection without blocking;
// QuerySupport is only meaningful while the service reports connected.
type RemoteService interface {
	Connect(cb ServiceCallback) error
	QuerySupport(ctx context.Context, id domain.LineID) (bool, error)
}

// Client tracks the capability service connection and answers support
// queries with fail-safe defaults. The connection flag is the only shared
// mutable state: the callback writes it, evaluation calls read it, and all
// transitions are idempotent overwrites, so an atomic flag is sufficient.
type Client struct {
	remote RemoteService
	logger *slog.Logger

	connected        atomic.Bool
	connectRequested atomic.Bool
}

type Option func(c *Client)

func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// NewClient constructs a Client. Connect must be called before queries can
// succeed.
func NewClient(remote RemoteService, opts ...Option) *Client {
	c := &Client{remote: remote, logger: slog.Default()}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Connect requests a connection to the capability service. It is idempotent
// and does not block; completion is reported through the service callback.
// A failed connection request clears the idempotency guard so a later call
// can retry.
func (c *Client) Connect() error {
	if !c.connectRequested.CompareAndSwap(false, true) {
		return nil
	}
	if err := c.remote.Connect(callback{client: c}); err != nil {
		c.connectRequested.Store(false)
		return err
	}
	return nil
}

// Connected returns a snapshot of the connection state. The state may change
// immediately after the read; callers must tolerate queries failing under a
// stale snapshot.
func (c *Client) Connected() bool {
	return c.connected.Load()
}

// CrossNetworkSupported reports whether the platform supports cross-network
// calling on the given line. Returns false while disconnected and false on
// remote failure; absence of support is a normal outcome, not a fault, so no
// error crosses this boundary.
func (c *Client) CrossNetworkSupported(ctx context.Context, id domain.LineID) bool {
	if !c.connected.Load() {
		c.logger.DebugContext(ctx, "capability service not connected", "line_id", id)
		return false
	}
	supported, err := c.remote.QuerySupport(ctx, id)
	if err != nil {
		c.logger.WarnContext(ctx, "capability support query failed", "line_id", id, "error", err)
		return false
	}
	if !supported {
		c.logger.DebugContext(ctx, "cross-network calling not supported by platform", "line_id", id)
	}
	return supported
}

// callback routes service notifications onto the client's connection flag.
// Kept as a separate type so the lifecycle methods stay off the Client API.
type callback struct {
	client *Client
}

func (cb callback) OnConnected() {
	cb.client.logger.Debug("capability service connected")
	cb.client.connected.Store(true)
}

func (cb callback) OnDisconnected() {
	cb.client.logger.Debug("capability service disconnected")
	cb.client.connected.Store(false)
}
