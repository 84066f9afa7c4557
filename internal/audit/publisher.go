package audit

import (
	"context"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"crosscall/pkg/domain"
	"crosscall/pkg/requestcontext"
)

// Publisher captures structured audit events. It is append-only: events go
// to the store first (source of truth), then fan out to sinks. Optional
// async mode decouples emitters from store latency.
type Publisher struct {
	store  Store
	sinks  []Sink
	logger *slog.Logger

	ch     chan Event
	wg     sync.WaitGroup
	closed sync.Once
}

type PublisherOption func(p *Publisher)

func WithLogger(logger *slog.Logger) PublisherOption {
	return func(p *Publisher) {
		p.logger = logger
	}
}

// WithSink adds a fan-out sink invoked after the store append succeeds.
func WithSink(sink Sink) PublisherOption {
	return func(p *Publisher) {
		if sink != nil {
			p.sinks = append(p.sinks, sink)
		}
	}
}

// WithAsyncBuffer switches Emit to a buffered background worker. When the
// buffer is full Emit falls back to the synchronous path rather than drop
// the event.
func WithAsyncBuffer(size int) PublisherOption {
	return func(p *Publisher) {
		p.ch = make(chan Event, size)
	}
}

func NewPublisher(store Store, opts ...PublisherOption) *Publisher {
	p := &Publisher{store: store, logger: slog.Default()}
	for _, opt := range opts {
		opt(p)
	}
	if p.ch != nil {
		p.wg.Add(1)
		go p.worker()
	}
	return p
}

// Emit records an audit event, stamping identity, time, and request
// metadata from the context when the caller left them unset.
func (p *Publisher) Emit(ctx context.Context, event Event) error {
	if event.ID == uuid.Nil {
		event.ID = uuid.New()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = requestcontext.Now(ctx)
	}
	if event.RequestID == "" {
		event.RequestID = requestcontext.RequestID(ctx)
	}
	if event.Actor == "" {
		event.Actor = requestcontext.Subject(ctx)
	}
	if event.ClientIP == "" {
		event.ClientIP = requestcontext.ClientIP(ctx)
	}
	if event.Device == "" {
		event.Device = requestcontext.DeviceSummary(ctx)
	}

	if p.ch != nil {
		select {
		case p.ch <- event:
			return nil
		default:
			// Buffer full: degrade to the synchronous path
		}
	}
	return p.process(ctx, event)
}

// List returns the recorded events for a line in append order.
func (p *Publisher) List(ctx context.Context, id domain.LineID) ([]Event, error) {
	return p.store.ListByLine(ctx, id)
}

// Close drains the async buffer and stops the worker.
func (p *Publisher) Close() {
	p.closed.Do(func() {
		if p.ch != nil {
			close(p.ch)
			p.wg.Wait()
		}
	})
}

func (p *Publisher) worker() {
	defer p.wg.Done()
	for event := range p.ch {
		if err := p.process(context.Background(), event); err != nil {
			p.logger.Error("async audit append failed", "action", event.Action, "error", err)
		}
	}
}

func (p *Publisher) process(ctx context.Context, event Event) error {
	if err := p.store.Append(ctx, event); err != nil {
		return err
	}
	for _, sink := range p.sinks {
		if err := sink.Publish(ctx, event); err != nil {
			// Sinks are best-effort; the store already holds the event
			p.logger.Warn("audit sink publish failed", "action", event.Action, "error", err)
		}
	}
	return nil
}
