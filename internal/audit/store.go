package audit

import (
	"context"

	"crosscall/pkg/domain"
)

// Store persists audit events for traceability. Swap with concrete storage
// without touching the publisher.
type Store interface {
	Append(ctx context.Context, event Event) error
	ListByLine(ctx context.Context, id domain.LineID) ([]Event, error)
}

// Sink receives events after they are persisted, for fan-out to external
// systems. Sink failures are logged, never propagated: the store is the
// source of truth.
type Sink interface {
	Publish(ctx context.Context, event Event) error
}
