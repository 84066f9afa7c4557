// Package calling abstracts the platform calling service that owns the
// per-line backup calling setting.
package calling

import (
	"context"

	"crosscall/pkg/domain"
)

// Handle is a per-line view onto the calling service's backup calling
// setting. Implementations talk to the underlying platform.
type Handle interface {
	// Enabled reports whether backup calling is currently on for the line.
	Enabled(ctx context.Context) (bool, error)
	// SetEnabled writes the backup calling setting for the line.
	SetEnabled(ctx context.Context, enabled bool) error
}

// Service resolves per-line handles. Resolution fails with
// sentinel.ErrNotFound when the platform has no state for the line.
type Service interface {
	Handle(ctx context.Context, id domain.LineID) (Handle, error)
}
