// Package directory tracks the communication lines the platform currently
// exposes. The gateway treats lines as read-only: they are created and
// destroyed by the platform as SIM/eSIM profiles activate or deactivate.
package directory

import (
	"context"

	"crosscall/pkg/domain"
)

// Line describes a communication line as the platform reports it.
type Line struct {
	ID          domain.LineID
	Active      bool
	DisplayName string
}

// Directory supplies the set of currently active communication lines.
// The returned slice is ordered by line ID so callers see a stable view.
type Directory interface {
	ActiveLines(ctx context.Context) ([]Line, error)
}
