// Package companion exposes support status for the prerequisite calling
// feature. Cross-network backup calling is only offered on lines where the
// companion feature is usable.
package companion

import (
	"context"

	"crosscall/pkg/domain"
)

// Support reports whether the companion calling feature is usable on a line.
type Support interface {
	Supported(ctx context.Context, id domain.LineID) (bool, error)
}
