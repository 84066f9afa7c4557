// Package carrierconfig exposes carrier- and region-specific settings that
// gate feature availability per line. Config is supplied externally (carrier
// provisioning); the gateway only reads it.
package carrierconfig

import (
	"context"

	"crosscall/pkg/domain"
)

// KeyCrossNetworkAvailable is the boolean config key controlling whether the
// carrier permits cross-network backup calling. A missing key is treated as
// explicitly disabled.
const KeyCrossNetworkAvailable = "cross_network_available_bool"

// Config is the carrier configuration bundle for a single line.
type Config map[string]any

// Bool returns the boolean value for key, defaulting to false when the key
// is absent or not a boolean.
func (c Config) Bool(key string) bool {
	if c == nil {
		return false
	}
	v, ok := c[key].(bool)
	return ok && v
}

// Store retrieves per-line carrier configuration.
// Implementations return sentinel.ErrNotFound (optionally wrapped) when no
// configuration exists for the line.
type Store interface {
	ConfigFor(ctx context.Context, id domain.LineID) (Config, error)
}
