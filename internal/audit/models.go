package audit

import (
	"time"

	"github.com/google/uuid"

	"crosscall/pkg/domain"
)

// Action identifies what happened to a line's backup calling setting.
type Action string

const (
	ActionToggleEnabled  Action = "backup_calling_enabled"
	ActionToggleDisabled Action = "backup_calling_disabled"
	ActionLineActivated  Action = "line_activated"
	ActionLineDeactivated Action = "line_deactivated"
)

// Event is emitted from domain logic to capture settings changes. Keep it
// transport-agnostic so stores and sinks can fan out.
type Event struct {
	ID        uuid.UUID
	Timestamp time.Time
	Action    Action
	LineID    domain.LineID
	// Actor is the authenticated principal that triggered the change.
	Actor string
	// RequestID correlates the event with the HTTP request that caused it.
	RequestID string
	// ClientIP and Device describe where the change came from. Device is a
	// parsed summary like "Chrome on Linux", not the raw User-Agent.
	ClientIP string
	Device   string
}

// ToggleAction maps a written toggle value to its audit action.
func ToggleAction(enabled bool) Action {
	if enabled {
		return ActionToggleEnabled
	}
	return ActionToggleDisabled
}
