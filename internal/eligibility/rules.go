package eligibility

import (
	"crosscall/internal/directory"
	"crosscall/pkg/domain"
)

// findLine returns the entry matching id from the active-line set, or nil
// when the line is not active.
// This is pure domain logic - no I/O, no side effects.
func findLine(lines []directory.Line, id domain.LineID) *directory.Line {
	for i := range lines {
		if lines[i].ID == id {
			return &lines[i]
		}
	}
	return nil
}

// lineSelectionReason applies the line-selection policy: the feature is
// offered only when the queried line is active and is the sole active line.
// The single-line restriction is deliberate policy, not a technical limit.
// Returns ReasonAllChecksPassed when the policy passes.
func lineSelectionReason(lines []directory.Line, id domain.LineID) Reason {
	if findLine(lines, id) == nil {
		return ReasonLineNotActive
	}
	if len(lines) > 1 {
		return ReasonMultipleActiveLines
	}
	return ReasonAllChecksPassed
}
