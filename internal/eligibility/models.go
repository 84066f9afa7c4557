package eligibility

import (
	"time"

	"crosscall/internal/directory"
)

// Verdict is the computed availability outcome controlling whether the
// backup calling control is offered for a line.
type Verdict string

const (
	// VerdictAvailable means every gate passed and the feature should be
	// offered.
	VerdictAvailable Verdict = "available"

	// VerdictConditionallyUnavailable means at least one gate failed. This
	// covers transient states (service not connected) and policy states
	// (multiple active lines) alike; it is a normal outcome, not a fault.
	VerdictConditionallyUnavailable Verdict = "conditionally_unavailable"
)

// Reason records which gate decided the verdict, for logs and metrics.
// Callers must not branch on it; the verdict alone drives behavior.
type Reason string

const (
	ReasonServiceNotConnected  Reason = "service_not_connected"
	ReasonPlatformUnsupported  Reason = "platform_unsupported"
	ReasonDirectoryUnavailable Reason = "directory_unavailable"
	ReasonLineNotActive        Reason = "line_not_active"
	ReasonMultipleActiveLines  Reason = "multiple_active_lines"
	ReasonCompanionUnsupported Reason = "companion_unsupported"
	ReasonCarrierDisabled      Reason = "carrier_disabled"
	ReasonAllChecksPassed      Reason = "all_checks_passed"
)

// Evaluation is the full result of one availability evaluation. Derived, not
// stored: inputs (active-line set, connection state) change between calls,
// so verdicts are recomputed on every request.
type Evaluation struct {
	Verdict     Verdict
	Reason      Reason
	Line        *directory.Line
	EvaluatedAt time.Time
}

// Available reports whether the evaluation allows the feature to be offered.
func (e Evaluation) Available() bool {
	return e.Verdict == VerdictAvailable
}
