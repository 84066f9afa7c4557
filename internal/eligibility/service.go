// Package eligibility computes the availability verdict for the backup
// calling feature. The evaluation is a short-circuiting chain of gates over
// externally owned state: capability service connection, platform support,
// line selection, companion feature support, and carrier configuration.
// No error crosses this package's boundary - every failure mode collapses to
// a verdict.
package eligibility

//go:generate mockgen -source=service.go -destination=mocks/mocks.go -package=mocks CapabilityChecker,LineDirectory,CompanionSupport,CarrierConfigs

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"crosscall/internal/carrierconfig"
	"crosscall/internal/directory"
	"crosscall/internal/eligibility/metrics"
	"crosscall/pkg/domain"
	"crosscall/pkg/requestcontext"
)

// CapabilityChecker is the connection-gated platform support query.
type CapabilityChecker interface {
	Connected() bool
	CrossNetworkSupported(ctx context.Context, id domain.LineID) bool
}

// LineDirectory supplies the set of currently active communication lines.
type LineDirectory interface {
	ActiveLines(ctx context.Context) ([]directory.Line, error)
}

// CompanionSupport reports whether the prerequisite calling feature is
// usable on a line.
type CompanionSupport interface {
	Supported(ctx context.Context, id domain.LineID) (bool, error)
}

// CarrierConfigs retrieves per-line carrier configuration.
type CarrierConfigs interface {
	ConfigFor(ctx context.Context, id domain.LineID) (carrierconfig.Config, error)
}

// Service evaluates backup calling availability for a line. It holds no
// state of its own; every call reads fresh snapshots from its collaborators.
type Service struct {
	capability CapabilityChecker
	lines      LineDirectory
	companion  CompanionSupport
	configs    CarrierConfigs
	logger     *slog.Logger
	metrics    *metrics.Metrics
	tracer     trace.Tracer
}

type Option func(s *Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

// New constructs a Service.
// Returns an error when any required collaborator is missing.
func New(capability CapabilityChecker, lines LineDirectory, companion CompanionSupport, configs CarrierConfigs, opts ...Option) (*Service, error) {
	if capability == nil {
		return nil, errors.New("capability checker is required")
	}
	if lines == nil {
		return nil, errors.New("line directory is required")
	}
	if companion == nil {
		return nil, errors.New("companion support is required")
	}
	if configs == nil {
		return nil, errors.New("carrier config store is required")
	}
	s := &Service{
		capability: capability,
		lines:      lines,
		companion:  companion,
		configs:    configs,
		logger:     slog.Default(),
		tracer:     otel.Tracer("crosscall/eligibility"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Evaluate computes the availability verdict for a line. Gates are checked
// in order and the chain stops at the first failure, so later remote calls
// are skipped once the verdict is settled. A ConditionallyUnavailable
// verdict is re-evaluated on the next external trigger, never retried here.
func (s *Service) Evaluate(ctx context.Context, id domain.LineID) Evaluation {
	ctx, span := s.tracer.Start(ctx, "eligibility.Evaluate",
		trace.WithAttributes(attribute.String("line_id", id.String())))
	defer span.End()

	start := time.Now()
	eval := s.evaluate(ctx, id)
	s.metrics.ObserveEvaluateLatency(time.Since(start))
	span.SetAttributes(
		attribute.String("verdict", string(eval.Verdict)),
		attribute.String("reason", string(eval.Reason)),
	)
	s.metrics.IncrementVerdict(string(eval.Verdict), string(eval.Reason))
	return eval
}

func (s *Service) evaluate(ctx context.Context, id domain.LineID) Evaluation {
	// Gate 1: capability service connection. A disconnected service is a
	// normal transient state, logged at debug only.
	if !s.capability.Connected() {
		s.logger.DebugContext(ctx, "capability service not connected", "line_id", id)
		return s.unavailable(ctx, ReasonServiceNotConnected)
	}

	// Gate 2: platform support. Remote failures surface here as false.
	if !s.capability.CrossNetworkSupported(ctx, id) {
		return s.unavailable(ctx, ReasonPlatformUnsupported)
	}

	// Gates 3-4: line selection policy over a fresh active-line snapshot.
	lines, err := s.lines.ActiveLines(ctx)
	if err != nil {
		s.logger.WarnContext(ctx, "active line lookup failed", "line_id", id, "error", err)
		return s.unavailable(ctx, ReasonDirectoryUnavailable)
	}
	if reason := lineSelectionReason(lines, id); reason != ReasonAllChecksPassed {
		return s.unavailable(ctx, reason)
	}
	line := findLine(lines, id)

	// Gate 5: companion feature support.
	supported, err := s.companion.Supported(ctx, id)
	if err != nil {
		s.logger.WarnContext(ctx, "companion support lookup failed", "line_id", id, "error", err)
		return s.unavailable(ctx, ReasonCompanionUnsupported)
	}
	if !supported {
		return s.unavailable(ctx, ReasonCompanionUnsupported)
	}

	// Gate 6: carrier configuration. Absent config and an unreachable store
	// are both treated as disabled - fail safe closed.
	cfg, err := s.configs.ConfigFor(ctx, id)
	if err != nil {
		s.logger.WarnContext(ctx, "carrier config lookup failed", "line_id", id, "error", err)
		return s.unavailable(ctx, ReasonCarrierDisabled)
	}
	if !cfg.Bool(carrierconfig.KeyCrossNetworkAvailable) {
		return s.unavailable(ctx, ReasonCarrierDisabled)
	}

	return Evaluation{
		Verdict:     VerdictAvailable,
		Reason:      ReasonAllChecksPassed,
		Line:        line,
		EvaluatedAt: requestcontext.Now(ctx),
	}
}

func (s *Service) unavailable(ctx context.Context, reason Reason) Evaluation {
	return Evaluation{
		Verdict:     VerdictConditionallyUnavailable,
		Reason:      reason,
		EvaluatedAt: requestcontext.Now(ctx),
	}
}
