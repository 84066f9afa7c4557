// Package toggle reads and writes the per-line backup calling setting
// through the platform calling service. Like the eligibility evaluation,
// no error crosses this package's boundary: failed reads report the
// setting as off, failed writes report not-applied.
package toggle

import (
	"context"
	"errors"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"crosscall/internal/audit"
	"crosscall/internal/calling"
	"crosscall/internal/toggle/metrics"
	"crosscall/pkg/domain"
)

// AuditTrail records successful writes. Audit failures never fail the write
// itself.
type AuditTrail interface {
	Emit(ctx context.Context, event audit.Event) error
}

// Controller is the read/write surface for the backup calling toggle.
type Controller struct {
	service calling.Service
	audit   AuditTrail
	logger  *slog.Logger
	metrics *metrics.Metrics
	tracer  trace.Tracer
}

type Option func(c *Controller)

func WithLogger(logger *slog.Logger) Option {
	return func(c *Controller) {
		c.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(c *Controller) {
		c.metrics = m
	}
}

func WithAudit(trail AuditTrail) Option {
	return func(c *Controller) {
		c.audit = trail
	}
}

// New constructs a Controller.
// Returns an error when the calling service is missing.
func New(service calling.Service, opts ...Option) (*Controller, error) {
	if service == nil {
		return nil, errors.New("calling service is required")
	}
	c := &Controller{
		service: service,
		logger:  slog.Default(),
		tracer:  otel.Tracer("crosscall/toggle"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Enabled reports whether backup calling is on for the line. Any failure -
// unresolvable handle or a failed read - reports off.
func (c *Controller) Enabled(ctx context.Context, id domain.LineID) bool {
	ctx, span := c.tracer.Start(ctx, "toggle.Enabled",
		trace.WithAttributes(attribute.String("line_id", id.String())))
	defer span.End()

	handle, err := c.service.Handle(ctx, id)
	if err != nil {
		c.logger.WarnContext(ctx, "calling handle unresolvable", "line_id", id, "error", err)
		c.metrics.IncrementRead("failed")
		return false
	}
	enabled, err := handle.Enabled(ctx)
	if err != nil {
		c.logger.WarnContext(ctx, "toggle read failed", "line_id", id, "error", err)
		c.metrics.IncrementRead("failed")
		return false
	}
	if enabled {
		c.metrics.IncrementRead("on")
	} else {
		c.metrics.IncrementRead("off")
	}
	span.SetAttributes(attribute.Bool("enabled", enabled))
	return enabled
}

// SetEnabled writes the toggle and reports whether the write was applied.
// A successful write is audited; audit failures are logged and swallowed.
func (c *Controller) SetEnabled(ctx context.Context, id domain.LineID, enabled bool) bool {
	ctx, span := c.tracer.Start(ctx, "toggle.SetEnabled",
		trace.WithAttributes(
			attribute.String("line_id", id.String()),
			attribute.Bool("enabled", enabled),
		))
	defer span.End()

	value := "off"
	if enabled {
		value = "on"
	}

	handle, err := c.service.Handle(ctx, id)
	if err != nil {
		c.logger.WarnContext(ctx, "calling handle unresolvable", "line_id", id, "error", err)
		c.metrics.IncrementWrite(value, "failed")
		return false
	}
	if err := handle.SetEnabled(ctx, enabled); err != nil {
		c.logger.WarnContext(ctx, "toggle write failed", "line_id", id, "enabled", enabled, "error", err)
		c.metrics.IncrementWrite(value, "failed")
		return false
	}
	c.metrics.IncrementWrite(value, "applied")

	if c.audit != nil {
		event := audit.Event{Action: audit.ToggleAction(enabled), LineID: id}
		if err := c.audit.Emit(ctx, event); err != nil {
			c.logger.ErrorContext(ctx, "toggle audit emit failed", "line_id", id, "error", err)
		}
	}
	return true
}
