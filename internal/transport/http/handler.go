// Package httptransport exposes the backup calling settings API over HTTP.
// Handlers stay thin: parse, delegate to domain services, encode.
package httptransport

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"golang.org/x/sync/errgroup"

	"crosscall/internal/directory"
	"crosscall/internal/eligibility"
	"crosscall/pkg/domain"
	dErrors "crosscall/pkg/domain-errors"
	"crosscall/pkg/platform/httputil"
	"crosscall/pkg/requestcontext"
)

// Evaluator computes the availability verdict for a line.
type Evaluator interface {
	Evaluate(ctx context.Context, id domain.LineID) eligibility.Evaluation
}

// Toggles reads and writes the per-line backup calling setting.
type Toggles interface {
	Enabled(ctx context.Context, id domain.LineID) bool
	SetEnabled(ctx context.Context, id domain.LineID, enabled bool) bool
}

// Handler wires the settings endpoints to the domain services.
type Handler struct {
	lines     directory.Directory
	evaluator Evaluator
	toggles   Toggles
	logger    *slog.Logger
}

// New constructs the settings handler with its dependencies.
func New(lines directory.Directory, evaluator Evaluator, toggles Toggles, logger *slog.Logger) *Handler {
	return &Handler{
		lines:     lines,
		evaluator: evaluator,
		toggles:   toggles,
		logger:    logger,
	}
}

// Register mounts the read endpoints on the router. The write endpoint is
// mounted separately so the router can wrap it in auth middleware.
func (h *Handler) Register(r chi.Router) {
	r.Get("/lines", h.HandleListLines)
	r.Get("/lines/{lineID}/backup-calling", h.HandleBackupCalling)
	r.Get("/lines/{lineID}/backup-calling/availability", h.HandleAvailability)
	r.Get("/lines/{lineID}/backup-calling/enabled", h.HandleGetEnabled)
}

// RegisterProtected mounts the write endpoints on an authenticated router.
func (h *Handler) RegisterProtected(r chi.Router) {
	r.Put("/lines/{lineID}/backup-calling/enabled", h.HandleSetEnabled)
}

// =====================
// Responses
// =====================

type lineResponse struct {
	ID          int    `json:"id"`
	DisplayName string `json:"display_name"`
}

type availabilityResponse struct {
	LineID      int    `json:"line_id"`
	Verdict     string `json:"verdict"`
	Reason      string `json:"reason"`
	EvaluatedAt string `json:"evaluated_at"`
}

type enabledResponse struct {
	LineID  int  `json:"line_id"`
	Enabled bool `json:"enabled"`
}

type backupCallingResponse struct {
	LineID       int                  `json:"line_id"`
	Availability availabilityResponse `json:"availability"`
	Enabled      bool                 `json:"enabled"`
}

type setEnabledRequest struct {
	Enabled bool `json:"enabled"`
}

func toAvailabilityResponse(id domain.LineID, eval eligibility.Evaluation) availabilityResponse {
	return availabilityResponse{
		LineID:      int(id),
		Verdict:     string(eval.Verdict),
		Reason:      string(eval.Reason),
		EvaluatedAt: eval.EvaluatedAt.UTC().Format(time.RFC3339Nano),
	}
}

// =====================
// Handlers
// =====================

// HandleListLines handles GET /lines requests.
func (h *Handler) HandleListLines(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	lines, err := h.lines.ActiveLines(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "active line listing failed",
			"request_id", requestcontext.RequestID(ctx),
			"error", err,
		)
		httputil.WriteError(w, dErrors.Wrap(dErrors.CodeInternal, "line directory unavailable", err))
		return
	}

	resp := make([]lineResponse, 0, len(lines))
	for _, line := range lines {
		resp = append(resp, lineResponse{ID: int(line.ID), DisplayName: line.DisplayName})
	}
	httputil.WriteJSON(w, http.StatusOK, resp)
}

// HandleBackupCalling handles GET /lines/{lineID}/backup-calling requests.
// Availability and toggle state live in independent subsystems, so they are
// gathered concurrently.
func (h *Handler) HandleBackupCalling(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, ok := h.lineID(w, r)
	if !ok {
		return
	}

	var (
		eval    eligibility.Evaluation
		enabled bool
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		eval = h.evaluator.Evaluate(gctx, id)
		return nil
	})
	g.Go(func() error {
		enabled = h.toggles.Enabled(gctx, id)
		return nil
	})
	// Both branches absorb their own failures into fail-safe values.
	_ = g.Wait()

	httputil.WriteJSON(w, http.StatusOK, backupCallingResponse{
		LineID:       int(id),
		Availability: toAvailabilityResponse(id, eval),
		Enabled:      enabled,
	})
}

// HandleAvailability handles GET /lines/{lineID}/backup-calling/availability requests.
func (h *Handler) HandleAvailability(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, ok := h.lineID(w, r)
	if !ok {
		return
	}

	eval := h.evaluator.Evaluate(ctx, id)
	httputil.WriteJSON(w, http.StatusOK, toAvailabilityResponse(id, eval))
}

// HandleGetEnabled handles GET /lines/{lineID}/backup-calling/enabled requests.
func (h *Handler) HandleGetEnabled(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, ok := h.lineID(w, r)
	if !ok {
		return
	}

	httputil.WriteJSON(w, http.StatusOK, enabledResponse{
		LineID:  int(id),
		Enabled: h.toggles.Enabled(ctx, id),
	})
}

// HandleSetEnabled handles PUT /lines/{lineID}/backup-calling/enabled requests.
func (h *Handler) HandleSetEnabled(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	start := time.Now()

	id, ok := h.lineID(w, r)
	if !ok {
		return
	}

	req, err := httputil.Decode[setEnabledRequest](r)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	if !h.toggles.SetEnabled(ctx, id, req.Enabled) {
		h.logger.ErrorContext(ctx, "toggle write not applied",
			"request_id", requestID,
			"line_id", id,
			"enabled", req.Enabled,
		)
		httputil.WriteError(w, dErrors.New(dErrors.CodeInternal, "toggle write not applied"))
		return
	}

	h.logger.InfoContext(ctx, "toggle written",
		"request_id", requestID,
		"line_id", id,
		"enabled", req.Enabled,
		"actor", requestcontext.Subject(ctx),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	httputil.WriteJSON(w, http.StatusOK, enabledResponse{
		LineID:  int(id),
		Enabled: req.Enabled,
	})
}

// lineID parses the {lineID} path parameter, writing a bad-request envelope
// on invalid input.
func (h *Handler) lineID(w http.ResponseWriter, r *http.Request) (domain.LineID, bool) {
	id, err := domain.ParseLineID(chi.URLParam(r, "lineID"))
	if err != nil {
		httputil.WriteError(w, dErrors.Wrap(dErrors.CodeInvalidInput, "invalid line id", err))
		return 0, false
	}
	return id, true
}
