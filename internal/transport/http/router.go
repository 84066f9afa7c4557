package httptransport

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	authmw "crosscall/pkg/platform/middleware/auth"
	"crosscall/pkg/platform/middleware/metadata"
	"crosscall/pkg/platform/middleware/requestid"
	"crosscall/pkg/platform/middleware/requesttime"
	"crosscall/pkg/requestcontext"
)

// NewRouter builds the full API router: context middleware on everything,
// bearer auth on the write endpoints only.
func NewRouter(h *Handler, auth *AuthHandler, validator authmw.TokenValidator, logger *slog.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(requestid.Middleware)
	r.Use(requesttime.Middleware)
	r.Use(metadata.ClientMetadata)
	r.Use(requestLogger(logger))

	r.Get("/healthz", handleHealthz)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Group(auth.Register)
	r.Group(h.Register)
	r.Group(func(r chi.Router) {
		r.Use(authmw.RequireAuth(validator, logger))
		h.RegisterProtected(r)
	})

	return r
}

func handleHealthz(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}

// requestLogger logs one line per request at debug level.
func requestLogger(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			next.ServeHTTP(w, r)
			logger.DebugContext(r.Context(), "request handled",
				"request_id", requestcontext.RequestID(r.Context()),
				"method", r.Method,
				"path", r.URL.Path,
				"duration_ms", time.Since(start).Milliseconds(),
			)
		})
	}
}
