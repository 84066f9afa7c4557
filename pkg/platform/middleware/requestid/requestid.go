// Package requestid assigns each request a correlation ID. Incoming
// X-Request-ID headers are honored so IDs survive proxy hops; otherwise a
// fresh UUID is generated.
package requestid

import (
	"net/http"

	"github.com/google/uuid"

	"crosscall/pkg/requestcontext"
)

const headerName = "X-Request-ID"

// Middleware injects a request ID into the context and echoes it back in
// the response headers.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(headerName)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		w.Header().Set(headerName, requestID)

		ctx := requestcontext.WithRequestID(r.Context(), requestID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
