package httptransport

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	dErrors "crosscall/pkg/domain-errors"
	"crosscall/pkg/platform/httputil"
	"crosscall/pkg/requestcontext"
	"crosscall/pkg/secrets"
)

// TokenIssuer signs access tokens for authenticated clients.
type TokenIssuer interface {
	GenerateAccessToken(subject string, expiresIn time.Duration) (string, error)
}

// AuthHandler exchanges client credentials for a bearer token used on the
// write endpoints.
type AuthHandler struct {
	clientID   string
	secretHash string
	ttl        time.Duration
	issuer     TokenIssuer
	logger     *slog.Logger
}

// NewAuthHandler constructs the token endpoint handler. The secret hash is
// a bcrypt hash of the client secret.
func NewAuthHandler(clientID, secretHash string, ttl time.Duration, issuer TokenIssuer, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		clientID:   clientID,
		secretHash: secretHash,
		ttl:        ttl,
		issuer:     issuer,
		logger:     logger,
	}
}

// Register mounts the token endpoint on the router.
func (h *AuthHandler) Register(r chi.Router) {
	r.Post("/auth/token", h.HandleIssueToken)
}

type tokenRequest struct {
	ClientID     string `json:"client_id"`
	ClientSecret string `json:"client_secret"`
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
}

// HandleIssueToken handles POST /auth/token requests.
func (h *AuthHandler) HandleIssueToken(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	req, err := httputil.Decode[tokenRequest](r)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	if req.ClientID != h.clientID || secrets.Verify(req.ClientSecret, h.secretHash) != nil {
		h.logger.WarnContext(ctx, "token request rejected",
			"request_id", requestcontext.RequestID(ctx),
			"client_id", req.ClientID,
			"client_ip", requestcontext.ClientIP(ctx),
		)
		httputil.WriteError(w, dErrors.New(dErrors.CodeUnauthorized, "invalid client credentials"))
		return
	}

	token, err := h.issuer.GenerateAccessToken(req.ClientID, h.ttl)
	if err != nil {
		h.logger.ErrorContext(ctx, "token signing failed",
			"request_id", requestcontext.RequestID(ctx),
			"error", err,
		)
		httputil.WriteError(w, dErrors.Wrap(dErrors.CodeInternal, "token signing failed", err))
		return
	}

	httputil.WriteJSON(w, http.StatusOK, tokenResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   int(h.ttl.Seconds()),
	})
}
