package http

import (
	"net/http"
	"strings"

	"github.com/bistrolabs/ordering-service/internal/application"
	"github.com/bistrolabs/ordering-service/internal/domain"
)

// Handler is the HTTP adapter entrypoint for ordering use-cases.
// Keeping only the application dependency here preserves clean adapter boundaries.
type Handler struct {
	service *application.Service
}

// NewHandler constructs an HTTP handler bound to the application service.
func NewHandler(service *application.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) healthz(w http.ResponseWriter, _ *http.Request) {
	writeMessage(w, http.StatusOK, "ok")
}

func (h *Handler) readyz(w http.ResponseWriter, _ *http.Request) {
	writeMessage(w, http.StatusOK, "ready")
}

// authMiddleware is the first gate step: it rejects requests without a bearer
// credential before any handler logic runs, verifies the token otherwise, and
// attaches the claims to the request context — the only channel by which
// identity reaches handlers.
func (h *Handler) authMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if strings.TrimSpace(header) == "" {
			writeMappedError(r.Context(), w, "auth_gate", domain.ErrMissingCredential)
			return
		}
		raw, err := bearerTokenFromHeader(header)
		if err != nil {
			writeMappedError(r.Context(), w, "auth_gate", domain.ErrMissingCredential)
			return
		}

		claims, err := h.service.ValidateToken(r.Context(), raw)
		if err != nil {
			writeMappedError(r.Context(), w, "auth_gate", err)
			return
		}

		next.ServeHTTP(w, r.WithContext(contextWithClaims(r.Context(), claims)))
	})
}

// adminMiddleware is the second gate step. It always runs after
// authMiddleware and re-reads the role from the user store; the role claim
// inside the token is never trusted.
func (h *Handler) adminMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := claimsFromContext(r.Context())
		if !ok {
			writeMappedError(r.Context(), w, "admin_gate", domain.ErrMissingCredential)
			return
		}
		if err := h.service.AuthorizeAdmin(r.Context(), claims.Email); err != nil {
			writeMappedError(r.Context(), w, "admin_gate", err)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (h *Handler) issueToken(w http.ResponseWriter, r *http.Request) {
	var req application.IssueTokenRequest
	if err := decodeBody(r, &req); err != nil {
		writeValidationError(r.Context(), w, "issue_token", err)
		return
	}

	res, err := h.service.IssueToken(r.Context(), req)
	if err != nil {
		writeMappedError(r.Context(), w, "issue_token", err)
		return
	}
	writeSuccess(w, http.StatusOK, res)
}
