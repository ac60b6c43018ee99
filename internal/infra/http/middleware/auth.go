package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/xavierca1/corporate-ask/internal/entity"
	"github.com/xavierca1/corporate-ask/internal/infra/auth"
)

type TokenParser interface {
	Parse(token string) (*auth.Claims, error)
}

type RevocationChecker interface {
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

type claimsKey struct{}

func ClaimsFromContext(ctx context.Context) (*auth.Claims, bool) {
	c, ok := ctx.Value(claimsKey{}).(*auth.Claims)
	return c, ok
}

func WithClaims(ctx context.Context, c *auth.Claims) context.Context {
	return context.WithValue(ctx, claimsKey{}, c)
}

type Authenticator struct {
	Tokens  TokenParser
	Revoked RevocationChecker
}

func NewAuthenticator(tokens TokenParser, revoked RevocationChecker) *Authenticator {
	return &Authenticator{Tokens: tokens, Revoked: revoked}
}

// Authenticate requires a valid, non-revoked bearer token.
func (a *Authenticator) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			writeAuthError(w, http.StatusUnauthorized, "UNAUTHORIZED", "Authorization header missing or invalid")
			return
		}

		claims, err := a.Tokens.Parse(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			writeAuthError(w, http.StatusUnauthorized, "UNAUTHORIZED", "Invalid or expired token")
			return
		}

		revoked, err := a.Revoked.IsRevoked(r.Context(), claims.ID)
		if err != nil {
			log.WithError(err).Error("❌ revocation check failed")
			writeAuthError(w, http.StatusInternalServerError, "SESSION_STORE_ERROR", "could not verify session")
			return
		}
		if revoked {
			writeAuthError(w, http.StatusUnauthorized, "UNAUTHORIZED", "Token has been signed out")
			return
		}

		next.ServeHTTP(w, r.WithContext(WithClaims(r.Context(), claims)))
	})
}

// RequireRole must run after Authenticate.
func RequireRole(role entity.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := ClaimsFromContext(r.Context())
			if !ok || claims.Role != role {
				writeAuthError(w, http.StatusForbidden, "FORBIDDEN", "Forbidden: insufficient permissions")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func writeAuthError(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": code, "message": message})
}
