package common

import (
	"context"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

type contextKey string

const identityKey contextKey = "identity"

// IdentityFromContext returns the authenticated identity injected by
// AuthMiddleware.
func IdentityFromContext(ctx context.Context) (*Identity, bool) {
	identity, ok := ctx.Value(identityKey).(*Identity)
	return identity, ok
}

// AuthMiddleware enforces a valid admin bearer token on every route it
// wraps and injects the identity into the request context.
func AuthMiddleware(tokens *TokenService, log *zap.SugaredLogger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				WriteError(w, http.StatusUnauthorized, "authorization required")
				return
			}

			parts := strings.Fields(authHeader)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				WriteError(w, http.StatusUnauthorized, "invalid authorization header")
				return
			}

			identity, err := tokens.Validate(parts[1])
			if err != nil {
				status, message := StatusForError(err)
				log.Infow("token rejected", "path", r.URL.Path, "reason", message)
				WriteError(w, status, message)
				return
			}

			if identity.Role != RoleAdmin {
				WriteError(w, http.StatusForbidden, "admin role required")
				return
			}

			ctx := context.WithValue(r.Context(), identityKey, identity)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
