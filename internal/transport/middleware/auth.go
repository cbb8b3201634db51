package middleware

import (
	"net/http"
	"strings"

	"github.com/heartmarshall/nafnapp-backend/internal/auth"
	"github.com/heartmarshall/nafnapp-backend/pkg/ctxutil"
)

//go:generate moq -out token_validator_mock_test.go . tokenValidator

type tokenValidator interface {
	ValidateAccessToken(token string) (auth.Claims, error)
}

// Auth validates the bearer token and loads the caller's identity, couple
// and role into the request context. Requests without a token pass through
// anonymously; handlers behind RequireAuth reject those.
func Auth(validator tokenValidator) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractBearerToken(r)
			if token == "" {
				next.ServeHTTP(w, r) // Anonymous
				return
			}
			claims, err := validator.ValidateAccessToken(token)
			if err != nil {
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}
			ctx := ctxutil.WithIdentityID(r.Context(), claims.IdentityID)
			ctx = ctxutil.WithCoupleID(ctx, claims.CoupleID)
			ctx = ctxutil.WithRole(ctx, claims.Role)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAuth rejects requests that did not present a valid token.
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := ctxutil.IdentityIDFromCtx(r.Context()); !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func extractBearerToken(r *http.Request) string {
	authHeader := r.Header.Get("Authorization")
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return ""
	}
	return strings.TrimPrefix(authHeader, "Bearer ")
}
