package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"lifebank/pkg/requestcontext"
)

// TokenValidator defines the interface for validating caller tokens. The
// signature scheme itself lives in internal/auth; middleware only needs the
// verified identity back.
type TokenValidator interface {
	ValidateToken(tokenString string) (*Claims, error)
}

// Claims represents the claims we expect from the token validator.
type Claims struct {
	// CallerID is the verified on-network identity (bank, hospital, donor,
	// or admin address).
	CallerID string
}

// RequireAuth enforces the "caller identity verified" precondition for every
// state-touching route. The verified identity is placed in the request
// context for services to compare against claimed owners.
func RequireAuth(validator TokenValidator, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			authHeader := r.Header.Get("Authorization")
			const bearerPrefix = "Bearer "
			token, ok := strings.CutPrefix(authHeader, bearerPrefix)
			if !ok {
				logger.WarnContext(ctx, "unauthorized access - missing token",
					"request_id", requestcontext.RequestID(ctx),
				)
				writeUnauthorized(w, "Missing or invalid Authorization header")
				return
			}

			claims, err := validator.ValidateToken(token)
			if err != nil {
				logger.WarnContext(ctx, "unauthorized access - invalid token",
					"error", err,
					"request_id", requestcontext.RequestID(ctx),
				)
				writeUnauthorized(w, "Invalid or expired token")
				return
			}

			ctx = requestcontext.WithCallerID(ctx, claims.CallerID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func writeUnauthorized(w http.ResponseWriter, description string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_, _ = w.Write([]byte(`{"error":"unauthorized","error_description":"` + description + `"}`))
}
