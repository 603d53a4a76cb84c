// Package auth implements the caller-authentication boundary. The network's
// signature scheme is delegated to the host: callers exchange their signed
// credentials for a short-lived bearer token out of band, and this package
// only verifies tokens and recovers the caller identity.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"lifebank/internal/platform/middleware"
	dErrors "lifebank/pkg/domain-errors"
)

type claims struct {
	jwt.RegisteredClaims
}

// TokenService issues and validates HMAC-signed caller tokens.
type TokenService struct {
	signingKey []byte
	ttl        time.Duration
}

func NewTokenService(signingKey string, ttl time.Duration) *TokenService {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &TokenService{signingKey: []byte(signingKey), ttl: ttl}
}

// Issue creates a token whose subject is the caller identity.
func (t *TokenService) Issue(callerID string) (string, error) {
	if callerID == "" {
		return "", dErrors.New(dErrors.CodeInvalidInput, "caller id cannot be empty")
	}
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   callerID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(t.ttl)),
			Issuer:    "lifebank",
		},
	})
	return token.SignedString(t.signingKey)
}

// ValidateToken verifies the signature and expiry and returns the caller
// claims for the middleware.
func (t *TokenService) ValidateToken(tokenString string) (*middleware.Claims, error) {
	var c claims
	token, err := jwt.ParseWithClaims(tokenString, &c, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, dErrors.New(dErrors.CodeUnauthorized, "unexpected signing method")
		}
		return t.signingKey, nil
	})
	if err != nil || !token.Valid {
		return nil, dErrors.New(dErrors.CodeUnauthorized, "invalid or expired token")
	}
	if c.Subject == "" {
		return nil, dErrors.New(dErrors.CodeUnauthorized, "token has no subject")
	}
	return &middleware.Claims{CallerID: c.Subject}, nil
}
