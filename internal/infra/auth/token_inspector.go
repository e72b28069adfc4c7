// Package auth provides client-side token inspection. The backend is the
// only authority on token validity; nothing here verifies a signature.
package auth

import (
	"time"

	"storefront/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
)

// JWTInspector peeks at a stored bearer token's registered claims without
// verifying it, so a session restore can skip a round trip that is
// guaranteed to be rejected.
type JWTInspector struct {
	parser *jwt.Parser
}

// NewJWTInspector creates the token inspector.
func NewJWTInspector() service.TokenInspector {
	return &JWTInspector{parser: jwt.NewParser()}
}

// Expired reports whether token carries an exp claim in the past. Tokens
// that cannot be parsed, or carry no exp claim, are treated as not
// expired and left to the backend to reject.
func (i *JWTInspector) Expired(token string) bool {
	claims := jwt.RegisteredClaims{}
	if _, _, err := i.parser.ParseUnverified(token, &claims); err != nil {
		return false
	}
	if claims.ExpiresAt == nil {
		return false
	}

	return claims.ExpiresAt.Before(time.Now())
}
