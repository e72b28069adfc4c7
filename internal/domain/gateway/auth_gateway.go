// Package gateway defines the backend REST contract consumed by the
// stores. The interfaces play the role the repository layer plays on the
// server side: one interface per resource domain, implemented over HTTP
// in the infra layer and stubbed out in tests.
package gateway

import (
	"context"

	"storefront/internal/domain/entity"
)

// AuthResult is the payload of every authentication endpoint: the
// profile plus, when the call establishes or refreshes a session, a
// bearer token.
type AuthResult struct {
	User  *entity.UserProfile `json:"user"`
	Token string              `json:"token"`
}

// AuthGateway is the contract for /api/auth endpoints.
type AuthGateway interface {
	Login(ctx context.Context, email, password string) (*AuthResult, error)
	Register(ctx context.Context, name, email, password string) (*AuthResult, error)
	// GoogleLogin exchanges a Google ID token for a backend session.
	GoogleLogin(ctx context.Context, idToken string) (*AuthResult, error)
	// CurrentUser fetches the profile for the bearer token currently
	// attached to the client. A rejection invalidates the session.
	CurrentUser(ctx context.Context) (*entity.UserProfile, error)
	SendVerificationEmail(ctx context.Context) error
	// VerifyEmail submits the emailed one-time code. On success the
	// backend returns the verified profile and a fresh token.
	VerifyEmail(ctx context.Context, otp string) (*AuthResult, error)
}
