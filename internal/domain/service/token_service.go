package service

import "context"

// TokenInspector peeks at a stored bearer token without verifying it.
// The backend remains the only authority on token validity, but an
// expiry check on restore avoids a round trip that is guaranteed to be
// rejected.
type TokenInspector interface {
	// Expired reports whether the token carries an exp claim in the past.
	// Tokens that cannot be parsed are treated as not expired and left to
	// the backend to reject.
	Expired(token string) bool
}

// GoogleUser is the subset of Google ID token claims the client cares
// about before handing the credential to the backend.
type GoogleUser struct {
	Sub           string
	Email         string
	Name          string
	Picture       string
	EmailVerified bool
}

// IDTokenVerifier pre-validates a Google ID token client-side so an
// obviously bad credential fails fast. The backend re-verifies the token
// regardless.
type IDTokenVerifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (*GoogleUser, error)
}
