package google

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"testing"
	"time"

	"storefront/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testClientID = "client-123.apps.googleusercontent.com"

func newTestVerifier(t *testing.T) *Verifier {
	t.Helper()

	cfg := &config.Config{GoogleOAuth: &config.GoogleOAuthConfig{ClientID: testClientID}}
	verifier := NewVerifier(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NotNil(t, verifier)

	return verifier.(*Verifier)
}

// fakeIDToken builds an unsigned JWT with the given claims. Signature
// verification is the backend's job, so a dummy signature is enough.
func fakeIDToken(t *testing.T, claims IDTokenClaims) string {
	t.Helper()

	header := base64.RawURLEncoding.EncodeToString([]byte(`{"alg":"RS256","typ":"JWT"}`))
	payload, err := json.Marshal(claims)
	require.NoError(t, err)

	return header + "." + base64.RawURLEncoding.EncodeToString(payload) + ".sig"
}

func validClaims() IDTokenClaims {
	return IDTokenClaims{
		Iss:           "https://accounts.google.com",
		Sub:           "google-user-1",
		Aud:           testClientID,
		Exp:           time.Now().Add(time.Hour).Unix(),
		Iat:           time.Now().Unix(),
		Email:         "user@example.com",
		EmailVerified: true,
		Name:          "Test User",
	}
}

func TestVerifier_VerifyIDToken_Success(t *testing.T) {
	verifier := newTestVerifier(t)

	user, err := verifier.VerifyIDToken(context.Background(), fakeIDToken(t, validClaims()))
	require.NoError(t, err)
	assert.Equal(t, "google-user-1", user.Sub)
	assert.Equal(t, "user@example.com", user.Email)
	assert.True(t, user.EmailVerified)
}

func TestVerifier_VerifyIDToken_Failures(t *testing.T) {
	verifier := newTestVerifier(t)

	tests := []struct {
		name   string
		mutate func(*IDTokenClaims)
	}{
		{name: "wrong issuer", mutate: func(c *IDTokenClaims) { c.Iss = "https://evil.example.com" }},
		{name: "wrong audience", mutate: func(c *IDTokenClaims) { c.Aud = "other-client" }},
		{name: "expired", mutate: func(c *IDTokenClaims) { c.Exp = time.Now().Add(-time.Hour).Unix() }},
		{name: "email unverified", mutate: func(c *IDTokenClaims) { c.EmailVerified = false }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims := validClaims()
			tt.mutate(&claims)

			_, err := verifier.VerifyIDToken(context.Background(), fakeIDToken(t, claims))
			assert.Error(t, err)
		})
	}
}

func TestVerifier_VerifyIDToken_Malformed(t *testing.T) {
	verifier := newTestVerifier(t)

	_, err := verifier.VerifyIDToken(context.Background(), "not-a-jwt")
	assert.Error(t, err)
}

func TestNewVerifier_NilWithoutClientID(t *testing.T) {
	cfg := &config.Config{}
	assert.Nil(t, NewVerifier(cfg, slog.New(slog.NewTextHandler(io.Discard, nil))))
}
