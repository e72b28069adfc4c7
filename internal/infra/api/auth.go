package api

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/gateway"
)

type authGateway struct {
	client *Client
}

// NewAuthGateway creates the REST implementation of gateway.AuthGateway.
func NewAuthGateway(client *Client) gateway.AuthGateway {
	return &authGateway{client: client}
}

func (g *authGateway) Login(ctx context.Context, email, password string) (*gateway.AuthResult, error) {
	body := map[string]string{"email": email, "password": password}
	result := new(gateway.AuthResult)
	if err := g.client.post(ctx, "/api/auth/login", body, result, "Login failed"); err != nil {
		return nil, err
	}

	return result, nil
}

func (g *authGateway) Register(ctx context.Context, name, email, password string) (*gateway.AuthResult, error) {
	body := map[string]string{"name": name, "email": email, "password": password}
	result := new(gateway.AuthResult)
	if err := g.client.post(ctx, "/api/auth/register", body, result, "Registration failed"); err != nil {
		return nil, err
	}

	return result, nil
}

func (g *authGateway) GoogleLogin(ctx context.Context, idToken string) (*gateway.AuthResult, error) {
	body := map[string]string{"token": idToken}
	result := new(gateway.AuthResult)
	if err := g.client.post(ctx, "/api/auth/google-token", body, result, "Google sign-in failed"); err != nil {
		return nil, err
	}

	return result, nil
}

func (g *authGateway) CurrentUser(ctx context.Context) (*entity.UserProfile, error) {
	var data struct {
		User *entity.UserProfile `json:"user"`
	}
	if err := g.client.get(ctx, "/api/auth/me", nil, &data, "Failed to load your account"); err != nil {
		return nil, err
	}

	return data.User, nil
}

func (g *authGateway) SendVerificationEmail(ctx context.Context) error {
	return g.client.post(ctx, "/api/auth/send-verification-email", nil, nil, "Failed to send verification email")
}

func (g *authGateway) VerifyEmail(ctx context.Context, otp string) (*gateway.AuthResult, error) {
	body := map[string]string{"otp": otp}
	result := new(gateway.AuthResult)
	if err := g.client.post(ctx, "/api/auth/verify-email", body, result, "Email verification failed"); err != nil {
		return nil, err
	}

	return result, nil
}
