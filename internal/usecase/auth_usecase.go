package usecase

import (
	"context"
	"io"

	"storefront/internal/domain/entity"
)

// --- Input DTOs ---

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=6"`
}

// RegisterInput defines the data required to register a new user.
type RegisterInput struct {
	Name     string `validate:"required,min=2,max=50"`
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=6,max=128"`
}

// UpdateProfileInput defines the editable profile fields. Nil fields are
// left untouched.
type UpdateProfileInput struct {
	Name  *string `validate:"omitempty,min=2,max=50"`
	Phone *string `validate:"omitempty,min=7,max=15"`
}

// AddressInput defines the data required to add or update an address.
type AddressInput struct {
	Address   string `validate:"required,min=5,max=200"`
	City      string `validate:"required,max=60"`
	State     string `validate:"required,max=60"`
	Pincode   string `validate:"required,len=6,numeric"`
	IsDefault bool
}

// AuthUsecase owns the session subtree: the authenticated user profile,
// its addresses and the bearer token. The token is the only durable
// artifact; a rejected CurrentUser fetch erases it and resets the
// session.
type AuthUsecase interface {
	Login(ctx context.Context, input LoginInput) error
	Register(ctx context.Context, input RegisterInput) error
	// LoginWithGoogle exchanges a Google ID token for a session. When a
	// Google client ID is configured the token's claims are pre-checked
	// locally before the backend call.
	LoginWithGoogle(ctx context.Context, idToken string) error
	// CurrentUser re-fetches the profile for a stored token, typically on
	// startup. Rejection invalidates the session.
	CurrentUser(ctx context.Context) error
	Logout() error

	SendVerificationEmail(ctx context.Context) error
	// VerifyEmail submits the emailed one-time code. Success refreshes
	// both the profile and the stored token.
	VerifyEmail(ctx context.Context, otp string) error

	UpdateProfile(ctx context.Context, input UpdateProfileInput) error
	UploadProfileImage(ctx context.Context, filename string, content io.Reader, size int64) error

	AddAddress(ctx context.Context, input AddressInput) error
	UpdateAddress(ctx context.Context, addressID string, input AddressInput) error
	DeleteAddress(ctx context.Context, addressID string) error
	SetDefaultAddress(ctx context.Context, addressID string) error

	// Session returns a copy of the current session snapshot.
	Session() entity.Session
	Status() Status
	Subscribe(fn func()) (cancel func())
}
