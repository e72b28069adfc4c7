package gateway

import (
	"context"
	"io"

	"storefront/internal/domain/entity"
)

// ProfileUpdate carries the editable profile fields. Nil fields are left
// untouched by the backend.
type ProfileUpdate struct {
	Name  *string `json:"name,omitempty"`
	Phone *string `json:"phone,omitempty"`
}

// AddressInput is the payload for creating or updating an address.
type AddressInput struct {
	Address   string `json:"address"`
	City      string `json:"city"`
	State     string `json:"state"`
	Pincode   string `json:"pincode"`
	IsDefault bool   `json:"isDefault"`
}

// ProfileGateway is the contract for /api/users endpoints. Profile calls
// return the full updated profile and address calls the full updated
// address list; the stores replace their local state with whatever comes
// back, never merging field by field.
type ProfileGateway interface {
	UpdateProfile(ctx context.Context, update ProfileUpdate) (*entity.UserProfile, error)
	// UploadProfileImage streams a multipart image upload. Size is used
	// for the client-side limit check before any bytes are sent.
	UploadProfileImage(ctx context.Context, filename string, content io.Reader, size int64) (*entity.UserProfile, error)
	AddAddress(ctx context.Context, input AddressInput) ([]entity.Address, error)
	UpdateAddress(ctx context.Context, addressID string, input AddressInput) ([]entity.Address, error)
	DeleteAddress(ctx context.Context, addressID string) ([]entity.Address, error)
	SetDefaultAddress(ctx context.Context, addressID string) ([]entity.Address, error)
}
