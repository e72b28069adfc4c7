package api

import (
	"context"
	"io"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/gateway"
)

type profileGateway struct {
	client *Client
}

// NewProfileGateway creates the REST implementation of gateway.ProfileGateway.
func NewProfileGateway(client *Client) gateway.ProfileGateway {
	return &profileGateway{client: client}
}

// userPayload is the data shape of every profile-mutating endpoint.
type userPayload struct {
	User *entity.UserProfile `json:"user"`
}

// addressesPayload is the data shape of every address endpoint.
type addressesPayload struct {
	Addresses []entity.Address `json:"addresses"`
}

func (g *profileGateway) UpdateProfile(ctx context.Context, update gateway.ProfileUpdate) (*entity.UserProfile, error) {
	var data userPayload
	if err := g.client.put(ctx, "/api/users/profile", update, &data, "Failed to update profile"); err != nil {
		return nil, err
	}

	return data.User, nil
}

func (g *profileGateway) UploadProfileImage(ctx context.Context, filename string, content io.Reader, size int64) (*entity.UserProfile, error) {
	var data userPayload
	if err := g.client.upload(ctx, "/api/users/profile/image", "image", filename, content, size, &data); err != nil {
		return nil, err
	}

	return data.User, nil
}

func (g *profileGateway) AddAddress(ctx context.Context, input gateway.AddressInput) ([]entity.Address, error) {
	var data addressesPayload
	if err := g.client.post(ctx, "/api/users/addresses", input, &data, "Failed to add address"); err != nil {
		return nil, err
	}

	return data.Addresses, nil
}

func (g *profileGateway) UpdateAddress(ctx context.Context, addressID string, input gateway.AddressInput) ([]entity.Address, error) {
	var data addressesPayload
	if err := g.client.put(ctx, "/api/users/addresses/"+addressID, input, &data, "Failed to update address"); err != nil {
		return nil, err
	}

	return data.Addresses, nil
}

func (g *profileGateway) DeleteAddress(ctx context.Context, addressID string) ([]entity.Address, error) {
	var data addressesPayload
	if err := g.client.delete(ctx, "/api/users/addresses/"+addressID, &data, "Failed to delete address"); err != nil {
		return nil, err
	}

	return data.Addresses, nil
}

func (g *profileGateway) SetDefaultAddress(ctx context.Context, addressID string) ([]entity.Address, error) {
	var data addressesPayload
	if err := g.client.put(ctx, "/api/users/addresses/"+addressID+"/default", nil, &data, "Failed to set default address"); err != nil {
		return nil, err
	}

	return data.Addresses, nil
}
