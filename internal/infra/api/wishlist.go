package api

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/gateway"
)

type wishlistGateway struct {
	client *Client
}

// NewWishlistGateway creates the REST implementation of gateway.WishlistGateway.
func NewWishlistGateway(client *Client) gateway.WishlistGateway {
	return &wishlistGateway{client: client}
}

// wishlistPayload is the data shape of every wishlist endpoint.
type wishlistPayload struct {
	Wishlist *entity.Wishlist `json:"wishlist"`
}

func (g *wishlistGateway) Get(ctx context.Context) (*entity.Wishlist, error) {
	var data wishlistPayload
	if err := g.client.get(ctx, "/api/wishlist", nil, &data, "Failed to load wishlist"); err != nil {
		return nil, err
	}

	return data.Wishlist, nil
}

func (g *wishlistGateway) Add(ctx context.Context, productID string) (*entity.Wishlist, error) {
	body := map[string]string{"productId": productID}
	var data wishlistPayload
	if err := g.client.post(ctx, "/api/wishlist", body, &data, "Failed to add to wishlist"); err != nil {
		return nil, err
	}

	return data.Wishlist, nil
}

func (g *wishlistGateway) Remove(ctx context.Context, productID string) (*entity.Wishlist, error) {
	var data wishlistPayload
	if err := g.client.delete(ctx, "/api/wishlist/"+productID, &data, "Failed to remove from wishlist"); err != nil {
		return nil, err
	}

	return data.Wishlist, nil
}
