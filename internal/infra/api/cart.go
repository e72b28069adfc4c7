package api

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/gateway"
)

type cartGateway struct {
	client *Client
}

// NewCartGateway creates the REST implementation of gateway.CartGateway.
func NewCartGateway(client *Client) gateway.CartGateway {
	return &cartGateway{client: client}
}

// cartPayload is the data shape of every cart endpoint.
type cartPayload struct {
	Cart *entity.Cart `json:"cart"`
}

func (g *cartGateway) Get(ctx context.Context) (*entity.Cart, error) {
	var data cartPayload
	if err := g.client.get(ctx, "/api/cart", nil, &data, "Failed to load cart"); err != nil {
		return nil, err
	}

	return data.Cart, nil
}

func (g *cartGateway) Add(ctx context.Context, productID string, quantity int) (*entity.Cart, error) {
	body := map[string]any{"productId": productID, "quantity": quantity}
	var data cartPayload
	if err := g.client.post(ctx, "/api/cart", body, &data, "Failed to add to cart"); err != nil {
		return nil, err
	}

	return data.Cart, nil
}

func (g *cartGateway) UpdateQuantity(ctx context.Context, productID string, quantity int) (*entity.Cart, error) {
	body := map[string]any{"quantity": quantity}
	var data cartPayload
	if err := g.client.put(ctx, "/api/cart/"+productID, body, &data, "Failed to update quantity"); err != nil {
		return nil, err
	}

	return data.Cart, nil
}

func (g *cartGateway) Remove(ctx context.Context, productID string) (*entity.Cart, error) {
	var data cartPayload
	if err := g.client.delete(ctx, "/api/cart/"+productID, &data, "Failed to remove from cart"); err != nil {
		return nil, err
	}

	return data.Cart, nil
}

func (g *cartGateway) Clear(ctx context.Context) (*entity.Cart, error) {
	var data cartPayload
	if err := g.client.delete(ctx, "/api/cart", &data, "Failed to clear cart"); err != nil {
		return nil, err
	}

	return data.Cart, nil
}
