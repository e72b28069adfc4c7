package api

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/gateway"
)

type orderGateway struct {
	client *Client
}

// NewOrderGateway creates the REST implementation of gateway.OrderGateway.
func NewOrderGateway(client *Client) gateway.OrderGateway {
	return &orderGateway{client: client}
}

func (g *orderGateway) List(ctx context.Context, page, limit int) ([]entity.Order, *entity.Pagination, error) {
	var data struct {
		Orders     []entity.Order     `json:"orders"`
		Pagination *entity.Pagination `json:"pagination"`
	}
	if err := g.client.get(ctx, "/api/orders", pageQuery(page, limit), &data, "Failed to load orders"); err != nil {
		return nil, nil, err
	}

	return data.Orders, data.Pagination, nil
}

func (g *orderGateway) Get(ctx context.Context, orderID string) (*entity.Order, error) {
	var data struct {
		Order *entity.Order `json:"order"`
	}
	if err := g.client.get(ctx, "/api/orders/"+orderID, nil, &data, "Order not found"); err != nil {
		return nil, err
	}

	return data.Order, nil
}

func (g *orderGateway) Place(ctx context.Context, input gateway.PlaceOrderInput) (*entity.Order, error) {
	var data struct {
		Order *entity.Order `json:"order"`
	}
	if err := g.client.post(ctx, "/api/orders", input, &data, "Failed to place order"); err != nil {
		return nil, err
	}

	return data.Order, nil
}
