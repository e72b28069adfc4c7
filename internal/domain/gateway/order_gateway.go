package gateway

import (
	"context"

	"storefront/internal/domain/entity"
)

// PlaceOrderInput is the payload for placing an order from the current
// cart contents.
type PlaceOrderInput struct {
	AddressID     string `json:"addressId"`
	PaymentMethod string `json:"paymentMethod"`
}

// OrderGateway is the contract for /api/orders endpoints. Orders are
// read-only except for placement; the order lifecycle lives on the
// backend.
type OrderGateway interface {
	List(ctx context.Context, page, limit int) ([]entity.Order, *entity.Pagination, error)
	Get(ctx context.Context, orderID string) (*entity.Order, error)
	Place(ctx context.Context, input PlaceOrderInput) (*entity.Order, error)
}
