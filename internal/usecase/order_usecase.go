package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// PlaceOrderInput defines the data required to place an order from the
// current cart.
type PlaceOrderInput struct {
	AddressID     string `validate:"required"`
	PaymentMethod string `validate:"required,oneof=cod card upi"`
}

// OrdersSnapshot is the order subtree as last returned by the backend.
type OrdersSnapshot struct {
	Orders     []entity.Order
	Pagination entity.Pagination
	Current    *entity.Order
}

// OrderUsecase owns the order subtree. Orders are read-only except for
// placement; the lifecycle lives on the backend.
type OrderUsecase interface {
	Fetch(ctx context.Context, page, limit int) error
	Get(ctx context.Context, orderID string) error
	Place(ctx context.Context, input PlaceOrderInput) error

	// HasPurchased reports whether any fetched order contains the
	// product. Used to gate review eligibility.
	HasPurchased(productID string) (orderID string, ok bool)

	Snapshot() OrdersSnapshot
	Status() Status
	Subscribe(fn func()) (cancel func())
}
