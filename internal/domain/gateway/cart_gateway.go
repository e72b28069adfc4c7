package gateway

import (
	"context"

	"storefront/internal/domain/entity"
)

// CartGateway is the contract for /api/cart endpoints. Every mutating
// call returns the full updated cart.
type CartGateway interface {
	Get(ctx context.Context) (*entity.Cart, error)
	Add(ctx context.Context, productID string, quantity int) (*entity.Cart, error)
	UpdateQuantity(ctx context.Context, productID string, quantity int) (*entity.Cart, error)
	Remove(ctx context.Context, productID string) (*entity.Cart, error)
	Clear(ctx context.Context) (*entity.Cart, error)
}

// WishlistGateway is the contract for /api/wishlist endpoints, following
// the same wholesale-replace discipline as the cart.
type WishlistGateway interface {
	Get(ctx context.Context) (*entity.Wishlist, error)
	Add(ctx context.Context, productID string) (*entity.Wishlist, error)
	Remove(ctx context.Context, productID string) (*entity.Wishlist, error)
}
