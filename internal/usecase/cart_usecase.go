package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// CartUsecase owns the cart subtree. Every mutation replaces the cart
// with the backend's response; totals are never recomputed locally.
type CartUsecase interface {
	Fetch(ctx context.Context) error
	Add(ctx context.Context, productID string, quantity int) error
	UpdateQuantity(ctx context.Context, productID string, quantity int) error
	Remove(ctx context.Context, productID string) error
	Clear(ctx context.Context) error

	Cart() entity.Cart
	Status() Status
	Subscribe(fn func()) (cancel func())
}

// WishlistUsecase owns the wishlist subtree, with the same
// wholesale-replace discipline as the cart.
type WishlistUsecase interface {
	Fetch(ctx context.Context) error
	Add(ctx context.Context, productID string) error
	Remove(ctx context.Context, productID string) error

	Wishlist() entity.Wishlist
	// Contains reports whether the product is in the local snapshot.
	Contains(productID string) bool
	Status() Status
	Subscribe(fn func()) (cancel func())
}
