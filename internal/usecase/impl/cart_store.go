package impl

import (
	"context"
	"log/slog"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/gateway"
	"storefront/internal/usecase"

	"go.uber.org/fx"
)

// CartStoreParams defines the dependencies of the cart store.
type CartStoreParams struct {
	fx.In

	Cart   gateway.CartGateway
	Logger *slog.Logger
}

type cartStore struct {
	slice

	gateway gateway.CartGateway
	logger  *slog.Logger

	cart entity.Cart
}

// NewCartStore creates the cart store.
func NewCartStore(params CartStoreParams) usecase.CartUsecase {
	return &cartStore{
		gateway: params.Cart,
		logger:  params.Logger,
	}
}

func (s *cartStore) Fetch(ctx context.Context) error {
	return s.replaceWith(ctx, "fetch", "", func(ctx context.Context) (*entity.Cart, error) {
		return s.gateway.Get(ctx)
	})
}

func (s *cartStore) Add(ctx context.Context, productID string, quantity int) error {
	return s.replaceWith(ctx, "add", "Added to cart", func(ctx context.Context) (*entity.Cart, error) {
		return s.gateway.Add(ctx, productID, quantity)
	})
}

func (s *cartStore) UpdateQuantity(ctx context.Context, productID string, quantity int) error {
	return s.replaceWith(ctx, "update", "Cart updated", func(ctx context.Context) (*entity.Cart, error) {
		return s.gateway.UpdateQuantity(ctx, productID, quantity)
	})
}

func (s *cartStore) Remove(ctx context.Context, productID string) error {
	return s.replaceWith(ctx, "remove", "Removed from cart", func(ctx context.Context) (*entity.Cart, error) {
		return s.gateway.Remove(ctx, productID)
	})
}

func (s *cartStore) Clear(ctx context.Context) error {
	return s.replaceWith(ctx, "clear", "Cart cleared", func(ctx context.Context) (*entity.Cart, error) {
		return s.gateway.Clear(ctx)
	})
}

func (s *cartStore) Cart() entity.Cart {
	s.mu.RLock()
	defer s.mu.RUnlock()

	cart := s.cart
	cart.Items = append([]entity.CartItem(nil), s.cart.Items...)

	return cart
}

// replaceWith runs one cart operation and replaces the whole cart with
// the backend's response. A rejection leaves the cart exactly as it was.
func (s *cartStore) replaceWith(ctx context.Context, kind, success string,
	call func(context.Context) (*entity.Cart, error),
) error {
	token := s.begin(kind)

	cart, err := call(ctx)
	if err != nil {
		s.logger.Warn("cart operation failed", slog.String("operation", kind), slog.Any("error", err))
		s.reject(kind, token, domainerrors.UserMessage(err))

		return err
	}

	s.fulfill(kind, token, success, func() {
		s.cart = *cart
	})

	return nil
}
