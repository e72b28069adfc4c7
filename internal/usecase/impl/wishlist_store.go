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

// WishlistStoreParams defines the dependencies of the wishlist store.
type WishlistStoreParams struct {
	fx.In

	Wishlist gateway.WishlistGateway
	Logger   *slog.Logger
}

type wishlistStore struct {
	slice

	gateway gateway.WishlistGateway
	logger  *slog.Logger

	wishlist entity.Wishlist
}

// NewWishlistStore creates the wishlist store.
func NewWishlistStore(params WishlistStoreParams) usecase.WishlistUsecase {
	return &wishlistStore{
		gateway: params.Wishlist,
		logger:  params.Logger,
	}
}

func (s *wishlistStore) Fetch(ctx context.Context) error {
	return s.replaceWith(ctx, "fetch", "", func(ctx context.Context) (*entity.Wishlist, error) {
		return s.gateway.Get(ctx)
	})
}

func (s *wishlistStore) Add(ctx context.Context, productID string) error {
	return s.replaceWith(ctx, "add", "Added to wishlist", func(ctx context.Context) (*entity.Wishlist, error) {
		return s.gateway.Add(ctx, productID)
	})
}

func (s *wishlistStore) Remove(ctx context.Context, productID string) error {
	return s.replaceWith(ctx, "remove", "Removed from wishlist", func(ctx context.Context) (*entity.Wishlist, error) {
		return s.gateway.Remove(ctx, productID)
	})
}

func (s *wishlistStore) Wishlist() entity.Wishlist {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return entity.Wishlist{Products: append([]entity.Product(nil), s.wishlist.Products...)}
}

func (s *wishlistStore) Contains(productID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, product := range s.wishlist.Products {
		if product.ID == productID {
			return true
		}
	}

	return false
}

func (s *wishlistStore) replaceWith(ctx context.Context, kind, success string,
	call func(context.Context) (*entity.Wishlist, error),
) error {
	token := s.begin(kind)

	wishlist, err := call(ctx)
	if err != nil {
		s.logger.Warn("wishlist operation failed", slog.String("operation", kind), slog.Any("error", err))
		s.reject(kind, token, domainerrors.UserMessage(err))

		return err
	}

	s.fulfill(kind, token, success, func() {
		s.wishlist = *wishlist
	})

	return nil
}
