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

// ProductStoreParams defines the dependencies of the product store.
type ProductStoreParams struct {
	fx.In

	Products gateway.ProductGateway
	Logger   *slog.Logger
}

type productStore struct {
	slice

	products gateway.ProductGateway
	logger   *slog.Logger

	snapshot usecase.ProductsSnapshot
}

// NewProductStore creates the product store.
func NewProductStore(params ProductStoreParams) usecase.ProductUsecase {
	return &productStore{
		products: params.Products,
		logger:   params.Logger,
	}
}

func (s *productStore) FetchProducts(ctx context.Context, query gateway.ProductQuery) error {
	token := s.begin("list")

	list, err := s.products.List(ctx, query)
	if err != nil {
		s.logger.Warn("product listing failed", slog.Any("error", err))
		s.reject("list", token, domainerrors.UserMessage(err))

		return err
	}

	s.fulfill("list", token, "", func() {
		s.snapshot.Products = list.Products
		s.snapshot.Pagination = list.Pagination
		s.snapshot.Categories = list.Categories
	})

	return nil
}

func (s *productStore) FetchProduct(ctx context.Context, productID string) error {
	token := s.begin("get")

	product, err := s.products.Get(ctx, productID)
	if err != nil {
		s.reject("get", token, domainerrors.UserMessage(err))

		return err
	}

	s.fulfill("get", token, "", func() {
		s.snapshot.Current = product
	})

	return nil
}

func (s *productStore) FetchFeatured(ctx context.Context) error {
	token := s.begin("featured")

	products, err := s.products.Featured(ctx)
	if err != nil {
		s.reject("featured", token, domainerrors.UserMessage(err))

		return err
	}

	s.fulfill("featured", token, "", func() {
		s.snapshot.Featured = products
	})

	return nil
}

func (s *productStore) FetchBestsellers(ctx context.Context) error {
	token := s.begin("bestsellers")

	products, err := s.products.Bestsellers(ctx)
	if err != nil {
		s.reject("bestsellers", token, domainerrors.UserMessage(err))

		return err
	}

	s.fulfill("bestsellers", token, "", func() {
		s.snapshot.Bestsellers = products
	})

	return nil
}

func (s *productStore) Snapshot() usecase.ProductsSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snapshot := usecase.ProductsSnapshot{
		Products:    append([]entity.Product(nil), s.snapshot.Products...),
		Pagination:  s.snapshot.Pagination,
		Categories:  append([]string(nil), s.snapshot.Categories...),
		Featured:    append([]entity.Product(nil), s.snapshot.Featured...),
		Bestsellers: append([]entity.Product(nil), s.snapshot.Bestsellers...),
	}
	if s.snapshot.Current != nil {
		current := *s.snapshot.Current
		snapshot.Current = &current
	}

	return snapshot
}
