package usecase

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/gateway"
)

// ProductsSnapshot is the product subtree as last returned by the
// backend: the filtered listing, its pagination, the known categories and
// the curated home-page shelves.
type ProductsSnapshot struct {
	Products    []entity.Product
	Pagination  entity.Pagination
	Categories  []string
	Current     *entity.Product
	Featured    []entity.Product
	Bestsellers []entity.Product
}

// ProductUsecase owns the read-only product subtree.
type ProductUsecase interface {
	FetchProducts(ctx context.Context, query gateway.ProductQuery) error
	FetchProduct(ctx context.Context, productID string) error
	FetchFeatured(ctx context.Context) error
	FetchBestsellers(ctx context.Context) error

	Snapshot() ProductsSnapshot
	Status() Status
	Subscribe(fn func()) (cancel func())
}
