package gateway

import (
	"context"

	"storefront/internal/domain/entity"
)

// ProductQuery is the filter set for the product listing endpoint. Zero
// values are omitted from the request.
type ProductQuery struct {
	Search   string
	Category string
	Sort     string
	MinPrice float64
	MaxPrice float64
	Page     int
	Limit    int
}

// ProductList is the payload of the product listing endpoint.
type ProductList struct {
	Products   []entity.Product  `json:"products"`
	Pagination entity.Pagination `json:"pagination"`
	Categories []string          `json:"categories"`
}

// ProductGateway is the contract for /api/products endpoints.
type ProductGateway interface {
	List(ctx context.Context, query ProductQuery) (*ProductList, error)
	Get(ctx context.Context, productID string) (*entity.Product, error)
	Featured(ctx context.Context) ([]entity.Product, error)
	Bestsellers(ctx context.Context) ([]entity.Product, error)
}
