package api

import (
	"context"
	"net/url"
	"strconv"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/gateway"
)

type productGateway struct {
	client *Client
}

// NewProductGateway creates the REST implementation of gateway.ProductGateway.
func NewProductGateway(client *Client) gateway.ProductGateway {
	return &productGateway{client: client}
}

func (g *productGateway) List(ctx context.Context, query gateway.ProductQuery) (*gateway.ProductList, error) {
	params := url.Values{}
	if query.Search != "" {
		params.Set("search", query.Search)
	}
	if query.Category != "" {
		params.Set("category", query.Category)
	}
	if query.Sort != "" {
		params.Set("sort", query.Sort)
	}
	if query.MinPrice > 0 {
		params.Set("minPrice", strconv.FormatFloat(query.MinPrice, 'f', -1, 64))
	}
	if query.MaxPrice > 0 {
		params.Set("maxPrice", strconv.FormatFloat(query.MaxPrice, 'f', -1, 64))
	}
	if query.Page > 0 {
		params.Set("page", strconv.Itoa(query.Page))
	}
	if query.Limit > 0 {
		params.Set("limit", strconv.Itoa(query.Limit))
	}

	result := new(gateway.ProductList)
	if err := g.client.get(ctx, "/api/products", params, result, "Failed to load products"); err != nil {
		return nil, err
	}

	return result, nil
}

func (g *productGateway) Get(ctx context.Context, productID string) (*entity.Product, error) {
	var data struct {
		Product *entity.Product `json:"product"`
	}
	if err := g.client.get(ctx, "/api/products/"+productID, nil, &data, "Product not found"); err != nil {
		return nil, err
	}

	return data.Product, nil
}

func (g *productGateway) Featured(ctx context.Context) ([]entity.Product, error) {
	var data struct {
		Products []entity.Product `json:"products"`
	}
	if err := g.client.get(ctx, "/api/products/featured", nil, &data, "Failed to load featured products"); err != nil {
		return nil, err
	}

	return data.Products, nil
}

func (g *productGateway) Bestsellers(ctx context.Context) ([]entity.Product, error) {
	var data struct {
		Products []entity.Product `json:"products"`
	}
	if err := g.client.get(ctx, "/api/products/bestsellers", nil, &data, "Failed to load bestsellers"); err != nil {
		return nil, err
	}

	return data.Products, nil
}
