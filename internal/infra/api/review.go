package api

import (
	"context"
	"net/url"
	"strconv"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/gateway"
)

type reviewGateway struct {
	client *Client
}

// NewReviewGateway creates the REST implementation of gateway.ReviewGateway.
func NewReviewGateway(client *Client) gateway.ReviewGateway {
	return &reviewGateway{client: client}
}

// reviewPayload is the data shape of single-review endpoints.
type reviewPayload struct {
	Review *entity.Review `json:"review"`
}

func pageQuery(page, limit int) url.Values {
	params := url.Values{}
	if page > 0 {
		params.Set("page", strconv.Itoa(page))
	}
	if limit > 0 {
		params.Set("limit", strconv.Itoa(limit))
	}

	return params
}

func (g *reviewGateway) ListForProduct(ctx context.Context, productID string, page, limit int) (*gateway.ReviewList, error) {
	result := new(gateway.ReviewList)
	if err := g.client.get(ctx, "/api/reviews/product/"+productID, pageQuery(page, limit), result, "Failed to load reviews"); err != nil {
		return nil, err
	}

	return result, nil
}

func (g *reviewGateway) ListMine(ctx context.Context, page, limit int) (*gateway.ReviewList, error) {
	result := new(gateway.ReviewList)
	if err := g.client.get(ctx, "/api/reviews/my", pageQuery(page, limit), result, "Failed to load your reviews"); err != nil {
		return nil, err
	}

	return result, nil
}

func (g *reviewGateway) Create(ctx context.Context, input gateway.ReviewInput) (*entity.Review, error) {
	var data reviewPayload
	if err := g.client.post(ctx, "/api/reviews", input, &data, "Failed to submit review"); err != nil {
		return nil, err
	}

	return data.Review, nil
}

func (g *reviewGateway) Update(ctx context.Context, reviewID string, input gateway.ReviewInput) (*entity.Review, error) {
	var data reviewPayload
	if err := g.client.put(ctx, "/api/reviews/"+reviewID, input, &data, "Failed to update review"); err != nil {
		return nil, err
	}

	return data.Review, nil
}

func (g *reviewGateway) Delete(ctx context.Context, reviewID string) error {
	return g.client.delete(ctx, "/api/reviews/"+reviewID, nil, "Failed to delete review")
}

func (g *reviewGateway) MarkHelpful(ctx context.Context, reviewID string, helpful bool) (*entity.Review, error) {
	body := map[string]bool{"helpful": helpful}
	var data reviewPayload
	if err := g.client.post(ctx, "/api/reviews/"+reviewID+"/helpful", body, &data, "Failed to record your vote"); err != nil {
		return nil, err
	}

	return data.Review, nil
}

func (g *reviewGateway) ListAdmin(ctx context.Context, page, limit int) (*gateway.ReviewList, error) {
	result := new(gateway.ReviewList)
	if err := g.client.get(ctx, "/api/reviews/admin/all", pageQuery(page, limit), result, "Failed to load reviews for moderation"); err != nil {
		return nil, err
	}

	return result, nil
}

func (g *reviewGateway) Approve(ctx context.Context, reviewID string, approved bool) (*entity.Review, error) {
	body := map[string]bool{"isApproved": approved}
	var data reviewPayload
	if err := g.client.put(ctx, "/api/reviews/admin/"+reviewID+"/approve", body, &data, "Failed to moderate review"); err != nil {
		return nil, err
	}

	return data.Review, nil
}
