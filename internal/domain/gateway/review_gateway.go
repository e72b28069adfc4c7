package gateway

import (
	"context"

	"storefront/internal/domain/entity"
)

// ReviewList is the payload of the review listing endpoints. The rating
// distribution is only populated for per-product listings.
type ReviewList struct {
	Reviews            []entity.Review           `json:"reviews"`
	Pagination         entity.Pagination         `json:"pagination"`
	RatingDistribution entity.RatingDistribution `json:"ratingDistribution"`
}

// ReviewInput is the payload for creating or updating a review.
type ReviewInput struct {
	Product string `json:"product,omitempty"`
	Order   string `json:"order,omitempty"`
	Rating  int    `json:"rating"`
	Title   string `json:"title"`
	Comment string `json:"comment"`
}

// ReviewGateway is the contract for /api/reviews endpoints, including the
// admin moderation surface.
type ReviewGateway interface {
	ListForProduct(ctx context.Context, productID string, page, limit int) (*ReviewList, error)
	ListMine(ctx context.Context, page, limit int) (*ReviewList, error)
	Create(ctx context.Context, input ReviewInput) (*entity.Review, error)
	Update(ctx context.Context, reviewID string, input ReviewInput) (*entity.Review, error)
	Delete(ctx context.Context, reviewID string) error
	// MarkHelpful votes the review helpful or not helpful and returns the
	// updated review.
	MarkHelpful(ctx context.Context, reviewID string, helpful bool) (*entity.Review, error)

	// Admin moderation surface.
	ListAdmin(ctx context.Context, page, limit int) (*ReviewList, error)
	Approve(ctx context.Context, reviewID string, approved bool) (*entity.Review, error)
}
