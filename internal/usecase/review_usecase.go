package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// ReviewInput defines the data required to create or update a review.
type ReviewInput struct {
	Product string `validate:"required_without=Review"`
	Order   string
	Rating  int    `validate:"required,min=1,max=5"`
	Title   string `validate:"required,max=100"`
	Comment string `validate:"required,min=10,max=1000"`

	// Review is the identifier of an existing review for updates; empty
	// on create.
	Review string
}

// ReviewPartition is one independently paginated review list with its
// own status flags. Product reviews, the current user's reviews and the
// admin moderation queue never share loading or error state.
type ReviewPartition struct {
	Reviews            []entity.Review
	Pagination         entity.Pagination
	RatingDistribution entity.RatingDistribution
}

// ReviewUsecase owns the review subtrees.
type ReviewUsecase interface {
	FetchForProduct(ctx context.Context, productID string, page, limit int) error
	FetchMine(ctx context.Context, page, limit int) error

	// Submit creates or updates a review. Unlike the other operations the
	// error is also returned so a submit flow can await the outcome.
	Submit(ctx context.Context, input ReviewInput) error
	Delete(ctx context.Context, reviewID string) error
	MarkHelpful(ctx context.Context, reviewID string, helpful bool) error

	// Admin moderation queue.
	FetchAdmin(ctx context.Context, page, limit int) error
	Moderate(ctx context.Context, reviewID string, approved bool) error

	ProductReviews() ReviewPartition
	MyReviews() ReviewPartition
	AdminReviews() ReviewPartition
	ProductStatus() Status
	MineStatus() Status
	AdminStatus() Status
	Subscribe(fn func()) (cancel func())
}
