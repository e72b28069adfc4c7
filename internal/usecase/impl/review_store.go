package impl

import (
	"context"
	"log/slog"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/gateway"
	"storefront/internal/infra/validation"
	"storefront/internal/usecase"

	"go.uber.org/fx"
)

// ReviewStoreParams defines the dependencies of the review store.
type ReviewStoreParams struct {
	fx.In

	Reviews   gateway.ReviewGateway
	Validator *validation.Validator
	Logger    *slog.Logger
}

// reviewPartition is one independently tracked review list. The product
// page, the user's own reviews and the admin queue each get their own so
// a slow admin fetch cannot flip the product page into a loading state.
type reviewPartition struct {
	slice

	data usecase.ReviewPartition
}

func (p *reviewPartition) snapshot() usecase.ReviewPartition {
	p.mu.RLock()
	defer p.mu.RUnlock()

	out := usecase.ReviewPartition{
		Reviews:    append([]entity.Review(nil), p.data.Reviews...),
		Pagination: p.data.Pagination,
	}
	if p.data.RatingDistribution != nil {
		out.RatingDistribution = make(entity.RatingDistribution, len(p.data.RatingDistribution))
		for rating, count := range p.data.RatingDistribution {
			out.RatingDistribution[rating] = count
		}
	}

	return out
}

// replaceList swaps the whole partition with a fetched page.
func (p *reviewPartition) replaceList(token uint64, kind string, list *gateway.ReviewList) {
	p.fulfill(kind, token, "", func() {
		p.data.Reviews = list.Reviews
		p.data.Pagination = list.Pagination
		p.data.RatingDistribution = list.RatingDistribution
	})
}

type reviewStore struct {
	reviews   gateway.ReviewGateway
	validator *validation.Validator
	logger    *slog.Logger

	product reviewPartition
	mine    reviewPartition
	admin   reviewPartition
}

// NewReviewStore creates the review store.
func NewReviewStore(params ReviewStoreParams) usecase.ReviewUsecase {
	return &reviewStore{
		reviews:   params.Reviews,
		validator: params.Validator,
		logger:    params.Logger,
	}
}

func (s *reviewStore) FetchForProduct(ctx context.Context, productID string, page, limit int) error {
	token := s.product.begin("fetch")

	list, err := s.reviews.ListForProduct(ctx, productID, page, limit)
	if err != nil {
		s.product.reject("fetch", token, domainerrors.UserMessage(err))

		return err
	}

	s.product.replaceList(token, "fetch", list)

	return nil
}

func (s *reviewStore) FetchMine(ctx context.Context, page, limit int) error {
	token := s.mine.begin("fetch")

	list, err := s.reviews.ListMine(ctx, page, limit)
	if err != nil {
		s.mine.reject("fetch", token, domainerrors.UserMessage(err))

		return err
	}

	s.mine.replaceList(token, "fetch", list)

	return nil
}

func (s *reviewStore) Submit(ctx context.Context, input usecase.ReviewInput) error {
	if err := s.validator.Struct(input); err != nil {
		return err
	}

	payload := gateway.ReviewInput{
		Product: input.Product,
		Order:   input.Order,
		Rating:  input.Rating,
		Title:   input.Title,
		Comment: input.Comment,
	}

	token := s.product.begin("submit")

	var (
		review *entity.Review
		err    error
	)
	if input.Review != "" {
		review, err = s.reviews.Update(ctx, input.Review, payload)
	} else {
		review, err = s.reviews.Create(ctx, payload)
	}
	if err != nil {
		s.logger.Warn("review submit failed", slog.String("product", input.Product), slog.Any("error", err))
		s.product.reject("submit", token, domainerrors.UserMessage(err))

		return err
	}

	success := "Review submitted successfully"
	if input.Review != "" {
		success = "Review updated successfully"
	}
	s.product.fulfill("submit", token, success, func() {
		s.product.data.Reviews = upsertReview(s.product.data.Reviews, review)
	})
	s.mine.mu.Lock()
	s.mine.data.Reviews = upsertReview(s.mine.data.Reviews, review)
	s.mine.mu.Unlock()
	s.mine.notify()

	return nil
}

func (s *reviewStore) Delete(ctx context.Context, reviewID string) error {
	token := s.mine.begin("delete")

	if err := s.reviews.Delete(ctx, reviewID); err != nil {
		s.mine.reject("delete", token, domainerrors.UserMessage(err))

		return err
	}

	s.mine.fulfill("delete", token, "Review deleted", func() {
		s.mine.data.Reviews = removeReview(s.mine.data.Reviews, reviewID)
	})
	s.product.mu.Lock()
	s.product.data.Reviews = removeReview(s.product.data.Reviews, reviewID)
	s.product.mu.Unlock()
	s.product.notify()

	return nil
}

func (s *reviewStore) MarkHelpful(ctx context.Context, reviewID string, helpful bool) error {
	token := s.product.begin("helpful")

	review, err := s.reviews.MarkHelpful(ctx, reviewID, helpful)
	if err != nil {
		s.product.reject("helpful", token, domainerrors.UserMessage(err))

		return err
	}

	s.product.fulfill("helpful", token, "", func() {
		s.product.data.Reviews = upsertReview(s.product.data.Reviews, review)
	})

	return nil
}

func (s *reviewStore) FetchAdmin(ctx context.Context, page, limit int) error {
	token := s.admin.begin("fetch")

	list, err := s.reviews.ListAdmin(ctx, page, limit)
	if err != nil {
		s.admin.reject("fetch", token, domainerrors.UserMessage(err))

		return err
	}

	s.admin.replaceList(token, "fetch", list)

	return nil
}

func (s *reviewStore) Moderate(ctx context.Context, reviewID string, approved bool) error {
	token := s.admin.begin("moderate")

	review, err := s.reviews.Approve(ctx, reviewID, approved)
	if err != nil {
		s.admin.reject("moderate", token, domainerrors.UserMessage(err))

		return err
	}

	success := "Review approved"
	if !approved {
		success = "Review rejected"
	}
	s.admin.fulfill("moderate", token, success, func() {
		s.admin.data.Reviews = upsertReview(s.admin.data.Reviews, review)
	})

	return nil
}

func (s *reviewStore) ProductReviews() usecase.ReviewPartition { return s.product.snapshot() }
func (s *reviewStore) MyReviews() usecase.ReviewPartition      { return s.mine.snapshot() }
func (s *reviewStore) AdminReviews() usecase.ReviewPartition   { return s.admin.snapshot() }

func (s *reviewStore) ProductStatus() usecase.Status { return s.product.Status() }
func (s *reviewStore) MineStatus() usecase.Status    { return s.mine.Status() }
func (s *reviewStore) AdminStatus() usecase.Status   { return s.admin.Status() }

// Subscribe registers fn on all three partitions at once.
func (s *reviewStore) Subscribe(fn func()) (cancel func()) {
	cancels := []func(){
		s.product.Subscribe(fn),
		s.mine.Subscribe(fn),
		s.admin.Subscribe(fn),
	}

	return func() {
		for _, c := range cancels {
			c()
		}
	}
}

// upsertReview replaces the review matching by identifier or appends it.
func upsertReview(reviews []entity.Review, review *entity.Review) []entity.Review {
	if review == nil {
		return reviews
	}
	for i := range reviews {
		if reviews[i].ID == review.ID {
			reviews[i] = *review

			return reviews
		}
	}

	return append(reviews, *review)
}

func removeReview(reviews []entity.Review, reviewID string) []entity.Review {
	out := reviews[:0]
	for _, r := range reviews {
		if r.ID != reviewID {
			out = append(out, r)
		}
	}

	return out
}
