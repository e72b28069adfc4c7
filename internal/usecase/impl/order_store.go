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

// OrderStoreParams defines the dependencies of the order store.
type OrderStoreParams struct {
	fx.In

	Orders    gateway.OrderGateway
	Validator *validation.Validator
	Logger    *slog.Logger
}

type orderStore struct {
	slice

	orders    gateway.OrderGateway
	validator *validation.Validator
	logger    *slog.Logger

	snapshot usecase.OrdersSnapshot
}

// NewOrderStore creates the order store.
func NewOrderStore(params OrderStoreParams) usecase.OrderUsecase {
	return &orderStore{
		orders:    params.Orders,
		validator: params.Validator,
		logger:    params.Logger,
	}
}

func (s *orderStore) Fetch(ctx context.Context, page, limit int) error {
	token := s.begin("list")

	orders, pagination, err := s.orders.List(ctx, page, limit)
	if err != nil {
		s.reject("list", token, domainerrors.UserMessage(err))

		return err
	}

	s.fulfill("list", token, "", func() {
		s.snapshot.Orders = orders
		if pagination != nil {
			s.snapshot.Pagination = *pagination
		}
	})

	return nil
}

func (s *orderStore) Get(ctx context.Context, orderID string) error {
	token := s.begin("get")

	order, err := s.orders.Get(ctx, orderID)
	if err != nil {
		s.reject("get", token, domainerrors.UserMessage(err))

		return err
	}

	s.fulfill("get", token, "", func() {
		s.snapshot.Current = order
	})

	return nil
}

func (s *orderStore) Place(ctx context.Context, input usecase.PlaceOrderInput) error {
	if err := s.validator.Struct(input); err != nil {
		return err
	}

	token := s.begin("place")

	order, err := s.orders.Place(ctx, gateway.PlaceOrderInput{
		AddressID:     input.AddressID,
		PaymentMethod: input.PaymentMethod,
	})
	if err != nil {
		s.logger.Warn("order placement failed", slog.Any("error", err))
		s.reject("place", token, domainerrors.UserMessage(err))

		return err
	}

	s.fulfill("place", token, "Order placed successfully", func() {
		s.snapshot.Current = order
		s.snapshot.Orders = append([]entity.Order{*order}, s.snapshot.Orders...)
	})

	return nil
}

func (s *orderStore) HasPurchased(productID string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, order := range s.snapshot.Orders {
		for _, item := range order.Items {
			if item.Product.ID == productID {
				return order.ID, true
			}
		}
	}

	return "", false
}

func (s *orderStore) Snapshot() usecase.OrdersSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snapshot := usecase.OrdersSnapshot{
		Orders:     append([]entity.Order(nil), s.snapshot.Orders...),
		Pagination: s.snapshot.Pagination,
	}
	if s.snapshot.Current != nil {
		current := *s.snapshot.Current
		snapshot.Current = &current
	}

	return snapshot
}
