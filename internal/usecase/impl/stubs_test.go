package impl_test

import (
	"context"
	"io"
	"log/slog"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/gateway"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// Gateway stubs with function fields so each test supplies exactly the
// calls it expects. Unset calls panic, which fails the test loudly.

type authGatewayStub struct {
	login     func(ctx context.Context, email, password string) (*gateway.AuthResult, error)
	register  func(ctx context.Context, name, email, password string) (*gateway.AuthResult, error)
	google    func(ctx context.Context, idToken string) (*gateway.AuthResult, error)
	current   func(ctx context.Context) (*entity.UserProfile, error)
	sendEmail func(ctx context.Context) error
	verify    func(ctx context.Context, otp string) (*gateway.AuthResult, error)
}

func (s *authGatewayStub) Login(ctx context.Context, email, password string) (*gateway.AuthResult, error) {
	return s.login(ctx, email, password)
}

func (s *authGatewayStub) Register(ctx context.Context, name, email, password string) (*gateway.AuthResult, error) {
	return s.register(ctx, name, email, password)
}

func (s *authGatewayStub) GoogleLogin(ctx context.Context, idToken string) (*gateway.AuthResult, error) {
	return s.google(ctx, idToken)
}

func (s *authGatewayStub) CurrentUser(ctx context.Context) (*entity.UserProfile, error) {
	return s.current(ctx)
}

func (s *authGatewayStub) SendVerificationEmail(ctx context.Context) error {
	return s.sendEmail(ctx)
}

func (s *authGatewayStub) VerifyEmail(ctx context.Context, otp string) (*gateway.AuthResult, error) {
	return s.verify(ctx, otp)
}

type profileGatewayStub struct {
	update     func(ctx context.Context, update gateway.ProfileUpdate) (*entity.UserProfile, error)
	upload     func(ctx context.Context, filename string, content io.Reader, size int64) (*entity.UserProfile, error)
	add        func(ctx context.Context, input gateway.AddressInput) ([]entity.Address, error)
	updateAddr func(ctx context.Context, addressID string, input gateway.AddressInput) ([]entity.Address, error)
	deleteAddr func(ctx context.Context, addressID string) ([]entity.Address, error)
	setDefault func(ctx context.Context, addressID string) ([]entity.Address, error)
}

func (s *profileGatewayStub) UpdateProfile(ctx context.Context, update gateway.ProfileUpdate) (*entity.UserProfile, error) {
	return s.update(ctx, update)
}

func (s *profileGatewayStub) UploadProfileImage(ctx context.Context, filename string, content io.Reader, size int64) (*entity.UserProfile, error) {
	return s.upload(ctx, filename, content, size)
}

func (s *profileGatewayStub) AddAddress(ctx context.Context, input gateway.AddressInput) ([]entity.Address, error) {
	return s.add(ctx, input)
}

func (s *profileGatewayStub) UpdateAddress(ctx context.Context, addressID string, input gateway.AddressInput) ([]entity.Address, error) {
	return s.updateAddr(ctx, addressID, input)
}

func (s *profileGatewayStub) DeleteAddress(ctx context.Context, addressID string) ([]entity.Address, error) {
	return s.deleteAddr(ctx, addressID)
}

func (s *profileGatewayStub) SetDefaultAddress(ctx context.Context, addressID string) ([]entity.Address, error) {
	return s.setDefault(ctx, addressID)
}

type productGatewayStub struct {
	list        func(ctx context.Context, query gateway.ProductQuery) (*gateway.ProductList, error)
	get         func(ctx context.Context, productID string) (*entity.Product, error)
	featured    func(ctx context.Context) ([]entity.Product, error)
	bestsellers func(ctx context.Context) ([]entity.Product, error)
}

func (s *productGatewayStub) List(ctx context.Context, query gateway.ProductQuery) (*gateway.ProductList, error) {
	return s.list(ctx, query)
}

func (s *productGatewayStub) Get(ctx context.Context, productID string) (*entity.Product, error) {
	return s.get(ctx, productID)
}

func (s *productGatewayStub) Featured(ctx context.Context) ([]entity.Product, error) {
	return s.featured(ctx)
}

func (s *productGatewayStub) Bestsellers(ctx context.Context) ([]entity.Product, error) {
	return s.bestsellers(ctx)
}

type cartGatewayStub struct {
	get      func(ctx context.Context) (*entity.Cart, error)
	add      func(ctx context.Context, productID string, quantity int) (*entity.Cart, error)
	update   func(ctx context.Context, productID string, quantity int) (*entity.Cart, error)
	remove   func(ctx context.Context, productID string) (*entity.Cart, error)
	clearAll func(ctx context.Context) (*entity.Cart, error)
}

func (s *cartGatewayStub) Get(ctx context.Context) (*entity.Cart, error) {
	return s.get(ctx)
}

func (s *cartGatewayStub) Add(ctx context.Context, productID string, quantity int) (*entity.Cart, error) {
	return s.add(ctx, productID, quantity)
}

func (s *cartGatewayStub) UpdateQuantity(ctx context.Context, productID string, quantity int) (*entity.Cart, error) {
	return s.update(ctx, productID, quantity)
}

func (s *cartGatewayStub) Remove(ctx context.Context, productID string) (*entity.Cart, error) {
	return s.remove(ctx, productID)
}

func (s *cartGatewayStub) Clear(ctx context.Context) (*entity.Cart, error) {
	return s.clearAll(ctx)
}

type wishlistGatewayStub struct {
	get    func(ctx context.Context) (*entity.Wishlist, error)
	add    func(ctx context.Context, productID string) (*entity.Wishlist, error)
	remove func(ctx context.Context, productID string) (*entity.Wishlist, error)
}

func (s *wishlistGatewayStub) Get(ctx context.Context) (*entity.Wishlist, error) {
	return s.get(ctx)
}

func (s *wishlistGatewayStub) Add(ctx context.Context, productID string) (*entity.Wishlist, error) {
	return s.add(ctx, productID)
}

func (s *wishlistGatewayStub) Remove(ctx context.Context, productID string) (*entity.Wishlist, error) {
	return s.remove(ctx, productID)
}

type reviewGatewayStub struct {
	listForProduct func(ctx context.Context, productID string, page, limit int) (*gateway.ReviewList, error)
	listMine       func(ctx context.Context, page, limit int) (*gateway.ReviewList, error)
	create         func(ctx context.Context, input gateway.ReviewInput) (*entity.Review, error)
	update         func(ctx context.Context, reviewID string, input gateway.ReviewInput) (*entity.Review, error)
	deleteFn       func(ctx context.Context, reviewID string) error
	markHelpful    func(ctx context.Context, reviewID string, helpful bool) (*entity.Review, error)
	listAdmin      func(ctx context.Context, page, limit int) (*gateway.ReviewList, error)
	approve        func(ctx context.Context, reviewID string, approved bool) (*entity.Review, error)
}

func (s *reviewGatewayStub) ListForProduct(ctx context.Context, productID string, page, limit int) (*gateway.ReviewList, error) {
	return s.listForProduct(ctx, productID, page, limit)
}

func (s *reviewGatewayStub) ListMine(ctx context.Context, page, limit int) (*gateway.ReviewList, error) {
	return s.listMine(ctx, page, limit)
}

func (s *reviewGatewayStub) Create(ctx context.Context, input gateway.ReviewInput) (*entity.Review, error) {
	return s.create(ctx, input)
}

func (s *reviewGatewayStub) Update(ctx context.Context, reviewID string, input gateway.ReviewInput) (*entity.Review, error) {
	return s.update(ctx, reviewID, input)
}

func (s *reviewGatewayStub) Delete(ctx context.Context, reviewID string) error {
	return s.deleteFn(ctx, reviewID)
}

func (s *reviewGatewayStub) MarkHelpful(ctx context.Context, reviewID string, helpful bool) (*entity.Review, error) {
	return s.markHelpful(ctx, reviewID, helpful)
}

func (s *reviewGatewayStub) ListAdmin(ctx context.Context, page, limit int) (*gateway.ReviewList, error) {
	return s.listAdmin(ctx, page, limit)
}

func (s *reviewGatewayStub) Approve(ctx context.Context, reviewID string, approved bool) (*entity.Review, error) {
	return s.approve(ctx, reviewID, approved)
}

type orderGatewayStub struct {
	list  func(ctx context.Context, page, limit int) ([]entity.Order, *entity.Pagination, error)
	get   func(ctx context.Context, orderID string) (*entity.Order, error)
	place func(ctx context.Context, input gateway.PlaceOrderInput) (*entity.Order, error)
}

func (s *orderGatewayStub) List(ctx context.Context, page, limit int) ([]entity.Order, *entity.Pagination, error) {
	return s.list(ctx, page, limit)
}

func (s *orderGatewayStub) Get(ctx context.Context, orderID string) (*entity.Order, error) {
	return s.get(ctx, orderID)
}

func (s *orderGatewayStub) Place(ctx context.Context, input gateway.PlaceOrderInput) (*entity.Order, error) {
	return s.place(ctx, input)
}

type inspectorStub struct {
	expired func(token string) bool
}

func (s *inspectorStub) Expired(token string) bool {
	if s.expired == nil {
		return false
	}

	return s.expired(token)
}
