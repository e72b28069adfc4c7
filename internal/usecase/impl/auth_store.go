package impl

import (
	"context"
	"io"
	"log/slog"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/gateway"
	"storefront/internal/domain/service"
	"storefront/internal/infra/validation"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// AuthStoreParams defines the dependencies of the auth store.
type AuthStoreParams struct {
	fx.In

	Auth      gateway.AuthGateway
	Profile   gateway.ProfileGateway
	Storage   service.Storage
	Inspector service.TokenInspector
	// Verifier is nil when no Google client ID is configured; the ID
	// token is then handed to the backend unchecked.
	Verifier  service.IDTokenVerifier `optional:"true"`
	Validator *validation.Validator
	Logger    *slog.Logger
}

type authStore struct {
	slice

	auth      gateway.AuthGateway
	profile   gateway.ProfileGateway
	storage   service.Storage
	inspector service.TokenInspector
	verifier  service.IDTokenVerifier
	validator *validation.Validator
	logger    *slog.Logger

	session entity.Session
}

// NewAuthStore creates the auth store.
func NewAuthStore(params AuthStoreParams) usecase.AuthUsecase {
	return &authStore{
		auth:      params.Auth,
		profile:   params.Profile,
		storage:   params.Storage,
		inspector: params.Inspector,
		verifier:  params.Verifier,
		validator: params.Validator,
		logger:    params.Logger,
	}
}

func (s *authStore) Login(ctx context.Context, input usecase.LoginInput) error {
	if err := s.validator.Struct(input); err != nil {
		return err
	}

	token := s.begin("login")

	result, err := s.auth.Login(ctx, input.Email, input.Password)
	if err != nil {
		s.logger.Warn("login rejected", slog.String("email", input.Email), slog.Any("error", err))
		s.reject("login", token, domainerrors.UserMessage(err))

		return err
	}

	s.fulfill("login", token, "Login successful", func() {
		s.establishSession(result)
		s.session = entity.Session{User: result.User, Token: result.Token, IsAuthenticated: true}
	})

	return nil
}

func (s *authStore) Register(ctx context.Context, input usecase.RegisterInput) error {
	if err := s.validator.Struct(input); err != nil {
		return err
	}

	token := s.begin("register")

	result, err := s.auth.Register(ctx, input.Name, input.Email, input.Password)
	if err != nil {
		s.reject("register", token, domainerrors.UserMessage(err))

		return err
	}

	s.fulfill("register", token, "Registration successful", func() {
		s.establishSession(result)
		s.session = entity.Session{User: result.User, Token: result.Token, IsAuthenticated: true}
	})

	return nil
}

func (s *authStore) LoginWithGoogle(ctx context.Context, idToken string) error {
	if s.verifier != nil {
		if _, err := s.verifier.VerifyIDToken(ctx, idToken); err != nil {
			s.logger.Warn("google token pre-check failed", slog.Any("error", err))

			return err
		}
	}

	token := s.begin("google")

	result, err := s.auth.GoogleLogin(ctx, idToken)
	if err != nil {
		s.reject("google", token, domainerrors.UserMessage(err))

		return err
	}

	s.fulfill("google", token, "Login successful", func() {
		s.establishSession(result)
		s.session = entity.Session{User: result.User, Token: result.Token, IsAuthenticated: true}
	})

	return nil
}

func (s *authStore) CurrentUser(ctx context.Context) error {
	stored, found, err := s.storage.Load(service.StorageKeyToken)
	if err != nil {
		return errors.Wrap(err, "load stored token")
	}
	if !found {
		s.resetSession()

		return errors.WithStack(domainerrors.ErrNotAuthenticated)
	}
	if s.inspector.Expired(stored) {
		// Guaranteed rejection, skip the round trip.
		s.invalidateSession()

		return errors.WithStack(domainerrors.ErrSessionExpired)
	}

	token := s.begin("me")

	user, err := s.auth.CurrentUser(ctx)
	if err != nil {
		s.logger.Info("stored session rejected", slog.Any("error", err))
		s.invalidateSession()
		s.reject("me", token, domainerrors.UserMessage(err))

		return err
	}

	s.fulfill("me", token, "", func() {
		s.session = entity.Session{User: user, Token: stored, IsAuthenticated: true}
	})

	return nil
}

func (s *authStore) Logout() error {
	err := s.storage.Remove(service.StorageKeyToken)

	s.mu.Lock()
	s.session = entity.Session{}
	if err != nil {
		s.status = usecase.Status{Error: "Failed to log out"}
	} else {
		s.status = usecase.Status{Success: "Logged out successfully"}
	}
	s.mu.Unlock()
	s.notify()

	return errors.Wrap(err, "remove stored token")
}

func (s *authStore) SendVerificationEmail(ctx context.Context) error {
	token := s.begin("sendVerification")

	if err := s.auth.SendVerificationEmail(ctx); err != nil {
		s.reject("sendVerification", token, domainerrors.UserMessage(err))

		return err
	}

	s.fulfill("sendVerification", token, "Verification email sent", nil)

	return nil
}

func (s *authStore) VerifyEmail(ctx context.Context, otp string) error {
	if otp == "" {
		return errors.WithStack(domainerrors.ErrVerificationCodeMissing)
	}

	token := s.begin("verifyEmail")

	result, err := s.auth.VerifyEmail(ctx, otp)
	if err != nil {
		s.reject("verifyEmail", token, domainerrors.UserMessage(err))

		return err
	}

	s.fulfill("verifyEmail", token, "Email verified successfully", func() {
		s.session.User = result.User
		if result.Token != "" {
			s.establishSession(result)
			s.session.Token = result.Token
		}
		s.session.IsAuthenticated = true
	})

	return nil
}

func (s *authStore) UpdateProfile(ctx context.Context, input usecase.UpdateProfileInput) error {
	if err := s.validator.Struct(input); err != nil {
		return err
	}

	token := s.begin("profile")

	user, err := s.profile.UpdateProfile(ctx, gateway.ProfileUpdate{Name: input.Name, Phone: input.Phone})
	if err != nil {
		s.reject("profile", token, domainerrors.UserMessage(err))

		return err
	}

	s.fulfill("profile", token, "Profile updated successfully", func() {
		s.session.User = user
	})

	return nil
}

func (s *authStore) UploadProfileImage(ctx context.Context, filename string, content io.Reader, size int64) error {
	token := s.begin("uploadImage")

	user, err := s.profile.UploadProfileImage(ctx, filename, content, size)
	if err != nil {
		s.logger.Warn("profile image upload failed",
			slog.String("filename", filename),
			slog.Int64("size", size),
			slog.Any("error", err))
		s.reject("uploadImage", token, domainerrors.UserMessage(err))

		return err
	}

	s.fulfill("uploadImage", token, "Profile image updated", func() {
		s.session.User = user
	})

	return nil
}

func (s *authStore) AddAddress(ctx context.Context, input usecase.AddressInput) error {
	return s.mutateAddresses(ctx, input, "Address added successfully", func(ctx context.Context, payload gateway.AddressInput) ([]entity.Address, error) {
		return s.profile.AddAddress(ctx, payload)
	})
}

func (s *authStore) UpdateAddress(ctx context.Context, addressID string, input usecase.AddressInput) error {
	return s.mutateAddresses(ctx, input, "Address updated successfully", func(ctx context.Context, payload gateway.AddressInput) ([]entity.Address, error) {
		return s.profile.UpdateAddress(ctx, addressID, payload)
	})
}

func (s *authStore) DeleteAddress(ctx context.Context, addressID string) error {
	token := s.begin("address")

	addresses, err := s.profile.DeleteAddress(ctx, addressID)
	if err != nil {
		s.reject("address", token, domainerrors.UserMessage(err))

		return err
	}

	s.fulfill("address", token, "Address deleted successfully", func() {
		s.replaceAddresses(addresses)
	})

	return nil
}

func (s *authStore) SetDefaultAddress(ctx context.Context, addressID string) error {
	token := s.begin("address")

	addresses, err := s.profile.SetDefaultAddress(ctx, addressID)
	if err != nil {
		s.reject("address", token, domainerrors.UserMessage(err))

		return err
	}

	s.fulfill("address", token, "Default address updated", func() {
		s.replaceAddresses(addresses)
	})

	return nil
}

func (s *authStore) Session() entity.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session := s.session
	if s.session.User != nil {
		user := *s.session.User
		user.Addresses = append([]entity.Address(nil), s.session.User.Addresses...)
		session.User = &user
	}

	return session
}

func (s *authStore) mutateAddresses(ctx context.Context, input usecase.AddressInput, success string,
	call func(context.Context, gateway.AddressInput) ([]entity.Address, error),
) error {
	if err := s.validator.Struct(input); err != nil {
		return err
	}

	token := s.begin("address")

	addresses, err := call(ctx, gateway.AddressInput{
		Address:   input.Address,
		City:      input.City,
		State:     input.State,
		Pincode:   input.Pincode,
		IsDefault: input.IsDefault,
	})
	if err != nil {
		s.reject("address", token, domainerrors.UserMessage(err))

		return err
	}

	s.fulfill("address", token, success, func() {
		s.replaceAddresses(addresses)
	})

	return nil
}

// replaceAddresses swaps the whole address list; callers hold s.mu.
func (s *authStore) replaceAddresses(addresses []entity.Address) {
	if s.session.User == nil {
		return
	}
	s.session.User.Addresses = addresses
}

// establishSession persists the fresh bearer token. It runs inside the
// fulfilled apply, so an overtaken response can no more clobber the
// durable token than the in-memory session. A storage failure is logged
// but does not fail the login; the session simply will not survive a
// restart.
func (s *authStore) establishSession(result *gateway.AuthResult) {
	if err := s.storage.Save(service.StorageKeyToken, result.Token); err != nil {
		s.logger.Error("persist session token", slog.Any("error", err))
	}
}

// invalidateSession erases the stored token and resets the session
// without touching the status; the caller settles the operation.
func (s *authStore) invalidateSession() {
	if err := s.storage.Remove(service.StorageKeyToken); err != nil {
		s.logger.Error("remove stored token", slog.Any("error", err))
	}
	s.resetSession()
}

func (s *authStore) resetSession() {
	s.mu.Lock()
	s.session = entity.Session{}
	s.mu.Unlock()
	s.notify()
}
