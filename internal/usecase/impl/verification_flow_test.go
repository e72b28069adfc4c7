package impl_test

import (
	"context"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
	"storefront/internal/infra/persistence/memory"
	"storefront/internal/usecase"
	"storefront/internal/usecase/impl"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// authUsecaseStub overrides only the two calls the flow makes; anything
// else panics through the nil embedded interface.
type authUsecaseStub struct {
	usecase.AuthUsecase

	send   func(ctx context.Context) error
	verify func(ctx context.Context, otp string) error
}

func (s *authUsecaseStub) SendVerificationEmail(ctx context.Context) error {
	return s.send(ctx)
}

func (s *authUsecaseStub) VerifyEmail(ctx context.Context, otp string) error {
	return s.verify(ctx, otp)
}

func newFlow(auth usecase.AuthUsecase, storage service.Storage) usecase.VerificationUsecase {
	return impl.NewVerificationFlow(impl.VerificationFlowParams{
		Auth:    auth,
		Storage: storage,
		Logger:  discardLogger(),
	})
}

func TestVerificationFlow_OpenFresh(t *testing.T) {
	t.Parallel()

	storage := memory.NewStore()
	flow := newFlow(&authUsecaseStub{}, storage)

	require.NoError(t, flow.Open(false))

	state := flow.State()
	assert.True(t, state.Open)
	assert.Equal(t, entity.StepSend, state.Step)
	assert.Empty(t, state.OTP)

	open, found, err := storage.Load(service.StorageKeyVerificationModalOpen)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "true", open)
}

func TestVerificationFlow_SendAdvancesAndPersists(t *testing.T) {
	t.Parallel()

	storage := memory.NewStore()
	flow := newFlow(&authUsecaseStub{
		send: func(context.Context) error { return nil },
	}, storage)

	require.NoError(t, flow.Open(false))
	require.NoError(t, flow.Send(context.Background()))

	assert.Equal(t, entity.StepVerify, flow.State().Step)

	step, _, err := storage.Load(service.StorageKeyVerificationStep)
	require.NoError(t, err)
	assert.Equal(t, string(entity.StepVerify), step)
}

func TestVerificationFlow_SetOTPNormalizes(t *testing.T) {
	t.Parallel()

	storage := memory.NewStore()
	flow := newFlow(&authUsecaseStub{}, storage)

	require.NoError(t, flow.SetOTP(" 12a3-4567 89 "))

	// Non-digits stripped, truncated to six.
	assert.Equal(t, "123456", flow.State().OTP)

	otp, _, err := storage.Load(service.StorageKeyVerificationOTP)
	require.NoError(t, err)
	assert.Equal(t, "123456", otp)
}

// A flow interrupted after the code was sent must resume at the verify
// step with the partially entered code intact.
func TestVerificationFlow_ResumeAfterRestart(t *testing.T) {
	t.Parallel()

	storage := memory.NewStore()

	first := newFlow(&authUsecaseStub{
		send: func(context.Context) error { return nil },
	}, storage)
	require.NoError(t, first.Open(false))
	require.NoError(t, first.Send(context.Background()))
	require.NoError(t, first.SetOTP("123"))

	// A fresh instance over the same storage stands in for a restart.
	second := newFlow(&authUsecaseStub{}, storage)
	require.NoError(t, second.Open(false))

	state := second.State()
	assert.True(t, state.Open)
	assert.Equal(t, entity.StepVerify, state.Step)
	assert.Equal(t, "123", state.OTP)
}

func TestVerificationFlow_OpenResetClearsPersistedState(t *testing.T) {
	t.Parallel()

	storage := memory.NewStore()
	require.NoError(t, storage.Save(service.StorageKeyVerificationStep, string(entity.StepVerify)))
	require.NoError(t, storage.Save(service.StorageKeyVerificationOTP, "123456"))

	flow := newFlow(&authUsecaseStub{}, storage)
	require.NoError(t, flow.Open(true))

	state := flow.State()
	assert.Equal(t, entity.StepSend, state.Step)
	assert.Empty(t, state.OTP)

	_, found, err := storage.Load(service.StorageKeyVerificationOTP)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestVerificationFlow_Verify(t *testing.T) {
	t.Parallel()

	t.Run("success clears every persisted key and closes", func(t *testing.T) {
		t.Parallel()

		storage := memory.NewStore()
		flow := newFlow(&authUsecaseStub{
			send:   func(context.Context) error { return nil },
			verify: func(_ context.Context, otp string) error { assert.Equal(t, "654321", otp); return nil },
		}, storage)

		require.NoError(t, flow.Open(false))
		require.NoError(t, flow.Send(context.Background()))
		require.NoError(t, flow.SetOTP("654321"))
		require.NoError(t, flow.Verify(context.Background()))

		assert.False(t, flow.State().Open)

		for _, key := range []string{
			service.StorageKeyVerificationOTP,
			service.StorageKeyVerificationStep,
			service.StorageKeyVerificationModalOpen,
		} {
			_, found, err := storage.Load(key)
			require.NoError(t, err)
			assert.False(t, found, key)
		}
	})

	t.Run("empty code fails without a backend call", func(t *testing.T) {
		t.Parallel()

		flow := newFlow(&authUsecaseStub{}, memory.NewStore())
		require.NoError(t, flow.Open(false))

		err := flow.Verify(context.Background())
		require.ErrorIs(t, err, domainerrors.ErrVerificationCodeMissing)
		assert.NotEmpty(t, flow.State().Error)
	})

	t.Run("wrong code keeps the flow open with the code intact", func(t *testing.T) {
		t.Parallel()

		storage := memory.NewStore()
		flow := newFlow(&authUsecaseStub{
			send: func(context.Context) error { return nil },
			verify: func(context.Context, string) error {
				return domainerrors.NewAPIError(400, "Invalid verification code", "")
			},
		}, storage)

		require.NoError(t, flow.Open(false))
		require.NoError(t, flow.Send(context.Background()))
		require.NoError(t, flow.SetOTP("111111"))

		err := flow.Verify(context.Background())
		require.Error(t, err)

		state := flow.State()
		assert.True(t, state.Open)
		assert.Equal(t, "111111", state.OTP)
		assert.Equal(t, "Invalid verification code", state.Error)

		otp, _, loadErr := storage.Load(service.StorageKeyVerificationOTP)
		require.NoError(t, loadErr)
		assert.Equal(t, "111111", otp)
	})
}

func TestVerificationFlow_SendFailureStaysOnSendStep(t *testing.T) {
	t.Parallel()

	flow := newFlow(&authUsecaseStub{
		send: func(context.Context) error {
			return domainerrors.NewAPIError(429, "Too many requests", "")
		},
	}, memory.NewStore())

	require.NoError(t, flow.Open(false))
	require.Error(t, flow.Send(context.Background()))

	state := flow.State()
	assert.Equal(t, entity.StepSend, state.Step)
	assert.Equal(t, "Too many requests", state.Error)
}

func TestVerificationFlow_CloseClearsPersistedState(t *testing.T) {
	t.Parallel()

	storage := memory.NewStore()
	flow := newFlow(&authUsecaseStub{
		send: func(context.Context) error { return nil },
	}, storage)

	require.NoError(t, flow.Open(false))
	require.NoError(t, flow.Send(context.Background()))
	require.NoError(t, flow.Close())

	assert.False(t, flow.State().Open)

	_, found, err := storage.Load(service.StorageKeyVerificationStep)
	require.NoError(t, err)
	assert.False(t, found)
}
