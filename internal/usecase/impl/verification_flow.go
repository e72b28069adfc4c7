package impl

import (
	"context"
	"log/slog"
	"strconv"
	"sync"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
	"storefront/internal/errors"
	"storefront/internal/usecase"
	"storefront/internal/util"

	"go.uber.org/fx"
)

const otpMaxLen = 6

// VerificationFlowParams defines the dependencies of the verification
// flow.
type VerificationFlowParams struct {
	fx.In

	Auth    usecase.AuthUsecase
	Storage service.Storage
	Logger  *slog.Logger
}

// verificationFlow drives the email-verification modal. Every state
// transition is mirrored into durable storage first, so a code that
// arrives after a restart can still be entered: a fresh process resumes
// at the persisted step with the persisted partial code.
type verificationFlow struct {
	notifier

	auth    usecase.AuthUsecase
	storage service.Storage
	logger  *slog.Logger

	mu    sync.RWMutex
	state usecase.VerificationFlowState
}

// NewVerificationFlow creates the verification flow.
func NewVerificationFlow(params VerificationFlowParams) usecase.VerificationUsecase {
	return &verificationFlow{
		auth:    params.Auth,
		storage: params.Storage,
		logger:  params.Logger,
	}
}

func (f *verificationFlow) Open(reset bool) error {
	if reset {
		if err := f.clearPersisted(); err != nil {
			return err
		}
		f.setState(usecase.VerificationFlowState{Open: true, Step: entity.StepSend})

		return f.persistOpen()
	}

	step, otp, err := f.restore()
	if err != nil {
		return err
	}

	f.setState(usecase.VerificationFlowState{Open: true, Step: step, OTP: otp})

	return f.persistOpen()
}

func (f *verificationFlow) SetOTP(raw string) error {
	otp := util.NormalizeDigits(raw, otpMaxLen)

	if err := f.storage.Save(service.StorageKeyVerificationOTP, otp); err != nil {
		return errors.Wrap(err, "persist verification code")
	}

	f.mu.Lock()
	f.state.OTP = otp
	f.mu.Unlock()
	f.notify()

	return nil
}

func (f *verificationFlow) Send(ctx context.Context) error {
	f.clearError()

	if err := f.auth.SendVerificationEmail(ctx); err != nil {
		f.setError(domainerrors.UserMessage(err))

		return err
	}

	if err := f.storage.Save(service.StorageKeyVerificationStep, string(entity.StepVerify)); err != nil {
		f.logger.Error("persist verification step", slog.Any("error", err))
	}

	f.mu.Lock()
	f.state.Step = entity.StepVerify
	f.mu.Unlock()
	f.notify()

	return nil
}

func (f *verificationFlow) Verify(ctx context.Context) error {
	f.mu.RLock()
	otp := f.state.OTP
	f.mu.RUnlock()

	if otp == "" {
		err := errors.WithStack(domainerrors.ErrVerificationCodeMissing)
		f.setError(domainerrors.UserMessage(err))

		return err
	}

	f.clearError()

	if err := f.auth.VerifyEmail(ctx, otp); err != nil {
		// The entered code stays so the user can correct a typo.
		f.setError(domainerrors.UserMessage(err))

		return err
	}

	if err := f.clearPersisted(); err != nil {
		f.logger.Error("clear verification state", slog.Any("error", err))
	}
	f.setState(usecase.VerificationFlowState{Open: false, Step: entity.StepSend})

	return nil
}

func (f *verificationFlow) Close() error {
	err := f.clearPersisted()

	f.mu.Lock()
	f.state.Open = false
	f.state.Error = ""
	f.mu.Unlock()
	f.notify()

	return err
}

func (f *verificationFlow) State() usecase.VerificationFlowState {
	f.mu.RLock()
	defer f.mu.RUnlock()

	return f.state
}

// restore loads the persisted step and code. Anything missing or
// unrecognized falls back to a fresh flow at the send step.
func (f *verificationFlow) restore() (entity.VerificationStep, string, error) {
	stored, found, err := f.storage.Load(service.StorageKeyVerificationStep)
	if err != nil {
		return "", "", errors.Wrap(err, "load verification step")
	}

	step := entity.StepSend
	if found && entity.VerificationStep(stored).Valid() {
		step = entity.VerificationStep(stored)
	}

	otp, _, err := f.storage.Load(service.StorageKeyVerificationOTP)
	if err != nil {
		return "", "", errors.Wrap(err, "load verification code")
	}

	return step, otp, nil
}

func (f *verificationFlow) persistOpen() error {
	err := f.storage.Save(service.StorageKeyVerificationModalOpen, strconv.FormatBool(true))

	return errors.Wrap(err, "persist verification flow")
}

func (f *verificationFlow) clearPersisted() error {
	var errs []error
	for _, key := range []string{
		service.StorageKeyVerificationOTP,
		service.StorageKeyVerificationStep,
		service.StorageKeyVerificationModalOpen,
	} {
		if err := f.storage.Remove(key); err != nil {
			errs = append(errs, errors.Wrapf(err, "remove %s", key))
		}
	}

	return errors.Join(errs...)
}

func (f *verificationFlow) setState(state usecase.VerificationFlowState) {
	f.mu.Lock()
	f.state = state
	f.mu.Unlock()
	f.notify()
}

func (f *verificationFlow) setError(message string) {
	f.mu.Lock()
	f.state.Error = message
	f.mu.Unlock()
	f.notify()
}

func (f *verificationFlow) clearError() {
	f.mu.Lock()
	f.state.Error = ""
	f.mu.Unlock()
	f.notify()
}
