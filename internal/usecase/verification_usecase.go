package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// VerificationFlowState is the flow's current position and entered code.
type VerificationFlowState struct {
	Open bool
	Step entity.VerificationStep
	OTP  string
	// Error is the last failure message for the current step, cleared on
	// the next attempt.
	Error string
}

// VerificationUsecase drives the email-verification modal. Its state is
// mirrored into durable storage so an emailed code that arrives after a
// reload can still be entered: a fresh instance resumes exactly where
// the previous one stopped.
type VerificationUsecase interface {
	// Open starts or resumes the flow. With reset set, persisted state is
	// cleared and the flow starts at the send step regardless of what was
	// stored.
	Open(reset bool) error
	// SetOTP records the code as typed, normalized to at most six digits.
	SetOTP(raw string) error
	// Send requests a one-time code; on acceptance the flow advances to
	// the verify step.
	Send(ctx context.Context) error
	// Verify submits the entered code; on acceptance all persisted flow
	// state is cleared and the flow closes.
	Verify(ctx context.Context) error
	// Close dismisses the flow and clears its persisted state.
	Close() error

	State() VerificationFlowState
	Subscribe(fn func()) (cancel func())
}
