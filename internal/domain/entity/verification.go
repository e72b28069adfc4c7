package entity

// VerificationStep is the position inside the email-verification flow.
type VerificationStep string

const (
	// StepSend is the initial step: the user has not requested a code yet.
	StepSend VerificationStep = "send"
	// StepVerify means a code was sent and the user is entering it.
	StepVerify VerificationStep = "verify"
	// StepSuccess is a defined terminal step. The current flow closes
	// directly after a successful verify instead of transitioning here,
	// matching the shipped behavior.
	StepSuccess VerificationStep = "success"
)

// Valid reports whether s is one of the defined steps.
func (s VerificationStep) Valid() bool {
	switch s {
	case StepSend, StepVerify, StepSuccess:
		return true
	default:
		return false
	}
}
