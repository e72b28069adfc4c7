// Package usecase defines the store contracts the UI layer depends on.
// A store owns one state subtree and the operations that mutate it; no
// two stores write the same field. Every operation follows a three-phase
// contract: pending sets Loading and clears the previous error,
// fulfilled replaces the subtree wholesale and may set a success
// message, rejected records the failure reason and leaves the subtree
// untouched.
package usecase

// Status is the per-store operation status surfaced to the UI. After an
// operation settles exactly one of the three shapes holds: loading,
// terminal error, or terminal success.
type Status struct {
	Loading bool
	Error   string
	Success string
}

// Idle reports whether no operation is in flight and no outcome is pending.
func (s Status) Idle() bool {
	return !s.Loading && s.Error == "" && s.Success == ""
}
