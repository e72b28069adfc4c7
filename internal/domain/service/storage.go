// Package service defines the cross-cutting service interfaces the
// stores depend on, implemented by the infra layer.
package service

// Storage keys persisted by the client. The session token and the three
// email-verification keys are the only durable client state.
const (
	StorageKeyToken                 = "token"
	StorageKeyVerificationOTP       = "emailVerificationOtp"
	StorageKeyVerificationStep      = "emailVerificationStep"
	StorageKeyVerificationModalOpen = "emailVerificationModalOpen"
)

// Storage is the durable key-value store behind the client, the analogue
// of browser local storage. Implementations are not required to be safe
// for concurrent use by multiple processes; last write wins.
type Storage interface {
	// Load returns the stored value for key and whether it was present.
	Load(key string) (string, bool, error)
	Save(key, value string) error
	Remove(key string) error
}
