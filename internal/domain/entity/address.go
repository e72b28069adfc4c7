// Package entity contains the core business objects of the project.
package entity

// Address is a shipping address belonging to a user profile.
// The backend guarantees at most one address per user has IsDefault set;
// the client only reflects the list it was given.
type Address struct {
	ID        string `json:"_id"`       // Backend-assigned identifier.
	Address   string `json:"address"`   // Street address line.
	City      string `json:"city"`      // City or district.
	State     string `json:"state"`     // State or region.
	Pincode   string `json:"pincode"`   // Postal code, six digits.
	IsDefault bool   `json:"isDefault"` // Default shipping address marker.
}
