// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
// All entities mirror the backend's JSON shapes; the client never
// enforces invariants beyond what it received in a response.
package entity

import "time"

// UserProfile is the authenticated customer as returned by the backend.
// Every profile, image and address operation returns the full updated
// profile (or address list), which replaces the local copy wholesale.
type UserProfile struct {
	ID            string    `json:"_id"`           // Backend-assigned identifier, opaque to the client.
	Name          string    `json:"name"`          // Display name.
	Email         string    `json:"email"`         // Login identifier.
	Phone         string    `json:"phone"`         // Contact phone number.
	Role          Role      `json:"role"`          // "customer" or "admin".
	EmailVerified bool      `json:"emailVerified"` // Set by the email verification flow.
	ProfileImage  string    `json:"profileImage"`  // Optional image URL.
	Addresses     []Address `json:"addresses"`     // Ordered list; at most one default.
	CreatedAt     time.Time `json:"createdAt"`
}

// IsAdmin reports whether the profile carries the admin role.
func (u *UserProfile) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}

// DefaultAddress returns the address marked as default, if any.
func (u *UserProfile) DefaultAddress() (Address, bool) {
	if u == nil {
		return Address{}, false
	}
	for _, addr := range u.Addresses {
		if addr.IsDefault {
			return addr, true
		}
	}

	return Address{}, false
}
