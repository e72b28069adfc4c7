package entity

// Session is the client-side view of the authenticated session. It is
// created on login, register, Google sign-in or email-verification success
// and destroyed on logout or a rejected current-user fetch. The token is
// the only durable artifact; the profile is always re-fetched.
type Session struct {
	User            *UserProfile
	Token           string
	IsAuthenticated bool
}
