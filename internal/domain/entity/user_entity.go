package entity

// User is the aggregate root for the auth domain.
// Passwords are stored verbatim; the persisted user document predates this
// service and hashing would break every existing login. Flagged, not fixed.
type User struct {
	Username string `json:"-"`
	Password string `json:"password"`
}
