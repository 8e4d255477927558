package domain

import "fmt"

// Role is the caller's role as resolved from the session token.
type Role string

const (
	RoleGuest Role = "guest"
	RoleAdmin Role = "admin"
)

// ParseRole converts a raw claim value into a Role.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleGuest, RoleAdmin:
		return Role(s), nil
	default:
		return "", fmt.Errorf("unknown role %q", s)
	}
}

// Identity is the authenticated caller. It is resolved once by the auth
// middleware and passed explicitly into every service call; business
// logic never reads session state ambiently.
type Identity struct {
	UserID int64
	Role   Role
}

// IsAdmin reports whether the caller holds the administrator role.
func (i Identity) IsAdmin() bool {
	return i.Role == RoleAdmin
}

// Owns reports whether the caller owns the given booking.
func (i Identity) Owns(b *Booking) bool {
	return b.UserID == i.UserID
}
