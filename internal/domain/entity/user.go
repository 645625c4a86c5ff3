package entity

import "time"

// User is an account of the shop. Users are created by registration or by the
// bootstrap seed and are never updated or deleted through the API.
type User struct {
	ID           uint      // Auto-assigned identifier, also the token subject.
	Username     string    // Unique display name.
	Email        string    // Unique login identifier.
	PasswordHash string    // bcrypt hash; the plaintext is never stored.
	Mobile       string    // Contact phone number.
	Address      string    // Delivery address.
	Role         Role      // Authorization role, "user" unless seeded as admin.
	CreatedAt    time.Time // Timestamp of registration.
}

// IsAdmin reports whether the user holds the admin role.
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}
