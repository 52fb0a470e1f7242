package models

import "time"

// User represents an account record in the store
type User struct {
	ID           int64     `json:"id" db:"id"`                // Generated identifier
	Email        string    `json:"email" db:"email"`          // Unique email, matched case-sensitively
	PasswordHash string    `json:"-" db:"password_hash"`      // bcrypt hash, never serialized
	IsParent     bool      `json:"isParent" db:"is_parent"`   // Grants access to parent-only views
	CreatedAt    time.Time `json:"createdAt" db:"created_at"` // Creation timestamp
}

// CurrentUser is the public view of the caller returned by the auth endpoints
type CurrentUser struct {
	ID       int64  `json:"id"`
	Email    string `json:"email"`
	IsParent bool   `json:"isParent"`
	IsGuest  bool   `json:"isGuest"`
}

// NewCurrentUser builds the public view of a registered user.
func NewCurrentUser(u *User) *CurrentUser {
	return &CurrentUser{ID: u.ID, Email: u.Email, IsParent: u.IsParent}
}

// GuestUser returns the synthetic user reported for guest sessions.
func GuestUser() *CurrentUser {
	return &CurrentUser{ID: 0, Email: GuestUserEmail, IsGuest: true}
}
