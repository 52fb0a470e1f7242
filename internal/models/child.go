package models

import "time"

// Default values applied to a new child profile when the parent omits them.
const (
	DefaultAvatar    = "cat"
	DefaultTimeLimit = 30
)

// Supported avatars
const (
	AvatarCat   = "cat"
	AvatarDog   = "dog"
	AvatarHeart = "heart"
)

// Child represents the profile of a kid whose activity is tracked
type Child struct {
	ID        int64     `json:"id" db:"id"`                // Generated identifier
	Name      string    `json:"name" db:"name"`            // Display name
	Avatar    string    `json:"avatar" db:"avatar"`        // One of the supported avatars
	ParentID  int64     `json:"parentId" db:"parent_id"`   // Owning user, not validated against users
	TimeLimit int       `json:"timeLimit" db:"time_limit"` // Daily limit in minutes
	CreatedAt time.Time `json:"createdAt" db:"created_at"` // Creation timestamp
}

// ChildInput holds the fields a parent supplies when creating a child.
// Empty Avatar and zero TimeLimit are replaced by the defaults.
type ChildInput struct {
	Name      string
	Avatar    string
	TimeLimit int
}

// ChildUpdate is a partial update; nil fields are left unchanged.
type ChildUpdate struct {
	Name      *string
	Avatar    *string
	TimeLimit *int
}

// IsValidAvatar reports whether avatar is one of the supported avatars.
func IsValidAvatar(avatar string) bool {
	switch avatar {
	case AvatarCat, AvatarDog, AvatarHeart:
		return true
	}
	return false
}

// GuestChild returns the synthetic profile shown to guest sessions.
func GuestChild() Child {
	return Child{
		ID:        0,
		Name:      "Visitante",
		Avatar:    AvatarHeart,
		TimeLimit: DefaultTimeLimit,
	}
}
