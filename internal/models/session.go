package models

import "time"

// Session kinds
const (
	SessionGuest = "guest"
	SessionUser  = "user"
)

// Session is the server-side record correlated with a client cookie
type Session struct {
	ID        string    `json:"id"`
	Kind      string    `json:"kind"`
	UserID    int64     `json:"userId,omitempty"`
	IsParent  bool      `json:"isParent,omitempty"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// Expired reports whether the session is no longer valid at now.
func (s *Session) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}

// Identity returns the identity the session grants.
func (s *Session) Identity() Identity {
	switch s.Kind {
	case SessionGuest:
		return Guest{}
	case SessionUser:
		return Authenticated{UserID: s.UserID, IsParent: s.IsParent}
	}
	return Anonymous{}
}
