package models

// Identity is the resolved caller of a request. It is one of Anonymous,
// Guest or Authenticated.
type Identity interface {
	identity()
}

// Anonymous is a caller without a valid session.
type Anonymous struct{}

// Guest is a caller that entered without an account.
type Guest struct{}

// Authenticated is a caller logged in with a registered account.
type Authenticated struct {
	UserID   int64
	IsParent bool
}

func (Anonymous) identity() {}
func (Guest) identity() {}
func (Authenticated) identity() {}

// GuestUserEmail is the email reported for guest sessions.
const GuestUserEmail = "guest"

// CanManageChild reports whether id may create or update child profiles.
// Any authenticated account qualifies, parent or not.
func CanManageChild(id Identity) bool {
	_, ok := id.(Authenticated)
	return ok
}

// CanViewSettings reports whether id may open parent-only views.
func CanViewSettings(id Identity) bool {
	a, ok := id.(Authenticated)
	return ok && a.IsParent
}
