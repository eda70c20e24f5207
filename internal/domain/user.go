package domain

import "context"

// AnonymousUserID is the sentinel owner recorded on products and sales
// created while no user is signed in.
const AnonymousUserID = "anonymous"

// User is the profile's current user. There is no credential store: the ID is
// derived deterministically from the email at sign-in.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// UserStore holds the single current-user record.
type UserStore interface {
	// Current returns the signed-in user, or ErrNotFound when signed out.
	Current(ctx context.Context) (*User, error)
	SetCurrent(ctx context.Context, user *User) error
	Clear(ctx context.Context) error
}
