package domain

import (
	"context"
	"time"
)

// User is a registered principal mirrored from the authentication provider.
// swagger:model User
type User struct {
	ID             string    `json:"id"`
	ExternalAuthID string    `json:"external_auth_id"`
	Email          string    `json:"email"`
	Username       string    `json:"username"`
	FirstName      string    `json:"first_name"`
	LastName       string    `json:"last_name"`
	PhotoURL       string    `json:"photo_url"`
	CreatedAt      time.Time `json:"created_at"`
}

// NewUser returns a new User with the given fields. ID is set by the service on create.
func NewUser(externalAuthID, email, username, firstName, lastName, photoURL string, createdAt time.Time) *User {
	return &User{
		ExternalAuthID: externalAuthID,
		Email:          email,
		Username:       username,
		FirstName:      firstName,
		LastName:       lastName,
		PhotoURL:       photoURL,
		CreatedAt:      createdAt,
	}
}

// TokenVerifier verifies a token and returns the authenticated user ID.
type TokenVerifier interface {
	Verify(token string) (userID string, err error)
}

// UserRepository defines the interface for user storage.
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id string) (*User, error)
	GetByExternalAuthID(ctx context.Context, externalAuthID string) (*User, error)
	Exists(ctx context.Context, id string) (bool, error)
}

// UserService defines user lookup and the sync hook used by the auth provider.
type UserService interface {
	// SyncUser creates the user for an auth-provider principal, or returns the
	// existing one when it was already synced.
	SyncUser(ctx context.Context, user *User) (*User, bool, error)
	GetUser(ctx context.Context, id string) (*User, error)
}
