// Package directory defines the user source consumed by the admin screens.
//
// The dashboard does not own user records; it renders and mutates them
// through this seam so the hosting deployment can plug in its own backend.
package directory

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound reports that no user matches the requested identifier.
var ErrNotFound = errors.New("directory: user not found")

// User roles understood by the admin screens.
const (
	RoleAdmin  = "admin"
	RoleMember = "member"
	RoleViewer = "viewer"
)

// User is one managed user record.
type User struct {
	ID          string
	Email       string
	DisplayName string
	Role        string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ListQuery narrows and orders a user listing.
//
// OrderBy is a single-field AIP-132 clause (for example "created_at desc").
// An empty OrderBy leaves the backend's default order in place.
type ListQuery struct {
	OrderBy string
}

// Update carries the mutable fields of a user record. Nil fields are left
// unchanged.
type Update struct {
	Email       *string
	DisplayName *string
	Role        *string
}

// Directory supplies and mutates user records for the admin screens.
type Directory interface {
	// ListUsers returns all users in the order requested by query.
	ListUsers(ctx context.Context, query ListQuery) ([]User, error)
	// GetUser returns one user or ErrNotFound.
	GetUser(ctx context.Context, userID string) (User, error)
	// CreateUser stores a new user and returns it with server-assigned fields.
	CreateUser(ctx context.Context, user User) (User, error)
	// UpdateUser applies update to the user and returns the new record.
	UpdateUser(ctx context.Context, userID string, update Update) (User, error)
	// DeleteUser removes the user.
	DeleteUser(ctx context.Context, userID string) error
	// ResetPassword invalidates the user's credentials and returns a
	// one-time reset secret to hand to the user out of band.
	ResetPassword(ctx context.Context, userID string) (string, error)
}

// ValidRole reports whether role is one the admin screens understand.
func ValidRole(role string) bool {
	switch role {
	case RoleAdmin, RoleMember, RoleViewer:
		return true
	default:
		return false
	}
}
