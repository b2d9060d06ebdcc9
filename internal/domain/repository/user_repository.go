// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"github.com/DiegoG0477/koru-api/internal/domain/entity"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserProfileChanges carries a partial profile update; nil fields are untouched.
// Location fields are immutable after registration and deliberately absent.
type UserProfileChanges struct {
	Name            *string
	LastName        *string
	Biography       *string
	LinkedinProfile *string
	InstagramHandle *string
	ProfileImageURL *string
}

// IsEmpty reports whether the update carries no work.
func (c *UserProfileChanges) IsEmpty() bool {
	if c == nil {
		return true
	}

	return c.Name == nil &&
		c.LastName == nil &&
		c.Biography == nil &&
		c.LinkedinProfile == nil &&
		c.InstagramHandle == nil &&
		c.ProfileImageURL == nil
}

// UserRepository defines the standard operations for user persistence.
// The application layer will depend on this interface, not the concrete implementation.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id int64) (*entity.User, error)

	// FindByEmail retrieves a single user by their email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// UpdateProfile applies a partial profile update and returns the fresh row.
	UpdateProfile(ctx context.Context, id int64, changes *UserProfileChanges) (*entity.User, error)
}
