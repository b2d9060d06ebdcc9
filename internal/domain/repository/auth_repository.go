package repository

import (
	"context"
	"errors"

	"github.com/DiegoG0477/koru-api/internal/domain/entity"
)

// ErrCredentialNotFound is returned when no account exists for an email.
var ErrCredentialNotFound = errors.New("credential not found")

// ErrEmailTaken is returned when registration collides with an existing email.
var ErrEmailTaken = errors.New("email already registered")

// AuthRepository owns the authentication side of the users table. The
// password hash is read and written only through this interface.
type AuthRepository interface {
	// FindCredentialByEmail resolves the stored hash for a login attempt.
	FindCredentialByEmail(ctx context.Context, email string) (*entity.Credential, error)

	// CreateUser inserts the full user row including the password hash and
	// assigns the generated ID to the entity.
	CreateUser(ctx context.Context, user *entity.User, passwordHash string) error
}
