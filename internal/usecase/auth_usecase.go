// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"github.com/DiegoG0477/koru-api/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new account.
// BirthDate is the wire format "2006-01-02" and is parsed by the use case.
type RegisterInput struct {
	Email          string
	Password       string
	Name           string
	LastName       string
	BirthDate      string
	CountryID      int64
	StateID        int64
	MunicipalityID string
}

// LoginInput defines the data required to log in.
type LoginInput struct {
	Email    string
	Password string
}

// AuthUsecase defines the interface for authentication operations.
// Both operations return the same token payload so clients handle a single shape.
type AuthUsecase interface {
	Register(ctx context.Context, input *RegisterInput) (*entity.AuthResult, error)
	Login(ctx context.Context, input *LoginInput) (*entity.AuthResult, error)
}
