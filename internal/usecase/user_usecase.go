package usecase

import (
	"context"

	"github.com/DiegoG0477/koru-api/internal/domain/entity"
	"github.com/DiegoG0477/koru-api/internal/domain/service"
)

// UpdateProfileInput carries a partial profile update; nil fields are untouched.
// Email, birth date and location are immutable after registration.
type UpdateProfileInput struct {
	Name            *string
	LastName        *string
	Biography       *string
	LinkedinProfile *string
	InstagramHandle *string
	Image           *service.ImageUpload
}

// IsEmpty reports whether the update carries no work at all.
func (i *UpdateProfileInput) IsEmpty() bool {
	if i == nil {
		return true
	}

	return i.Name == nil &&
		i.LastName == nil &&
		i.Biography == nil &&
		i.LinkedinProfile == nil &&
		i.InstagramHandle == nil &&
		i.Image == nil
}

// UserUsecase defines the interface for profile operations on the
// authenticated user.
type UserUsecase interface {
	GetMe(ctx context.Context, userID int64) (*entity.User, error)
	UpdateMe(ctx context.Context, userID int64, input *UpdateProfileInput) (*entity.User, error)
}
