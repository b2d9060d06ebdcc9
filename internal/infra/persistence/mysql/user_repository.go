package mysql

import (
	"context"

	"github.com/DiegoG0477/koru-api/internal/domain/entity"
	domainerrors "github.com/DiegoG0477/koru-api/internal/domain/errors"
	"github.com/DiegoG0477/koru-api/internal/domain/repository"
	"github.com/DiegoG0477/koru-api/internal/errors"
	"github.com/DiegoG0477/koru-api/internal/infra/persistence/model"

	"gorm.io/gorm"
)

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a user repository bound to the given GORM handle.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) FindByID(ctx context.Context, id int64) (*entity.User, error) {
	var m model.UserModel
	err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to query user by id")
	}

	return userToDomain(&m), nil
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var m model.UserModel
	err := r.db.WithContext(ctx).First(&m, "email = ?", email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to query user by email")
	}

	return userToDomain(&m), nil
}

func (r *userRepository) UpdateProfile(ctx context.Context, id int64, changes *repository.UserProfileChanges) (*entity.User, error) {
	var current model.UserModel
	err := r.db.WithContext(ctx).First(&current, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to load user for update")
	}

	sets := profileChangesToMap(changes)
	if len(sets) == 0 {
		return userToDomain(&current), nil
	}

	res := r.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ?", id).
		Updates(sets)
	if res.Error != nil {
		return nil, domainerrors.NewDatabaseExecuteError(res.Error, "failed to update user profile")
	}

	// MySQL reports changed rows rather than matched rows, so resubmitting the
	// current values yields zero affected. Existence was established above, so
	// zero affected here is a no-op, not a missing user.
	return r.FindByID(ctx, id)
}

func userToDomain(m *model.UserModel) *entity.User {
	return &entity.User{
		ID:              m.ID,
		Email:           m.Email,
		Name:            m.Name,
		LastName:        m.LastName,
		BirthDate:       m.BirthDate,
		CountryID:       m.CountryID,
		StateID:         m.StateID,
		MunicipalityID:  m.MunicipalityID,
		ProfileImageURL: m.ProfileImageURL,
		Biography:       m.Biography,
		LinkedinProfile: m.LinkedinProfile,
		InstagramHandle: m.InstagramHandle,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

func profileChangesToMap(changes *repository.UserProfileChanges) map[string]any {
	sets := make(map[string]any)
	if changes == nil {
		return sets
	}

	if changes.Name != nil {
		sets["name"] = *changes.Name
	}
	if changes.LastName != nil {
		sets["last_name"] = *changes.LastName
	}
	if changes.Biography != nil {
		sets["biography"] = *changes.Biography
	}
	if changes.LinkedinProfile != nil {
		sets["linkedin_profile"] = *changes.LinkedinProfile
	}
	if changes.InstagramHandle != nil {
		sets["instagram_handle"] = *changes.InstagramHandle
	}
	if changes.ProfileImageURL != nil {
		sets["profile_image_url"] = *changes.ProfileImageURL
	}

	return sets
}
