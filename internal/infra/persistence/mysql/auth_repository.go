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

type authRepository struct {
	db *gorm.DB
}

// NewAuthRepository creates an auth repository bound to the given GORM handle.
func NewAuthRepository(db *gorm.DB) repository.AuthRepository {
	return &authRepository{db: db}
}

func (r *authRepository) FindCredentialByEmail(ctx context.Context, email string) (*entity.Credential, error) {
	var m model.UserModel
	err := r.db.WithContext(ctx).
		Select("id", "email", "password").
		First(&m, "email = ?", email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCredentialNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to query credential")
	}

	return &entity.Credential{
		UserID:       m.ID,
		Email:        m.Email,
		PasswordHash: m.Password,
	}, nil
}

func (r *authRepository) CreateUser(ctx context.Context, user *entity.User, passwordHash string) error {
	m := &model.UserModel{
		Email:           user.Email,
		Password:        passwordHash,
		Name:            user.Name,
		LastName:        user.LastName,
		BirthDate:       user.BirthDate,
		CountryID:       user.CountryID,
		StateID:         user.StateID,
		MunicipalityID:  user.MunicipalityID,
		ProfileImageURL: user.ProfileImageURL,
		Biography:       user.Biography,
		LinkedinProfile: user.LinkedinProfile,
		InstagramHandle: user.InstagramHandle,
	}

	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrEmailTaken
		}
		if isForeignKeyConstraintViolation(err) {
			return errors.Wrap(
				domainerrors.ErrValidationFailed.WithDetails("referenced country, state, or municipality does not exist"),
				"invalid location reference",
			)
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	user.ID = m.ID
	user.CreatedAt = m.CreatedAt
	user.UpdatedAt = m.UpdatedAt

	return nil
}
