package impl

import (
	"context"
	"log/slog"

	deliverycontext "github.com/DiegoG0477/koru-api/internal/delivery/context"
	"github.com/DiegoG0477/koru-api/internal/domain/entity"
	domainerrors "github.com/DiegoG0477/koru-api/internal/domain/errors"
	"github.com/DiegoG0477/koru-api/internal/domain/repository"
	"github.com/DiegoG0477/koru-api/internal/domain/service"
	"github.com/DiegoG0477/koru-api/internal/usecase"

	"github.com/pkg/errors"
)

// profileImageFolder is the storage prefix for profile images.
const profileImageFolder = "profiles"

// userService implements the UserUsecase interface.
type userService struct {
	txManager repository.TransactionManager
	users     repository.UserRepository
	storage   service.StorageService
	logger    *slog.Logger
}

// NewUserService is the constructor for userService.
func NewUserService(
	txManager repository.TransactionManager,
	users repository.UserRepository,
	storage service.StorageService,
	logger *slog.Logger,
) usecase.UserUsecase {
	return &userService{
		txManager: txManager,
		users:     users,
		storage:   storage,
		logger:    logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetMe returns the authenticated user's profile.
func (srv *userService) GetMe(ctx context.Context, userID int64) (*entity.User, error) {
	user, err := srv.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUserNotFound, "user not found")
		}

		return nil, errors.Wrap(err, "failed to load user")
	}

	return user, nil
}

// UpdateMe applies a partial profile update. An empty change set performs no
// write and simply returns the current profile.
func (srv *userService) UpdateMe(ctx context.Context, userID int64, input *usecase.UpdateProfileInput) (*entity.User, error) {
	srv.log(ctx).Info("Updating profile", slog.Int64("userID", userID))

	if input.IsEmpty() {
		return srv.GetMe(ctx, userID)
	}

	changes := &repository.UserProfileChanges{
		Name:            input.Name,
		LastName:        input.LastName,
		Biography:       input.Biography,
		LinkedinProfile: input.LinkedinProfile,
		InstagramHandle: input.InstagramHandle,
	}

	if input.Image != nil {
		url, err := srv.storage.UploadImage(ctx, profileImageFolder, input.Image)
		if err != nil {
			return nil, errors.Wrap(domainerrors.ErrStorageFailed, err.Error())
		}
		changes.ProfileImageURL = &url
	}

	var updated *entity.User

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()

		result, err := userRepo.UpdateProfile(ctx, userID, changes)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrUserNotFound, "user not found")
			}

			return errors.Wrap(err, "failed to update profile")
		}
		updated = result

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to update profile")
	}

	return updated, nil
}
