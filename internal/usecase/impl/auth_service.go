// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "github.com/DiegoG0477/koru-api/internal/delivery/context"
	"github.com/DiegoG0477/koru-api/internal/domain/entity"
	domainerrors "github.com/DiegoG0477/koru-api/internal/domain/errors"
	"github.com/DiegoG0477/koru-api/internal/domain/repository"
	"github.com/DiegoG0477/koru-api/internal/domain/service"
	"github.com/DiegoG0477/koru-api/internal/usecase"

	"github.com/pkg/errors"
)

const birthDateLayout = "2006-01-02"

// tokenTypeBearer is the only token type this API issues.
const tokenTypeBearer = "Bearer"

// authService implements the AuthUsecase interface.
type authService struct {
	txManager repository.TransactionManager
	hasher    service.PasswordHasher
	tokens    service.TokenService
	logger    *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(
	txManager repository.TransactionManager,
	hasher service.PasswordHasher,
	tokens service.TokenService,
	logger *slog.Logger,
) usecase.AuthUsecase {
	return &authService{
		txManager: txManager,
		hasher:    hasher,
		tokens:    tokens,
		logger:    logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates a new account and immediately issues tokens, so the
// client is logged in without a second round trip.
func (srv *authService) Register(ctx context.Context, input *usecase.RegisterInput) (*entity.AuthResult, error) {
	srv.log(ctx).Info("Registering user", slog.String("email", input.Email))

	birthDate, err := time.Parse(birthDateLayout, input.BirthDate)
	if err != nil {
		return nil, errors.Wrap(
			domainerrors.ErrValidationFailed.WithDetails("birth_date must use the YYYY-MM-DD format"),
			"invalid birth date",
		)
	}

	// Hashing validates password strength first, so a weak password fails
	// before any row is written.
	passwordHash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash password")
	}

	user := &entity.User{
		Email:          input.Email,
		Name:           input.Name,
		LastName:       input.LastName,
		BirthDate:      birthDate,
		CountryID:      input.CountryID,
		StateID:        input.StateID,
		MunicipalityID: input.MunicipalityID,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		authRepo := repoFactory.NewAuthRepository()

		if err := authRepo.CreateUser(ctx, user, passwordHash); err != nil {
			if errors.Is(err, repository.ErrEmailTaken) {
				return errors.Wrap(domainerrors.ErrUserAlreadyExists, "email already registered")
			}

			return errors.Wrap(err, "failed to create user")
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to register user")
	}

	result, err := srv.issueTokens(user.ID)
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("User registered", slog.Int64("userID", user.ID))

	return result, nil
}

// Login verifies the credentials and issues a fresh token pair.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*entity.AuthResult, error) {
	srv.log(ctx).Debug("Login attempt", slog.String("email", input.Email))

	var credential *entity.Credential

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		authRepo := repoFactory.NewAuthRepository()

		found, err := authRepo.FindCredentialByEmail(ctx, input.Email)
		if err != nil {
			if errors.Is(err, repository.ErrCredentialNotFound) {
				// Unknown email and wrong password are indistinguishable to the caller.
				return errors.Wrap(domainerrors.ErrInvalidCredentials, "unknown email")
			}

			return errors.Wrap(err, "failed to load credential")
		}
		credential = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to log in")
	}

	if !srv.hasher.Check(input.Password, credential.PasswordHash) {
		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "password mismatch")
	}

	result, err := srv.issueTokens(credential.UserID)
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Debug("Login succeeded", slog.Int64("userID", credential.UserID))

	return result, nil
}

func (srv *authService) issueTokens(userID int64) (*entity.AuthResult, error) {
	accessToken, refreshToken, err := srv.tokens.GenerateTokens(userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	return &entity.AuthResult{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		TokenType:    tokenTypeBearer,
		ExpiresIn:    int64(srv.tokens.AccessTokenDuration().Seconds()),
		UserID:       userID,
	}, nil
}
