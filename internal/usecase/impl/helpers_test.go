package impl

import (
	"context"
	"io"
	"log/slog"

	"github.com/DiegoG0477/koru-api/internal/domain/entity"
	"github.com/DiegoG0477/koru-api/internal/domain/repository"
	"github.com/DiegoG0477/koru-api/internal/domain/service"

	"github.com/stretchr/testify/mock"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// fakeTxManager executes the callback directly against a fixed factory,
// standing in for a real database transaction.
type fakeTxManager struct {
	factory repository.RepositoryFactory
}

func (m *fakeTxManager) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	return fn(m.factory)
}

// fakeFactory hands out the repositories prepared by the test.
type fakeFactory struct {
	businesses repository.BusinessRepository
	users      repository.UserRepository
	auth       repository.AuthRepository
}

func (f *fakeFactory) NewBusinessRepository() repository.BusinessRepository { return f.businesses }
func (f *fakeFactory) NewUserRepository() repository.UserRepository        { return f.users }
func (f *fakeFactory) NewAuthRepository() repository.AuthRepository        { return f.auth }

// mockBusinessRepo is a hand-written testify double for BusinessRepository.
type mockBusinessRepo struct {
	mock.Mock
}

func (m *mockBusinessRepo) Create(ctx context.Context, business *entity.Business) error {
	args := m.Called(ctx, business)

	return args.Error(0)
}

func (m *mockBusinessRepo) FindByID(ctx context.Context, id int64, requestingUserID *int64) (*entity.Business, error) {
	args := m.Called(ctx, id, requestingUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Business), args.Error(1)
}

func (m *mockBusinessRepo) GetFeed(ctx context.Context, filter repository.FeedFilter, page, limit int, requestingUserID *int64) (*entity.BusinessPage, error) {
	args := m.Called(ctx, filter, page, limit, requestingUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.BusinessPage), args.Error(1)
}

func (m *mockBusinessRepo) FindByOwner(ctx context.Context, ownerID int64) ([]*entity.Business, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Business), args.Error(1)
}

func (m *mockBusinessRepo) FindPartnered(ctx context.Context, userID int64) ([]*entity.Business, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Business), args.Error(1)
}

func (m *mockBusinessRepo) FindSaved(ctx context.Context, userID int64) ([]*entity.Business, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Business), args.Error(1)
}

func (m *mockBusinessRepo) Update(ctx context.Context, id, requesterID int64, changes *entity.BusinessChanges) (*entity.Business, error) {
	args := m.Called(ctx, id, requesterID, changes)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Business), args.Error(1)
}

func (m *mockBusinessRepo) Delete(ctx context.Context, id, ownerID int64) (bool, error) {
	args := m.Called(ctx, id, ownerID)

	return args.Bool(0), args.Error(1)
}

func (m *mockBusinessRepo) InitiatePartnership(ctx context.Context, userID, businessID int64) (bool, error) {
	args := m.Called(ctx, userID, businessID)

	return args.Bool(0), args.Error(1)
}

func (m *mockBusinessRepo) ToggleSave(ctx context.Context, userID, businessID int64) (bool, error) {
	args := m.Called(ctx, userID, businessID)

	return args.Bool(0), args.Error(1)
}

func (m *mockBusinessRepo) ToggleLike(ctx context.Context, userID, businessID int64) (bool, error) {
	args := m.Called(ctx, userID, businessID)

	return args.Bool(0), args.Error(1)
}

// mockUserRepo is a hand-written testify double for UserRepository.
type mockUserRepo struct {
	mock.Mock
}

func (m *mockUserRepo) FindByID(ctx context.Context, id int64) (*entity.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *mockUserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *mockUserRepo) UpdateProfile(ctx context.Context, id int64, changes *repository.UserProfileChanges) (*entity.User, error) {
	args := m.Called(ctx, id, changes)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.User), args.Error(1)
}

// mockStorage is a hand-written testify double for StorageService.
type mockStorage struct {
	mock.Mock
}

func (m *mockStorage) UploadImage(ctx context.Context, folder string, upload *service.ImageUpload) (string, error) {
	args := m.Called(ctx, folder, upload)

	return args.String(0), args.Error(1)
}
