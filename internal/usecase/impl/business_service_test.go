package impl

import (
	"context"
	"testing"

	"github.com/DiegoG0477/koru-api/config"
	"github.com/DiegoG0477/koru-api/internal/domain/entity"
	domainerrors "github.com/DiegoG0477/koru-api/internal/domain/errors"
	"github.com/DiegoG0477/koru-api/internal/domain/repository"
	"github.com/DiegoG0477/koru-api/internal/domain/service"
	"github.com/DiegoG0477/koru-api/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type businessServiceFixtures struct {
	service    usecase.BusinessUsecase
	businesses *mockBusinessRepo
	users      *mockUserRepo
	storage    *mockStorage
}

func createTestBusinessService(t *testing.T) businessServiceFixtures {
	t.Helper()

	businesses := &mockBusinessRepo{}
	users := &mockUserRepo{}
	storage := &mockStorage{}

	cfg := &config.Config{Feed: &config.FeedConfig{DefaultLimit: 15, MaxLimit: 100}}

	svc := NewBusinessService(
		&fakeTxManager{factory: &fakeFactory{businesses: businesses, users: users}},
		businesses,
		users,
		storage,
		cfg,
		newDiscardLogger(),
	)

	return businessServiceFixtures{
		service:    svc,
		businesses: businesses,
		users:      users,
		storage:    storage,
	}
}

func assertAppErrorCode(t *testing.T, err error, want string) {
	t.Helper()

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr), "expected an AppError, got %v", err)
	assert.Equal(t, want, appErr.ErrorCode())
}

func TestBusinessService_Create_UploadsImageBeforeWrite(t *testing.T) {
	fixtures := createTestBusinessService(t)
	ctx := context.Background()

	upload := &service.ImageUpload{Data: []byte{0xFF}, FileName: "front.jpg", ContentType: "image/jpeg"}
	fixtures.storage.On("UploadImage", ctx, "businesses", upload).
		Return("https://storage.googleapis.com/bucket/businesses/front.jpg", nil)

	fixtures.businesses.On("Create", ctx, mock.MatchedBy(func(b *entity.Business) bool {
		return b.OwnerID == 7 &&
			b.Name == "Taqueria El Norte" &&
			b.ImageURL != nil &&
			*b.ImageURL == "https://storage.googleapis.com/bucket/businesses/front.jpg"
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*entity.Business).ID = 31
	}).Return(nil)

	business, err := fixtures.service.Create(ctx, 7, &usecase.CreateBusinessInput{
		Name:           "Taqueria El Norte",
		Description:    "Street food franchise",
		Investment:     50000,
		CategoryID:     3,
		MunicipalityID: "07-041",
		Image:          upload,
	})

	require.NoError(t, err)
	assert.EqualValues(t, 31, business.ID)
	fixtures.storage.AssertExpectations(t)
	fixtures.businesses.AssertExpectations(t)
}

func TestBusinessService_Create_StorageFailure(t *testing.T) {
	fixtures := createTestBusinessService(t)
	ctx := context.Background()

	upload := &service.ImageUpload{Data: []byte{0x1}, FileName: "x.png"}
	fixtures.storage.On("UploadImage", ctx, "businesses", upload).
		Return("", errors.New("bucket unavailable"))

	_, err := fixtures.service.Create(ctx, 7, &usecase.CreateBusinessInput{Name: "X", Image: upload})

	require.Error(t, err)
	assertAppErrorCode(t, err, domainerrors.ErrStorageFailed.ErrorCode())
	fixtures.businesses.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestBusinessService_GetByID_ResolvesOwner(t *testing.T) {
	fixtures := createTestBusinessService(t)
	ctx := context.Background()
	requester := int64(9)

	fixtures.businesses.On("FindByID", ctx, int64(31), &requester).
		Return(&entity.Business{ID: 31, OwnerID: 7, Name: "Taqueria El Norte"}, nil)
	fixtures.users.On("FindByID", ctx, int64(7)).
		Return(&entity.User{ID: 7, Name: "Diego", LastName: "Garcia"}, nil)

	item, err := fixtures.service.GetByID(ctx, 31, &requester)

	require.NoError(t, err)
	assert.EqualValues(t, 31, item.Business.ID)
	require.NotNil(t, item.Owner)
	assert.EqualValues(t, 7, item.Owner.ID)
	assert.Equal(t, "Diego", item.Owner.Name)
}

func TestBusinessService_GetByID_NotFound(t *testing.T) {
	fixtures := createTestBusinessService(t)
	ctx := context.Background()

	fixtures.businesses.On("FindByID", ctx, int64(404), (*int64)(nil)).
		Return(nil, repository.ErrBusinessNotFound)

	_, err := fixtures.service.GetByID(ctx, 404, nil)

	require.Error(t, err)
	assertAppErrorCode(t, err, domainerrors.ErrBusinessNotFound.ErrorCode())
}

func TestBusinessService_GetFeed_ResolvesEachOwnerOnce(t *testing.T) {
	fixtures := createTestBusinessService(t)
	ctx := context.Background()

	page := &entity.BusinessPage{
		Items: []*entity.Business{
			{ID: 1, OwnerID: 7},
			{ID: 2, OwnerID: 7},
			{ID: 3, OwnerID: 8},
		},
		Page: entity.NewPageInfo(1, 15, 3, 3),
	}

	fixtures.businesses.On("GetFeed", ctx, repository.FeedFilter{}, 1, 15, (*int64)(nil)).
		Return(page, nil)
	fixtures.users.On("FindByID", ctx, int64(7)).
		Return(&entity.User{ID: 7, Name: "Diego"}, nil).Once()
	fixtures.users.On("FindByID", ctx, int64(8)).
		Return(&entity.User{ID: 8, Name: "Maria"}, nil).Once()

	feed, err := fixtures.service.GetFeed(ctx, &usecase.FeedInput{Page: 1}, nil)

	require.NoError(t, err)
	require.Len(t, feed.Items, 3)
	assert.Equal(t, feed.Items[0].Owner, feed.Items[1].Owner)
	assert.EqualValues(t, 8, feed.Items[2].Owner.ID)
	assert.False(t, feed.Page.HasMore)
	fixtures.users.AssertExpectations(t)
}

func TestBusinessService_GetFeed_ClampsLimit(t *testing.T) {
	fixtures := createTestBusinessService(t)
	ctx := context.Background()

	empty := &entity.BusinessPage{Items: []*entity.Business{}, Page: entity.NewPageInfo(1, 100, 0, 0)}
	fixtures.businesses.On("GetFeed", ctx, repository.FeedFilter{}, 1, 100, (*int64)(nil)).
		Return(empty, nil)

	_, err := fixtures.service.GetFeed(ctx, &usecase.FeedInput{Page: 1, Limit: 5000}, nil)

	require.NoError(t, err)
	fixtures.businesses.AssertExpectations(t)
}

func TestBusinessService_GetFeed_PassesFilters(t *testing.T) {
	fixtures := createTestBusinessService(t)
	ctx := context.Background()

	categoryID := int64(3)
	maxInvestment := 100000.0
	requester := int64(9)

	expectedFilter := repository.FeedFilter{CategoryID: &categoryID, MaxInvestment: &maxInvestment}
	empty := &entity.BusinessPage{Items: []*entity.Business{}, Page: entity.NewPageInfo(2, 15, 0, 0)}

	fixtures.businesses.On("GetFeed", ctx, expectedFilter, 2, 15, &requester).
		Return(empty, nil)

	_, err := fixtures.service.GetFeed(ctx, &usecase.FeedInput{
		Page:          2,
		CategoryID:    &categoryID,
		MaxInvestment: &maxInvestment,
	}, &requester)

	require.NoError(t, err)
	fixtures.businesses.AssertExpectations(t)
}

func TestBusinessService_GetMine(t *testing.T) {
	tests := []struct {
		name   string
		filter usecase.MineFilter
		method string
	}{
		{name: "owned", filter: usecase.MineOwned, method: "FindByOwner"},
		{name: "partnered", filter: usecase.MinePartnered, method: "FindPartnered"},
		{name: "saved", filter: usecase.MineSaved, method: "FindSaved"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fixtures := createTestBusinessService(t)
			ctx := context.Background()

			expected := []*entity.Business{{ID: 1, OwnerID: 7}}
			fixtures.businesses.On(tt.method, ctx, int64(7)).Return(expected, nil)

			businesses, err := fixtures.service.GetMine(ctx, 7, tt.filter)

			require.NoError(t, err)
			assert.Equal(t, expected, businesses)
		})
	}
}

func TestBusinessService_GetMine_UnknownFilter(t *testing.T) {
	fixtures := createTestBusinessService(t)

	_, err := fixtures.service.GetMine(context.Background(), 7, usecase.MineFilter("LIKED"))

	require.Error(t, err)
	assertAppErrorCode(t, err, domainerrors.ErrValidationFailed.ErrorCode())
}

func TestBusinessService_Update_MapsRepositoryErrors(t *testing.T) {
	tests := []struct {
		name     string
		repoErr  error
		wantCode string
	}{
		{name: "not found", repoErr: repository.ErrBusinessNotFound, wantCode: domainerrors.ErrBusinessNotFound.ErrorCode()},
		{name: "not owner", repoErr: repository.ErrNotOwner, wantCode: domainerrors.ErrForbidden.ErrorCode()},
		{name: "stale update", repoErr: repository.ErrStaleUpdate, wantCode: domainerrors.ErrConcurrentUpdate.ErrorCode()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fixtures := createTestBusinessService(t)
			ctx := context.Background()

			fixtures.businesses.On("Update", ctx, int64(31), int64(9), mock.AnythingOfType("*entity.BusinessChanges")).
				Return(nil, tt.repoErr)

			name := "Renamed"
			_, err := fixtures.service.Update(ctx, 31, 9, &usecase.UpdateBusinessInput{Name: &name})

			require.Error(t, err)
			assertAppErrorCode(t, err, tt.wantCode)
		})
	}
}

func TestBusinessService_Update_EmptyChangeSetDoesNotWrite(t *testing.T) {
	t.Run("owner gets current business back", func(t *testing.T) {
		fixtures := createTestBusinessService(t)
		ctx := context.Background()

		current := &entity.Business{ID: 31, OwnerID: 7, Name: "Taqueria El Norte"}
		fixtures.businesses.On("FindByID", ctx, int64(31), (*int64)(nil)).Return(current, nil)

		updated, err := fixtures.service.Update(ctx, 31, 7, &usecase.UpdateBusinessInput{})

		require.NoError(t, err)
		assert.Equal(t, current, updated)
		fixtures.businesses.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("non-owner is still rejected", func(t *testing.T) {
		fixtures := createTestBusinessService(t)
		ctx := context.Background()

		fixtures.businesses.On("FindByID", ctx, int64(31), (*int64)(nil)).
			Return(&entity.Business{ID: 31, OwnerID: 7}, nil)

		_, err := fixtures.service.Update(ctx, 31, 9, &usecase.UpdateBusinessInput{})

		require.Error(t, err)
		assertAppErrorCode(t, err, domainerrors.ErrForbidden.ErrorCode())
		fixtures.businesses.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("missing business", func(t *testing.T) {
		fixtures := createTestBusinessService(t)
		ctx := context.Background()

		fixtures.businesses.On("FindByID", ctx, int64(404), (*int64)(nil)).
			Return(nil, repository.ErrBusinessNotFound)

		_, err := fixtures.service.Update(ctx, 404, 7, &usecase.UpdateBusinessInput{})

		require.Error(t, err)
		assertAppErrorCode(t, err, domainerrors.ErrBusinessNotFound.ErrorCode())
	})
}

func TestBusinessService_Update_UploadedImageEntersChangeSet(t *testing.T) {
	fixtures := createTestBusinessService(t)
	ctx := context.Background()

	upload := &service.ImageUpload{Data: []byte{0x2}, FileName: "new.jpg"}
	fixtures.storage.On("UploadImage", ctx, "businesses", upload).
		Return("https://storage.googleapis.com/bucket/businesses/new.jpg", nil)

	name := "Renamed"
	fixtures.businesses.On("Update", ctx, int64(31), int64(7), mock.MatchedBy(func(c *entity.BusinessChanges) bool {
		return c.Name != nil && *c.Name == "Renamed" &&
			c.ImageURL != nil && *c.ImageURL == "https://storage.googleapis.com/bucket/businesses/new.jpg"
	})).Return(&entity.Business{ID: 31, OwnerID: 7, Name: "Renamed"}, nil)

	updated, err := fixtures.service.Update(ctx, 31, 7, &usecase.UpdateBusinessInput{Name: &name, Image: upload})

	require.NoError(t, err)
	assert.Equal(t, "Renamed", updated.Name)
	fixtures.businesses.AssertExpectations(t)
}

func TestBusinessService_Delete(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		fixtures := createTestBusinessService(t)
		ctx := context.Background()

		fixtures.businesses.On("FindByID", ctx, int64(31), (*int64)(nil)).
			Return(&entity.Business{ID: 31, OwnerID: 7}, nil)
		fixtures.businesses.On("Delete", ctx, int64(31), int64(7)).Return(true, nil)

		require.NoError(t, fixtures.service.Delete(ctx, 31, 7))
	})

	t.Run("missing business", func(t *testing.T) {
		fixtures := createTestBusinessService(t)
		ctx := context.Background()

		fixtures.businesses.On("FindByID", ctx, int64(404), (*int64)(nil)).
			Return(nil, repository.ErrBusinessNotFound)

		err := fixtures.service.Delete(ctx, 404, 7)
		require.Error(t, err)
		assertAppErrorCode(t, err, domainerrors.ErrBusinessNotFound.ErrorCode())
	})

	t.Run("foreign business", func(t *testing.T) {
		fixtures := createTestBusinessService(t)
		ctx := context.Background()

		fixtures.businesses.On("FindByID", ctx, int64(31), (*int64)(nil)).
			Return(&entity.Business{ID: 31, OwnerID: 7}, nil)
		fixtures.businesses.On("Delete", ctx, int64(31), int64(9)).Return(false, nil)

		err := fixtures.service.Delete(ctx, 31, 9)
		require.Error(t, err)
		assertAppErrorCode(t, err, domainerrors.ErrForbidden.ErrorCode())
	})
}

func TestBusinessService_InitiatePartnership_RepeatedCallSucceeds(t *testing.T) {
	fixtures := createTestBusinessService(t)
	ctx := context.Background()

	fixtures.businesses.On("InitiatePartnership", ctx, int64(9), int64(31)).Return(true, nil)

	require.NoError(t, fixtures.service.InitiatePartnership(ctx, 9, 31))
	require.NoError(t, fixtures.service.InitiatePartnership(ctx, 9, 31))
}

func TestBusinessService_Toggle_ReturnsNewState(t *testing.T) {
	fixtures := createTestBusinessService(t)
	ctx := context.Background()

	fixtures.businesses.On("ToggleSave", ctx, int64(9), int64(31)).Return(true, nil).Once()
	fixtures.businesses.On("ToggleSave", ctx, int64(9), int64(31)).Return(false, nil).Once()
	fixtures.businesses.On("ToggleLike", ctx, int64(9), int64(31)).Return(true, nil).Once()

	saved, err := fixtures.service.ToggleSave(ctx, 9, 31)
	require.NoError(t, err)
	assert.True(t, saved)

	saved, err = fixtures.service.ToggleSave(ctx, 9, 31)
	require.NoError(t, err)
	assert.False(t, saved)

	liked, err := fixtures.service.ToggleLike(ctx, 9, 31)
	require.NoError(t, err)
	assert.True(t, liked)
}

func TestBusinessService_Toggle_MissingBusiness(t *testing.T) {
	fixtures := createTestBusinessService(t)
	ctx := context.Background()

	fixtures.businesses.On("ToggleLike", ctx, int64(9), int64(404)).
		Return(false, repository.ErrBusinessNotFound)

	_, err := fixtures.service.ToggleLike(ctx, 9, 404)

	require.Error(t, err)
	assertAppErrorCode(t, err, domainerrors.ErrBusinessNotFound.ErrorCode())
}
