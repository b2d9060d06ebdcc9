package mysql

import (
	"context"
	"testing"

	domainerrors "github.com/DiegoG0477/koru-api/internal/domain/errors"
	"github.com/DiegoG0477/koru-api/internal/domain/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	gormmysql "gorm.io/driver/mysql"
)

// newMockDB opens a GORM handle over a sqlmock connection so repository
// queries run against scripted results instead of a live server.
func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	db, err := gorm.Open(gormmysql.New(gormmysql.Config{
		Conn:                      conn,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Discard,
	})
	require.NoError(t, err)

	return db, mock
}

func userRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "email", "name", "last_name", "biography"}).
		AddRow(7, "diego@example.com", "Diego", "Garcia", "Food entrepreneur")
}

func assertDatabaseErrorCode(t *testing.T, err error) {
	t.Helper()

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr), "expected an AppError, got %v", err)
	assert.Equal(t, "DATABASE_ERROR", appErr.ErrorCode())
}

func TestUserRepository_UpdateProfile_NoOpChangeStillSucceeds(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	// MySQL counts changed rows, not matched rows, so resubmitting the current
	// value reports zero affected. The update must not read that as a missing
	// user.
	mock.ExpectQuery("SELECT .+ FROM `users` WHERE id = \\?").WillReturnRows(userRows())
	mock.ExpectExec("UPDATE `users` SET").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("SELECT .+ FROM `users` WHERE id = \\?").WillReturnRows(userRows())

	biography := "Food entrepreneur"
	user, err := repo.UpdateProfile(context.Background(), 7, &repository.UserProfileChanges{Biography: &biography})

	require.NoError(t, err)
	assert.EqualValues(t, 7, user.ID)
	require.NotNil(t, user.Biography)
	assert.Equal(t, "Food entrepreneur", *user.Biography)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_UpdateProfile_MissingUser(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectQuery("SELECT .+ FROM `users` WHERE id = \\?").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	name := "Diego"
	_, err := repo.UpdateProfile(context.Background(), 404, &repository.UserProfileChanges{Name: &name})

	require.ErrorIs(t, err, repository.ErrUserNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_UpdateProfile_EmptyChangeSetSkipsWrite(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectQuery("SELECT .+ FROM `users` WHERE id = \\?").WillReturnRows(userRows())

	user, err := repo.UpdateProfile(context.Background(), 7, &repository.UserProfileChanges{})

	require.NoError(t, err)
	assert.Equal(t, "diego@example.com", user.Email)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_UpdateProfile_WriteFailure(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectQuery("SELECT .+ FROM `users` WHERE id = \\?").WillReturnRows(userRows())
	mock.ExpectExec("UPDATE `users` SET").WillReturnError(errors.New("connection reset"))

	name := "Diego"
	_, err := repo.UpdateProfile(context.Background(), 7, &repository.UserProfileChanges{Name: &name})

	require.Error(t, err)
	assertDatabaseErrorCode(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_FindByID_QueryFailure(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectQuery("SELECT .+ FROM `users` WHERE id = \\?").
		WillReturnError(errors.New("connection refused"))

	_, err := repo.FindByID(context.Background(), 7)

	require.Error(t, err)
	assertDatabaseErrorCode(t, err)
}

func TestProfileChangesToMap(t *testing.T) {
	t.Run("nil and empty change sets produce no work", func(t *testing.T) {
		assert.Empty(t, profileChangesToMap(nil))
		assert.Empty(t, profileChangesToMap(&repository.UserProfileChanges{}))
	})

	t.Run("only set fields enter the map", func(t *testing.T) {
		name := "Diego"
		imageURL := "https://example.com/me.png"

		sets := profileChangesToMap(&repository.UserProfileChanges{
			Name:            &name,
			ProfileImageURL: &imageURL,
		})

		assert.Equal(t, map[string]any{
			"name":              "Diego",
			"profile_image_url": "https://example.com/me.png",
		}, sets)
	})
}
