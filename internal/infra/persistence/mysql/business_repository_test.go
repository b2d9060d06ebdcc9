package mysql

import (
	"testing"

	"github.com/DiegoG0477/koru-api/internal/domain/entity"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestBusinessChangesToMap(t *testing.T) {
	t.Run("nil and empty change sets produce no work", func(t *testing.T) {
		assert.Empty(t, businessChangesToMap(nil))
		assert.Empty(t, businessChangesToMap(&entity.BusinessChanges{}))
	})

	t.Run("only set fields enter the map", func(t *testing.T) {
		name := "Renamed"
		investment := 75000.0

		sets := businessChangesToMap(&entity.BusinessChanges{
			Name:       &name,
			Investment: &investment,
		})

		assert.Equal(t, map[string]any{
			"name":       "Renamed",
			"investment": 75000.0,
		}, sets)
	})

	t.Run("full change set maps every column", func(t *testing.T) {
		name := "n"
		description := "d"
		investment := 1.0
		profit := 2.0
		categoryID := int64(3)
		municipalityID := "07-041"
		businessModel := "b2c"
		monthlyIncome := 4.0
		imageURL := "https://example.com/x.png"

		sets := businessChangesToMap(&entity.BusinessChanges{
			Name:             &name,
			Description:      &description,
			Investment:       &investment,
			ProfitPercentage: &profit,
			CategoryID:       &categoryID,
			MunicipalityID:   &municipalityID,
			BusinessModel:    &businessModel,
			MonthlyIncome:    &monthlyIncome,
			ImageURL:         &imageURL,
		})

		assert.Len(t, sets, 9)
		assert.Equal(t, "07-041", sets["municipality_id"])
		assert.Equal(t, int64(3), sets["category_id"])
	})
}

func TestRowToDomain(t *testing.T) {
	row := &businessRow{
		ID:         31,
		OwnerID:    7,
		Name:       "Taqueria El Norte",
		LikeCount:  12,
		SavedCount: 4,
		IsLiked:    true,
		IsSaved:    false,
	}

	t.Run("anonymous reader gets counts only", func(t *testing.T) {
		business := rowToDomain(row, false)

		require.NotNil(t, business.LikeCount)
		assert.EqualValues(t, 12, *business.LikeCount)
		require.NotNil(t, business.SavedCount)
		assert.EqualValues(t, 4, *business.SavedCount)
		assert.Nil(t, business.IsLikedByUser)
		assert.Nil(t, business.IsSavedByUser)
	})

	t.Run("known requester also gets relative flags", func(t *testing.T) {
		business := rowToDomain(row, true)

		require.NotNil(t, business.IsLikedByUser)
		assert.True(t, *business.IsLikedByUser)
		require.NotNil(t, business.IsSavedByUser)
		assert.False(t, *business.IsSavedByUser)
	})
}

func TestConstraintErrorDetection(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		unique  bool
		foreign bool
	}{
		{
			name:   "gorm duplicated key",
			err:    gorm.ErrDuplicatedKey,
			unique: true,
		},
		{
			name:   "raw mysql 1062 message",
			err:    errors.New("Error 1062 (23000): Duplicate entry 'a@b.com' for key 'users.email'"),
			unique: true,
		},
		{
			name:    "gorm foreign key violated",
			err:     gorm.ErrForeignKeyViolated,
			foreign: true,
		},
		{
			name:    "raw mysql 1452 message",
			err:     errors.New("Error 1452 (23000): Cannot add or update a child row: a foreign key constraint fails"),
			foreign: true,
		},
		{
			name: "unrelated error",
			err:  errors.New("connection refused"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.unique, isUniqueConstraintViolation(tt.err))
			assert.Equal(t, tt.foreign, isForeignKeyConstraintViolation(tt.err))
		})
	}
}
