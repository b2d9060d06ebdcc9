package mysql

import (
	"context"

	"github.com/DiegoG0477/koru-api/internal/domain/entity"
	domainerrors "github.com/DiegoG0477/koru-api/internal/domain/errors"
	"github.com/DiegoG0477/koru-api/internal/domain/repository"
	"github.com/DiegoG0477/koru-api/internal/infra/persistence/model"

	"gorm.io/gorm"
)

type locationRepository struct {
	db *gorm.DB
}

// NewLocationRepository creates a repository over the static reference catalogs.
func NewLocationRepository(db *gorm.DB) repository.LocationRepository {
	return &locationRepository{db: db}
}

func (r *locationRepository) ListCountries(ctx context.Context) ([]*entity.Country, error) {
	var models []model.CountryModel
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&models).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list countries")
	}

	out := make([]*entity.Country, 0, len(models))
	for i := range models {
		out = append(out, &entity.Country{ID: models[i].ID, Name: models[i].Name})
	}

	return out, nil
}

func (r *locationRepository) ListStatesByCountry(ctx context.Context, countryID int64) ([]*entity.State, error) {
	var models []model.StateModel
	err := r.db.WithContext(ctx).
		Where("country_id = ?", countryID).
		Order("name ASC").
		Find(&models).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list states")
	}

	out := make([]*entity.State, 0, len(models))
	for i := range models {
		out = append(out, &entity.State{
			ID:        models[i].ID,
			CountryID: models[i].CountryID,
			Name:      models[i].Name,
		})
	}

	return out, nil
}

func (r *locationRepository) ListMunicipalitiesByState(ctx context.Context, stateID int64) ([]*entity.Municipality, error) {
	var models []model.MunicipalityModel
	err := r.db.WithContext(ctx).
		Where("state_id = ?", stateID).
		Order("name ASC").
		Find(&models).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list municipalities")
	}

	out := make([]*entity.Municipality, 0, len(models))
	for i := range models {
		out = append(out, &entity.Municipality{
			ID:      models[i].ID,
			StateID: models[i].StateID,
			Name:    models[i].Name,
		})
	}

	return out, nil
}

func (r *locationRepository) ListCategories(ctx context.Context) ([]*entity.Category, error) {
	var models []model.CategoryModel
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&models).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list categories")
	}

	out := make([]*entity.Category, 0, len(models))
	for i := range models {
		out = append(out, &entity.Category{
			ID:      models[i].ID,
			Name:    models[i].Name,
			IconKey: models[i].IconKey,
		})
	}

	return out, nil
}
