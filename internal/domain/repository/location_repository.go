package repository

import (
	"context"

	"github.com/DiegoG0477/koru-api/internal/domain/entity"
)

// LocationRepository reads the static reference catalogs. All listings are
// ordered by name; there are no mutations.
type LocationRepository interface {
	ListCountries(ctx context.Context) ([]*entity.Country, error)
	ListStatesByCountry(ctx context.Context, countryID int64) ([]*entity.State, error)
	ListMunicipalitiesByState(ctx context.Context, stateID int64) ([]*entity.Municipality, error)
	ListCategories(ctx context.Context) ([]*entity.Category, error)
}
