package usecase

import (
	"context"

	"github.com/DiegoG0477/koru-api/internal/domain/entity"
)

// LocationUsecase exposes the static reference catalogs used by client
// dropdowns. All listings are read-only.
type LocationUsecase interface {
	GetCountries(ctx context.Context) ([]*entity.Country, error)
	GetStatesByCountry(ctx context.Context, countryID int64) ([]*entity.State, error)
	GetMunicipalitiesByState(ctx context.Context, stateID int64) ([]*entity.Municipality, error)
	GetCategories(ctx context.Context) ([]*entity.Category, error)
}
