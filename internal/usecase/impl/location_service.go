package impl

import (
	"context"
	"log/slog"

	deliverycontext "github.com/DiegoG0477/koru-api/internal/delivery/context"
	"github.com/DiegoG0477/koru-api/internal/domain/entity"
	"github.com/DiegoG0477/koru-api/internal/domain/repository"
	"github.com/DiegoG0477/koru-api/internal/usecase"

	"github.com/pkg/errors"
)

// locationService implements the LocationUsecase interface over the static
// reference catalogs.
type locationService struct {
	locations repository.LocationRepository
	logger    *slog.Logger
}

// NewLocationService is the constructor for locationService.
func NewLocationService(
	locations repository.LocationRepository,
	logger *slog.Logger,
) usecase.LocationUsecase {
	return &locationService{
		locations: locations,
		logger:    logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *locationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *locationService) GetCountries(ctx context.Context) ([]*entity.Country, error) {
	countries, err := srv.locations.ListCountries(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list countries")
	}

	return countries, nil
}

func (srv *locationService) GetStatesByCountry(ctx context.Context, countryID int64) ([]*entity.State, error) {
	states, err := srv.locations.ListStatesByCountry(ctx, countryID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list states")
	}

	return states, nil
}

func (srv *locationService) GetMunicipalitiesByState(ctx context.Context, stateID int64) ([]*entity.Municipality, error) {
	municipalities, err := srv.locations.ListMunicipalitiesByState(ctx, stateID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list municipalities")
	}

	return municipalities, nil
}

func (srv *locationService) GetCategories(ctx context.Context) ([]*entity.Category, error) {
	srv.log(ctx).Debug("Listing categories")

	categories, err := srv.locations.ListCategories(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list categories")
	}

	return categories, nil
}
