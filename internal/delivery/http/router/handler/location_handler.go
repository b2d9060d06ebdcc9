package handler

import (
	"log/slog"
	"net/http"

	"github.com/DiegoG0477/koru-api/internal/delivery/http/response"
	"github.com/DiegoG0477/koru-api/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// LocationHandler holds dependencies for the reference catalog handlers.
type LocationHandler struct {
	uc     usecase.LocationUsecase
	logger *slog.Logger
}

// NewLocationHandler is the constructor for LocationHandler, injected by Fx.
func NewLocationHandler(uc usecase.LocationUsecase, logger *slog.Logger) *LocationHandler {
	return &LocationHandler{
		uc:     uc,
		logger: logger,
	}
}

// Countries lists every country.
func (h *LocationHandler) Countries(c echo.Context) error {
	countries, err := h.uc.GetCountries(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toCountryResponses(countries), "Countries retrieved successfully")
}

// States lists the states of the requested country.
func (h *LocationHandler) States(c echo.Context) error {
	countryID, err := parseInt64Query(c, "countryId")
	if err != nil || countryID == nil {
		return response.BadRequest(c, "countryId is required and must be an integer")
	}

	states, err := h.uc.GetStatesByCountry(c.Request().Context(), *countryID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toStateResponses(states), "States retrieved successfully")
}

// Municipalities lists the municipalities of the requested state.
func (h *LocationHandler) Municipalities(c echo.Context) error {
	stateID, err := parseInt64Query(c, "stateId")
	if err != nil || stateID == nil {
		return response.BadRequest(c, "stateId is required and must be an integer")
	}

	municipalities, err := h.uc.GetMunicipalitiesByState(c.Request().Context(), *stateID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toMunicipalityResponses(municipalities), "Municipalities retrieved successfully")
}

// Categories lists every business category.
func (h *LocationHandler) Categories(c echo.Context) error {
	categories, err := h.uc.GetCategories(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toCategoryResponses(categories), "Categories retrieved successfully")
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
