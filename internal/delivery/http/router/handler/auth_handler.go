package handler

import (
	"log/slog"
	"net/http"

	"github.com/DiegoG0477/koru-api/internal/delivery/http/response"
	"github.com/DiegoG0477/koru-api/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AuthHandler holds dependencies for authentication handlers.
type AuthHandler struct {
	uc     usecase.AuthUsecase
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(uc usecase.AuthUsecase, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		uc:     uc,
		logger: logger,
	}
}

type registerRequest struct {
	Email          string `json:"email" validate:"required,email"`
	Password       string `json:"password" validate:"required"`
	Name           string `json:"name" validate:"required"`
	LastName       string `json:"lastName" validate:"required"`
	BirthDate      string `json:"birthDate" validate:"required"`
	CountryID      int64  `json:"countryId" validate:"required"`
	StateID        int64  `json:"stateId" validate:"required"`
	MunicipalityID string `json:"municipalityId" validate:"required"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Register handles the account registration request.
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid registration input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	result, err := h.uc.Register(c.Request().Context(), &usecase.RegisterInput{
		Email:          req.Email,
		Password:       req.Password,
		Name:           req.Name,
		LastName:       req.LastName,
		BirthDate:      req.BirthDate,
		CountryID:      req.CountryID,
		StateID:        req.StateID,
		MunicipalityID: req.MunicipalityID,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toAuthResponse(result), "User registered successfully")
}

// Login handles the login request.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid login input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	result, err := h.uc.Login(c.Request().Context(), &usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toAuthResponse(result), "Login successful")
}
