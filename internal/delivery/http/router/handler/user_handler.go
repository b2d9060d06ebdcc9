package handler

import (
	"log/slog"
	"net/http"

	"github.com/DiegoG0477/koru-api/internal/delivery/http/middleware"
	"github.com/DiegoG0477/koru-api/internal/delivery/http/response"
	"github.com/DiegoG0477/koru-api/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// UserHandler holds dependencies for profile handlers.
type UserHandler struct {
	uc     usecase.UserUsecase
	logger *slog.Logger
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(uc usecase.UserUsecase, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		uc:     uc,
		logger: logger,
	}
}

// updateProfileRequest binds the multipart form fields of a partial profile
// update. Absent fields stay nil and are left untouched.
type updateProfileRequest struct {
	Name            *string `form:"name"`
	LastName        *string `form:"lastName"`
	Biography       *string `form:"biography"`
	LinkedinProfile *string `form:"linkedinProfile"`
	InstagramHandle *string `form:"instagramHandle"`
}

// GetMe handles the request for the authenticated user's profile.
func (h *UserHandler) GetMe(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return response.Unauthorized(c, "Invalid user ID in token")
	}

	user, err := h.uc.GetMe(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toUserResponse(user), "Profile retrieved successfully")
}

// UpdateMe handles the partial profile update.
func (h *UserHandler) UpdateMe(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return response.Unauthorized(c, "Invalid user ID in token")
	}

	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid profile input")
	}

	image, err := readImageUpload(c)
	if err != nil {
		return response.BadRequest(c, "Invalid image upload")
	}

	user, err := h.uc.UpdateMe(c.Request().Context(), userID, &usecase.UpdateProfileInput{
		Name:            req.Name,
		LastName:        req.LastName,
		Biography:       req.Biography,
		LinkedinProfile: req.LinkedinProfile,
		InstagramHandle: req.InstagramHandle,
		Image:           image,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toUserResponse(user), "Profile updated successfully")
}
