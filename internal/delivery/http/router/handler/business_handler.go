package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/DiegoG0477/koru-api/internal/delivery/http/middleware"
	"github.com/DiegoG0477/koru-api/internal/delivery/http/response"
	"github.com/DiegoG0477/koru-api/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// BusinessHandler holds dependencies for business-related handlers.
type BusinessHandler struct {
	uc     usecase.BusinessUsecase
	logger *slog.Logger
}

// NewBusinessHandler is the constructor for BusinessHandler, injected by Fx.
func NewBusinessHandler(uc usecase.BusinessUsecase, logger *slog.Logger) *BusinessHandler {
	return &BusinessHandler{
		uc:     uc,
		logger: logger,
	}
}

// createBusinessRequest binds the multipart form fields of a create request.
// The image arrives as a separate file part.
type createBusinessRequest struct {
	Name             string  `form:"name" validate:"required"`
	Description      string  `form:"description" validate:"required"`
	Investment       float64 `form:"investment" validate:"gte=0"`
	ProfitPercentage float64 `form:"profitPercentage" validate:"gte=0"`
	CategoryID       int64   `form:"categoryId" validate:"required"`
	MunicipalityID   string  `form:"municipalityId" validate:"required"`
	BusinessModel    string  `form:"businessModel"`
	MonthlyIncome    float64 `form:"monthlyIncome" validate:"gte=0"`
}

// updateBusinessRequest binds the multipart form fields of a partial update.
// Absent fields stay nil and are left untouched.
type updateBusinessRequest struct {
	Name             *string  `form:"name"`
	Description      *string  `form:"description"`
	Investment       *float64 `form:"investment"`
	ProfitPercentage *float64 `form:"profitPercentage"`
	CategoryID       *int64   `form:"categoryId"`
	MunicipalityID   *string  `form:"municipalityId"`
	BusinessModel    *string  `form:"businessModel"`
	MonthlyIncome    *float64 `form:"monthlyIncome"`
}

// Create handles the business creation request.
func (h *BusinessHandler) Create(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return response.Unauthorized(c, "Invalid user ID in token")
	}

	var req createBusinessRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid business input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	image, err := readImageUpload(c)
	if err != nil {
		return response.BadRequest(c, "Invalid image upload")
	}

	business, err := h.uc.Create(c.Request().Context(), userID, &usecase.CreateBusinessInput{
		Name:             req.Name,
		Description:      req.Description,
		Investment:       req.Investment,
		ProfitPercentage: req.ProfitPercentage,
		CategoryID:       req.CategoryID,
		MunicipalityID:   req.MunicipalityID,
		BusinessModel:    req.BusinessModel,
		MonthlyIncome:    req.MonthlyIncome,
		Image:            image,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toBusinessResponse(business), "Business created successfully")
}

// Feed handles the public feed request. Authentication is optional; a known
// requester additionally receives their like/save state per item.
func (h *BusinessHandler) Feed(c echo.Context) error {
	page, err := parseIntQuery(c, "page", 1)
	if err != nil || page < 1 {
		return response.BadRequest(c, "page must be a positive integer")
	}

	limit, err := parseIntQuery(c, "limit", 0)
	if err != nil || limit < 0 {
		return response.BadRequest(c, "limit must be a positive integer")
	}

	categoryID, err := parseInt64Query(c, "categoryId")
	if err != nil {
		return response.BadRequest(c, "categoryId must be an integer")
	}

	maxInvestment, err := parseFloatQuery(c, "maxInvestment")
	if err != nil {
		return response.BadRequest(c, "maxInvestment must be a number")
	}

	input := &usecase.FeedInput{
		Page:          page,
		Limit:         limit,
		CategoryID:    categoryID,
		MaxInvestment: maxInvestment,
	}
	if nearby := c.QueryParam("nearby"); nearby != "" {
		input.Nearby = &nearby
	}

	feed, err := h.uc.GetFeed(c.Request().Context(), input, middleware.OptionalUserIDFromContext(c))
	if err != nil {
		return errors.WithStack(err)
	}

	items := make([]*businessResponse, 0, len(feed.Items))
	for _, item := range feed.Items {
		items = append(items, toBusinessWithOwnerResponse(item))
	}

	return response.Paginated(c, http.StatusOK, items, feed.Page, "Feed retrieved successfully")
}

// Mine handles the "my businesses" listing, selected by the filter parameter.
func (h *BusinessHandler) Mine(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return response.Unauthorized(c, "Invalid user ID in token")
	}

	filter := usecase.MineOwned
	if raw := c.QueryParam("filter"); raw != "" {
		filter = usecase.MineFilter(strings.ToUpper(raw))
	}

	businesses, err := h.uc.GetMine(c.Request().Context(), userID, filter)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toBusinessListResponse(businesses), "Businesses retrieved successfully")
}

// GetByID handles the single business read. Authentication is optional.
func (h *BusinessHandler) GetByID(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return response.BadRequest(c, "Business ID must be a positive integer")
	}

	item, err := h.uc.GetByID(c.Request().Context(), id, middleware.OptionalUserIDFromContext(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toBusinessWithOwnerResponse(item), "Business retrieved successfully")
}

// Update handles the partial business update. Only the owner may update.
func (h *BusinessHandler) Update(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return response.Unauthorized(c, "Invalid user ID in token")
	}

	id, err := parseIDParam(c, "id")
	if err != nil {
		return response.BadRequest(c, "Business ID must be a positive integer")
	}

	var req updateBusinessRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid business input")
	}

	image, err := readImageUpload(c)
	if err != nil {
		return response.BadRequest(c, "Invalid image upload")
	}

	business, err := h.uc.Update(c.Request().Context(), id, userID, &usecase.UpdateBusinessInput{
		Name:             req.Name,
		Description:      req.Description,
		Investment:       req.Investment,
		ProfitPercentage: req.ProfitPercentage,
		CategoryID:       req.CategoryID,
		MunicipalityID:   req.MunicipalityID,
		BusinessModel:    req.BusinessModel,
		MonthlyIncome:    req.MonthlyIncome,
		Image:            image,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toBusinessResponse(business), "Business updated successfully")
}

// Delete handles the business deletion. Only the owner may delete.
func (h *BusinessHandler) Delete(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return response.Unauthorized(c, "Invalid user ID in token")
	}

	id, err := parseIDParam(c, "id")
	if err != nil {
		return response.BadRequest(c, "Business ID must be a positive integer")
	}

	if err := h.uc.Delete(c.Request().Context(), id, userID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Business deleted successfully")
}

// Partner handles the partnership interest request.
func (h *BusinessHandler) Partner(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return response.Unauthorized(c, "Invalid user ID in token")
	}

	businessID, err := parseIDParam(c, "businessId")
	if err != nil {
		return response.BadRequest(c, "Business ID must be a positive integer")
	}

	if err := h.uc.InitiatePartnership(c.Request().Context(), userID, businessID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Partnership initiated successfully")
}

// Save handles the save toggle and reports the new state.
func (h *BusinessHandler) Save(c echo.Context) error {
	return h.toggle(c, h.uc.ToggleSave, "saved")
}

// Like handles the like toggle and reports the new state.
func (h *BusinessHandler) Like(c echo.Context) error {
	return h.toggle(c, h.uc.ToggleLike, "liked")
}

func (h *BusinessHandler) toggle(c echo.Context, fn func(ctx context.Context, userID, businessID int64) (bool, error), relation string) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return response.Unauthorized(c, "Invalid user ID in token")
	}

	businessID, err := parseIDParam(c, "businessId")
	if err != nil {
		return response.BadRequest(c, "Business ID must be a positive integer")
	}

	newState, err := fn(c.Request().Context(), userID, businessID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]bool{relation: newState}, "Toggle applied successfully")
}
