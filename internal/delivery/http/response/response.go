// Package response defines the unified JSON envelope for the API.
package response

import (
	"net/http"

	"github.com/DiegoG0477/koru-api/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

// Status values carried in every envelope.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Envelope is the unified API response structure.
type Envelope struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// PaginatedEnvelope is the envelope variant carried by paginated listings.
type PaginatedEnvelope struct {
	Status     string     `json:"status"`
	Message    string     `json:"message"`
	Data       any        `json:"data"`
	Pagination Pagination `json:"pagination"`
}

// Pagination is the wire form of a page descriptor. NextPage is null once the
// collection is exhausted.
type Pagination struct {
	CurrentPage int   `json:"currentPage"`
	TotalPages  int   `json:"totalPages"`
	TotalItems  int64 `json:"totalItems"`
	Limit       int   `json:"limit"`
	NextPage    *int  `json:"nextPage"`
	HasMore     bool  `json:"hasMore"`
}

// PaginationFrom maps the domain page descriptor onto the wire form.
func PaginationFrom(info entity.PageInfo) Pagination {
	return Pagination{
		CurrentPage: info.CurrentPage,
		TotalPages:  info.TotalPages,
		TotalItems:  info.TotalItems,
		Limit:       info.Limit,
		NextPage:    info.NextPage,
		HasMore:     info.HasMore,
	}
}

// Success writes a success envelope.
func Success(c echo.Context, statusCode int, data any, message string) error {
	if message == "" {
		message = "Success"
	}

	return c.JSON(statusCode, Envelope{
		Status:  StatusSuccess,
		Message: message,
		Data:    data,
	})
}

// Paginated writes a success envelope with pagination metadata.
func Paginated(c echo.Context, statusCode int, data any, info entity.PageInfo, message string) error {
	if message == "" {
		message = "Success"
	}

	return c.JSON(statusCode, PaginatedEnvelope{
		Status:     StatusSuccess,
		Message:    message,
		Data:       data,
		Pagination: PaginationFrom(info),
	})
}

// Error writes an error envelope.
func Error(c echo.Context, statusCode int, message string) error {
	if message == "" {
		message = http.StatusText(statusCode)
	}

	return c.JSON(statusCode, Envelope{
		Status:  StatusError,
		Message: message,
	})
}

// BadRequest 400 error
func BadRequest(c echo.Context, message string) error {
	return Error(c, http.StatusBadRequest, message)
}

// BindingError binding error response
func BindingError(c echo.Context, message string) error {
	return Error(c, http.StatusBadRequest, message)
}

// Unauthorized 401 error
func Unauthorized(c echo.Context, message string) error {
	return Error(c, http.StatusUnauthorized, message)
}

// Forbidden 403 error
func Forbidden(c echo.Context, message string) error {
	return Error(c, http.StatusForbidden, message)
}

// NotFound 404 error
func NotFound(c echo.Context, message string) error {
	return Error(c, http.StatusNotFound, message)
}

// InternalServerError 500 error
func InternalServerError(c echo.Context, message string) error {
	return Error(c, http.StatusInternalServerError, message)
}
