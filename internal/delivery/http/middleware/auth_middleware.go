package middleware

import (
	"strings"

	"github.com/DiegoG0477/koru-api/internal/delivery/http/response"
	"github.com/DiegoG0477/koru-api/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// ContextKeyUserID is the echo context key carrying the authenticated user's ID.
const ContextKeyUserID = "userID"

const bearerPrefix = "Bearer "

// AuthMiddleware provides middleware for JWT authentication.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the JWT access token and stores the user ID on the context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return response.Unauthorized(c, "Authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, bearerPrefix)
		if tokenString == authHeader {
			return response.Unauthorized(c, "Invalid token format, must be Bearer token")
		}

		claims, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil {
			return response.Unauthorized(c, "Invalid or expired token")
		}

		c.Set(ContextKeyUserID, claims.UserID)

		return next(c)
	}
}

// OptionalAuthenticate resolves the user ID when a token is present but lets
// anonymous requests through. A token that is present must still be valid.
func (m *AuthMiddleware) OptionalAuthenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return next(c)
		}

		return m.Authenticate(next)(c)
	}
}

// UserIDFromContext extracts the authenticated user's ID set by Authenticate.
func UserIDFromContext(c echo.Context) (int64, bool) {
	userID, ok := c.Get(ContextKeyUserID).(int64)

	return userID, ok
}

// OptionalUserIDFromContext returns a pointer form for handlers that accept
// anonymous requests.
func OptionalUserIDFromContext(c echo.Context) *int64 {
	if userID, ok := UserIDFromContext(c); ok {
		return &userID
	}

	return nil
}
