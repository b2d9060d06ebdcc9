// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"

	"github.com/DiegoG0477/koru-api/config"
	"github.com/DiegoG0477/koru-api/internal/domain/service"
)

const (
	defaultAccessTTL  = time.Hour
	defaultRefreshTTL = time.Hour * 24 * 7

	tokenTypeAccess  = "access"
	tokenTypeRefresh = "refresh"
)

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	accessSecret  string
	refreshSecret string
	accessTTL     time.Duration
	refreshTTL    time.Duration
}

// NewJWTService is the constructor for jwtService.
// It takes configuration values to create a new token service instance.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" || cfg.SecretKey.Refresh == "" {
		return nil, errors.New("jwt secrets must be provided")
	}

	return &jwtService{
		accessSecret:  cfg.SecretKey.Access,
		refreshSecret: cfg.SecretKey.Refresh,
		accessTTL:     defaultAccessTTL,
		refreshTTL:    defaultRefreshTTL,
	}, nil
}

// GenerateTokens creates a new access token and refresh token for a given user.
func (s *jwtService) GenerateTokens(userID int64) (accessToken string, refreshToken string, err error) {
	accessToken, err = s.generateToken(userID, s.accessTTL, s.accessSecret, tokenTypeAccess)
	if err != nil {
		return "", "", err
	}

	refreshToken, err = s.generateToken(userID, s.refreshTTL, s.refreshSecret, tokenTypeRefresh)
	if err != nil {
		return "", "", err
	}

	return accessToken, refreshToken, nil
}

// ValidateToken parses an access token and returns its claims.
func (s *jwtService) ValidateToken(tokenString string) (*service.Claims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(s.accessSecret), nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse token structure")
	}
	if !token.Valid {
		return nil, errors.New("token is not valid")
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("unexpected claims type")
	}

	sub, ok := mapClaims["sub"].(string)
	if !ok {
		return nil, errors.New("subject claim missing")
	}
	userID, err := strconv.ParseInt(sub, 10, 64)
	if err != nil {
		return nil, errors.Wrap(err, "invalid subject claim")
	}

	tokenType, _ := mapClaims["type"].(string)
	if tokenType != tokenTypeAccess {
		return nil, errors.Errorf("unexpected token type %q", tokenType)
	}

	return &service.Claims{
		UserID: userID,
		Type:   tokenType,
	}, nil
}

// AccessTokenDuration returns the configured lifetime of access tokens.
func (s *jwtService) AccessTokenDuration() time.Duration {
	return s.accessTTL
}

// generateToken is a private helper to create a JWT with specific claims.
func (s *jwtService) generateToken(userID int64, ttl time.Duration, secret, tokenType string) (string, error) {
	claims := jwt.MapClaims{
		"sub":  strconv.FormatInt(userID, 10), // Subject (who the token is for)
		"iat":  time.Now().Unix(),             // Issued At
		"exp":  time.Now().Add(ttl).Unix(),    // Expiration Time
		"type": tokenType,                     // Type of token (access or refresh)
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", errors.Wrap(err, "failed to sign token")
	}

	return signed, nil
}
