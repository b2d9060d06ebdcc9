// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/crypto/bcrypt"

	"github.com/DiegoG0477/koru-api/config"
	domainerrors "github.com/DiegoG0477/koru-api/internal/domain/errors"
	"github.com/DiegoG0477/koru-api/internal/domain/service"
)

const defaultMinPasswordLength = 8

// bcryptHasher is a concrete implementation of the PasswordHasher interface using bcrypt.
type bcryptHasher struct {
	cost   int
	policy config.PasswordStrengthConfig
}

// NewBcryptHasher builds the hasher from configuration. The default policy
// requires only a minimum length; the character-class checks are opt-in.
func NewBcryptHasher(cfg *config.Config) service.PasswordHasher {
	cost := bcrypt.DefaultCost
	if cfg != nil && cfg.Auth != nil && cfg.Auth.BcryptCost > 0 {
		cost = cfg.Auth.BcryptCost
	}

	policy := config.PasswordStrengthConfig{MinLength: defaultMinPasswordLength}
	if cfg != nil && cfg.PasswordStrength != nil {
		policy = *cfg.PasswordStrength
		if policy.MinLength <= 0 {
			policy.MinLength = defaultMinPasswordLength
		}
	}

	return &bcryptHasher{cost: cost, policy: policy}
}

// NewBcryptHasherWithCost builds a hasher with an explicit cost and the
// default strength policy. Lower costs keep tests fast.
func NewBcryptHasherWithCost(cost int) service.PasswordHasher {
	return &bcryptHasher{
		cost:   cost,
		policy: config.PasswordStrengthConfig{MinLength: defaultMinPasswordLength},
	}
}

// Hash generates a salted hash from a plaintext password using bcrypt.
// bcrypt automatically handles salt generation.
func (h *bcryptHasher) Hash(password string) (string, error) {
	if err := h.ValidatePasswordStrength(password); err != nil {
		return "", err
	}

	bytes, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)

	return string(bytes), err
}

// Check compares a plaintext password with a bcrypt hash.
func (h *bcryptHasher) Check(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	// err is nil if the password and hash match.
	return err == nil
}

// ValidatePasswordStrength checks the plaintext against the configured policy.
func (h *bcryptHasher) ValidatePasswordStrength(password string) error {
	minLength := h.policy.MinLength
	if minLength <= 0 {
		minLength = defaultMinPasswordLength
	}

	if len(password) < minLength {
		return domainerrors.ErrPasswordStrength.WithDetails(
			"password must be at least " + strconv.Itoa(minLength) + " characters long")
	}

	if h.policy.MaxLength > 0 && len(password) > h.policy.MaxLength {
		return domainerrors.ErrPasswordStrength.WithDetails("password is too long")
	}

	if h.policy.RequireUppercase && !h.hasUppercase(password) {
		return domainerrors.ErrPasswordStrength.WithDetails("password must contain at least one uppercase letter")
	}
	if h.policy.RequireLowercase && !h.hasLowercase(password) {
		return domainerrors.ErrPasswordStrength.WithDetails("password must contain at least one lowercase letter")
	}
	if h.policy.RequireNumbers && !h.hasNumbers(password) {
		return domainerrors.ErrPasswordStrength.WithDetails("password must contain at least one number")
	}
	if h.policy.RequireSpecial && !h.hasSpecialChars(password) {
		return domainerrors.ErrPasswordStrength.WithDetails("password must contain at least one special character")
	}

	if h.containsForbiddenWords(password, forbiddenPasswordWords) {
		return domainerrors.ErrPasswordForbiddenWords
	}

	return nil
}

// forbiddenPasswordWords are rejected regardless of the configured policy.
var forbiddenPasswordWords = []string{"password", "contraseña", "qwerty"}

func (h *bcryptHasher) hasUppercase(s string) bool {
	return strings.ContainsFunc(s, unicode.IsUpper)
}

func (h *bcryptHasher) hasLowercase(s string) bool {
	return strings.ContainsFunc(s, unicode.IsLower)
}

func (h *bcryptHasher) hasNumbers(s string) bool {
	return strings.ContainsFunc(s, unicode.IsDigit)
}

func (h *bcryptHasher) hasSpecialChars(s string) bool {
	return strings.ContainsFunc(s, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

func (h *bcryptHasher) containsForbiddenWords(password string, words []string) bool {
	lowered := strings.ToLower(password)
	for _, word := range words {
		if strings.Contains(lowered, word) {
			return true
		}
	}

	return false
}
