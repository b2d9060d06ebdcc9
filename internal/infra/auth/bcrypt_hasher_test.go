package auth

import (
	"testing"

	"github.com/DiegoG0477/koru-api/config"
	domainerrors "github.com/DiegoG0477/koru-api/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher_Hash(t *testing.T) {
	hasher := NewBcryptHasherWithCost(bcrypt.MinCost)

	password := "12345678"
	hash, err := hasher.Hash(password)
	assert.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, password, hash)

	// Verify the hash can be checked
	assert.True(t, hasher.Check(password, hash))
}

func TestBcryptHasher_HashRejectsWeakPassword(t *testing.T) {
	hasher := NewBcryptHasherWithCost(bcrypt.MinCost)

	weakPasswords := []string{
		"",        // Empty
		"123",     // Too short
		"1234567", // One short of the minimum
	}

	for _, weakPassword := range weakPasswords {
		_, err := hasher.Hash(weakPassword)
		assert.Error(t, err, "expected error for weak password: %q", weakPassword)
	}
}

func TestBcryptHasher_Check(t *testing.T) {
	hasher := NewBcryptHasherWithCost(bcrypt.MinCost)
	password := "StrongPass123!"

	hash, err := hasher.Hash(password)
	assert.NoError(t, err)

	// Test correct password
	assert.True(t, hasher.Check(password, hash))

	// Test incorrect password
	assert.False(t, hasher.Check("WrongPassword123!", hash))

	// Test empty password
	assert.False(t, hasher.Check("", hash))

	// Test with invalid hash
	assert.False(t, hasher.Check(password, "invalid_hash"))
}

func TestBcryptHasher_ValidatePasswordStrength_DefaultPolicy(t *testing.T) {
	hasher := NewBcryptHasherWithCost(bcrypt.MinCost)

	// The default policy only enforces the minimum length.
	validPasswords := []string{
		"12345678",
		"solo-minusculas",
		"StrongPass123!",
	}

	for _, password := range validPasswords {
		err := hasher.ValidatePasswordStrength(password)
		assert.NoError(t, err, "expected no error for password: %q", password)
	}

	err := hasher.ValidatePasswordStrength("short")
	assert.Error(t, err)

	var appErr domainerrors.AppError
	assert.True(t, errors.As(err, &appErr))
	assert.Equal(t, domainerrors.ErrPasswordStrength.ErrorCode(), appErr.ErrorCode())
}

func TestBcryptHasher_ValidatePasswordStrength_StrictPolicy(t *testing.T) {
	cfg := &config.Config{
		PasswordStrength: &config.PasswordStrengthConfig{
			MinLength:        8,
			RequireUppercase: true,
			RequireLowercase: true,
			RequireNumbers:   true,
			RequireSpecial:   true,
		},
	}
	hasher := NewBcryptHasher(cfg)

	testCases := []struct {
		password    string
		expectedErr string
	}{
		{"123", "at least 8 characters"},
		{"NOUPPER123!" /* no lowercase */, "lowercase letter"},
		{"nolower123!", "uppercase letter"},
		{"NoNumbersHere!", "number"},
		{"NoSpecial123", "special character"},
	}

	for _, tc := range testCases {
		err := hasher.ValidatePasswordStrength(tc.password)
		assert.Error(t, err, "expected error for password: %q", tc.password)

		var appErr domainerrors.AppError
		assert.True(t, errors.As(err, &appErr))
		assert.Contains(t, appErr.Details(), tc.expectedErr)
	}

	assert.NoError(t, hasher.ValidatePasswordStrength("Valid$Phrase2024"))
}

func TestBcryptHasher_ForbiddenWords(t *testing.T) {
	hasher := NewBcryptHasherWithCost(bcrypt.MinCost)

	err := hasher.ValidatePasswordStrength("mypassword99")
	assert.True(t, errors.Is(err, domainerrors.ErrPasswordForbiddenWords))

	err = hasher.ValidatePasswordStrength("Contraseña2024")
	assert.True(t, errors.Is(err, domainerrors.ErrPasswordForbiddenWords))
}

func TestBcryptHasher_WithCustomCost(t *testing.T) {
	customCost := 6 // Lower cost for faster testing
	hasher := NewBcryptHasherWithCost(customCost)

	password := "StrongPass123!"
	hash, err := hasher.Hash(password)
	assert.NoError(t, err)
	assert.NotEmpty(t, hash)

	// Verify the hash uses the correct cost
	cost, err := bcrypt.Cost([]byte(hash))
	assert.NoError(t, err)
	assert.Equal(t, customCost, cost)

	assert.True(t, hasher.Check(password, hash))
}

func TestBcryptHasher_PasswordStrengthHelpers(t *testing.T) {
	hasher := &bcryptHasher{}

	assert.True(t, hasher.hasUppercase("Password"))
	assert.False(t, hasher.hasUppercase("password"))

	assert.True(t, hasher.hasLowercase("Password"))
	assert.False(t, hasher.hasLowercase("PASSWORD"))

	assert.True(t, hasher.hasNumbers("Password123"))
	assert.False(t, hasher.hasNumbers("Password"))

	assert.True(t, hasher.hasSpecialChars("Password!"))
	assert.False(t, hasher.hasSpecialChars("Password"))

	forbiddenWords := []string{"password", "admin"}
	assert.True(t, hasher.containsForbiddenWords("MyPassword123", forbiddenWords))
	assert.True(t, hasher.containsForbiddenWords("AdminUser", forbiddenWords))
	assert.False(t, hasher.containsForbiddenWords("SecurePass123", forbiddenWords))
}
