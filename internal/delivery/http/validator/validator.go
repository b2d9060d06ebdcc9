// Package validator adapts go-playground/validator to Echo's Validator interface.
package validator

import (
	domainerrors "github.com/DiegoG0477/koru-api/internal/domain/errors"

	playground "github.com/go-playground/validator/v10"
)

// CustomValidator wraps a shared validator instance for Echo.
type CustomValidator struct {
	validate *playground.Validate
}

// New creates the validator used by the HTTP server.
func New() *CustomValidator {
	return &CustomValidator{validate: playground.New()}
}

// Validate implements echo.Validator. Struct tag violations surface as a
// single validation error carrying the field details.
func (v *CustomValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return nil
}
