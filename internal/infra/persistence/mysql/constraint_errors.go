package mysql

import (
	"strings"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// Helper functions for MySQL error checking
func isUniqueConstraintViolation(err error) bool {
	// Check for GORM's duplicate key error (TranslateError maps MySQL 1062)
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	// Fallback on the raw driver message for drivers that bypass translation
	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "error 1062") ||
		strings.Contains(errMsg, "duplicate entry")
}

func isForeignKeyConstraintViolation(err error) bool {
	// Check for GORM's foreign key violation error (MySQL 1452)
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}

	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "error 1452") ||
		strings.Contains(errMsg, "foreign key constraint fails")
}
