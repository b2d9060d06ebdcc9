package entity

import (
	"time"
)

// Business is a marketplace listing owned by a single user.
// OwnerID never changes after creation; numeric amounts are never negative.
type Business struct {
	ID               int64
	OwnerID          int64
	Name             string
	Description      string
	Investment       float64 // Requested investment amount.
	ProfitPercentage float64 // Offered profit share, non-negative.
	CategoryID       int64   // Reference to the static category catalog.
	MunicipalityID   string  // Reference to the static municipality catalog.
	BusinessModel    string
	MonthlyIncome    float64
	ImageURL         *string

	// Requester-relative state, populated only when the requesting user is known.
	IsSavedByUser *bool
	IsLikedByUser *bool

	// Aggregate counts resolved by correlated subqueries on reads.
	SavedCount *int64
	LikeCount  *int64

	CreatedAt time.Time
	UpdatedAt time.Time
}

// BusinessChanges carries a partial update; nil fields are left untouched.
type BusinessChanges struct {
	Name             *string
	Description      *string
	Investment       *float64
	ProfitPercentage *float64
	CategoryID       *int64
	MunicipalityID   *string
	BusinessModel    *string
	MonthlyIncome    *float64
	ImageURL         *string
}

// IsEmpty reports whether no field is set, i.e. the update carries no work.
func (c *BusinessChanges) IsEmpty() bool {
	if c == nil {
		return true
	}

	return c.Name == nil &&
		c.Description == nil &&
		c.Investment == nil &&
		c.ProfitPercentage == nil &&
		c.CategoryID == nil &&
		c.MunicipalityID == nil &&
		c.BusinessModel == nil &&
		c.MonthlyIncome == nil &&
		c.ImageURL == nil
}
