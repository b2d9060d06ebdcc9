package usecase

import (
	"context"

	"github.com/DiegoG0477/koru-api/internal/domain/entity"
	"github.com/DiegoG0477/koru-api/internal/domain/service"
)

// MineFilter selects which relation the "my businesses" listing follows.
type MineFilter string

// Recognized MineFilter values.
const (
	MineOwned     MineFilter = "OWNED"
	MinePartnered MineFilter = "PARTNERED"
	MineSaved     MineFilter = "SAVED"
)

// --- Input DTOs ---

// CreateBusinessInput defines the data required to publish a new business.
// Image is optional; when present it is uploaded before the row is written.
type CreateBusinessInput struct {
	Name             string
	Description      string
	Investment       float64
	ProfitPercentage float64
	CategoryID       int64
	MunicipalityID   string
	BusinessModel    string
	MonthlyIncome    float64
	Image            *service.ImageUpload
}

// UpdateBusinessInput carries a partial update; nil fields are left untouched.
type UpdateBusinessInput struct {
	Name             *string
	Description      *string
	Investment       *float64
	ProfitPercentage *float64
	CategoryID       *int64
	MunicipalityID   *string
	BusinessModel    *string
	MonthlyIncome    *float64
	Image            *service.ImageUpload
}

// IsEmpty reports whether the update carries no work at all.
func (i *UpdateBusinessInput) IsEmpty() bool {
	if i == nil {
		return true
	}

	return i.Name == nil &&
		i.Description == nil &&
		i.Investment == nil &&
		i.ProfitPercentage == nil &&
		i.CategoryID == nil &&
		i.MunicipalityID == nil &&
		i.BusinessModel == nil &&
		i.MonthlyIncome == nil &&
		i.Image == nil
}

// FeedInput carries the pagination and filter parameters for the public feed.
type FeedInput struct {
	Page          int
	Limit         int
	CategoryID    *int64
	MaxInvestment *float64
	Nearby        *string
}

// --- Output DTOs ---

// BusinessWithOwner pairs a business with a compact view of its owner.
type BusinessWithOwner struct {
	Business *entity.Business
	Owner    *entity.UserSummary
}

// FeedPage is one page of the public feed.
type FeedPage struct {
	Items []*BusinessWithOwner
	Page  entity.PageInfo
}

// BusinessUsecase defines the interface for business-related operations.
type BusinessUsecase interface {
	// Create publishes a new business owned by ownerID.
	Create(ctx context.Context, ownerID int64, input *CreateBusinessInput) (*entity.Business, error)

	// GetByID returns a single business with its owner. When requestingUserID
	// is known the requester-relative flags are populated.
	GetByID(ctx context.Context, id int64, requestingUserID *int64) (*BusinessWithOwner, error)

	// GetFeed returns one page of the public feed, newest first.
	GetFeed(ctx context.Context, input *FeedInput, requestingUserID *int64) (*FeedPage, error)

	// GetMine lists the caller's businesses according to the filter.
	GetMine(ctx context.Context, userID int64, filter MineFilter) ([]*entity.Business, error)

	// Update applies a partial update; only the owner may do this.
	Update(ctx context.Context, id, requesterID int64, input *UpdateBusinessInput) (*entity.Business, error)

	// Delete removes a business; only the owner may do this.
	Delete(ctx context.Context, id, requesterID int64) error

	// InitiatePartnership records the caller's partnership interest.
	// Repeating the call is a no-op that still succeeds.
	InitiatePartnership(ctx context.Context, userID, businessID int64) error

	// ToggleSave flips the caller's saved mark and returns the new state.
	ToggleSave(ctx context.Context, userID, businessID int64) (bool, error)

	// ToggleLike flips the caller's like and returns the new state.
	ToggleLike(ctx context.Context, userID, businessID int64) (bool, error)
}
