package repository

import (
	"context"
	"errors"

	"github.com/DiegoG0477/koru-api/internal/domain/entity"
)

// ErrBusinessNotFound is a domain-specific error returned when a business is not found.
var ErrBusinessNotFound = errors.New("business not found")

// ErrNotOwner is returned when a mutation is attempted by someone other than the owner.
var ErrNotOwner = errors.New("requester does not own this business")

// ErrStaleUpdate is returned when an update matched the row but affected nothing,
// which indicates a lost race rather than a hard database failure.
var ErrStaleUpdate = errors.New("update affected no rows")

// FeedFilter holds the recognized feed filters. Nil fields are omitted from
// the WHERE clause entirely, never defaulted.
type FeedFilter struct {
	CategoryID    *int64
	MaxInvestment *float64
	// Nearby is accepted on the wire but not implemented; it never reaches SQL.
	Nearby *string
}

// BusinessRepository defines the standard operations for business persistence.
type BusinessRepository interface {
	// Create persists a new business and assigns its generated ID and timestamps.
	Create(ctx context.Context, business *entity.Business) error

	// FindByID retrieves a single business. When requestingUserID is non-nil the
	// requester-relative flags (IsLikedByUser/IsSavedByUser) are resolved; the
	// aggregate like/save counts are resolved for every caller.
	FindByID(ctx context.Context, id int64, requestingUserID *int64) (*entity.Business, error)

	// GetFeed returns one page of the feed, ordered by creation time descending.
	// The total count is computed over the same WHERE clause before fetching.
	GetFeed(ctx context.Context, filter FeedFilter, page, limit int, requestingUserID *int64) (*entity.BusinessPage, error)

	// FindByOwner lists businesses owned by the given user, newest first.
	FindByOwner(ctx context.Context, ownerID int64) ([]*entity.Business, error)

	// FindPartnered lists businesses the user has partnered with, ordered by
	// partnership initiation time descending.
	FindPartnered(ctx context.Context, userID int64) ([]*entity.Business, error)

	// FindSaved lists businesses the user has saved, ordered by save time
	// descending, with IsSavedByUser fixed to true.
	FindSaved(ctx context.Context, userID int64) ([]*entity.Business, error)

	// Update applies a partial update after confirming existence and ownership.
	// Returns ErrBusinessNotFound, ErrNotOwner, or ErrStaleUpdate accordingly.
	Update(ctx context.Context, id, requesterID int64, changes *entity.BusinessChanges) (*entity.Business, error)

	// Delete removes a business owned by ownerID. Returns false when nothing
	// matched (absent or not owned), without distinguishing the two.
	Delete(ctx context.Context, id, ownerID int64) (bool, error)

	// InitiatePartnership records partnership interest. Duplicate interest is a
	// no-op and still reports success.
	InitiatePartnership(ctx context.Context, userID, businessID int64) (bool, error)

	// ToggleSave flips the saved relation and returns the new state.
	ToggleSave(ctx context.Context, userID, businessID int64) (bool, error)

	// ToggleLike flips the liked relation and returns the new state.
	ToggleLike(ctx context.Context, userID, businessID int64) (bool, error)
}
