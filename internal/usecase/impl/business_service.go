package impl

import (
	"context"
	"log/slog"

	"github.com/DiegoG0477/koru-api/config"
	deliverycontext "github.com/DiegoG0477/koru-api/internal/delivery/context"
	"github.com/DiegoG0477/koru-api/internal/domain/entity"
	domainerrors "github.com/DiegoG0477/koru-api/internal/domain/errors"
	"github.com/DiegoG0477/koru-api/internal/domain/repository"
	"github.com/DiegoG0477/koru-api/internal/domain/service"
	"github.com/DiegoG0477/koru-api/internal/usecase"

	"github.com/pkg/errors"
)

// businessImageFolder is the storage prefix for business images.
const businessImageFolder = "businesses"

// businessService implements the BusinessUsecase interface.
// Single-statement reads go through the plain repositories; multi-statement
// mutations go through the transaction manager.
type businessService struct {
	txManager  repository.TransactionManager
	businesses repository.BusinessRepository
	users      repository.UserRepository
	storage    service.StorageService
	feedCfg    config.FeedConfig
	logger     *slog.Logger
}

// NewBusinessService is the constructor for businessService.
func NewBusinessService(
	txManager repository.TransactionManager,
	businesses repository.BusinessRepository,
	users repository.UserRepository,
	storage service.StorageService,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.BusinessUsecase {
	feedCfg := config.FeedConfig{}
	if cfg != nil && cfg.Feed != nil {
		feedCfg = *cfg.Feed
	}

	return &businessService{
		txManager:  txManager,
		businesses: businesses,
		users:      users,
		storage:    storage,
		feedCfg:    feedCfg,
		logger:     logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *businessService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Create publishes a new business. The image, when present, is uploaded
// before the row is written so the stored URL is final.
func (srv *businessService) Create(ctx context.Context, ownerID int64, input *usecase.CreateBusinessInput) (*entity.Business, error) {
	srv.log(ctx).Info("Creating business", slog.Int64("ownerID", ownerID), slog.String("name", input.Name))

	business := &entity.Business{
		OwnerID:          ownerID,
		Name:             input.Name,
		Description:      input.Description,
		Investment:       input.Investment,
		ProfitPercentage: input.ProfitPercentage,
		CategoryID:       input.CategoryID,
		MunicipalityID:   input.MunicipalityID,
		BusinessModel:    input.BusinessModel,
		MonthlyIncome:    input.MonthlyIncome,
	}

	if input.Image != nil {
		url, err := srv.storage.UploadImage(ctx, businessImageFolder, input.Image)
		if err != nil {
			return nil, errors.Wrap(domainerrors.ErrStorageFailed, err.Error())
		}
		business.ImageURL = &url
	}

	if err := srv.businesses.Create(ctx, business); err != nil {
		return nil, errors.Wrap(err, "failed to create business")
	}

	srv.log(ctx).Info("Business created", slog.Int64("businessID", business.ID))

	return business, nil
}

// GetByID returns a single business together with its owner summary.
func (srv *businessService) GetByID(ctx context.Context, id int64, requestingUserID *int64) (*usecase.BusinessWithOwner, error) {
	business, err := srv.businesses.FindByID(ctx, id, requestingUserID)
	if err != nil {
		if errors.Is(err, repository.ErrBusinessNotFound) {
			return nil, errors.Wrap(domainerrors.ErrBusinessNotFound, "business not found")
		}

		return nil, errors.Wrap(err, "failed to load business")
	}

	return &usecase.BusinessWithOwner{
		Business: business,
		Owner:    srv.ownerSummary(ctx, business.OwnerID),
	}, nil
}

// GetFeed returns one page of the public feed. The limit is clamped to the
// configured maximum so a client cannot request unbounded pages.
func (srv *businessService) GetFeed(ctx context.Context, input *usecase.FeedInput, requestingUserID *int64) (*usecase.FeedPage, error) {
	page := input.Page
	if page < 1 {
		page = 1
	}

	limit := input.Limit
	if limit <= 0 {
		limit = srv.feedCfg.DefaultLimit
	}
	if srv.feedCfg.MaxLimit > 0 && limit > srv.feedCfg.MaxLimit {
		limit = srv.feedCfg.MaxLimit
	}

	filter := repository.FeedFilter{
		CategoryID:    input.CategoryID,
		MaxInvestment: input.MaxInvestment,
		Nearby:        input.Nearby,
	}

	result, err := srv.businesses.GetFeed(ctx, filter, page, limit, requestingUserID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load feed")
	}

	// Owner rows repeat across a page; resolve each owner once.
	owners := make(map[int64]*entity.UserSummary, len(result.Items))
	items := make([]*usecase.BusinessWithOwner, 0, len(result.Items))
	for _, business := range result.Items {
		owner, ok := owners[business.OwnerID]
		if !ok {
			owner = srv.ownerSummary(ctx, business.OwnerID)
			owners[business.OwnerID] = owner
		}

		items = append(items, &usecase.BusinessWithOwner{Business: business, Owner: owner})
	}

	return &usecase.FeedPage{Items: items, Page: result.Page}, nil
}

// GetMine lists the caller's businesses by ownership, partnership, or save.
func (srv *businessService) GetMine(ctx context.Context, userID int64, filter usecase.MineFilter) ([]*entity.Business, error) {
	srv.log(ctx).Debug("Listing own businesses", slog.Int64("userID", userID), slog.String("filter", string(filter)))

	var (
		businesses []*entity.Business
		err        error
	)

	switch filter {
	case usecase.MineOwned:
		businesses, err = srv.businesses.FindByOwner(ctx, userID)
	case usecase.MinePartnered:
		businesses, err = srv.businesses.FindPartnered(ctx, userID)
	case usecase.MineSaved:
		businesses, err = srv.businesses.FindSaved(ctx, userID)
	default:
		return nil, errors.Wrap(
			domainerrors.ErrValidationFailed.WithDetails("filter must be one of OWNED, PARTNERED, SAVED"),
			"unknown filter",
		)
	}

	if err != nil {
		return nil, errors.Wrap(err, "failed to list businesses")
	}

	return businesses, nil
}

// Update applies a partial update. Only the owner may update, and an empty
// change set performs no write at all.
func (srv *businessService) Update(ctx context.Context, id, requesterID int64, input *usecase.UpdateBusinessInput) (*entity.Business, error) {
	srv.log(ctx).Info("Updating business", slog.Int64("businessID", id), slog.Int64("requesterID", requesterID))

	// An empty change set performs no write, but ownership is still enforced
	// so the response matches a non-empty update.
	if input.IsEmpty() {
		current, err := srv.businesses.FindByID(ctx, id, nil)
		if err != nil {
			if errors.Is(err, repository.ErrBusinessNotFound) {
				return nil, errors.Wrap(domainerrors.ErrBusinessNotFound, "business not found")
			}

			return nil, errors.Wrap(err, "failed to load business")
		}
		if current.OwnerID != requesterID {
			return nil, errors.Wrap(domainerrors.ErrForbidden, "only the owner can update a business")
		}

		return current, nil
	}

	changes := &entity.BusinessChanges{
		Name:             input.Name,
		Description:      input.Description,
		Investment:       input.Investment,
		ProfitPercentage: input.ProfitPercentage,
		CategoryID:       input.CategoryID,
		MunicipalityID:   input.MunicipalityID,
		BusinessModel:    input.BusinessModel,
		MonthlyIncome:    input.MonthlyIncome,
	}

	if input.Image != nil {
		url, err := srv.storage.UploadImage(ctx, businessImageFolder, input.Image)
		if err != nil {
			return nil, errors.Wrap(domainerrors.ErrStorageFailed, err.Error())
		}
		changes.ImageURL = &url
	}

	var updated *entity.Business

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		businessRepo := repoFactory.NewBusinessRepository()

		result, err := businessRepo.Update(ctx, id, requesterID, changes)
		if err != nil {
			switch {
			case errors.Is(err, repository.ErrBusinessNotFound):
				return errors.Wrap(domainerrors.ErrBusinessNotFound, "business not found")
			case errors.Is(err, repository.ErrNotOwner):
				return errors.Wrap(domainerrors.ErrForbidden, "only the owner can update a business")
			case errors.Is(err, repository.ErrStaleUpdate):
				return errors.Wrap(domainerrors.ErrConcurrentUpdate, "update affected no rows")
			}

			return errors.Wrap(err, "failed to update business")
		}
		updated = result

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to update business")
	}

	return updated, nil
}

// Delete removes a business owned by the requester.
func (srv *businessService) Delete(ctx context.Context, id, requesterID int64) error {
	srv.log(ctx).Info("Deleting business", slog.Int64("businessID", id), slog.Int64("requesterID", requesterID))

	// Existence is checked first so a missing business and a foreign business
	// report different errors.
	if _, err := srv.businesses.FindByID(ctx, id, nil); err != nil {
		if errors.Is(err, repository.ErrBusinessNotFound) {
			return errors.Wrap(domainerrors.ErrBusinessNotFound, "business not found")
		}

		return errors.Wrap(err, "failed to load business")
	}

	deleted, err := srv.businesses.Delete(ctx, id, requesterID)
	if err != nil {
		return errors.Wrap(err, "failed to delete business")
	}
	if !deleted {
		return errors.Wrap(domainerrors.ErrForbidden, "only the owner can delete a business")
	}

	return nil
}

// InitiatePartnership records partnership interest. Repeating the call
// succeeds without writing a second row.
func (srv *businessService) InitiatePartnership(ctx context.Context, userID, businessID int64) error {
	srv.log(ctx).Info("Initiating partnership", slog.Int64("userID", userID), slog.Int64("businessID", businessID))

	if _, err := srv.businesses.InitiatePartnership(ctx, userID, businessID); err != nil {
		if errors.Is(err, repository.ErrBusinessNotFound) {
			return errors.Wrap(domainerrors.ErrBusinessNotFound, "business not found")
		}

		return errors.Wrap(err, "failed to initiate partnership")
	}

	return nil
}

// ToggleSave flips the caller's saved mark inside a single transaction.
func (srv *businessService) ToggleSave(ctx context.Context, userID, businessID int64) (bool, error) {
	return srv.toggle(ctx, userID, businessID, func(repo repository.BusinessRepository) (bool, error) {
		return repo.ToggleSave(ctx, userID, businessID)
	})
}

// ToggleLike flips the caller's like inside a single transaction.
func (srv *businessService) ToggleLike(ctx context.Context, userID, businessID int64) (bool, error) {
	return srv.toggle(ctx, userID, businessID, func(repo repository.BusinessRepository) (bool, error) {
		return repo.ToggleLike(ctx, userID, businessID)
	})
}

func (srv *businessService) toggle(ctx context.Context, userID, businessID int64, fn func(repo repository.BusinessRepository) (bool, error)) (bool, error) {
	srv.log(ctx).Debug("Toggling relation", slog.Int64("userID", userID), slog.Int64("businessID", businessID))

	var newState bool

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		state, err := fn(repoFactory.NewBusinessRepository())
		if err != nil {
			if errors.Is(err, repository.ErrBusinessNotFound) {
				return errors.Wrap(domainerrors.ErrBusinessNotFound, "business not found")
			}

			return errors.Wrap(err, "failed to toggle relation")
		}
		newState = state

		return nil
	})
	if err != nil {
		return false, errors.Wrap(err, "failed to toggle relation")
	}

	return newState, nil
}

// ownerSummary resolves a compact owner view. A missing owner row is not an
// error for the listing itself.
func (srv *businessService) ownerSummary(ctx context.Context, ownerID int64) *entity.UserSummary {
	owner, err := srv.users.FindByID(ctx, ownerID)
	if err != nil {
		srv.log(ctx).Warn("Failed to resolve business owner", slog.Int64("ownerID", ownerID), slog.Any("error", err))

		return nil
	}

	return owner.Summary()
}
