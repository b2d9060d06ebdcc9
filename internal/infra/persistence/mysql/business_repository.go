package mysql

import (
	"context"
	"strings"
	"time"

	"github.com/DiegoG0477/koru-api/internal/domain/entity"
	domainerrors "github.com/DiegoG0477/koru-api/internal/domain/errors"
	"github.com/DiegoG0477/koru-api/internal/domain/repository"
	"github.com/DiegoG0477/koru-api/internal/errors"
	"github.com/DiegoG0477/koru-api/internal/infra/persistence/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type businessRepository struct {
	db *gorm.DB
}

// NewBusinessRepository creates a business repository bound to the given GORM handle.
// The handle may be the shared connection or an open transaction.
func NewBusinessRepository(db *gorm.DB) repository.BusinessRepository {
	return &businessRepository{db: db}
}

// businessRow is the scan target for queries that decorate a business with
// aggregate counts and requester-relative flags. The flag columns are only
// selected when a requesting user is known; otherwise they stay zero-valued.
type businessRow struct {
	ID               int64
	OwnerID          int64
	Name             string
	Description      string
	Investment       float64
	ProfitPercentage float64
	CategoryID       int64
	MunicipalityID   string
	BusinessModel    string
	MonthlyIncome    float64
	ImageURL         *string
	CreatedAt        time.Time
	UpdatedAt        time.Time
	LikeCount        int64
	SavedCount       int64
	IsLiked          bool
	IsSaved          bool
}

const businessBaseColumns = `b.id, b.owner_id, b.name, b.description, b.investment,
	b.profit_percentage, b.category_id, b.municipality_id, b.business_model,
	b.monthly_income, b.image_url, b.created_at, b.updated_at,
	(SELECT COUNT(*) FROM user_liked_businesses ulb WHERE ulb.business_id = b.id) AS like_count,
	(SELECT COUNT(*) FROM user_saved_businesses usb WHERE usb.business_id = b.id) AS saved_count`

const businessViewerColumns = `,
	EXISTS(SELECT 1 FROM user_liked_businesses ulb2 WHERE ulb2.business_id = b.id AND ulb2.user_id = ?) AS is_liked,
	EXISTS(SELECT 1 FROM user_saved_businesses usb2 WHERE usb2.business_id = b.id AND usb2.user_id = ?) AS is_saved`

func (r *businessRepository) Create(ctx context.Context, business *entity.Business) error {
	m := businessFromDomain(business)

	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return errors.Wrap(
				domainerrors.ErrValidationFailed.WithDetails("referenced category or municipality does not exist"),
				"invalid business reference",
			)
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create business")
	}

	business.ID = m.ID
	business.CreatedAt = m.CreatedAt
	business.UpdatedAt = m.UpdatedAt

	return nil
}

func (r *businessRepository) FindByID(ctx context.Context, id int64, requestingUserID *int64) (*entity.Business, error) {
	query := "SELECT " + businessBaseColumns
	args := make([]any, 0, 3)

	if requestingUserID != nil {
		query += businessViewerColumns
		args = append(args, *requestingUserID, *requestingUserID)
	}

	query += " FROM businesses b WHERE b.id = ?"
	args = append(args, id)

	var rows []businessRow
	if err := r.db.WithContext(ctx).Raw(query, args...).Scan(&rows).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to query business")
	}
	if len(rows) == 0 {
		return nil, repository.ErrBusinessNotFound
	}

	return rowToDomain(&rows[0], requestingUserID != nil), nil
}

func (r *businessRepository) GetFeed(ctx context.Context, filter repository.FeedFilter, page, limit int, requestingUserID *int64) (*entity.BusinessPage, error) {
	conds := make([]string, 0, 2)
	condArgs := make([]any, 0, 2)

	if filter.CategoryID != nil {
		conds = append(conds, "b.category_id = ?")
		condArgs = append(condArgs, *filter.CategoryID)
	}
	if filter.MaxInvestment != nil {
		conds = append(conds, "b.investment <= ?")
		condArgs = append(condArgs, *filter.MaxInvestment)
	}

	where := ""
	if len(conds) > 0 {
		where = " WHERE " + strings.Join(conds, " AND ")
	}

	// The count runs over the same WHERE clause as the page query so the
	// pagination metadata stays consistent with the filtered result set.
	var totalItems int64
	countQuery := "SELECT COUNT(*) FROM businesses b" + where
	if err := r.db.WithContext(ctx).Raw(countQuery, condArgs...).Scan(&totalItems).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to count feed businesses")
	}

	if totalItems == 0 {
		return &entity.BusinessPage{
			Items: []*entity.Business{},
			Page:  entity.NewPageInfo(page, limit, 0, 0),
		}, nil
	}

	query := "SELECT " + businessBaseColumns
	args := make([]any, 0, len(condArgs)+4)

	if requestingUserID != nil {
		query += businessViewerColumns
		args = append(args, *requestingUserID, *requestingUserID)
	}

	query += " FROM businesses b" + where + " ORDER BY b.created_at DESC LIMIT ? OFFSET ?"
	args = append(args, condArgs...)
	args = append(args, limit, (page-1)*limit)

	var rows []businessRow
	if err := r.db.WithContext(ctx).Raw(query, args...).Scan(&rows).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to query feed businesses")
	}

	items := make([]*entity.Business, 0, len(rows))
	for i := range rows {
		items = append(items, rowToDomain(&rows[i], requestingUserID != nil))
	}

	return &entity.BusinessPage{
		Items: items,
		Page:  entity.NewPageInfo(page, limit, totalItems, len(items)),
	}, nil
}

func (r *businessRepository) FindByOwner(ctx context.Context, ownerID int64) ([]*entity.Business, error) {
	var models []model.BusinessModel
	err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Find(&models).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to query owned businesses")
	}

	return modelsToDomain(models), nil
}

func (r *businessRepository) FindPartnered(ctx context.Context, userID int64) ([]*entity.Business, error) {
	var models []model.BusinessModel
	err := r.db.WithContext(ctx).
		Table("businesses").
		Select("businesses.*").
		Joins("JOIN partnerships p ON p.business_id = businesses.id").
		Where("p.user_id = ?", userID).
		Order("p.initiated_at DESC").
		Find(&models).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to query partnered businesses")
	}

	return modelsToDomain(models), nil
}

func (r *businessRepository) FindSaved(ctx context.Context, userID int64) ([]*entity.Business, error) {
	var models []model.BusinessModel
	err := r.db.WithContext(ctx).
		Table("businesses").
		Select("businesses.*").
		Joins("JOIN user_saved_businesses s ON s.business_id = businesses.id").
		Where("s.user_id = ?", userID).
		Order("s.saved_at DESC").
		Find(&models).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to query saved businesses")
	}

	saved := true
	businesses := modelsToDomain(models)
	for _, b := range businesses {
		b.IsSavedByUser = &saved
	}

	return businesses, nil
}

func (r *businessRepository) Update(ctx context.Context, id, requesterID int64, changes *entity.BusinessChanges) (*entity.Business, error) {
	var current model.BusinessModel
	err := r.db.WithContext(ctx).First(&current, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrBusinessNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to load business for update")
	}

	if current.OwnerID != requesterID {
		return nil, repository.ErrNotOwner
	}

	sets := businessChangesToMap(changes)
	if len(sets) == 0 {
		return businessToDomain(&current), nil
	}

	// The owner predicate is repeated in the UPDATE itself so a concurrent
	// ownership change between the read and the write cannot slip through.
	res := r.db.WithContext(ctx).
		Model(&model.BusinessModel{}).
		Where("id = ? AND owner_id = ?", id, requesterID).
		Updates(sets)
	if res.Error != nil {
		return nil, domainerrors.NewDatabaseExecuteError(res.Error, "failed to update business")
	}
	if res.RowsAffected == 0 {
		return nil, repository.ErrStaleUpdate
	}

	var updated model.BusinessModel
	if err := r.db.WithContext(ctx).First(&updated, "id = ?", id).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to reload business after update")
	}

	return businessToDomain(&updated), nil
}

func (r *businessRepository) Delete(ctx context.Context, id, ownerID int64) (bool, error) {
	res := r.db.WithContext(ctx).
		Where("id = ? AND owner_id = ?", id, ownerID).
		Delete(&model.BusinessModel{})
	if res.Error != nil {
		return false, domainerrors.NewDatabaseExecuteError(res.Error, "failed to delete business")
	}

	return res.RowsAffected > 0, nil
}

func (r *businessRepository) InitiatePartnership(ctx context.Context, userID, businessID int64) (bool, error) {
	row := model.PartnershipModel{UserID: userID, BusinessID: businessID}

	// Duplicate interest hits the composite primary key and becomes a no-op.
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&row).Error
	if err != nil {
		if isForeignKeyConstraintViolation(err) {
			return false, repository.ErrBusinessNotFound
		}

		return false, domainerrors.NewDatabaseExecuteError(err, "failed to record partnership")
	}

	return true, nil
}

func (r *businessRepository) ToggleSave(ctx context.Context, userID, businessID int64) (bool, error) {
	return r.toggleRelation(ctx, userID, businessID,
		&model.UserSavedBusinessModel{UserID: userID, BusinessID: businessID})
}

func (r *businessRepository) ToggleLike(ctx context.Context, userID, businessID int64) (bool, error) {
	return r.toggleRelation(ctx, userID, businessID,
		&model.UserLikedBusinessModel{UserID: userID, BusinessID: businessID})
}

// toggleRelation flips a user/business join row. Deleting first makes the
// outcome derivable from statement results alone: a removed row means the new
// state is off, otherwise the insert turns it on.
func (r *businessRepository) toggleRelation(ctx context.Context, userID, businessID int64, row any) (bool, error) {
	res := r.db.WithContext(ctx).
		Where("user_id = ? AND business_id = ?", userID, businessID).
		Delete(row)
	if res.Error != nil {
		return false, domainerrors.NewDatabaseExecuteError(res.Error, "failed to remove relation")
	}
	if res.RowsAffected > 0 {
		return false, nil
	}

	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(row).Error
	if err != nil {
		if isForeignKeyConstraintViolation(err) {
			return false, repository.ErrBusinessNotFound
		}

		return false, domainerrors.NewDatabaseExecuteError(err, "failed to insert relation")
	}

	return true, nil
}

func businessFromDomain(b *entity.Business) *model.BusinessModel {
	return &model.BusinessModel{
		ID:               b.ID,
		OwnerID:          b.OwnerID,
		Name:             b.Name,
		Description:      b.Description,
		Investment:       b.Investment,
		ProfitPercentage: b.ProfitPercentage,
		CategoryID:       b.CategoryID,
		MunicipalityID:   b.MunicipalityID,
		BusinessModel:    b.BusinessModel,
		MonthlyIncome:    b.MonthlyIncome,
		ImageURL:         b.ImageURL,
	}
}

func businessToDomain(m *model.BusinessModel) *entity.Business {
	return &entity.Business{
		ID:               m.ID,
		OwnerID:          m.OwnerID,
		Name:             m.Name,
		Description:      m.Description,
		Investment:       m.Investment,
		ProfitPercentage: m.ProfitPercentage,
		CategoryID:       m.CategoryID,
		MunicipalityID:   m.MunicipalityID,
		BusinessModel:    m.BusinessModel,
		MonthlyIncome:    m.MonthlyIncome,
		ImageURL:         m.ImageURL,
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}
}

func modelsToDomain(models []model.BusinessModel) []*entity.Business {
	out := make([]*entity.Business, 0, len(models))
	for i := range models {
		out = append(out, businessToDomain(&models[i]))
	}

	return out
}

func rowToDomain(row *businessRow, withViewer bool) *entity.Business {
	b := &entity.Business{
		ID:               row.ID,
		OwnerID:          row.OwnerID,
		Name:             row.Name,
		Description:      row.Description,
		Investment:       row.Investment,
		ProfitPercentage: row.ProfitPercentage,
		CategoryID:       row.CategoryID,
		MunicipalityID:   row.MunicipalityID,
		BusinessModel:    row.BusinessModel,
		MonthlyIncome:    row.MonthlyIncome,
		ImageURL:         row.ImageURL,
		CreatedAt:        row.CreatedAt,
		UpdatedAt:        row.UpdatedAt,
	}

	likeCount := row.LikeCount
	savedCount := row.SavedCount
	b.LikeCount = &likeCount
	b.SavedCount = &savedCount

	if withViewer {
		isLiked := row.IsLiked
		isSaved := row.IsSaved
		b.IsLikedByUser = &isLiked
		b.IsSavedByUser = &isSaved
	}

	return b
}

func businessChangesToMap(changes *entity.BusinessChanges) map[string]any {
	sets := make(map[string]any)
	if changes == nil {
		return sets
	}

	if changes.Name != nil {
		sets["name"] = *changes.Name
	}
	if changes.Description != nil {
		sets["description"] = *changes.Description
	}
	if changes.Investment != nil {
		sets["investment"] = *changes.Investment
	}
	if changes.ProfitPercentage != nil {
		sets["profit_percentage"] = *changes.ProfitPercentage
	}
	if changes.CategoryID != nil {
		sets["category_id"] = *changes.CategoryID
	}
	if changes.MunicipalityID != nil {
		sets["municipality_id"] = *changes.MunicipalityID
	}
	if changes.BusinessModel != nil {
		sets["business_model"] = *changes.BusinessModel
	}
	if changes.MonthlyIncome != nil {
		sets["monthly_income"] = *changes.MonthlyIncome
	}
	if changes.ImageURL != nil {
		sets["image_url"] = *changes.ImageURL
	}

	return sets
}
