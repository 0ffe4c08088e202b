package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/vacantry/housing-backend/internal/pkg/logger"
	"github.com/vacantry/housing-backend/internal/types"
)

type HousingOwnerRepo interface {
	FindByOwnerIDs(ctx context.Context, tx *gorm.DB, ownerIDs []uuid.UUID) ([]*types.HousingOwner, error)
	DeleteLinks(ctx context.Context, tx *gorm.DB, links []*types.HousingOwner) (int64, error)
	ReassignOwner(ctx context.Context, tx *gorm.DB, fromIDs []uuid.UUID, toID uuid.UUID) (int64, error)
}

type housingOwnerRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewHousingOwnerRepo(db *gorm.DB, baseLog *logger.Logger) HousingOwnerRepo {
	repoLog := baseLog.With("repo", "HousingOwnerRepo")
	return &housingOwnerRepo{db: db, log: repoLog}
}

func (hr *housingOwnerRepo) FindByOwnerIDs(ctx context.Context, tx *gorm.DB, ownerIDs []uuid.UUID) ([]*types.HousingOwner, error) {
	transaction := tx
	if transaction == nil {
		transaction = hr.db
	}

	var results []*types.HousingOwner

	if len(ownerIDs) == 0 {
		return results, nil
	}

	if err := transaction.WithContext(ctx).
		Where("owner_id IN ?", ownerIDs).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

// DeleteLinks removes the given links by their composite key, one statement per
// link so the predicate stays portable across dialects.
func (hr *housingOwnerRepo) DeleteLinks(ctx context.Context, tx *gorm.DB, links []*types.HousingOwner) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = hr.db
	}

	var deleted int64
	for _, link := range links {
		result := transaction.WithContext(ctx).
			Where("owner_id = ?", link.OwnerID).
			Where("housing_geo_code = ?", link.HousingGeoCode).
			Where("housing_id = ?", link.HousingID).
			Delete(&types.HousingOwner{})
		if result.Error != nil {
			return deleted, result.Error
		}
		deleted += result.RowsAffected
	}
	return deleted, nil
}

func (hr *housingOwnerRepo) ReassignOwner(ctx context.Context, tx *gorm.DB, fromIDs []uuid.UUID, toID uuid.UUID) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = hr.db
	}

	if len(fromIDs) == 0 {
		return 0, nil
	}

	result := transaction.WithContext(ctx).
		Model(&types.HousingOwner{}).
		Where("owner_id IN ?", fromIDs).
		Update("owner_id", toID)
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}
