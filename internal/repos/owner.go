package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/vacantry/housing-backend/internal/pkg/logger"
	"github.com/vacantry/housing-backend/internal/types"
)

type OwnerRepo interface {
	FindByFullName(ctx context.Context, tx *gorm.DB, owner *types.Owner) ([]*types.Owner, error)
	Exists(ctx context.Context, tx *gorm.DB, ownerID uuid.UUID) (bool, error)
	GetByIDs(ctx context.Context, tx *gorm.DB, ownerIDs []uuid.UUID) ([]*types.Owner, error)
	ListBatch(ctx context.Context, tx *gorm.DB, afterID uuid.UUID, limit int) ([]*types.Owner, error)
	DeleteByIDs(ctx context.Context, tx *gorm.DB, ownerIDs []uuid.UUID) (int64, error)
	UpdateFields(ctx context.Context, tx *gorm.DB, ownerID uuid.UUID, fields map[string]interface{}) error
}

type ownerRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewOwnerRepo(db *gorm.DB, baseLog *logger.Logger) OwnerRepo {
	repoLog := baseLog.With("repo", "OwnerRepo")
	return &ownerRepo{db: db, log: repoLog}
}

// FindByFullName returns every other owner carrying exactly the same full name.
// The match is case-sensitive; fuzziness belongs to the scoring phase.
func (or *ownerRepo) FindByFullName(ctx context.Context, tx *gorm.DB, owner *types.Owner) ([]*types.Owner, error) {
	transaction := tx
	if transaction == nil {
		transaction = or.db
	}

	var results []*types.Owner

	if err := transaction.WithContext(ctx).
		Where("full_name = ?", owner.FullName).
		Where("id <> ?", owner.ID).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (or *ownerRepo) Exists(ctx context.Context, tx *gorm.DB, ownerID uuid.UUID) (bool, error) {
	transaction := tx
	if transaction == nil {
		transaction = or.db
	}

	var count int64

	if err := transaction.WithContext(ctx).
		Model(&types.Owner{}).
		Where("id = ?", ownerID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (or *ownerRepo) GetByIDs(ctx context.Context, tx *gorm.DB, ownerIDs []uuid.UUID) ([]*types.Owner, error) {
	transaction := tx
	if transaction == nil {
		transaction = or.db
	}

	var results []*types.Owner

	if len(ownerIDs) == 0 {
		return results, nil
	}

	if err := transaction.WithContext(ctx).
		Where("id IN ?", ownerIDs).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

// ListBatch pages through owners in id order. Pass uuid.Nil to start from the
// beginning; the last returned id is the cursor for the next call.
func (or *ownerRepo) ListBatch(ctx context.Context, tx *gorm.DB, afterID uuid.UUID, limit int) ([]*types.Owner, error) {
	transaction := tx
	if transaction == nil {
		transaction = or.db
	}

	var results []*types.Owner

	if err := transaction.WithContext(ctx).
		Where("id > ?", afterID).
		Order("id").
		Limit(limit).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (or *ownerRepo) DeleteByIDs(ctx context.Context, tx *gorm.DB, ownerIDs []uuid.UUID) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = or.db
	}

	if len(ownerIDs) == 0 {
		return 0, nil
	}

	result := transaction.WithContext(ctx).
		Where("id IN ?", ownerIDs).
		Delete(&types.Owner{})
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

func (or *ownerRepo) UpdateFields(ctx context.Context, tx *gorm.DB, ownerID uuid.UUID, fields map[string]interface{}) error {
	transaction := tx
	if transaction == nil {
		transaction = or.db
	}

	if len(fields) == 0 {
		return nil
	}

	return transaction.WithContext(ctx).
		Model(&types.Owner{}).
		Where("id = ?", ownerID).
		Updates(fields).Error
}
