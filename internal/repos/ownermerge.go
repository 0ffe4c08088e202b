package repos

import (
	"context"

	"gorm.io/gorm"

	"github.com/vacantry/housing-backend/internal/pkg/logger"
	"github.com/vacantry/housing-backend/internal/types"
)

type OwnerMergeRepo interface {
	Create(ctx context.Context, tx *gorm.DB, merges []*types.OwnerMerge) ([]*types.OwnerMerge, error)
}

type ownerMergeRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewOwnerMergeRepo(db *gorm.DB, baseLog *logger.Logger) OwnerMergeRepo {
	repoLog := baseLog.With("repo", "OwnerMergeRepo")
	return &ownerMergeRepo{db: db, log: repoLog}
}

func (mr *ownerMergeRepo) Create(ctx context.Context, tx *gorm.DB, merges []*types.OwnerMerge) ([]*types.OwnerMerge, error) {
	transaction := tx
	if transaction == nil {
		transaction = mr.db
	}

	if len(merges) == 0 {
		return []*types.OwnerMerge{}, nil
	}

	if err := transaction.WithContext(ctx).Create(&merges).Error; err != nil {
		return nil, err
	}
	return merges, nil
}
