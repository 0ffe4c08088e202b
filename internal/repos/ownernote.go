package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/vacantry/housing-backend/internal/pkg/logger"
	"github.com/vacantry/housing-backend/internal/types"
)

type OwnerNoteRepo interface {
	ReassignOwner(ctx context.Context, tx *gorm.DB, fromIDs []uuid.UUID, toID uuid.UUID) (int64, error)
}

type ownerNoteRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewOwnerNoteRepo(db *gorm.DB, baseLog *logger.Logger) OwnerNoteRepo {
	repoLog := baseLog.With("repo", "OwnerNoteRepo")
	return &ownerNoteRepo{db: db, log: repoLog}
}

func (nr *ownerNoteRepo) ReassignOwner(ctx context.Context, tx *gorm.DB, fromIDs []uuid.UUID, toID uuid.UUID) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = nr.db
	}

	if len(fromIDs) == 0 {
		return 0, nil
	}

	result := transaction.WithContext(ctx).
		Model(&types.OwnerNote{}).
		Where("owner_id IN ?", fromIDs).
		Update("owner_id", toID)
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}
