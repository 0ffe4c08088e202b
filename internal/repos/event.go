package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/vacantry/housing-backend/internal/pkg/logger"
	"github.com/vacantry/housing-backend/internal/types"
)

type EventRepo interface {
	ReassignOwner(ctx context.Context, tx *gorm.DB, fromIDs []uuid.UUID, toID uuid.UUID) (int64, error)
	ReassignOwnerArchived(ctx context.Context, tx *gorm.DB, fromIDs []uuid.UUID, toID uuid.UUID) (int64, error)
}

type eventRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewEventRepo(db *gorm.DB, baseLog *logger.Logger) EventRepo {
	repoLog := baseLog.With("repo", "EventRepo")
	return &eventRepo{db: db, log: repoLog}
}

func (er *eventRepo) ReassignOwner(ctx context.Context, tx *gorm.DB, fromIDs []uuid.UUID, toID uuid.UUID) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = er.db
	}

	if len(fromIDs) == 0 {
		return 0, nil
	}

	result := transaction.WithContext(ctx).
		Model(&types.Event{}).
		Where("owner_id IN ?", fromIDs).
		Update("owner_id", toID)
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

// ReassignOwnerArchived applies the same reassignment to the legacy event
// table so archived history follows the surviving owner too.
func (er *eventRepo) ReassignOwnerArchived(ctx context.Context, tx *gorm.DB, fromIDs []uuid.UUID, toID uuid.UUID) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = er.db
	}

	if len(fromIDs) == 0 {
		return 0, nil
	}

	result := transaction.WithContext(ctx).
		Model(&types.ArchivedEvent{}).
		Where("owner_id IN ?", fromIDs).
		Update("owner_id", toID)
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}
