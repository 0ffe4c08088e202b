package types

import (
	"time"

	"github.com/google/uuid"
)

// OwnerMerge records one removed owner per row so merge history survives the
// deletion of the removed owner row.
type OwnerMerge struct {
	ID              uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	KeptOwnerID     uuid.UUID `gorm:"type:uuid;not null;index;column:kept_owner_id" json:"kept_owner_id"`
	RemovedOwnerID  uuid.UUID `gorm:"type:uuid;not null;index;column:removed_owner_id" json:"removed_owner_id"`
	RemovedFullName string    `gorm:"not null;column:removed_full_name" json:"removed_full_name"`
	Score           float64   `gorm:"not null;column:score" json:"score"`
	MergedBy        string    `gorm:"not null;default:'system';column:merged_by" json:"merged_by"`
	CreatedAt       time.Time `gorm:"not null;default:now()" json:"created_at"`
}

func (OwnerMerge) TableName() string { return "owner_merge" }
