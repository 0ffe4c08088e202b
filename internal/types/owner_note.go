package types

import (
	"time"

	"github.com/google/uuid"
)

// OwnerNote is a free-text note attached to an owner by a case worker.
type OwnerNote struct {
	ID        uuid.UUID  `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	OwnerID   uuid.UUID  `gorm:"type:uuid;not null;index;column:owner_id" json:"owner_id"`
	Content   string     `gorm:"type:text;not null;column:content" json:"content"`
	CreatedBy *uuid.UUID `gorm:"type:uuid;column:created_by" json:"created_by,omitempty"`
	CreatedAt time.Time  `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt time.Time  `gorm:"not null;default:now()" json:"updated_at"`
}

func (OwnerNote) TableName() string { return "owner_note" }
