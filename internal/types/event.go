package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Event is an owner-scoped audit entry (status change, contact attempt, ...).
type Event struct {
	ID        uuid.UUID      `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	OwnerID   uuid.UUID      `gorm:"type:uuid;not null;index;column:owner_id" json:"owner_id"`
	Type      string         `gorm:"column:type;not null;index" json:"type"`
	Payload   datatypes.JSON `gorm:"type:jsonb;column:payload" json:"payload"`
	CreatedBy *uuid.UUID     `gorm:"type:uuid;column:created_by" json:"created_by,omitempty"`
	CreatedAt time.Time      `gorm:"not null;default:now()" json:"created_at"`
}

func (Event) TableName() string { return "event" }

// ArchivedEvent is the legacy event table kept for history; rows are never
// written anymore but still reference owners and must follow merges.
type ArchivedEvent struct {
	ID        uuid.UUID  `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	OwnerID   uuid.UUID  `gorm:"type:uuid;not null;index;column:owner_id" json:"owner_id"`
	HousingID *uuid.UUID `gorm:"type:uuid;column:housing_id" json:"housing_id,omitempty"`
	Content   string     `gorm:"type:text;column:content" json:"content"`
	CreatedAt time.Time  `gorm:"not null;default:now()" json:"created_at"`
}

func (ArchivedEvent) TableName() string { return "old_event" }
