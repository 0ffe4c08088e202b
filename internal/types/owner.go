package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Owner is a person or legal entity that can hold property rights over housing.
// Rows are created by the import pipelines; the dedup engine only reads, updates
// and deletes them.
type Owner struct {
	ID            uuid.UUID                   `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	FullName      string                      `gorm:"not null;index;column:full_name" json:"full_name"`
	RawAddress    datatypes.JSONSlice[string] `gorm:"column:raw_address" json:"raw_address"`
	BirthDate     *time.Time                  `gorm:"column:birth_date" json:"birth_date,omitempty"`
	Administrator *string                     `gorm:"column:administrator" json:"administrator,omitempty"`
	Email         *string                     `gorm:"column:email" json:"email,omitempty"`
	Phone         *string                     `gorm:"column:phone" json:"phone,omitempty"`
	Kind          *string                     `gorm:"column:kind" json:"kind,omitempty"`
	KindDetail    *string                     `gorm:"column:kind_detail" json:"kind_detail,omitempty"`
	CreatedAt     time.Time                   `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt     time.Time                   `gorm:"not null;default:now()" json:"updated_at"`
}

func (Owner) TableName() string {
	return "owner"
}
