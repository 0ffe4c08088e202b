package types

import (
	"time"

	"github.com/google/uuid"
)

// Rank sentinels for inactive link states. Active owners use 1..N, 1 being the
// primary owner of the housing.
const (
	RankInactive      = 0
	RankPreviousOwner = -1
)

// HousingOwner associates an Owner with a Housing unit under a given rank.
// For a housing unit at most one active link may hold a given rank.
type HousingOwner struct {
	OwnerID        uuid.UUID  `gorm:"type:uuid;primaryKey;column:owner_id" json:"owner_id"`
	Owner          *Owner     `gorm:"foreignKey:OwnerID;references:ID" json:"owner,omitempty"`
	HousingGeoCode string     `gorm:"primaryKey;column:housing_geo_code" json:"housing_geo_code"`
	HousingID      uuid.UUID  `gorm:"type:uuid;primaryKey;column:housing_id" json:"housing_id"`
	Rank           int        `gorm:"not null;column:rank" json:"rank"`
	StartDate      *time.Time `gorm:"column:start_date" json:"start_date,omitempty"`
	EndDate        *time.Time `gorm:"column:end_date" json:"end_date,omitempty"`
	CreatedAt      time.Time  `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt      time.Time  `gorm:"not null;default:now()" json:"updated_at"`
}

func (HousingOwner) TableName() string {
	return "housing_owner"
}
