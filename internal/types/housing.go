package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Housing is a vacant housing unit tracked by the campaigns. The dedup engine
// never mutates it; links point at it through (geo_code, id).
type Housing struct {
	ID               uuid.UUID                   `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	GeoCode          string                      `gorm:"not null;index;column:geo_code" json:"geo_code"`
	RawAddress       datatypes.JSONSlice[string] `gorm:"column:raw_address" json:"raw_address"`
	VacancyStartYear *int                        `gorm:"column:vacancy_start_year" json:"vacancy_start_year,omitempty"`
	CreatedAt        time.Time                   `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt        time.Time                   `gorm:"not null;default:now()" json:"updated_at"`
}

func (Housing) TableName() string {
	return "housing"
}
