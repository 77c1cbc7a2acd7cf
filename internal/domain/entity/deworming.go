package entity

import (
	"time"
)

// ParasiteType classifies the parasites a deworming product targets
type ParasiteType string

const (
	ParasiteInternal ParasiteType = "internal"
	ParasiteExternal ParasiteType = "external"
	ParasiteBoth     ParasiteType = "both"
)

func (p ParasiteType) IsValid() bool {
	switch p {
	case ParasiteInternal, ParasiteExternal, ParasiteBoth:
		return true
	}
	return false
}

// AdministrationRoute is how a deworming product was applied
type AdministrationRoute string

const (
	RouteOral       AdministrationRoute = "oral"
	RouteTopical    AdministrationRoute = "topical"
	RouteInjectable AdministrationRoute = "injectable"
)

func (r AdministrationRoute) IsValid() bool {
	switch r {
	case RouteOral, RouteTopical, RouteInjectable:
		return true
	}
	return false
}

// Deworming is one antiparasitic application for a pet, optionally linked to
// the medical record of the visit it was applied in.
type Deworming struct {
	ID              int                 `gorm:"primaryKey;autoIncrement;column:deworming_id" json:"deworming_id"`
	PetID           int                 `gorm:"not null;index" json:"pet_id"`
	RecordID        *int                `gorm:"index" json:"record_id"`
	Product         string              `gorm:"type:varchar(200);not null" json:"product"`
	ParasiteType    ParasiteType        `gorm:"type:varchar(20);not null;default:'internal'" json:"parasite_type"`
	ApplicationDate time.Time           `gorm:"type:date;not null" json:"application_date"`
	NextDoseDate    *time.Time          `gorm:"type:date;index" json:"next_dose_date"`
	Weight          *float64            `gorm:"type:decimal(6,2)" json:"weight"`
	Dose            string              `gorm:"type:varchar(100)" json:"dose"`
	Route           AdministrationRoute `gorm:"type:varchar(20)" json:"route"`
	VeterinarianID  int                 `gorm:"not null" json:"veterinarian_id"`
	Observations    string              `gorm:"type:text" json:"observations"`
	IsActive        bool                `gorm:"not null;default:true;index" json:"is_active"`
	CreatedAt       time.Time           `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time           `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Deworming) TableName() string {
	return "dewormings"
}
