package entity

import (
	"time"
)

// Vaccination is one vaccine application for a pet. It may be tied to a
// medical record or stand alone (applied during a routine visit).
type Vaccination struct {
	ID              int        `gorm:"primaryKey;autoIncrement;column:vaccination_id" json:"vaccination_id"`
	PetID           int        `gorm:"not null;index" json:"pet_id"`
	RecordID        *int       `gorm:"index" json:"record_id"`
	VaccineName     string     `gorm:"type:varchar(200);not null" json:"vaccine_name"`
	ApplicationDate time.Time  `gorm:"type:date;not null" json:"application_date"`
	NextDoseDate    *time.Time `gorm:"type:date;index" json:"next_dose_date"`
	Batch           string     `gorm:"type:varchar(100)" json:"batch"`
	Manufacturer    string     `gorm:"type:varchar(200)" json:"manufacturer"`
	VeterinarianID  int        `gorm:"not null" json:"veterinarian_id"`
	Observations    string     `gorm:"type:text" json:"observations"`
	IsActive        bool       `gorm:"not null;default:true;index" json:"is_active"`
	CreatedAt       time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Vaccination) TableName() string {
	return "vaccinations"
}
