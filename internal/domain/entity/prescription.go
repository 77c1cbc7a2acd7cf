package entity

import (
	"time"
)

// Prescription is the set of medications issued against one completed
// appointment. The appointment reference is unique. Client and pet are
// denormalized from the appointment at creation.
type Prescription struct {
	ID             int       `gorm:"primaryKey;autoIncrement;column:prescription_id" json:"prescription_id"`
	AppointmentID  int       `gorm:"not null;uniqueIndex" json:"appointment_id"`
	VeterinarianID int       `gorm:"not null;index" json:"veterinarian_id"`
	ClientID       int       `gorm:"not null;index" json:"client_id"`
	PetID          int       `gorm:"not null;index" json:"pet_id"`
	Observations   string    `gorm:"type:text" json:"observations"`
	IsActive       bool      `gorm:"not null;default:true;index" json:"is_active"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Medications   []Medication   `gorm:"foreignKey:PrescriptionID" json:"medications,omitempty"`
	PharmacyOrder *PharmacyOrder `gorm:"foreignKey:PrescriptionID" json:"pharmacy_order,omitempty"`
	Appointment   *Appointment   `gorm:"foreignKey:AppointmentID;references:ID" json:"appointment,omitempty"`
}

func (Prescription) TableName() string {
	return "prescriptions"
}

// DefaultMedicationUnit is used when a medication line omits its unit.
const DefaultMedicationUnit = "unit"

// Medication is one line of a prescription.
type Medication struct {
	ID             int       `gorm:"primaryKey;autoIncrement;column:medication_id" json:"medication_id"`
	PrescriptionID int       `gorm:"not null;index" json:"prescription_id"`
	Name           string    `gorm:"type:varchar(200);not null" json:"name"`
	Dosage         string    `gorm:"type:varchar(100);not null" json:"dosage"`
	Quantity       int       `gorm:"not null" json:"quantity"`
	Unit           string    `gorm:"type:varchar(50);not null;default:'unit'" json:"unit"`
	Duration       string    `gorm:"type:varchar(100)" json:"duration"`
	Instructions   string    `gorm:"type:text" json:"instructions"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Medication) TableName() string {
	return "medications"
}
