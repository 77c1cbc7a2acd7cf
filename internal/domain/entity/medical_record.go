package entity

import (
	"time"
)

// MedicalRecordStatus represents the status of a medical record
type MedicalRecordStatus string

const (
	MedicalRecordStatusInProgress MedicalRecordStatus = "in_progress"
	MedicalRecordStatusFinalized  MedicalRecordStatus = "finalized"
)

func (s MedicalRecordStatus) IsValid() bool {
	return s == MedicalRecordStatusInProgress || s == MedicalRecordStatusFinalized
}

// MedicalRecord is the clinical documentation for one appointment. The
// appointment reference is unique: at most one record per appointment.
// Pet, client and date are denormalized from the appointment at creation.
type MedicalRecord struct {
	ID                  int                 `gorm:"primaryKey;autoIncrement;column:record_id" json:"record_id"`
	AppointmentID       int                 `gorm:"not null;uniqueIndex" json:"appointment_id"`
	PetID               int                 `gorm:"not null;index" json:"pet_id"`
	VeterinarianID      int                 `gorm:"not null;index" json:"veterinarian_id"`
	ClientID            int                 `gorm:"not null;index" json:"client_id"`
	Date                time.Time           `gorm:"type:date;not null" json:"date"`
	ChiefComplaint      string              `gorm:"type:text;not null" json:"chief_complaint"`
	Anamnesis           string              `gorm:"type:text" json:"anamnesis"`
	PhysicalExam        string              `gorm:"type:text" json:"physical_exam"`
	Diagnosis           string              `gorm:"type:text" json:"diagnosis"`
	Treatment           string              `gorm:"type:text" json:"treatment"`
	ProceduresPerformed string              `gorm:"type:text" json:"procedures_performed"`
	Observations        string              `gorm:"type:text" json:"observations"`
	NextConsultation    *time.Time          `gorm:"type:date" json:"next_consultation"`
	Status              MedicalRecordStatus `gorm:"type:varchar(20);not null;default:'in_progress'" json:"status"`
	IsActive            bool                `gorm:"not null;default:true;index" json:"is_active"`
	CreatedAt           time.Time           `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt           time.Time           `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	VitalSigns  *VitalSigns         `gorm:"foreignKey:RecordID" json:"vital_signs,omitempty"`
	Attachments []MedicalAttachment `gorm:"foreignKey:RecordID" json:"attachments,omitempty"`
}

func (MedicalRecord) TableName() string {
	return "medical_records"
}

// HydrationLevel grades dehydration observed during the physical exam
type HydrationLevel string

const (
	HydrationNormal   HydrationLevel = "normal"
	HydrationMild     HydrationLevel = "mild"
	HydrationModerate HydrationLevel = "moderate"
	HydrationSevere   HydrationLevel = "severe"
)

func (h HydrationLevel) IsValid() bool {
	switch h {
	case HydrationNormal, HydrationMild, HydrationModerate, HydrationSevere:
		return true
	}
	return false
}

// VitalSigns holds the numeric vitals captured with a medical record.
// The record reference is unique: one set of vitals per record, upserted.
type VitalSigns struct {
	ID                 int            `gorm:"primaryKey;autoIncrement;column:vital_sign_id" json:"vital_sign_id"`
	RecordID           int            `gorm:"not null;uniqueIndex" json:"record_id"`
	Temperature        *float64       `gorm:"type:decimal(4,1)" json:"temperature"`
	Weight             *float64       `gorm:"type:decimal(6,2)" json:"weight"`
	HeartRate          *int           `json:"heart_rate"`
	RespiratoryRate    *int           `json:"respiratory_rate"`
	BloodPressure      string         `gorm:"type:varchar(20)" json:"blood_pressure"`
	BodyConditionScore *int           `json:"body_condition_score"`
	Hydration          HydrationLevel `gorm:"type:varchar(20);default:'normal'" json:"hydration"`
	CreatedAt          time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt          time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
}

func (VitalSigns) TableName() string {
	return "vital_signs"
}
