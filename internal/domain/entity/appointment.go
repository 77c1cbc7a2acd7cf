package entity

import (
	"time"
)

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	AppointmentStatusPending   AppointmentStatus = "pending"
	AppointmentStatusConfirmed AppointmentStatus = "confirmed"
	AppointmentStatusCancelled AppointmentStatus = "cancelled"
	AppointmentStatusCompleted AppointmentStatus = "completed"
)

func (s AppointmentStatus) IsValid() bool {
	switch s {
	case AppointmentStatusPending, AppointmentStatusConfirmed, AppointmentStatusCancelled, AppointmentStatusCompleted:
		return true
	}
	return false
}

// Appointment represents a booked veterinary consultation slot.
//
// Pet, client and veterinarian live in the Patients and Auth services; only
// their IDs are stored here. A partial unique index on
// (date, time, veterinarian_id) for active, non-cancelled rows backs the
// double-booking check.
type Appointment struct {
	ID             int               `gorm:"primaryKey;autoIncrement;column:appointment_id" json:"appointment_id"`
	Date           time.Time         `gorm:"type:date;not null;index" json:"date"`
	Time           string            `gorm:"type:time;not null" json:"time"`
	Reason         string            `gorm:"type:text;not null" json:"reason"`
	PetID          int               `gorm:"not null;index" json:"pet_id"`
	ClientID       int               `gorm:"not null;index" json:"client_id"`
	VeterinarianID int               `gorm:"not null;index" json:"veterinarian_id"`
	Status         AppointmentStatus `gorm:"type:varchar(20);not null;default:'pending';index" json:"status"`
	Procedure      string            `gorm:"type:text" json:"procedure"`
	Diagnosis      string            `gorm:"type:text" json:"diagnosis"`
	Indications    string            `gorm:"type:text" json:"indications"`
	IsActive       bool              `gorm:"not null;default:true;index" json:"is_active"`
	CreatedAt      time.Time         `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time         `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Appointment) TableName() string {
	return "appointments"
}

func (a *Appointment) IsCancelled() bool {
	return a.Status == AppointmentStatusCancelled
}

func (a *Appointment) IsCompleted() bool {
	return a.Status == AppointmentStatusCompleted
}

// HasDiagnosis reports whether attention was recorded. Prescriptions require
// both diagnosis and procedure to be present.
func (a *Appointment) HasDiagnosis() bool {
	return a.Diagnosis != "" && a.Procedure != ""
}

// RecordAttention fills the clinical outcome fields and moves the appointment
// to completed. Empty inputs keep the prior value.
func (a *Appointment) RecordAttention(procedure, diagnosis, indications string) {
	if procedure != "" {
		a.Procedure = procedure
	}
	if diagnosis != "" {
		a.Diagnosis = diagnosis
	}
	if indications != "" {
		a.Indications = indications
	}
	a.Status = AppointmentStatusCompleted
}
