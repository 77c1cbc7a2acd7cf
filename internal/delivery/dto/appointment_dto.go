package dto

import "time"

// Request DTOs

type CreateAppointmentRequest struct {
	Date           string `json:"date" validate:"required"`
	Time           string `json:"time" validate:"required"`
	Reason         string `json:"reason" validate:"required"`
	PetID          int    `json:"pet_id" validate:"required,min=1"`
	VeterinarianID int    `json:"veterinarian_id" validate:"required,min=1"`
}

// UpdateAttentionRequest carries the clinical outcome of a consultation.
// Fields are pointers so an omitted field keeps its prior value.
type UpdateAttentionRequest struct {
	Procedure   *string `json:"procedure"`
	Diagnosis   *string `json:"diagnosis"`
	Indications *string `json:"indications"`
}

// Response DTOs

type AppointmentResponse struct {
	AppointmentID  int    `json:"appointment_id"`
	Date           string `json:"date"`
	Time           string `json:"time"`
	Reason         string `json:"reason"`
	PetID          int    `json:"pet_id"`
	ClientID       int    `json:"client_id"`
	VeterinarianID int    `json:"veterinarian_id"`
	Status         string `json:"status"`
	Procedure      string `json:"procedure,omitempty"`
	Diagnosis      string `json:"diagnosis,omitempty"`
	Indications    string `json:"indications,omitempty"`
	IsActive       bool   `json:"is_active"`

	// Display names resolved from the Auth and Patients services,
	// best-effort.
	PetName          string `json:"pet_name,omitempty"`
	ClientName       string `json:"client_name,omitempty"`
	VeterinarianName string `json:"veterinarian_name,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
	Total        int                   `json:"total"`
}

type ScheduleResponse struct {
	Date         string                `json:"date"`
	Appointments []AppointmentResponse `json:"appointments"`
	Total        int                   `json:"total"`
}
