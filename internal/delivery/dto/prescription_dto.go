package dto

import "time"

// Request DTOs

type MedicationRequest struct {
	Name         string `json:"name" validate:"required"`
	Dosage       string `json:"dosage" validate:"required"`
	Quantity     int    `json:"quantity" validate:"required,min=1"`
	Unit         string `json:"unit"`
	Duration     string `json:"duration"`
	Instructions string `json:"instructions"`
}

type CreatePrescriptionRequest struct {
	Observations string              `json:"observations"`
	Medications  []MedicationRequest `json:"medications" validate:"required,min=1,dive"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" validate:"required"`
	Notes  string `json:"notes"`
}

// Response DTOs

type MedicationResponse struct {
	MedicationID int    `json:"medication_id"`
	Name         string `json:"name"`
	Dosage       string `json:"dosage"`
	Quantity     int    `json:"quantity"`
	Unit         string `json:"unit"`
	Duration     string `json:"duration,omitempty"`
	Instructions string `json:"instructions,omitempty"`
}

type PharmacyOrderResponse struct {
	OrderID        int                  `json:"order_id"`
	PrescriptionID int                  `json:"prescription_id"`
	ClientID       int                  `json:"client_id"`
	Status         string               `json:"status"`
	Medications    []MedicationSnapshot `json:"medications"`
	TotalItems     int                  `json:"total_items"`
	Notes          string               `json:"notes,omitempty"`
	DeliveredAt    *time.Time           `json:"delivered_at"`
	CreatedAt      time.Time            `json:"created_at"`
	UpdatedAt      time.Time            `json:"updated_at"`
}

type MedicationSnapshot struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
	Unit     string `json:"unit"`
}

type PharmacyOrderListResponse struct {
	Orders []PharmacyOrderResponse `json:"orders"`
	Total  int                     `json:"total"`
}

type AppointmentSummary struct {
	AppointmentID int    `json:"appointment_id"`
	Date          string `json:"date"`
	Time          string `json:"time"`
	Diagnosis     string `json:"diagnosis,omitempty"`
}

type PrescriptionResponse struct {
	PrescriptionID int                    `json:"prescription_id"`
	AppointmentID  int                    `json:"appointment_id"`
	VeterinarianID int                    `json:"veterinarian_id"`
	ClientID       int                    `json:"client_id"`
	PetID          int                    `json:"pet_id"`
	Observations   string                 `json:"observations,omitempty"`
	Medications    []MedicationResponse   `json:"medications"`
	PharmacyOrder  *PharmacyOrderResponse `json:"pharmacy_order,omitempty"`
	Appointment    *AppointmentSummary    `json:"appointment,omitempty"`
	CreatedAt      time.Time              `json:"created_at"`
}

type PrescriptionListResponse struct {
	Prescriptions []PrescriptionResponse `json:"prescriptions"`
	Total         int                    `json:"total"`
}
