package dto

import "time"

// Request DTOs

type VitalSignsRequest struct {
	Temperature        *float64 `json:"temperature"`
	Weight             *float64 `json:"weight"`
	HeartRate          *int     `json:"heart_rate"`
	RespiratoryRate    *int     `json:"respiratory_rate"`
	BloodPressure      string   `json:"blood_pressure"`
	BodyConditionScore *int     `json:"body_condition_score" validate:"omitempty,gte=1,lte=5"`
	Hydration          string   `json:"hydration" validate:"omitempty,oneof=normal mild moderate severe"`
}

type CreateMedicalRecordRequest struct {
	ChiefComplaint      string             `json:"chief_complaint" validate:"required"`
	Anamnesis           string             `json:"anamnesis"`
	PhysicalExam        string             `json:"physical_exam"`
	Diagnosis           string             `json:"diagnosis"`
	Treatment           string             `json:"treatment"`
	ProceduresPerformed string             `json:"procedures_performed"`
	Observations        string             `json:"observations"`
	NextConsultation    string             `json:"next_consultation"`
	VitalSigns          *VitalSignsRequest `json:"vital_signs"`
}

// UpdateMedicalRecordRequest uses pointers throughout: a nil field keeps the
// stored value, an explicit empty string clears it.
type UpdateMedicalRecordRequest struct {
	ChiefComplaint      *string            `json:"chief_complaint"`
	Anamnesis           *string            `json:"anamnesis"`
	PhysicalExam        *string            `json:"physical_exam"`
	Diagnosis           *string            `json:"diagnosis"`
	Treatment           *string            `json:"treatment"`
	ProceduresPerformed *string            `json:"procedures_performed"`
	Observations        *string            `json:"observations"`
	NextConsultation    *string            `json:"next_consultation"`
	Status              *string            `json:"status" validate:"omitempty,oneof=in_progress finalized"`
	VitalSigns          *VitalSignsRequest `json:"vital_signs"`
}

// Response DTOs

type VitalSignsResponse struct {
	VitalSignID        int      `json:"vital_sign_id"`
	Temperature        *float64 `json:"temperature"`
	Weight             *float64 `json:"weight"`
	HeartRate          *int     `json:"heart_rate"`
	RespiratoryRate    *int     `json:"respiratory_rate"`
	BloodPressure      string   `json:"blood_pressure,omitempty"`
	BodyConditionScore *int     `json:"body_condition_score"`
	Hydration          string   `json:"hydration"`
}

type MedicalRecordResponse struct {
	RecordID            int                  `json:"record_id"`
	AppointmentID       int                  `json:"appointment_id"`
	PetID               int                  `json:"pet_id"`
	VeterinarianID      int                  `json:"veterinarian_id"`
	ClientID            int                  `json:"client_id"`
	Date                string               `json:"date"`
	ChiefComplaint      string               `json:"chief_complaint"`
	Anamnesis           string               `json:"anamnesis,omitempty"`
	PhysicalExam        string               `json:"physical_exam,omitempty"`
	Diagnosis           string               `json:"diagnosis,omitempty"`
	Treatment           string               `json:"treatment,omitempty"`
	ProceduresPerformed string               `json:"procedures_performed,omitempty"`
	Observations        string               `json:"observations,omitempty"`
	NextConsultation    *string              `json:"next_consultation"`
	Status              string               `json:"status"`
	VitalSigns          *VitalSignsResponse  `json:"vital_signs,omitempty"`
	Attachments         []AttachmentResponse `json:"attachments,omitempty"`
	CreatedAt           time.Time            `json:"created_at"`
	UpdatedAt           time.Time            `json:"updated_at"`
}

type MedicalHistoryResponse struct {
	PetID   int                     `json:"pet_id"`
	PetName string                  `json:"pet_name,omitempty"`
	Records []MedicalRecordResponse `json:"records"`
	Total   int                     `json:"total"`
}
