package dto

import "time"

// Request DTOs

type CreateVaccinationRequest struct {
	VaccineName     string `json:"vaccine_name" validate:"required"`
	ApplicationDate string `json:"application_date" validate:"required"`
	NextDoseDate    string `json:"next_dose_date"`
	Batch           string `json:"batch"`
	Manufacturer    string `json:"manufacturer"`
	Observations    string `json:"observations"`
	RecordID        *int   `json:"record_id"`
}

type UpdateVaccinationRequest struct {
	VaccineName     *string `json:"vaccine_name"`
	ApplicationDate *string `json:"application_date"`
	NextDoseDate    *string `json:"next_dose_date"`
	Batch           *string `json:"batch"`
	Manufacturer    *string `json:"manufacturer"`
	Observations    *string `json:"observations"`
}

type CreateDewormingRequest struct {
	Product         string   `json:"product" validate:"required"`
	ParasiteType    string   `json:"parasite_type" validate:"omitempty,oneof=internal external both"`
	ApplicationDate string   `json:"application_date" validate:"required"`
	NextDoseDate    string   `json:"next_dose_date"`
	Weight          *float64 `json:"weight"`
	Dose            string   `json:"dose"`
	Route           string   `json:"route" validate:"omitempty,oneof=oral topical injectable"`
	Observations    string   `json:"observations"`
	RecordID        *int     `json:"record_id"`
}

type UpdateDewormingRequest struct {
	Product         *string  `json:"product"`
	ParasiteType    *string  `json:"parasite_type" validate:"omitempty,oneof=internal external both"`
	ApplicationDate *string  `json:"application_date"`
	NextDoseDate    *string  `json:"next_dose_date"`
	Weight          *float64 `json:"weight"`
	Dose            *string  `json:"dose"`
	Route           *string  `json:"route" validate:"omitempty,oneof=oral topical injectable"`
	Observations    *string  `json:"observations"`
}

// Response DTOs

type VaccinationResponse struct {
	VaccinationID   int       `json:"vaccination_id"`
	PetID           int       `json:"pet_id"`
	RecordID        *int      `json:"record_id"`
	VaccineName     string    `json:"vaccine_name"`
	ApplicationDate string    `json:"application_date"`
	NextDoseDate    *string   `json:"next_dose_date"`
	Batch           string    `json:"batch,omitempty"`
	Manufacturer    string    `json:"manufacturer,omitempty"`
	VeterinarianID  int       `json:"veterinarian_id"`
	Observations    string    `json:"observations,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

type VaccinationListResponse struct {
	Vaccinations []VaccinationResponse `json:"vaccinations"`
	Total        int                   `json:"total"`
}

type DewormingResponse struct {
	DewormingID     int       `json:"deworming_id"`
	PetID           int       `json:"pet_id"`
	RecordID        *int      `json:"record_id"`
	Product         string    `json:"product"`
	ParasiteType    string    `json:"parasite_type"`
	ApplicationDate string    `json:"application_date"`
	NextDoseDate    *string   `json:"next_dose_date"`
	Weight          *float64  `json:"weight"`
	Dose            string    `json:"dose,omitempty"`
	Route           string    `json:"route,omitempty"`
	VeterinarianID  int       `json:"veterinarian_id"`
	Observations    string    `json:"observations,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

type DewormingListResponse struct {
	Dewormings []DewormingResponse `json:"dewormings"`
	Total      int                 `json:"total"`
}
