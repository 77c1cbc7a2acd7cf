package converter

import (
	"vet-appointments-service/internal/delivery/dto"
	"vet-appointments-service/internal/domain/entity"
)

func VaccinationToResponse(vaccination *entity.Vaccination) *dto.VaccinationResponse {
	if vaccination == nil {
		return nil
	}

	response := &dto.VaccinationResponse{
		VaccinationID:   vaccination.ID,
		PetID:           vaccination.PetID,
		RecordID:        vaccination.RecordID,
		VaccineName:     vaccination.VaccineName,
		ApplicationDate: vaccination.ApplicationDate.Format(dateLayout),
		Batch:           vaccination.Batch,
		Manufacturer:    vaccination.Manufacturer,
		VeterinarianID:  vaccination.VeterinarianID,
		Observations:    vaccination.Observations,
		CreatedAt:       vaccination.CreatedAt,
	}

	if vaccination.NextDoseDate != nil {
		next := vaccination.NextDoseDate.Format(dateLayout)
		response.NextDoseDate = &next
	}

	return response
}

func VaccinationsToResponses(vaccinations []entity.Vaccination) []dto.VaccinationResponse {
	responses := make([]dto.VaccinationResponse, len(vaccinations))
	for i, vaccination := range vaccinations {
		responses[i] = *VaccinationToResponse(&vaccination)
	}
	return responses
}

func DewormingToResponse(deworming *entity.Deworming) *dto.DewormingResponse {
	if deworming == nil {
		return nil
	}

	response := &dto.DewormingResponse{
		DewormingID:     deworming.ID,
		PetID:           deworming.PetID,
		RecordID:        deworming.RecordID,
		Product:         deworming.Product,
		ParasiteType:    string(deworming.ParasiteType),
		ApplicationDate: deworming.ApplicationDate.Format(dateLayout),
		Weight:          deworming.Weight,
		Dose:            deworming.Dose,
		Route:           string(deworming.Route),
		VeterinarianID:  deworming.VeterinarianID,
		Observations:    deworming.Observations,
		CreatedAt:       deworming.CreatedAt,
	}

	if deworming.NextDoseDate != nil {
		next := deworming.NextDoseDate.Format(dateLayout)
		response.NextDoseDate = &next
	}

	return response
}

func DewormingsToResponses(dewormings []entity.Deworming) []dto.DewormingResponse {
	responses := make([]dto.DewormingResponse, len(dewormings))
	for i, deworming := range dewormings {
		responses[i] = *DewormingToResponse(&deworming)
	}
	return responses
}
