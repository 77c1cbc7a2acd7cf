package converter

import (
	"vet-appointments-service/internal/delivery/dto"
	"vet-appointments-service/internal/domain/entity"
)

const dateLayout = "2006-01-02"

// AppointmentToResponse converts an Appointment entity to its response DTO
func AppointmentToResponse(appointment *entity.Appointment) *dto.AppointmentResponse {
	if appointment == nil {
		return nil
	}

	return &dto.AppointmentResponse{
		AppointmentID:  appointment.ID,
		Date:           appointment.Date.Format(dateLayout),
		Time:           appointment.Time,
		Reason:         appointment.Reason,
		PetID:          appointment.PetID,
		ClientID:       appointment.ClientID,
		VeterinarianID: appointment.VeterinarianID,
		Status:         string(appointment.Status),
		Procedure:      appointment.Procedure,
		Diagnosis:      appointment.Diagnosis,
		Indications:    appointment.Indications,
		IsActive:       appointment.IsActive,
		CreatedAt:      appointment.CreatedAt,
		UpdatedAt:      appointment.UpdatedAt,
	}
}

// AppointmentsToResponses converts a slice of Appointment entities
func AppointmentsToResponses(appointments []entity.Appointment) []dto.AppointmentResponse {
	responses := make([]dto.AppointmentResponse, len(appointments))
	for i, appointment := range appointments {
		responses[i] = *AppointmentToResponse(&appointment)
	}
	return responses
}
