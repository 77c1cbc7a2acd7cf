package converter

import (
	"vet-appointments-service/internal/delivery/dto"
	"vet-appointments-service/internal/domain/entity"
)

func MedicationToResponse(medication *entity.Medication) *dto.MedicationResponse {
	if medication == nil {
		return nil
	}

	return &dto.MedicationResponse{
		MedicationID: medication.ID,
		Name:         medication.Name,
		Dosage:       medication.Dosage,
		Quantity:     medication.Quantity,
		Unit:         medication.Unit,
		Duration:     medication.Duration,
		Instructions: medication.Instructions,
	}
}

func MedicationsToResponses(medications []entity.Medication) []dto.MedicationResponse {
	responses := make([]dto.MedicationResponse, len(medications))
	for i, medication := range medications {
		responses[i] = *MedicationToResponse(&medication)
	}
	return responses
}

func PharmacyOrderToResponse(order *entity.PharmacyOrder) *dto.PharmacyOrderResponse {
	if order == nil {
		return nil
	}

	snapshot := make([]dto.MedicationSnapshot, len(order.Medications))
	for i, item := range order.Medications {
		snapshot[i] = dto.MedicationSnapshot{
			Name:     item.Name,
			Quantity: item.Quantity,
			Unit:     item.Unit,
		}
	}

	return &dto.PharmacyOrderResponse{
		OrderID:        order.ID,
		PrescriptionID: order.PrescriptionID,
		ClientID:       order.ClientID,
		Status:         string(order.Status),
		Medications:    snapshot,
		TotalItems:     order.TotalItems,
		Notes:          order.Notes,
		DeliveredAt:    order.DeliveredAt,
		CreatedAt:      order.CreatedAt,
		UpdatedAt:      order.UpdatedAt,
	}
}

func PharmacyOrdersToResponses(orders []entity.PharmacyOrder) []dto.PharmacyOrderResponse {
	responses := make([]dto.PharmacyOrderResponse, len(orders))
	for i, order := range orders {
		responses[i] = *PharmacyOrderToResponse(&order)
	}
	return responses
}

// PrescriptionToResponse converts a Prescription with its preloaded
// medications, pharmacy order and appointment summary
func PrescriptionToResponse(prescription *entity.Prescription) *dto.PrescriptionResponse {
	if prescription == nil {
		return nil
	}

	response := &dto.PrescriptionResponse{
		PrescriptionID: prescription.ID,
		AppointmentID:  prescription.AppointmentID,
		VeterinarianID: prescription.VeterinarianID,
		ClientID:       prescription.ClientID,
		PetID:          prescription.PetID,
		Observations:   prescription.Observations,
		Medications:    MedicationsToResponses(prescription.Medications),
		PharmacyOrder:  PharmacyOrderToResponse(prescription.PharmacyOrder),
		CreatedAt:      prescription.CreatedAt,
	}

	if prescription.Appointment != nil {
		response.Appointment = &dto.AppointmentSummary{
			AppointmentID: prescription.Appointment.ID,
			Date:          prescription.Appointment.Date.Format(dateLayout),
			Time:          prescription.Appointment.Time,
			Diagnosis:     prescription.Appointment.Diagnosis,
		}
	}

	return response
}

func PrescriptionsToResponses(prescriptions []entity.Prescription) []dto.PrescriptionResponse {
	responses := make([]dto.PrescriptionResponse, len(prescriptions))
	for i, prescription := range prescriptions {
		responses[i] = *PrescriptionToResponse(&prescription)
	}
	return responses
}
