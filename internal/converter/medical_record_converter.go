package converter

import (
	"vet-appointments-service/internal/delivery/dto"
	"vet-appointments-service/internal/domain/entity"
)

func VitalSignsToResponse(vitals *entity.VitalSigns) *dto.VitalSignsResponse {
	if vitals == nil {
		return nil
	}

	return &dto.VitalSignsResponse{
		VitalSignID:        vitals.ID,
		Temperature:        vitals.Temperature,
		Weight:             vitals.Weight,
		HeartRate:          vitals.HeartRate,
		RespiratoryRate:    vitals.RespiratoryRate,
		BloodPressure:      vitals.BloodPressure,
		BodyConditionScore: vitals.BodyConditionScore,
		Hydration:          string(vitals.Hydration),
	}
}

func AttachmentToResponse(attachment *entity.MedicalAttachment) *dto.AttachmentResponse {
	if attachment == nil {
		return nil
	}

	return &dto.AttachmentResponse{
		AttachmentID: attachment.ID,
		RecordID:     attachment.RecordID,
		FileName:     attachment.FileName,
		Category:     string(attachment.Category),
		FileSize:     attachment.FileSize,
		MimeType:     attachment.MimeType,
		Description:  attachment.Description,
		UploadedBy:   attachment.UploadedBy,
		CreatedAt:    attachment.CreatedAt,
	}
}

func AttachmentsToResponses(attachments []entity.MedicalAttachment) []dto.AttachmentResponse {
	responses := make([]dto.AttachmentResponse, len(attachments))
	for i, attachment := range attachments {
		responses[i] = *AttachmentToResponse(&attachment)
	}
	return responses
}

// MedicalRecordToResponse converts a MedicalRecord entity with its preloaded
// vital signs and attachments to the response DTO
func MedicalRecordToResponse(record *entity.MedicalRecord) *dto.MedicalRecordResponse {
	if record == nil {
		return nil
	}

	response := &dto.MedicalRecordResponse{
		RecordID:            record.ID,
		AppointmentID:       record.AppointmentID,
		PetID:               record.PetID,
		VeterinarianID:      record.VeterinarianID,
		ClientID:            record.ClientID,
		Date:                record.Date.Format(dateLayout),
		ChiefComplaint:      record.ChiefComplaint,
		Anamnesis:           record.Anamnesis,
		PhysicalExam:        record.PhysicalExam,
		Diagnosis:           record.Diagnosis,
		Treatment:           record.Treatment,
		ProceduresPerformed: record.ProceduresPerformed,
		Observations:        record.Observations,
		Status:              string(record.Status),
		VitalSigns:          VitalSignsToResponse(record.VitalSigns),
		CreatedAt:           record.CreatedAt,
		UpdatedAt:           record.UpdatedAt,
	}

	if record.NextConsultation != nil {
		next := record.NextConsultation.Format(dateLayout)
		response.NextConsultation = &next
	}

	if len(record.Attachments) > 0 {
		response.Attachments = AttachmentsToResponses(record.Attachments)
	}

	return response
}

func MedicalRecordsToResponses(records []entity.MedicalRecord) []dto.MedicalRecordResponse {
	responses := make([]dto.MedicalRecordResponse, len(records))
	for i, record := range records {
		responses[i] = *MedicalRecordToResponse(&record)
	}
	return responses
}
