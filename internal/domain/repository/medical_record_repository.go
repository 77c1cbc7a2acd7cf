package repository

import (
	"context"
	"time"

	"vet-appointments-service/internal/domain/entity"
)

type MedicalRecordRepository interface {
	// Create inserts the record and, when vitals is non-nil, its vital signs
	// in one transaction so vitals are never orphaned.
	Create(ctx context.Context, record *entity.MedicalRecord, vitals *entity.VitalSigns) error

	// FindByAppointmentID returns the record for an appointment with vital
	// signs and active attachments preloaded, or nil if none exists.
	FindByAppointmentID(ctx context.Context, appointmentID int) (*entity.MedicalRecord, error)

	// FindByPetID returns a pet's active records, newest first.
	FindByPetID(ctx context.Context, petID int) ([]entity.MedicalRecord, error)

	FindByID(ctx context.Context, id int) (*entity.MedicalRecord, error)
	Update(ctx context.Context, record *entity.MedicalRecord) error

	// UpsertVitalSigns updates the vitals row for record or creates it.
	UpsertVitalSigns(ctx context.Context, vitals *entity.VitalSigns) error

	// FindFollowUpsBetween returns active records whose suggested next
	// consultation falls inside the window, optionally scoped to one
	// veterinarian, ordered by that date ascending.
	FindFollowUpsBetween(ctx context.Context, from, to time.Time, veterinarianID *int) ([]entity.MedicalRecord, error)
}

type MedicalAttachmentRepository interface {
	CreateBatch(ctx context.Context, attachments []entity.MedicalAttachment) error
	FindByID(ctx context.Context, id int) (*entity.MedicalAttachment, error)
	FindByRecordID(ctx context.Context, recordID int) ([]entity.MedicalAttachment, error)
	Update(ctx context.Context, attachment *entity.MedicalAttachment) error
}
