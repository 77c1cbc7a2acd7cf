package repository

import (
	"context"

	"vet-appointments-service/internal/domain/entity"
)

type PrescriptionRepository interface {
	// CreateWithOrder inserts the prescription, its medication lines and the
	// derived pharmacy order in one transaction. References between the rows
	// are filled in as the inserts proceed; on any failure nothing persists.
	CreateWithOrder(ctx context.Context, prescription *entity.Prescription, medications []entity.Medication, order *entity.PharmacyOrder) error

	// FindByAppointmentID returns the active prescription for an appointment
	// with medications and pharmacy order preloaded, or nil.
	FindByAppointmentID(ctx context.Context, appointmentID int) (*entity.Prescription, error)

	// FindByClientID returns a client's active prescriptions, newest first,
	// with medications and the appointment summary preloaded.
	FindByClientID(ctx context.Context, clientID int) ([]entity.Prescription, error)
}

type PharmacyOrderRepository interface {
	FindByID(ctx context.Context, id int) (*entity.PharmacyOrder, error)

	// FindAll returns orders newest first, optionally filtered by status.
	FindAll(ctx context.Context, status *entity.PharmacyOrderStatus) ([]entity.PharmacyOrder, error)

	FindByClientID(ctx context.Context, clientID int) ([]entity.PharmacyOrder, error)
	Update(ctx context.Context, order *entity.PharmacyOrder) error
}
