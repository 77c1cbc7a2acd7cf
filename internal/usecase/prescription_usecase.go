package usecase

import (
	"context"
	"errors"
	"fmt"

	"vet-appointments-service/internal/converter"
	"vet-appointments-service/internal/delivery/dto"
	"vet-appointments-service/internal/delivery/http/middleware"
	"vet-appointments-service/internal/domain/entity"
	"vet-appointments-service/internal/domain/repository"

	"github.com/sirupsen/logrus"
)

var (
	ErrPrescriptionNotFound = errors.New("prescription not found")
	ErrPrescriptionExists   = errors.New("appointment already has a prescription")
	ErrMedicationsRequired  = errors.New("at least one medication is required")
	// ErrNoDiagnosis means attention was not recorded yet; a prescription
	// needs both diagnosis and procedure on the appointment.
	ErrNoDiagnosis = errors.New("appointment has no recorded diagnosis and procedure")
)

type PrescriptionUsecase interface {
	Create(ctx context.Context, appointmentID int, req *dto.CreatePrescriptionRequest) (*dto.PrescriptionResponse, error)
	GetByAppointment(ctx context.Context, appointmentID int) (*dto.PrescriptionResponse, error)
	GetMyPrescriptions(ctx context.Context) (*dto.PrescriptionListResponse, error)
}

type prescriptionUsecase struct {
	log              *logrus.Logger
	prescriptionRepo repository.PrescriptionRepository
	appointmentRepo  repository.AppointmentRepository
}

func NewPrescriptionUsecase(
	log *logrus.Logger,
	prescriptionRepo repository.PrescriptionRepository,
	appointmentRepo repository.AppointmentRepository,
) PrescriptionUsecase {
	return &prescriptionUsecase{
		log:              log,
		prescriptionRepo: prescriptionRepo,
		appointmentRepo:  appointmentRepo,
	}
}

// Create issues a prescription against a completed appointment. The
// prescription, its medication lines and the derived pharmacy order are
// written in one transaction; on any failure nothing persists.
func (u *prescriptionUsecase) Create(ctx context.Context, appointmentID int, req *dto.CreatePrescriptionRequest) (*dto.PrescriptionResponse, error) {
	identity, ok := middleware.GetIdentityFromContext(ctx)
	if !ok {
		return nil, ErrUnauthenticated
	}

	if len(req.Medications) == 0 {
		return nil, ErrMedicationsRequired
	}

	appointment, err := u.appointmentRepo.FindByID(ctx, appointmentID)
	if err != nil {
		u.log.Warnf("Failed to find appointment %d: %+v", appointmentID, err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}
	if appointment.VeterinarianID != identity.ID {
		return nil, ErrNotYourAppointment
	}
	if !appointment.HasDiagnosis() {
		return nil, ErrNoDiagnosis
	}

	existing, err := u.prescriptionRepo.FindByAppointmentID(ctx, appointmentID)
	if err != nil {
		u.log.Warnf("Failed to check existing prescription for appointment %d: %+v", appointmentID, err)
		return nil, err
	}
	if existing != nil {
		return nil, ErrPrescriptionExists
	}

	prescription := &entity.Prescription{
		AppointmentID:  appointmentID,
		VeterinarianID: identity.ID,
		ClientID:       appointment.ClientID,
		PetID:          appointment.PetID,
		Observations:   req.Observations,
		IsActive:       true,
	}

	medications := make([]entity.Medication, len(req.Medications))
	snapshot := make(entity.MedicationSnapshot, len(req.Medications))
	for i, line := range req.Medications {
		unit := line.Unit
		if unit == "" {
			unit = entity.DefaultMedicationUnit
		}
		medications[i] = entity.Medication{
			Name:         line.Name,
			Dosage:       line.Dosage,
			Quantity:     line.Quantity,
			Unit:         unit,
			Duration:     line.Duration,
			Instructions: line.Instructions,
		}
		snapshot[i] = entity.MedicationItem{
			Name:     line.Name,
			Quantity: line.Quantity,
			Unit:     unit,
		}
	}

	order := &entity.PharmacyOrder{
		ClientID:    appointment.ClientID,
		Status:      entity.PharmacyOrderPending,
		Medications: snapshot,
		TotalItems:  snapshot.TotalQuantity(),
		Notes:       fmt.Sprintf("Prescription issued for appointment #%d", appointmentID),
	}

	if err := u.prescriptionRepo.CreateWithOrder(ctx, prescription, medications, order); err != nil {
		u.log.Warnf("Failed to create prescription for appointment %d: %+v", appointmentID, err)
		return nil, err
	}
	prescription.Medications = medications
	prescription.PharmacyOrder = order

	u.log.Infof("Prescription created: id=%d, appointment=%d, items=%d", prescription.ID, appointmentID, order.TotalItems)
	return converter.PrescriptionToResponse(prescription), nil
}

func (u *prescriptionUsecase) GetByAppointment(ctx context.Context, appointmentID int) (*dto.PrescriptionResponse, error) {
	prescription, err := u.prescriptionRepo.FindByAppointmentID(ctx, appointmentID)
	if err != nil {
		u.log.Warnf("Failed to find prescription for appointment %d: %+v", appointmentID, err)
		return nil, err
	}
	if prescription == nil {
		return nil, ErrPrescriptionNotFound
	}
	return converter.PrescriptionToResponse(prescription), nil
}

// GetMyPrescriptions returns the calling client's prescriptions, newest
// first, with medications and the appointment summary attached.
func (u *prescriptionUsecase) GetMyPrescriptions(ctx context.Context) (*dto.PrescriptionListResponse, error) {
	identity, ok := middleware.GetIdentityFromContext(ctx)
	if !ok {
		return nil, ErrUnauthenticated
	}

	prescriptions, err := u.prescriptionRepo.FindByClientID(ctx, identity.ID)
	if err != nil {
		u.log.Warnf("Failed to list prescriptions for client %d: %+v", identity.ID, err)
		return nil, err
	}

	return &dto.PrescriptionListResponse{
		Prescriptions: converter.PrescriptionsToResponses(prescriptions),
		Total:         len(prescriptions),
	}, nil
}
