package usecase

import (
	"context"
	"errors"

	"vet-appointments-service/internal/converter"
	"vet-appointments-service/internal/delivery/dto"
	"vet-appointments-service/internal/delivery/http/middleware"
	"vet-appointments-service/internal/domain/entity"
	"vet-appointments-service/internal/domain/repository"
	"vet-appointments-service/internal/gateway"

	"github.com/sirupsen/logrus"
)

var (
	ErrRecordNotFound = errors.New("medical record not found")
	// ErrRecordExists marks a duplicate record attempt; the handler returns
	// the existing record alongside it.
	ErrRecordExists = errors.New("appointment already has a medical record")
)

type MedicalRecordUsecase interface {
	Create(ctx context.Context, appointmentID int, req *dto.CreateMedicalRecordRequest) (*dto.MedicalRecordResponse, error)
	Update(ctx context.Context, appointmentID int, req *dto.UpdateMedicalRecordRequest) (*dto.MedicalRecordResponse, error)
	GetByAppointment(ctx context.Context, appointmentID int) (*dto.MedicalRecordResponse, error)
	GetHistoryByPet(ctx context.Context, petID int) (*dto.MedicalHistoryResponse, error)
}

type medicalRecordUsecase struct {
	log             *logrus.Logger
	recordRepo      repository.MedicalRecordRepository
	appointmentRepo repository.AppointmentRepository
	patientsService gateway.PatientsService
}

func NewMedicalRecordUsecase(
	log *logrus.Logger,
	recordRepo repository.MedicalRecordRepository,
	appointmentRepo repository.AppointmentRepository,
	patientsService gateway.PatientsService,
) MedicalRecordUsecase {
	return &medicalRecordUsecase{
		log:             log,
		recordRepo:      recordRepo,
		appointmentRepo: appointmentRepo,
		patientsService: patientsService,
	}
}

// Create opens the clinical record for an appointment. At most one record per
// appointment; when one already exists it is returned with ErrRecordExists
// and left untouched.
func (u *medicalRecordUsecase) Create(ctx context.Context, appointmentID int, req *dto.CreateMedicalRecordRequest) (*dto.MedicalRecordResponse, error) {
	identity, ok := middleware.GetIdentityFromContext(ctx)
	if !ok {
		return nil, ErrUnauthenticated
	}

	appointment, err := u.appointmentRepo.FindByID(ctx, appointmentID)
	if err != nil {
		u.log.Warnf("Failed to find appointment %d: %+v", appointmentID, err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}
	if appointment.IsCancelled() {
		return nil, ErrAppointmentCancelled
	}

	existing, err := u.recordRepo.FindByAppointmentID(ctx, appointmentID)
	if err != nil {
		u.log.Warnf("Failed to check existing record for appointment %d: %+v", appointmentID, err)
		return nil, err
	}
	if existing != nil {
		return converter.MedicalRecordToResponse(existing), ErrRecordExists
	}

	record := &entity.MedicalRecord{
		AppointmentID:       appointmentID,
		PetID:               appointment.PetID,
		VeterinarianID:      identity.ID,
		ClientID:            appointment.ClientID,
		Date:                appointment.Date,
		ChiefComplaint:      req.ChiefComplaint,
		Anamnesis:           req.Anamnesis,
		PhysicalExam:        req.PhysicalExam,
		Diagnosis:           req.Diagnosis,
		Treatment:           req.Treatment,
		ProceduresPerformed: req.ProceduresPerformed,
		Observations:        req.Observations,
		NextConsultation:    normalizeOptionalDate(req.NextConsultation),
		Status:              entity.MedicalRecordStatusInProgress,
		IsActive:            true,
	}

	vitals := vitalsFromRequest(req.VitalSigns, 0)

	if err := u.recordRepo.Create(ctx, record, vitals); err != nil {
		u.log.Warnf("Failed to create medical record for appointment %d: %+v", appointmentID, err)
		return nil, err
	}
	record.VitalSigns = vitals

	u.log.Infof("Medical record created: record=%d, appointment=%d", record.ID, appointmentID)
	return converter.MedicalRecordToResponse(record), nil
}

// Update merges the provided fields into the record. Nil fields keep stored
// values, explicit empty strings clear optional text. Vital signs are
// upserted.
func (u *medicalRecordUsecase) Update(ctx context.Context, appointmentID int, req *dto.UpdateMedicalRecordRequest) (*dto.MedicalRecordResponse, error) {
	if _, ok := middleware.GetIdentityFromContext(ctx); !ok {
		return nil, ErrUnauthenticated
	}

	record, err := u.recordRepo.FindByAppointmentID(ctx, appointmentID)
	if err != nil {
		u.log.Warnf("Failed to find record for appointment %d: %+v", appointmentID, err)
		return nil, err
	}
	if record == nil {
		return nil, ErrRecordNotFound
	}

	applyIfSet(req.ChiefComplaint, &record.ChiefComplaint)
	applyIfSet(req.Anamnesis, &record.Anamnesis)
	applyIfSet(req.PhysicalExam, &record.PhysicalExam)
	applyIfSet(req.Diagnosis, &record.Diagnosis)
	applyIfSet(req.Treatment, &record.Treatment)
	applyIfSet(req.ProceduresPerformed, &record.ProceduresPerformed)
	applyIfSet(req.Observations, &record.Observations)
	if req.NextConsultation != nil {
		record.NextConsultation = normalizeOptionalDate(*req.NextConsultation)
	}
	if req.Status != nil {
		record.Status = entity.MedicalRecordStatus(*req.Status)
	}

	if err := u.recordRepo.Update(ctx, record); err != nil {
		u.log.Warnf("Failed to update record %d: %+v", record.ID, err)
		return nil, err
	}

	if req.VitalSigns != nil {
		vitals := vitalsFromRequest(req.VitalSigns, record.ID)
		if err := u.recordRepo.UpsertVitalSigns(ctx, vitals); err != nil {
			u.log.Warnf("Failed to upsert vital signs for record %d: %+v", record.ID, err)
			return nil, err
		}
		record.VitalSigns = vitals
	}

	return converter.MedicalRecordToResponse(record), nil
}

func (u *medicalRecordUsecase) GetByAppointment(ctx context.Context, appointmentID int) (*dto.MedicalRecordResponse, error) {
	record, err := u.recordRepo.FindByAppointmentID(ctx, appointmentID)
	if err != nil {
		u.log.Warnf("Failed to find record for appointment %d: %+v", appointmentID, err)
		return nil, err
	}
	if record == nil {
		return nil, ErrRecordNotFound
	}
	return converter.MedicalRecordToResponse(record), nil
}

// GetHistoryByPet returns all active records for a pet, newest first, after
// verifying the pet exists remotely.
func (u *medicalRecordUsecase) GetHistoryByPet(ctx context.Context, petID int) (*dto.MedicalHistoryResponse, error) {
	bearer, _ := middleware.GetBearerFromContext(ctx)

	pet, err := u.patientsService.GetPetByID(ctx, petID, bearer)
	if err != nil {
		u.log.Warnf("Failed to verify pet %d: %+v", petID, err)
		return nil, err
	}
	if pet == nil {
		return nil, ErrPetNotFound
	}

	records, err := u.recordRepo.FindByPetID(ctx, petID)
	if err != nil {
		u.log.Warnf("Failed to load medical history for pet %d: %+v", petID, err)
		return nil, err
	}

	return &dto.MedicalHistoryResponse{
		PetID:   petID,
		PetName: pet.Name,
		Records: converter.MedicalRecordsToResponses(records),
		Total:   len(records),
	}, nil
}

func vitalsFromRequest(req *dto.VitalSignsRequest, recordID int) *entity.VitalSigns {
	if req == nil {
		return nil
	}

	hydration := entity.HydrationLevel(req.Hydration)
	if req.Hydration == "" {
		hydration = entity.HydrationNormal
	}

	return &entity.VitalSigns{
		RecordID:           recordID,
		Temperature:        req.Temperature,
		Weight:             req.Weight,
		HeartRate:          req.HeartRate,
		RespiratoryRate:    req.RespiratoryRate,
		BloodPressure:      req.BloodPressure,
		BodyConditionScore: req.BodyConditionScore,
		Hydration:          hydration,
	}
}

func applyIfSet(value *string, target *string) {
	if value != nil {
		*target = *value
	}
}
