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
	"vet-appointments-service/internal/gateway"
	"vet-appointments-service/internal/messaging"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrAppointmentNotFound    = errors.New("appointment not found")
	ErrDateInPast             = errors.New("appointment date cannot be before today")
	ErrPetNotFound            = errors.New("pet not found")
	ErrPetNotOwned            = errors.New("pet does not belong to you")
	ErrInvalidVeterinarian    = errors.New("veterinarian not found or does not hold the veterinarian role")
	ErrSchedulingConflict     = errors.New("veterinarian already has an appointment in this slot")
	ErrAttentionFieldsMissing = errors.New("at least one of procedure, diagnosis or indications is required")
	ErrNotYourAppointment     = errors.New("appointment does not belong to you")
	ErrAppointmentCancelled   = errors.New("appointment is cancelled")
	ErrAlreadyCancelled       = errors.New("appointment is already cancelled")
	ErrCancelCompleted        = errors.New("completed appointments cannot be cancelled")
	ErrInvalidStatusFilter    = errors.New("invalid status filter")
)

type AppointmentUsecase interface {
	Create(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error)
	GetByID(ctx context.Context, appointmentID int) (*dto.AppointmentResponse, error)
	GetMyAppointments(ctx context.Context, statusFilter string, includeInactive bool) (*dto.AppointmentListResponse, error)
	GetVeterinarianSchedule(ctx context.Context, date string) (*dto.ScheduleResponse, error)
	UpdateAttention(ctx context.Context, appointmentID int, req *dto.UpdateAttentionRequest) (*dto.AppointmentResponse, error)
	Cancel(ctx context.Context, appointmentID int) error
}

type appointmentUsecase struct {
	log             *logrus.Logger
	appointmentRepo repository.AppointmentRepository
	authService     gateway.AuthService
	patientsService gateway.PatientsService
	publisher       messaging.EventPublisher
}

func NewAppointmentUsecase(
	log *logrus.Logger,
	appointmentRepo repository.AppointmentRepository,
	authService gateway.AuthService,
	patientsService gateway.PatientsService,
	publisher messaging.EventPublisher,
) AppointmentUsecase {
	return &appointmentUsecase{
		log:             log,
		appointmentRepo: appointmentRepo,
		authService:     authService,
		patientsService: patientsService,
		publisher:       publisher,
	}
}

// Create books an appointment slot for the calling client.
//
// Flow:
// 1. Validate date/time format, reject past dates
// 2. Verify pet exists and belongs to the caller (Patients service)
// 3. Verify the target user holds the veterinarian role (Auth service)
// 4. Check the (date, time, veterinarian) slot is free
// 5. Insert with status pending; a unique-index violation on insert is the
//    authoritative conflict signal for requests that raced past the check
// 6. Best-effort: enrich with display names and publish appointment.created
func (u *appointmentUsecase) Create(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
	identity, ok := middleware.GetIdentityFromContext(ctx)
	if !ok {
		return nil, ErrUnauthenticated
	}
	bearer, _ := middleware.GetBearerFromContext(ctx)

	date, err := parseDate(req.Date)
	if err != nil {
		return nil, err
	}
	timeOfDay, err := normalizeTime(req.Time)
	if err != nil {
		return nil, err
	}
	if date.Before(today()) {
		return nil, ErrDateInPast
	}

	// Step 2: pet exists and is owned by the caller
	pet, err := u.patientsService.GetPetByID(ctx, req.PetID, bearer)
	if err != nil {
		u.log.Warnf("Failed to verify pet %d: %+v", req.PetID, err)
		return nil, err
	}
	if pet == nil {
		return nil, ErrPetNotFound
	}
	if pet.OwnerEmail != identity.Email {
		return nil, ErrPetNotOwned
	}

	// Step 3: target user exists and is a veterinarian
	veterinarian, err := u.authService.GetUserByID(ctx, req.VeterinarianID, bearer)
	if err != nil {
		u.log.Warnf("Failed to verify veterinarian %d: %+v", req.VeterinarianID, err)
		return nil, err
	}
	if veterinarian == nil || veterinarian.Role != gateway.RoleVeterinarian {
		return nil, ErrInvalidVeterinarian
	}

	// Step 4: fast-path conflict check
	occupant, err := u.appointmentRepo.FindSlot(ctx, date, timeOfDay, req.VeterinarianID)
	if err != nil {
		u.log.Warnf("Failed to check slot availability: %+v", err)
		return nil, err
	}
	if occupant != nil {
		return nil, fmt.Errorf("%w: %s at %s", ErrSchedulingConflict, req.Date, timeOfDay)
	}

	appointment := &entity.Appointment{
		Date:           date,
		Time:           timeOfDay,
		Reason:         req.Reason,
		PetID:          req.PetID,
		ClientID:       identity.ID,
		VeterinarianID: req.VeterinarianID,
		Status:         entity.AppointmentStatusPending,
		IsActive:       true,
	}

	if err := u.appointmentRepo.Create(ctx, appointment); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("%w: %s at %s", ErrSchedulingConflict, req.Date, timeOfDay)
		}
		u.log.Warnf("Failed to insert appointment: %+v", err)
		return nil, err
	}

	u.log.Infof("Appointment created: id=%d, vet=%d, slot=%s %s", appointment.ID, req.VeterinarianID, req.Date, timeOfDay)

	// Step 6: enrichment and event publishing never fail the booking
	u.publishCreated(ctx, appointment, identity, pet, veterinarian, bearer)

	response := converter.AppointmentToResponse(appointment)
	response.PetName = pet.Name
	response.VeterinarianName = veterinarian.FullName
	return response, nil
}

type eventParty struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
}

type appointmentCreatedEvent struct {
	AppointmentID int        `json:"appointment_id"`
	Date          string     `json:"date"`
	Time          string     `json:"time"`
	Reason        string     `json:"reason"`
	Pet           eventParty `json:"pet"`
	Client        eventParty `json:"client"`
	Veterinarian  eventParty `json:"veterinarian"`
}

func (u *appointmentUsecase) publishCreated(
	ctx context.Context,
	appointment *entity.Appointment,
	identity middleware.Identity,
	pet *gateway.Pet,
	veterinarian *gateway.User,
	bearer string,
) {
	clientName := namePlaceholder
	if client, err := u.authService.GetUserByID(ctx, identity.ID, bearer); err == nil && client != nil {
		clientName = client.FullName
	} else if err != nil {
		u.log.Warnf("Failed to resolve client %d for event enrichment: %+v", identity.ID, err)
	}

	// The event carries the denormalized notification snapshot; without both
	// emails downstream consumers cannot notify anyone, so skip publishing.
	if veterinarian.Email == "" || identity.Email == "" {
		u.log.Warnf("Skipping appointment.created for %d: missing notification emails", appointment.ID)
		return
	}

	event := appointmentCreatedEvent{
		AppointmentID: appointment.ID,
		Date:          appointment.Date.Format(dateLayout),
		Time:          appointment.Time,
		Reason:        appointment.Reason,
		Pet:           eventParty{ID: pet.ID, Name: pet.Name},
		Client:        eventParty{ID: identity.ID, Name: clientName, Email: identity.Email},
		Veterinarian:  eventParty{ID: veterinarian.ID, Name: veterinarian.FullName, Email: veterinarian.Email},
	}

	if err := u.publisher.Publish(ctx, messaging.EventAppointmentCreated, event); err != nil {
		u.log.Warnf("Failed to publish appointment.created for %d (non-fatal): %+v", appointment.ID, err)
	}
}

// GetByID returns one active appointment. Only the owning client or the
// assigned veterinarian may view it.
func (u *appointmentUsecase) GetByID(ctx context.Context, appointmentID int) (*dto.AppointmentResponse, error) {
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
	if appointment.ClientID != identity.ID && appointment.VeterinarianID != identity.ID {
		return nil, ErrNotYourAppointment
	}

	bearer, _ := middleware.GetBearerFromContext(ctx)
	response := converter.AppointmentToResponse(appointment)
	response.PetName = u.petName(ctx, appointment.PetID, bearer)
	response.ClientName = u.userName(ctx, appointment.ClientID, bearer)
	response.VeterinarianName = u.userName(ctx, appointment.VeterinarianID, bearer)
	return response, nil
}

// GetMyAppointments returns the calling client's appointments, newest first,
// each enriched with pet and veterinarian display names.
func (u *appointmentUsecase) GetMyAppointments(ctx context.Context, statusFilter string, includeInactive bool) (*dto.AppointmentListResponse, error) {
	identity, ok := middleware.GetIdentityFromContext(ctx)
	if !ok {
		return nil, ErrUnauthenticated
	}

	var status *entity.AppointmentStatus
	if statusFilter != "" {
		s := entity.AppointmentStatus(statusFilter)
		if !s.IsValid() {
			return nil, ErrInvalidStatusFilter
		}
		status = &s
	}

	appointments, err := u.appointmentRepo.FindByClient(ctx, identity.ID, status, includeInactive)
	if err != nil {
		u.log.Warnf("Failed to find appointments for client %d: %+v", identity.ID, err)
		return nil, err
	}

	bearer, _ := middleware.GetBearerFromContext(ctx)
	responses := converter.AppointmentsToResponses(appointments)
	for i := range responses {
		responses[i].PetName = u.petName(ctx, responses[i].PetID, bearer)
		responses[i].VeterinarianName = u.userName(ctx, responses[i].VeterinarianID, bearer)
	}

	return &dto.AppointmentListResponse{
		Appointments: responses,
		Total:        len(responses),
	}, nil
}

// GetVeterinarianSchedule returns the caller's agenda for one day (today when
// the date is omitted), ordered by time ascending.
func (u *appointmentUsecase) GetVeterinarianSchedule(ctx context.Context, date string) (*dto.ScheduleResponse, error) {
	identity, ok := middleware.GetIdentityFromContext(ctx)
	if !ok {
		return nil, ErrUnauthenticated
	}

	if date == "" {
		date = today().Format(dateLayout)
	}
	day, err := parseDate(date)
	if err != nil {
		return nil, err
	}

	appointments, err := u.appointmentRepo.FindByVeterinarianAndDate(ctx, identity.ID, day)
	if err != nil {
		u.log.Warnf("Failed to load schedule for veterinarian %d: %+v", identity.ID, err)
		return nil, err
	}

	bearer, _ := middleware.GetBearerFromContext(ctx)
	responses := converter.AppointmentsToResponses(appointments)
	for i := range responses {
		responses[i].PetName = u.petName(ctx, responses[i].PetID, bearer)
		responses[i].ClientName = u.userName(ctx, responses[i].ClientID, bearer)
	}

	return &dto.ScheduleResponse{
		Date:         date,
		Appointments: responses,
		Total:        len(responses),
	}, nil
}

// UpdateAttention records the clinical outcome of a consultation and moves
// the appointment to completed. This is the sole transition into completed.
func (u *appointmentUsecase) UpdateAttention(ctx context.Context, appointmentID int, req *dto.UpdateAttentionRequest) (*dto.AppointmentResponse, error) {
	identity, ok := middleware.GetIdentityFromContext(ctx)
	if !ok {
		return nil, ErrUnauthenticated
	}

	if req.Procedure == nil && req.Diagnosis == nil && req.Indications == nil {
		return nil, ErrAttentionFieldsMissing
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
	if appointment.IsCancelled() {
		return nil, ErrAppointmentCancelled
	}

	appointment.RecordAttention(
		stringValue(req.Procedure),
		stringValue(req.Diagnosis),
		stringValue(req.Indications),
	)

	if err := u.appointmentRepo.Update(ctx, appointment); err != nil {
		u.log.Warnf("Failed to update appointment %d: %+v", appointmentID, err)
		return nil, err
	}

	u.log.Infof("Attention recorded: appointment=%d, vet=%d", appointmentID, identity.ID)
	return converter.AppointmentToResponse(appointment), nil
}

// Cancel marks an appointment cancelled. The owning client or the assigned
// veterinarian may cancel; the row is retained.
func (u *appointmentUsecase) Cancel(ctx context.Context, appointmentID int) error {
	identity, ok := middleware.GetIdentityFromContext(ctx)
	if !ok {
		return ErrUnauthenticated
	}

	appointment, err := u.appointmentRepo.FindByID(ctx, appointmentID)
	if err != nil {
		u.log.Warnf("Failed to find appointment %d: %+v", appointmentID, err)
		return err
	}
	if appointment == nil {
		return ErrAppointmentNotFound
	}
	if appointment.ClientID != identity.ID && appointment.VeterinarianID != identity.ID {
		return ErrNotYourAppointment
	}
	if appointment.IsCancelled() {
		return ErrAlreadyCancelled
	}
	if appointment.IsCompleted() {
		return ErrCancelCompleted
	}

	appointment.Status = entity.AppointmentStatusCancelled
	if err := u.appointmentRepo.Update(ctx, appointment); err != nil {
		u.log.Warnf("Failed to cancel appointment %d: %+v", appointmentID, err)
		return err
	}

	u.log.Infof("Appointment cancelled: id=%d, by=%d", appointmentID, identity.ID)
	return nil
}

func (u *appointmentUsecase) petName(ctx context.Context, petID int, bearer string) string {
	pet, err := u.patientsService.GetPetByID(ctx, petID, bearer)
	if err != nil || pet == nil {
		return namePlaceholder
	}
	return pet.Name
}

func (u *appointmentUsecase) userName(ctx context.Context, userID int, bearer string) string {
	user, err := u.authService.GetUserByID(ctx, userID, bearer)
	if err != nil || user == nil {
		return namePlaceholder
	}
	return user.FullName
}

func stringValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
