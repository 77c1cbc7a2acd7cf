package usecase

import (
	"context"
	"time"

	"vet-appointments-service/internal/delivery/dto"
	"vet-appointments-service/internal/delivery/http/middleware"
	"vet-appointments-service/internal/domain/entity"
	"vet-appointments-service/internal/domain/repository"

	"github.com/sirupsen/logrus"
)

type DashboardUsecase interface {
	GetVeterinarianDashboard(ctx context.Context) (*dto.VeterinarianDashboardResponse, error)
	GetFollowUps(ctx context.Context) (*dto.FollowUpListResponse, error)
}

type dashboardUsecase struct {
	log             *logrus.Logger
	appointmentRepo repository.AppointmentRepository
	recordRepo      repository.MedicalRecordRepository
}

func NewDashboardUsecase(
	log *logrus.Logger,
	appointmentRepo repository.AppointmentRepository,
	recordRepo repository.MedicalRecordRepository,
) DashboardUsecase {
	return &dashboardUsecase{
		log:             log,
		appointmentRepo: appointmentRepo,
		recordRepo:      recordRepo,
	}
}

// GetVeterinarianDashboard aggregates headline counts for the calling
// veterinarian.
func (u *dashboardUsecase) GetVeterinarianDashboard(ctx context.Context) (*dto.VeterinarianDashboardResponse, error) {
	identity, ok := middleware.GetIdentityFromContext(ctx)
	if !ok {
		return nil, ErrUnauthenticated
	}

	now := today()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)

	todayCount, err := u.appointmentRepo.CountForVeterinarian(ctx, identity.ID, nil, &now, &now)
	if err != nil {
		u.log.Warnf("Failed to count today's appointments for vet %d: %+v", identity.ID, err)
		return nil, err
	}

	pending := entity.AppointmentStatusPending
	pendingCount, err := u.appointmentRepo.CountForVeterinarian(ctx, identity.ID, &pending, nil, nil)
	if err != nil {
		u.log.Warnf("Failed to count pending appointments for vet %d: %+v", identity.ID, err)
		return nil, err
	}

	completed := entity.AppointmentStatusCompleted
	completedCount, err := u.appointmentRepo.CountForVeterinarian(ctx, identity.ID, &completed, &monthStart, &now)
	if err != nil {
		u.log.Warnf("Failed to count completed appointments for vet %d: %+v", identity.ID, err)
		return nil, err
	}

	followUps, err := u.recordRepo.FindFollowUpsBetween(ctx, now, now.AddDate(0, 0, followUpWindowDays), &identity.ID)
	if err != nil {
		u.log.Warnf("Failed to count follow-ups for vet %d: %+v", identity.ID, err)
		return nil, err
	}

	return &dto.VeterinarianDashboardResponse{
		TodayAppointments:  todayCount,
		PendingCount:       pendingCount,
		CompletedThisMonth: completedCount,
		UpcomingFollowUps:  len(followUps),
	}, nil
}

// GetFollowUps lists the calling veterinarian's pending follow-up
// consultations inside the reminder window.
func (u *dashboardUsecase) GetFollowUps(ctx context.Context) (*dto.FollowUpListResponse, error) {
	identity, ok := middleware.GetIdentityFromContext(ctx)
	if !ok {
		return nil, ErrUnauthenticated
	}

	now := today()
	records, err := u.recordRepo.FindFollowUpsBetween(ctx, now, now.AddDate(0, 0, followUpWindowDays), &identity.ID)
	if err != nil {
		u.log.Warnf("Failed to list follow-ups for vet %d: %+v", identity.ID, err)
		return nil, err
	}

	followUps := followUpReminders(records)
	return &dto.FollowUpListResponse{
		FollowUps: followUps,
		Total:     len(followUps),
	}, nil
}
