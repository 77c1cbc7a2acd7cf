package handler

import (
	"context"

	"vet-appointments-service/internal/delivery/dto"
	"vet-appointments-service/internal/usecase"
)

// Func-field fakes for the usecase contracts the handlers call. Only the
// methods exercised by the handler tests are wired.

var _ usecase.AppointmentUsecase = (*fakeAppointmentUsecase)(nil)

type fakeAppointmentUsecase struct {
	CreateFunc                  func(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error)
	GetByIDFunc                 func(ctx context.Context, appointmentID int) (*dto.AppointmentResponse, error)
	GetMyAppointmentsFunc       func(ctx context.Context, statusFilter string, includeInactive bool) (*dto.AppointmentListResponse, error)
	GetVeterinarianScheduleFunc func(ctx context.Context, date string) (*dto.ScheduleResponse, error)
	UpdateAttentionFunc         func(ctx context.Context, appointmentID int, req *dto.UpdateAttentionRequest) (*dto.AppointmentResponse, error)
	CancelFunc                  func(ctx context.Context, appointmentID int) error
}

func (f *fakeAppointmentUsecase) Create(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
	return f.CreateFunc(ctx, req)
}

func (f *fakeAppointmentUsecase) GetByID(ctx context.Context, appointmentID int) (*dto.AppointmentResponse, error) {
	return f.GetByIDFunc(ctx, appointmentID)
}

func (f *fakeAppointmentUsecase) GetMyAppointments(ctx context.Context, statusFilter string, includeInactive bool) (*dto.AppointmentListResponse, error) {
	return f.GetMyAppointmentsFunc(ctx, statusFilter, includeInactive)
}

func (f *fakeAppointmentUsecase) GetVeterinarianSchedule(ctx context.Context, date string) (*dto.ScheduleResponse, error) {
	return f.GetVeterinarianScheduleFunc(ctx, date)
}

func (f *fakeAppointmentUsecase) UpdateAttention(ctx context.Context, appointmentID int, req *dto.UpdateAttentionRequest) (*dto.AppointmentResponse, error) {
	return f.UpdateAttentionFunc(ctx, appointmentID, req)
}

func (f *fakeAppointmentUsecase) Cancel(ctx context.Context, appointmentID int) error {
	return f.CancelFunc(ctx, appointmentID)
}

var _ usecase.MedicalRecordUsecase = (*fakeMedicalRecordUsecase)(nil)

type fakeMedicalRecordUsecase struct {
	CreateFunc           func(ctx context.Context, appointmentID int, req *dto.CreateMedicalRecordRequest) (*dto.MedicalRecordResponse, error)
	UpdateFunc           func(ctx context.Context, appointmentID int, req *dto.UpdateMedicalRecordRequest) (*dto.MedicalRecordResponse, error)
	GetByAppointmentFunc func(ctx context.Context, appointmentID int) (*dto.MedicalRecordResponse, error)
	GetHistoryByPetFunc  func(ctx context.Context, petID int) (*dto.MedicalHistoryResponse, error)
}

func (f *fakeMedicalRecordUsecase) Create(ctx context.Context, appointmentID int, req *dto.CreateMedicalRecordRequest) (*dto.MedicalRecordResponse, error) {
	return f.CreateFunc(ctx, appointmentID, req)
}

func (f *fakeMedicalRecordUsecase) Update(ctx context.Context, appointmentID int, req *dto.UpdateMedicalRecordRequest) (*dto.MedicalRecordResponse, error) {
	return f.UpdateFunc(ctx, appointmentID, req)
}

func (f *fakeMedicalRecordUsecase) GetByAppointment(ctx context.Context, appointmentID int) (*dto.MedicalRecordResponse, error) {
	return f.GetByAppointmentFunc(ctx, appointmentID)
}

func (f *fakeMedicalRecordUsecase) GetHistoryByPet(ctx context.Context, petID int) (*dto.MedicalHistoryResponse, error) {
	return f.GetHistoryByPetFunc(ctx, petID)
}
