package repository

import (
	"context"
	"errors"
	"time"

	"vet-appointments-service/internal/domain/entity"
	domainRepo "vet-appointments-service/internal/domain/repository"

	"gorm.io/gorm"
)

type appointmentRepository struct {
	db *gorm.DB
}

func NewAppointmentRepository(db *gorm.DB) domainRepo.AppointmentRepository {
	return &appointmentRepository{db: db}
}

func (r *appointmentRepository) Create(ctx context.Context, appointment *entity.Appointment) error {
	return r.db.WithContext(ctx).Create(appointment).Error
}

func (r *appointmentRepository) FindByID(ctx context.Context, id int) (*entity.Appointment, error) {
	var appointment entity.Appointment
	err := r.db.WithContext(ctx).
		Where("appointment_id = ? AND is_active = ?", id, true).
		First(&appointment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &appointment, nil
}

func (r *appointmentRepository) Update(ctx context.Context, appointment *entity.Appointment) error {
	return r.db.WithContext(ctx).Save(appointment).Error
}

func (r *appointmentRepository) FindSlot(ctx context.Context, date time.Time, timeOfDay string, veterinarianID int) (*entity.Appointment, error) {
	var appointment entity.Appointment
	err := r.db.WithContext(ctx).
		Where("date = ? AND time = ? AND veterinarian_id = ? AND is_active = ? AND status != ?",
			date, timeOfDay, veterinarianID, true, entity.AppointmentStatusCancelled).
		First(&appointment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &appointment, nil
}

func (r *appointmentRepository) FindByVeterinarianAndDate(ctx context.Context, veterinarianID int, date time.Time) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	err := r.db.WithContext(ctx).
		Where("veterinarian_id = ? AND date = ? AND is_active = ?", veterinarianID, date, true).
		Order("time ASC").
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) FindByClient(ctx context.Context, clientID int, status *entity.AppointmentStatus, includeInactive bool) ([]entity.Appointment, error) {
	query := r.db.WithContext(ctx).Where("client_id = ?", clientID)
	if status != nil {
		query = query.Where("status = ?", *status)
	}
	if !includeInactive {
		query = query.Where("is_active = ?", true)
	}

	var appointments []entity.Appointment
	err := query.Order("date DESC, time DESC").Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) FindBetweenDates(ctx context.Context, from, to time.Time) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	err := r.db.WithContext(ctx).
		Where("date BETWEEN ? AND ? AND is_active = ? AND status IN ?",
			from, to, true, []entity.AppointmentStatus{entity.AppointmentStatusPending, entity.AppointmentStatusConfirmed}).
		Order("date ASC, time ASC").
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) CountForVeterinarian(ctx context.Context, veterinarianID int, status *entity.AppointmentStatus, from, to *time.Time) (int64, error) {
	query := r.db.WithContext(ctx).Model(&entity.Appointment{}).
		Where("veterinarian_id = ? AND is_active = ?", veterinarianID, true)
	if status != nil {
		query = query.Where("status = ?", *status)
	}
	if from != nil {
		query = query.Where("date >= ?", *from)
	}
	if to != nil {
		query = query.Where("date <= ?", *to)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
