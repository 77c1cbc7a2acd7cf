package repository

import (
	"context"
	"time"

	"vet-appointments-service/internal/domain/entity"
)

type AppointmentRepository interface {
	Create(ctx context.Context, appointment *entity.Appointment) error
	FindByID(ctx context.Context, id int) (*entity.Appointment, error)
	Update(ctx context.Context, appointment *entity.Appointment) error

	// FindSlot returns the active, non-cancelled appointment occupying the
	// exact (date, time, veterinarian) slot, or nil if the slot is free.
	FindSlot(ctx context.Context, date time.Time, timeOfDay string, veterinarianID int) (*entity.Appointment, error)

	// FindByVeterinarianAndDate returns active appointments for one
	// veterinarian on one day, ordered by time ascending.
	FindByVeterinarianAndDate(ctx context.Context, veterinarianID int, date time.Time) ([]entity.Appointment, error)

	// FindByClient returns a client's appointments ordered by date then time
	// descending. Inactive rows are excluded unless includeInactive is set.
	FindByClient(ctx context.Context, clientID int, status *entity.AppointmentStatus, includeInactive bool) ([]entity.Appointment, error)

	// FindBetweenDates returns active pending/confirmed appointments in the
	// date window, used for reminder scans.
	FindBetweenDates(ctx context.Context, from, to time.Time) ([]entity.Appointment, error)

	// CountForVeterinarian counts active appointments for dashboard figures.
	// Nil status or date bounds are ignored.
	CountForVeterinarian(ctx context.Context, veterinarianID int, status *entity.AppointmentStatus, from, to *time.Time) (int64, error)
}
