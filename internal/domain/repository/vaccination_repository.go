package repository

import (
	"context"
	"time"

	"vet-appointments-service/internal/domain/entity"
)

type VaccinationRepository interface {
	Create(ctx context.Context, vaccination *entity.Vaccination) error
	FindByID(ctx context.Context, id int) (*entity.Vaccination, error)

	// FindByPetID returns a pet's active vaccinations, most recent
	// application first.
	FindByPetID(ctx context.Context, petID int) ([]entity.Vaccination, error)

	Update(ctx context.Context, vaccination *entity.Vaccination) error

	// FindUpcoming returns active vaccinations whose next dose falls inside
	// [from, to], ordered by next dose ascending.
	FindUpcoming(ctx context.Context, from, to time.Time) ([]entity.Vaccination, error)
}

type DewormingRepository interface {
	Create(ctx context.Context, deworming *entity.Deworming) error
	FindByID(ctx context.Context, id int) (*entity.Deworming, error)
	FindByPetID(ctx context.Context, petID int) ([]entity.Deworming, error)
	Update(ctx context.Context, deworming *entity.Deworming) error
	FindUpcoming(ctx context.Context, from, to time.Time) ([]entity.Deworming, error)
}
