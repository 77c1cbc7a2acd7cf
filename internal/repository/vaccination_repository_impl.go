package repository

import (
	"context"
	"errors"
	"time"

	"vet-appointments-service/internal/domain/entity"
	domainRepo "vet-appointments-service/internal/domain/repository"

	"gorm.io/gorm"
)

type vaccinationRepository struct {
	db *gorm.DB
}

func NewVaccinationRepository(db *gorm.DB) domainRepo.VaccinationRepository {
	return &vaccinationRepository{db: db}
}

func (r *vaccinationRepository) Create(ctx context.Context, vaccination *entity.Vaccination) error {
	return r.db.WithContext(ctx).Create(vaccination).Error
}

func (r *vaccinationRepository) FindByID(ctx context.Context, id int) (*entity.Vaccination, error) {
	var vaccination entity.Vaccination
	err := r.db.WithContext(ctx).
		Where("vaccination_id = ?", id).
		First(&vaccination).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &vaccination, nil
}

func (r *vaccinationRepository) FindByPetID(ctx context.Context, petID int) ([]entity.Vaccination, error) {
	var vaccinations []entity.Vaccination
	err := r.db.WithContext(ctx).
		Where("pet_id = ? AND is_active = ?", petID, true).
		Order("application_date DESC").
		Find(&vaccinations).Error
	if err != nil {
		return nil, err
	}
	return vaccinations, nil
}

func (r *vaccinationRepository) Update(ctx context.Context, vaccination *entity.Vaccination) error {
	return r.db.WithContext(ctx).Save(vaccination).Error
}

func (r *vaccinationRepository) FindUpcoming(ctx context.Context, from, to time.Time) ([]entity.Vaccination, error) {
	var vaccinations []entity.Vaccination
	err := r.db.WithContext(ctx).
		Where("next_dose_date BETWEEN ? AND ? AND is_active = ?", from, to, true).
		Order("next_dose_date ASC").
		Find(&vaccinations).Error
	if err != nil {
		return nil, err
	}
	return vaccinations, nil
}

type dewormingRepository struct {
	db *gorm.DB
}

func NewDewormingRepository(db *gorm.DB) domainRepo.DewormingRepository {
	return &dewormingRepository{db: db}
}

func (r *dewormingRepository) Create(ctx context.Context, deworming *entity.Deworming) error {
	return r.db.WithContext(ctx).Create(deworming).Error
}

func (r *dewormingRepository) FindByID(ctx context.Context, id int) (*entity.Deworming, error) {
	var deworming entity.Deworming
	err := r.db.WithContext(ctx).
		Where("deworming_id = ?", id).
		First(&deworming).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &deworming, nil
}

func (r *dewormingRepository) FindByPetID(ctx context.Context, petID int) ([]entity.Deworming, error) {
	var dewormings []entity.Deworming
	err := r.db.WithContext(ctx).
		Where("pet_id = ? AND is_active = ?", petID, true).
		Order("application_date DESC").
		Find(&dewormings).Error
	if err != nil {
		return nil, err
	}
	return dewormings, nil
}

func (r *dewormingRepository) Update(ctx context.Context, deworming *entity.Deworming) error {
	return r.db.WithContext(ctx).Save(deworming).Error
}

func (r *dewormingRepository) FindUpcoming(ctx context.Context, from, to time.Time) ([]entity.Deworming, error) {
	var dewormings []entity.Deworming
	err := r.db.WithContext(ctx).
		Where("next_dose_date BETWEEN ? AND ? AND is_active = ?", from, to, true).
		Order("next_dose_date ASC").
		Find(&dewormings).Error
	if err != nil {
		return nil, err
	}
	return dewormings, nil
}
