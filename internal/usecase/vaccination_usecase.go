package usecase

import (
	"context"
	"errors"
	"strconv"

	"vet-appointments-service/internal/converter"
	"vet-appointments-service/internal/delivery/dto"
	"vet-appointments-service/internal/delivery/http/middleware"
	"vet-appointments-service/internal/domain/entity"
	"vet-appointments-service/internal/domain/repository"
	"vet-appointments-service/internal/gateway"

	"github.com/sirupsen/logrus"
)

var ErrVaccinationNotFound = errors.New("vaccination not found")

// defaultUpcomingDays bounds the "upcoming doses" window when the caller
// does not pass one.
const defaultUpcomingDays = 30

type VaccinationUsecase interface {
	Create(ctx context.Context, petID int, req *dto.CreateVaccinationRequest) (*dto.VaccinationResponse, error)
	GetByPet(ctx context.Context, petID int) (*dto.VaccinationListResponse, error)
	Update(ctx context.Context, vaccinationID int, req *dto.UpdateVaccinationRequest) (*dto.VaccinationResponse, error)
	Delete(ctx context.Context, vaccinationID int) error
	GetUpcoming(ctx context.Context, days string) (*dto.VaccinationListResponse, error)
}

type vaccinationUsecase struct {
	log             *logrus.Logger
	vaccinationRepo repository.VaccinationRepository
	patientsService gateway.PatientsService
}

func NewVaccinationUsecase(
	log *logrus.Logger,
	vaccinationRepo repository.VaccinationRepository,
	patientsService gateway.PatientsService,
) VaccinationUsecase {
	return &vaccinationUsecase{
		log:             log,
		vaccinationRepo: vaccinationRepo,
		patientsService: patientsService,
	}
}

func (u *vaccinationUsecase) Create(ctx context.Context, petID int, req *dto.CreateVaccinationRequest) (*dto.VaccinationResponse, error) {
	identity, ok := middleware.GetIdentityFromContext(ctx)
	if !ok {
		return nil, ErrUnauthenticated
	}
	bearer, _ := middleware.GetBearerFromContext(ctx)

	applicationDate, err := parseDate(req.ApplicationDate)
	if err != nil {
		return nil, err
	}

	pet, err := u.patientsService.GetPetByID(ctx, petID, bearer)
	if err != nil {
		u.log.Warnf("Failed to verify pet %d: %+v", petID, err)
		return nil, err
	}
	if pet == nil {
		return nil, ErrPetNotFound
	}

	vaccination := &entity.Vaccination{
		PetID:           petID,
		RecordID:        req.RecordID,
		VaccineName:     req.VaccineName,
		ApplicationDate: applicationDate,
		NextDoseDate:    normalizeOptionalDate(req.NextDoseDate),
		Batch:           req.Batch,
		Manufacturer:    req.Manufacturer,
		VeterinarianID:  identity.ID,
		Observations:    req.Observations,
		IsActive:        true,
	}

	if err := u.vaccinationRepo.Create(ctx, vaccination); err != nil {
		u.log.Warnf("Failed to create vaccination for pet %d: %+v", petID, err)
		return nil, err
	}

	u.log.Infof("Vaccination created: id=%d, pet=%d", vaccination.ID, petID)
	return converter.VaccinationToResponse(vaccination), nil
}

func (u *vaccinationUsecase) GetByPet(ctx context.Context, petID int) (*dto.VaccinationListResponse, error) {
	bearer, _ := middleware.GetBearerFromContext(ctx)

	pet, err := u.patientsService.GetPetByID(ctx, petID, bearer)
	if err != nil {
		u.log.Warnf("Failed to verify pet %d: %+v", petID, err)
		return nil, err
	}
	if pet == nil {
		return nil, ErrPetNotFound
	}

	vaccinations, err := u.vaccinationRepo.FindByPetID(ctx, petID)
	if err != nil {
		u.log.Warnf("Failed to list vaccinations for pet %d: %+v", petID, err)
		return nil, err
	}

	return &dto.VaccinationListResponse{
		Vaccinations: converter.VaccinationsToResponses(vaccinations),
		Total:        len(vaccinations),
	}, nil
}

// Update merges provided fields; nil keeps the stored value. NextDoseDate
// follows date normalization: an explicit empty string clears it.
func (u *vaccinationUsecase) Update(ctx context.Context, vaccinationID int, req *dto.UpdateVaccinationRequest) (*dto.VaccinationResponse, error) {
	vaccination, err := u.vaccinationRepo.FindByID(ctx, vaccinationID)
	if err != nil {
		u.log.Warnf("Failed to find vaccination %d: %+v", vaccinationID, err)
		return nil, err
	}
	if vaccination == nil || !vaccination.IsActive {
		return nil, ErrVaccinationNotFound
	}

	applyIfSet(req.VaccineName, &vaccination.VaccineName)
	applyIfSet(req.Batch, &vaccination.Batch)
	applyIfSet(req.Manufacturer, &vaccination.Manufacturer)
	applyIfSet(req.Observations, &vaccination.Observations)
	if req.ApplicationDate != nil {
		applicationDate, err := parseDate(*req.ApplicationDate)
		if err != nil {
			return nil, err
		}
		vaccination.ApplicationDate = applicationDate
	}
	if req.NextDoseDate != nil {
		vaccination.NextDoseDate = normalizeOptionalDate(*req.NextDoseDate)
	}

	if err := u.vaccinationRepo.Update(ctx, vaccination); err != nil {
		u.log.Warnf("Failed to update vaccination %d: %+v", vaccinationID, err)
		return nil, err
	}

	return converter.VaccinationToResponse(vaccination), nil
}

func (u *vaccinationUsecase) Delete(ctx context.Context, vaccinationID int) error {
	vaccination, err := u.vaccinationRepo.FindByID(ctx, vaccinationID)
	if err != nil {
		u.log.Warnf("Failed to find vaccination %d: %+v", vaccinationID, err)
		return err
	}
	if vaccination == nil || !vaccination.IsActive {
		return ErrVaccinationNotFound
	}

	vaccination.IsActive = false
	if err := u.vaccinationRepo.Update(ctx, vaccination); err != nil {
		u.log.Warnf("Failed to delete vaccination %d: %+v", vaccinationID, err)
		return err
	}

	u.log.Infof("Vaccination deleted: id=%d", vaccinationID)
	return nil
}

func (u *vaccinationUsecase) GetUpcoming(ctx context.Context, days string) (*dto.VaccinationListResponse, error) {
	from := today()
	to := from.AddDate(0, 0, parseDays(days))

	vaccinations, err := u.vaccinationRepo.FindUpcoming(ctx, from, to)
	if err != nil {
		u.log.Warnf("Failed to list upcoming vaccinations: %+v", err)
		return nil, err
	}

	return &dto.VaccinationListResponse{
		Vaccinations: converter.VaccinationsToResponses(vaccinations),
		Total:        len(vaccinations),
	}, nil
}

func parseDays(value string) int {
	days, err := strconv.Atoi(value)
	if err != nil || days <= 0 {
		return defaultUpcomingDays
	}
	return days
}
