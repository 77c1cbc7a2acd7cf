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

var ErrDewormingNotFound = errors.New("deworming not found")

type DewormingUsecase interface {
	Create(ctx context.Context, petID int, req *dto.CreateDewormingRequest) (*dto.DewormingResponse, error)
	GetByPet(ctx context.Context, petID int) (*dto.DewormingListResponse, error)
	Update(ctx context.Context, dewormingID int, req *dto.UpdateDewormingRequest) (*dto.DewormingResponse, error)
	Delete(ctx context.Context, dewormingID int) error
	GetUpcoming(ctx context.Context, days string) (*dto.DewormingListResponse, error)
}

type dewormingUsecase struct {
	log             *logrus.Logger
	dewormingRepo   repository.DewormingRepository
	patientsService gateway.PatientsService
}

func NewDewormingUsecase(
	log *logrus.Logger,
	dewormingRepo repository.DewormingRepository,
	patientsService gateway.PatientsService,
) DewormingUsecase {
	return &dewormingUsecase{
		log:             log,
		dewormingRepo:   dewormingRepo,
		patientsService: patientsService,
	}
}

func (u *dewormingUsecase) Create(ctx context.Context, petID int, req *dto.CreateDewormingRequest) (*dto.DewormingResponse, error) {
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

	parasiteType := entity.ParasiteType(req.ParasiteType)
	if req.ParasiteType == "" {
		parasiteType = entity.ParasiteInternal
	}

	deworming := &entity.Deworming{
		PetID:           petID,
		RecordID:        req.RecordID,
		Product:         req.Product,
		ParasiteType:    parasiteType,
		ApplicationDate: applicationDate,
		NextDoseDate:    normalizeOptionalDate(req.NextDoseDate),
		Weight:          req.Weight,
		Dose:            req.Dose,
		Route:           entity.AdministrationRoute(req.Route),
		VeterinarianID:  identity.ID,
		Observations:    req.Observations,
		IsActive:        true,
	}

	if err := u.dewormingRepo.Create(ctx, deworming); err != nil {
		u.log.Warnf("Failed to create deworming for pet %d: %+v", petID, err)
		return nil, err
	}

	u.log.Infof("Deworming created: id=%d, pet=%d", deworming.ID, petID)
	return converter.DewormingToResponse(deworming), nil
}

func (u *dewormingUsecase) GetByPet(ctx context.Context, petID int) (*dto.DewormingListResponse, error) {
	bearer, _ := middleware.GetBearerFromContext(ctx)

	pet, err := u.patientsService.GetPetByID(ctx, petID, bearer)
	if err != nil {
		u.log.Warnf("Failed to verify pet %d: %+v", petID, err)
		return nil, err
	}
	if pet == nil {
		return nil, ErrPetNotFound
	}

	dewormings, err := u.dewormingRepo.FindByPetID(ctx, petID)
	if err != nil {
		u.log.Warnf("Failed to list dewormings for pet %d: %+v", petID, err)
		return nil, err
	}

	return &dto.DewormingListResponse{
		Dewormings: converter.DewormingsToResponses(dewormings),
		Total:      len(dewormings),
	}, nil
}

func (u *dewormingUsecase) Update(ctx context.Context, dewormingID int, req *dto.UpdateDewormingRequest) (*dto.DewormingResponse, error) {
	deworming, err := u.dewormingRepo.FindByID(ctx, dewormingID)
	if err != nil {
		u.log.Warnf("Failed to find deworming %d: %+v", dewormingID, err)
		return nil, err
	}
	if deworming == nil || !deworming.IsActive {
		return nil, ErrDewormingNotFound
	}

	applyIfSet(req.Product, &deworming.Product)
	applyIfSet(req.Dose, &deworming.Dose)
	applyIfSet(req.Observations, &deworming.Observations)
	if req.ParasiteType != nil {
		deworming.ParasiteType = entity.ParasiteType(*req.ParasiteType)
	}
	if req.Route != nil {
		deworming.Route = entity.AdministrationRoute(*req.Route)
	}
	if req.Weight != nil {
		deworming.Weight = req.Weight
	}
	if req.ApplicationDate != nil {
		applicationDate, err := parseDate(*req.ApplicationDate)
		if err != nil {
			return nil, err
		}
		deworming.ApplicationDate = applicationDate
	}
	if req.NextDoseDate != nil {
		deworming.NextDoseDate = normalizeOptionalDate(*req.NextDoseDate)
	}

	if err := u.dewormingRepo.Update(ctx, deworming); err != nil {
		u.log.Warnf("Failed to update deworming %d: %+v", dewormingID, err)
		return nil, err
	}

	return converter.DewormingToResponse(deworming), nil
}

func (u *dewormingUsecase) Delete(ctx context.Context, dewormingID int) error {
	deworming, err := u.dewormingRepo.FindByID(ctx, dewormingID)
	if err != nil {
		u.log.Warnf("Failed to find deworming %d: %+v", dewormingID, err)
		return err
	}
	if deworming == nil || !deworming.IsActive {
		return ErrDewormingNotFound
	}

	deworming.IsActive = false
	if err := u.dewormingRepo.Update(ctx, deworming); err != nil {
		u.log.Warnf("Failed to delete deworming %d: %+v", dewormingID, err)
		return err
	}

	u.log.Infof("Deworming deleted: id=%d", dewormingID)
	return nil
}

func (u *dewormingUsecase) GetUpcoming(ctx context.Context, days string) (*dto.DewormingListResponse, error) {
	from := today()
	to := from.AddDate(0, 0, parseDays(days))

	dewormings, err := u.dewormingRepo.FindUpcoming(ctx, from, to)
	if err != nil {
		u.log.Warnf("Failed to list upcoming dewormings: %+v", err)
		return nil, err
	}

	return &dto.DewormingListResponse{
		Dewormings: converter.DewormingsToResponses(dewormings),
		Total:      len(dewormings),
	}, nil
}
