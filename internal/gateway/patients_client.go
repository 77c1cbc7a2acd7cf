package gateway

import (
	"context"
	"fmt"
	"net/http"

	"vet-appointments-service/config"

	"github.com/go-resty/resty/v2"
	"github.com/sirupsen/logrus"
)

type patientsClient struct {
	client *resty.Client
	log    *logrus.Logger
}

// NewPatientsClient builds the HTTP client for the Patients service.
func NewPatientsClient(cfg config.ServicesConfig, log *logrus.Logger) PatientsService {
	client := resty.New().
		SetBaseURL(cfg.PatientsURL).
		SetTimeout(cfg.Timeout)
	return &patientsClient{client: client, log: log}
}

type petEnvelope struct {
	Success bool `json:"success"`
	Data    struct {
		PetID   int     `json:"pet_id"`
		PetName string  `json:"pet_name"`
		Species string  `json:"species"`
		Breed   string  `json:"breed"`
		Age     int     `json:"age"`
		Weight  float64 `json:"weight"`
		Gender  string  `json:"gender"`
		Owner   string  `json:"owner"`
	} `json:"data"`
}

func (c *patientsClient) GetPetByID(ctx context.Context, petID int, bearer string) (*Pet, error) {
	var envelope petEnvelope
	resp, err := c.client.R().
		SetContext(ctx).
		SetHeader("Authorization", "Bearer "+bearer).
		SetResult(&envelope).
		Get(fmt.Sprintf("/api/patients/pets/%d", petID))
	if err != nil {
		c.log.Warnf("Patients service request for pet %d failed: %+v", petID, err)
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	switch resp.StatusCode() {
	case http.StatusOK:
		return &Pet{
			ID:         envelope.Data.PetID,
			Name:       envelope.Data.PetName,
			Species:    envelope.Data.Species,
			Breed:      envelope.Data.Breed,
			Age:        envelope.Data.Age,
			Weight:     envelope.Data.Weight,
			Gender:     envelope.Data.Gender,
			OwnerEmail: envelope.Data.Owner,
		}, nil
	case http.StatusNotFound:
		return nil, nil
	case http.StatusUnauthorized:
		return nil, ErrUnauthorized
	default:
		c.log.Warnf("Patients service returned %d for pet %d", resp.StatusCode(), petID)
		return nil, fmt.Errorf("%w: status %d", ErrUnavailable, resp.StatusCode())
	}
}

func (c *patientsClient) VerifyPetOwnership(ctx context.Context, petID int, ownerEmail, bearer string) (bool, error) {
	pet, err := c.GetPetByID(ctx, petID, bearer)
	if err != nil {
		return false, err
	}
	if pet == nil {
		return false, nil
	}
	return pet.OwnerEmail == ownerEmail, nil
}
