package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"vet-appointments-service/internal/delivery/dto"
	"vet-appointments-service/internal/usecase"
	"vet-appointments-service/pkg/response"
	"vet-appointments-service/pkg/validator"
)

type VaccinationHandler struct {
	vaccinationUsecase usecase.VaccinationUsecase
	validator          *validator.CustomValidator
}

func NewVaccinationHandler(vaccinationUsecase usecase.VaccinationUsecase, validator *validator.CustomValidator) *VaccinationHandler {
	return &VaccinationHandler{
		vaccinationUsecase: vaccinationUsecase,
		validator:          validator,
	}
}

func (h *VaccinationHandler) Create(w http.ResponseWriter, r *http.Request) {
	petID, ok := pathID(r, "petId")
	if !ok {
		response.BadRequest(w, "Invalid pet ID")
		return
	}

	var req dto.CreateVaccinationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	vaccination, err := h.vaccinationUsecase.Create(r.Context(), petID, &req)
	if err != nil {
		if handleCommonError(w, err) {
			return
		}
		switch {
		case errors.Is(err, usecase.ErrInvalidDate):
			response.BadRequest(w, err.Error())
		case errors.Is(err, usecase.ErrPetNotFound):
			response.NotFound(w, "Pet not found")
		default:
			response.Error(w, http.StatusInternalServerError, "Failed to create vaccination", err.Error())
		}
		return
	}

	response.Success(w, http.StatusCreated, "Vaccination created successfully", vaccination)
}

func (h *VaccinationHandler) GetByPet(w http.ResponseWriter, r *http.Request) {
	petID, ok := pathID(r, "petId")
	if !ok {
		response.BadRequest(w, "Invalid pet ID")
		return
	}

	vaccinations, err := h.vaccinationUsecase.GetByPet(r.Context(), petID)
	if err != nil {
		if handleCommonError(w, err) {
			return
		}
		if errors.Is(err, usecase.ErrPetNotFound) {
			response.NotFound(w, "Pet not found")
			return
		}
		response.Error(w, http.StatusInternalServerError, "Failed to get vaccinations", err.Error())
		return
	}

	response.Success(w, http.StatusOK, "Vaccinations retrieved successfully", vaccinations)
}

func (h *VaccinationHandler) Update(w http.ResponseWriter, r *http.Request) {
	vaccinationID, ok := pathID(r, "id")
	if !ok {
		response.BadRequest(w, "Invalid vaccination ID")
		return
	}

	var req dto.UpdateVaccinationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	vaccination, err := h.vaccinationUsecase.Update(r.Context(), vaccinationID, &req)
	if err != nil {
		if handleCommonError(w, err) {
			return
		}
		switch {
		case errors.Is(err, usecase.ErrInvalidDate):
			response.BadRequest(w, err.Error())
		case errors.Is(err, usecase.ErrVaccinationNotFound):
			response.NotFound(w, "Vaccination not found")
		default:
			response.Error(w, http.StatusInternalServerError, "Failed to update vaccination", err.Error())
		}
		return
	}

	response.Success(w, http.StatusOK, "Vaccination updated successfully", vaccination)
}

func (h *VaccinationHandler) Delete(w http.ResponseWriter, r *http.Request) {
	vaccinationID, ok := pathID(r, "id")
	if !ok {
		response.BadRequest(w, "Invalid vaccination ID")
		return
	}

	if err := h.vaccinationUsecase.Delete(r.Context(), vaccinationID); err != nil {
		if handleCommonError(w, err) {
			return
		}
		if errors.Is(err, usecase.ErrVaccinationNotFound) {
			response.NotFound(w, "Vaccination not found")
			return
		}
		response.Error(w, http.StatusInternalServerError, "Failed to delete vaccination", err.Error())
		return
	}

	response.Success(w, http.StatusOK, "Vaccination deleted successfully", nil)
}

func (h *VaccinationHandler) GetUpcoming(w http.ResponseWriter, r *http.Request) {
	vaccinations, err := h.vaccinationUsecase.GetUpcoming(r.Context(), r.URL.Query().Get("days"))
	if err != nil {
		if handleCommonError(w, err) {
			return
		}
		response.Error(w, http.StatusInternalServerError, "Failed to get upcoming vaccinations", err.Error())
		return
	}

	response.Success(w, http.StatusOK, "Upcoming vaccinations retrieved successfully", vaccinations)
}
