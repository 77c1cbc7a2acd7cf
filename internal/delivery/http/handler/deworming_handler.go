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

type DewormingHandler struct {
	dewormingUsecase usecase.DewormingUsecase
	validator        *validator.CustomValidator
}

func NewDewormingHandler(dewormingUsecase usecase.DewormingUsecase, validator *validator.CustomValidator) *DewormingHandler {
	return &DewormingHandler{
		dewormingUsecase: dewormingUsecase,
		validator:        validator,
	}
}

func (h *DewormingHandler) Create(w http.ResponseWriter, r *http.Request) {
	petID, ok := pathID(r, "petId")
	if !ok {
		response.BadRequest(w, "Invalid pet ID")
		return
	}

	var req dto.CreateDewormingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	deworming, err := h.dewormingUsecase.Create(r.Context(), petID, &req)
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
			response.Error(w, http.StatusInternalServerError, "Failed to create deworming", err.Error())
		}
		return
	}

	response.Success(w, http.StatusCreated, "Deworming created successfully", deworming)
}

func (h *DewormingHandler) GetByPet(w http.ResponseWriter, r *http.Request) {
	petID, ok := pathID(r, "petId")
	if !ok {
		response.BadRequest(w, "Invalid pet ID")
		return
	}

	dewormings, err := h.dewormingUsecase.GetByPet(r.Context(), petID)
	if err != nil {
		if handleCommonError(w, err) {
			return
		}
		if errors.Is(err, usecase.ErrPetNotFound) {
			response.NotFound(w, "Pet not found")
			return
		}
		response.Error(w, http.StatusInternalServerError, "Failed to get dewormings", err.Error())
		return
	}

	response.Success(w, http.StatusOK, "Dewormings retrieved successfully", dewormings)
}

func (h *DewormingHandler) Update(w http.ResponseWriter, r *http.Request) {
	dewormingID, ok := pathID(r, "id")
	if !ok {
		response.BadRequest(w, "Invalid deworming ID")
		return
	}

	var req dto.UpdateDewormingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	deworming, err := h.dewormingUsecase.Update(r.Context(), dewormingID, &req)
	if err != nil {
		if handleCommonError(w, err) {
			return
		}
		switch {
		case errors.Is(err, usecase.ErrInvalidDate):
			response.BadRequest(w, err.Error())
		case errors.Is(err, usecase.ErrDewormingNotFound):
			response.NotFound(w, "Deworming not found")
		default:
			response.Error(w, http.StatusInternalServerError, "Failed to update deworming", err.Error())
		}
		return
	}

	response.Success(w, http.StatusOK, "Deworming updated successfully", deworming)
}

func (h *DewormingHandler) Delete(w http.ResponseWriter, r *http.Request) {
	dewormingID, ok := pathID(r, "id")
	if !ok {
		response.BadRequest(w, "Invalid deworming ID")
		return
	}

	if err := h.dewormingUsecase.Delete(r.Context(), dewormingID); err != nil {
		if handleCommonError(w, err) {
			return
		}
		if errors.Is(err, usecase.ErrDewormingNotFound) {
			response.NotFound(w, "Deworming not found")
			return
		}
		response.Error(w, http.StatusInternalServerError, "Failed to delete deworming", err.Error())
		return
	}

	response.Success(w, http.StatusOK, "Deworming deleted successfully", nil)
}

func (h *DewormingHandler) GetUpcoming(w http.ResponseWriter, r *http.Request) {
	dewormings, err := h.dewormingUsecase.GetUpcoming(r.Context(), r.URL.Query().Get("days"))
	if err != nil {
		if handleCommonError(w, err) {
			return
		}
		response.Error(w, http.StatusInternalServerError, "Failed to get upcoming dewormings", err.Error())
		return
	}

	response.Success(w, http.StatusOK, "Upcoming dewormings retrieved successfully", dewormings)
}
