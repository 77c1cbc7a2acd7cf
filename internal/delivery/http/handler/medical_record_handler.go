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

type MedicalRecordHandler struct {
	recordUsecase usecase.MedicalRecordUsecase
	validator     *validator.CustomValidator
}

func NewMedicalRecordHandler(recordUsecase usecase.MedicalRecordUsecase, validator *validator.CustomValidator) *MedicalRecordHandler {
	return &MedicalRecordHandler{
		recordUsecase: recordUsecase,
		validator:     validator,
	}
}

func (h *MedicalRecordHandler) Create(w http.ResponseWriter, r *http.Request) {
	appointmentID, ok := pathID(r, "id")
	if !ok {
		response.BadRequest(w, "Invalid appointment ID")
		return
	}

	var req dto.CreateMedicalRecordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	record, err := h.recordUsecase.Create(r.Context(), appointmentID, &req)
	if err != nil {
		if handleCommonError(w, err) {
			return
		}
		switch {
		case errors.Is(err, usecase.ErrRecordExists):
			// The existing record rides along so the client can use it.
			response.JSON(w, http.StatusBadRequest, response.Response{
				Success: false,
				Message: "Appointment already has a medical record",
				Data:    record,
			})
		case errors.Is(err, usecase.ErrAppointmentNotFound):
			response.NotFound(w, "Appointment not found")
		case errors.Is(err, usecase.ErrAppointmentCancelled):
			response.BadRequest(w, "Cannot open a record for a cancelled appointment")
		default:
			response.Error(w, http.StatusInternalServerError, "Failed to create medical record", err.Error())
		}
		return
	}

	response.Success(w, http.StatusCreated, "Medical record created successfully", record)
}

func (h *MedicalRecordHandler) Update(w http.ResponseWriter, r *http.Request) {
	appointmentID, ok := pathID(r, "id")
	if !ok {
		response.BadRequest(w, "Invalid appointment ID")
		return
	}

	var req dto.UpdateMedicalRecordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	record, err := h.recordUsecase.Update(r.Context(), appointmentID, &req)
	if err != nil {
		if handleCommonError(w, err) {
			return
		}
		if errors.Is(err, usecase.ErrRecordNotFound) {
			response.NotFound(w, "Medical record not found")
			return
		}
		response.Error(w, http.StatusInternalServerError, "Failed to update medical record", err.Error())
		return
	}

	response.Success(w, http.StatusOK, "Medical record updated successfully", record)
}

func (h *MedicalRecordHandler) GetByAppointment(w http.ResponseWriter, r *http.Request) {
	appointmentID, ok := pathID(r, "id")
	if !ok {
		response.BadRequest(w, "Invalid appointment ID")
		return
	}

	record, err := h.recordUsecase.GetByAppointment(r.Context(), appointmentID)
	if err != nil {
		if handleCommonError(w, err) {
			return
		}
		if errors.Is(err, usecase.ErrRecordNotFound) {
			response.NotFound(w, "Medical record not found")
			return
		}
		response.Error(w, http.StatusInternalServerError, "Failed to get medical record", err.Error())
		return
	}

	response.Success(w, http.StatusOK, "Medical record retrieved successfully", record)
}

func (h *MedicalRecordHandler) GetHistoryByPet(w http.ResponseWriter, r *http.Request) {
	petID, ok := pathID(r, "petId")
	if !ok {
		response.BadRequest(w, "Invalid pet ID")
		return
	}

	history, err := h.recordUsecase.GetHistoryByPet(r.Context(), petID)
	if err != nil {
		if handleCommonError(w, err) {
			return
		}
		if errors.Is(err, usecase.ErrPetNotFound) {
			response.NotFound(w, "Pet not found")
			return
		}
		response.Error(w, http.StatusInternalServerError, "Failed to get medical history", err.Error())
		return
	}

	response.Success(w, http.StatusOK, "Medical history retrieved successfully", history)
}
