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

type PrescriptionHandler struct {
	prescriptionUsecase usecase.PrescriptionUsecase
	validator           *validator.CustomValidator
}

func NewPrescriptionHandler(prescriptionUsecase usecase.PrescriptionUsecase, validator *validator.CustomValidator) *PrescriptionHandler {
	return &PrescriptionHandler{
		prescriptionUsecase: prescriptionUsecase,
		validator:           validator,
	}
}

func (h *PrescriptionHandler) Create(w http.ResponseWriter, r *http.Request) {
	appointmentID, ok := pathID(r, "id")
	if !ok {
		response.BadRequest(w, "Invalid appointment ID")
		return
	}

	var req dto.CreatePrescriptionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	prescription, err := h.prescriptionUsecase.Create(r.Context(), appointmentID, &req)
	if err != nil {
		if handleCommonError(w, err) {
			return
		}
		switch {
		case errors.Is(err, usecase.ErrMedicationsRequired):
			response.BadRequest(w, "At least one medication is required")
		case errors.Is(err, usecase.ErrAppointmentNotFound):
			response.NotFound(w, "Appointment not found")
		case errors.Is(err, usecase.ErrNotYourAppointment):
			response.Forbidden(w, "Appointment is not assigned to you")
		case errors.Is(err, usecase.ErrNoDiagnosis):
			response.BadRequest(w, "Appointment has no recorded diagnosis and procedure")
		case errors.Is(err, usecase.ErrPrescriptionExists):
			response.BadRequest(w, "Appointment already has a prescription")
		default:
			response.Error(w, http.StatusInternalServerError, "Failed to create prescription", err.Error())
		}
		return
	}

	response.Success(w, http.StatusCreated, "Prescription created successfully", prescription)
}

func (h *PrescriptionHandler) GetByAppointment(w http.ResponseWriter, r *http.Request) {
	appointmentID, ok := pathID(r, "id")
	if !ok {
		response.BadRequest(w, "Invalid appointment ID")
		return
	}

	prescription, err := h.prescriptionUsecase.GetByAppointment(r.Context(), appointmentID)
	if err != nil {
		if handleCommonError(w, err) {
			return
		}
		if errors.Is(err, usecase.ErrPrescriptionNotFound) {
			response.NotFound(w, "Prescription not found")
			return
		}
		response.Error(w, http.StatusInternalServerError, "Failed to get prescription", err.Error())
		return
	}

	response.Success(w, http.StatusOK, "Prescription retrieved successfully", prescription)
}

func (h *PrescriptionHandler) GetMyPrescriptions(w http.ResponseWriter, r *http.Request) {
	prescriptions, err := h.prescriptionUsecase.GetMyPrescriptions(r.Context())
	if err != nil {
		if handleCommonError(w, err) {
			return
		}
		response.Error(w, http.StatusInternalServerError, "Failed to get prescriptions", err.Error())
		return
	}

	response.Success(w, http.StatusOK, "Prescriptions retrieved successfully", prescriptions)
}
