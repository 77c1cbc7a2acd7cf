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

type AppointmentHandler struct {
	appointmentUsecase usecase.AppointmentUsecase
	validator          *validator.CustomValidator
}

func NewAppointmentHandler(appointmentUsecase usecase.AppointmentUsecase, validator *validator.CustomValidator) *AppointmentHandler {
	return &AppointmentHandler{
		appointmentUsecase: appointmentUsecase,
		validator:          validator,
	}
}

func (h *AppointmentHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateAppointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	appointment, err := h.appointmentUsecase.Create(r.Context(), &req)
	if err != nil {
		if handleCommonError(w, err) {
			return
		}
		switch {
		case errors.Is(err, usecase.ErrInvalidDate),
			errors.Is(err, usecase.ErrInvalidTime),
			errors.Is(err, usecase.ErrDateInPast),
			errors.Is(err, usecase.ErrInvalidVeterinarian):
			response.BadRequest(w, err.Error())
		case errors.Is(err, usecase.ErrPetNotFound):
			response.NotFound(w, "Pet not found")
		case errors.Is(err, usecase.ErrPetNotOwned):
			response.Forbidden(w, "Pet does not belong to you")
		case errors.Is(err, usecase.ErrSchedulingConflict):
			response.BadRequest(w, err.Error())
		default:
			response.Error(w, http.StatusInternalServerError, "Failed to create appointment", err.Error())
		}
		return
	}

	response.Success(w, http.StatusCreated, "Appointment created successfully", appointment)
}

func (h *AppointmentHandler) GetMyAppointments(w http.ResponseWriter, r *http.Request) {
	status := r.URL.Query().Get("status")
	includeInactive := r.URL.Query().Get("include_inactive") == "true"

	appointments, err := h.appointmentUsecase.GetMyAppointments(r.Context(), status, includeInactive)
	if err != nil {
		if handleCommonError(w, err) {
			return
		}
		if errors.Is(err, usecase.ErrInvalidStatusFilter) {
			response.BadRequest(w, "Invalid status filter")
			return
		}
		response.Error(w, http.StatusInternalServerError, "Failed to get appointments", err.Error())
		return
	}

	response.Success(w, http.StatusOK, "Appointments retrieved successfully", appointments)
}

func (h *AppointmentHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	appointmentID, ok := pathID(r, "id")
	if !ok {
		response.BadRequest(w, "Invalid appointment ID")
		return
	}

	appointment, err := h.appointmentUsecase.GetByID(r.Context(), appointmentID)
	if err != nil {
		if handleCommonError(w, err) {
			return
		}
		switch {
		case errors.Is(err, usecase.ErrAppointmentNotFound):
			response.NotFound(w, "Appointment not found")
		case errors.Is(err, usecase.ErrNotYourAppointment):
			response.Forbidden(w, "Appointment does not belong to you")
		default:
			response.Error(w, http.StatusInternalServerError, "Failed to get appointment", err.Error())
		}
		return
	}

	response.Success(w, http.StatusOK, "Appointment retrieved successfully", appointment)
}

func (h *AppointmentHandler) GetSchedule(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")

	schedule, err := h.appointmentUsecase.GetVeterinarianSchedule(r.Context(), date)
	if err != nil {
		if handleCommonError(w, err) {
			return
		}
		if errors.Is(err, usecase.ErrInvalidDate) {
			response.BadRequest(w, err.Error())
			return
		}
		response.Error(w, http.StatusInternalServerError, "Failed to get schedule", err.Error())
		return
	}

	response.Success(w, http.StatusOK, "Schedule retrieved successfully", schedule)
}

func (h *AppointmentHandler) UpdateAttention(w http.ResponseWriter, r *http.Request) {
	appointmentID, ok := pathID(r, "id")
	if !ok {
		response.BadRequest(w, "Invalid appointment ID")
		return
	}

	var req dto.UpdateAttentionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	appointment, err := h.appointmentUsecase.UpdateAttention(r.Context(), appointmentID, &req)
	if err != nil {
		if handleCommonError(w, err) {
			return
		}
		switch {
		case errors.Is(err, usecase.ErrAttentionFieldsMissing):
			response.BadRequest(w, err.Error())
		case errors.Is(err, usecase.ErrAppointmentNotFound):
			response.NotFound(w, "Appointment not found")
		case errors.Is(err, usecase.ErrNotYourAppointment):
			response.Forbidden(w, "Appointment is not assigned to you")
		case errors.Is(err, usecase.ErrAppointmentCancelled):
			response.BadRequest(w, "Cannot record attention on a cancelled appointment")
		default:
			response.Error(w, http.StatusInternalServerError, "Failed to record attention", err.Error())
		}
		return
	}

	response.Success(w, http.StatusOK, "Attention recorded successfully", appointment)
}

func (h *AppointmentHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	appointmentID, ok := pathID(r, "id")
	if !ok {
		response.BadRequest(w, "Invalid appointment ID")
		return
	}

	err := h.appointmentUsecase.Cancel(r.Context(), appointmentID)
	if err != nil {
		if handleCommonError(w, err) {
			return
		}
		switch {
		case errors.Is(err, usecase.ErrAppointmentNotFound):
			response.NotFound(w, "Appointment not found")
		case errors.Is(err, usecase.ErrNotYourAppointment):
			response.Forbidden(w, "Appointment does not belong to you")
		case errors.Is(err, usecase.ErrAlreadyCancelled):
			response.BadRequest(w, "Appointment is already cancelled")
		case errors.Is(err, usecase.ErrCancelCompleted):
			response.BadRequest(w, "Completed appointments cannot be cancelled")
		default:
			response.Error(w, http.StatusInternalServerError, "Failed to cancel appointment", err.Error())
		}
		return
	}

	response.Success(w, http.StatusOK, "Appointment cancelled successfully", nil)
}
