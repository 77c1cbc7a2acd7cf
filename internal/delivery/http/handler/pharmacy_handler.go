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

type PharmacyHandler struct {
	pharmacyUsecase usecase.PharmacyUsecase
	validator       *validator.CustomValidator
}

func NewPharmacyHandler(pharmacyUsecase usecase.PharmacyUsecase, validator *validator.CustomValidator) *PharmacyHandler {
	return &PharmacyHandler{
		pharmacyUsecase: pharmacyUsecase,
		validator:       validator,
	}
}

func (h *PharmacyHandler) GetOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.pharmacyUsecase.GetOrders(r.Context(), r.URL.Query().Get("status"))
	if err != nil {
		if handleCommonError(w, err) {
			return
		}
		if errors.Is(err, usecase.ErrInvalidOrderStatus) {
			response.BadRequest(w, "Invalid status filter")
			return
		}
		response.Error(w, http.StatusInternalServerError, "Failed to get pharmacy orders", err.Error())
		return
	}

	response.Success(w, http.StatusOK, "Pharmacy orders retrieved successfully", orders)
}

func (h *PharmacyHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	orderID, ok := pathID(r, "id")
	if !ok {
		response.BadRequest(w, "Invalid order ID")
		return
	}

	order, err := h.pharmacyUsecase.GetOrder(r.Context(), orderID)
	if err != nil {
		if handleCommonError(w, err) {
			return
		}
		if errors.Is(err, usecase.ErrOrderNotFound) {
			response.NotFound(w, "Pharmacy order not found")
			return
		}
		response.Error(w, http.StatusInternalServerError, "Failed to get pharmacy order", err.Error())
		return
	}

	response.Success(w, http.StatusOK, "Pharmacy order retrieved successfully", order)
}

func (h *PharmacyHandler) GetMyOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.pharmacyUsecase.GetMyOrders(r.Context())
	if err != nil {
		if handleCommonError(w, err) {
			return
		}
		response.Error(w, http.StatusInternalServerError, "Failed to get pharmacy orders", err.Error())
		return
	}

	response.Success(w, http.StatusOK, "Pharmacy orders retrieved successfully", orders)
}

func (h *PharmacyHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	orderID, ok := pathID(r, "id")
	if !ok {
		response.BadRequest(w, "Invalid order ID")
		return
	}

	var req dto.UpdateOrderStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	order, err := h.pharmacyUsecase.UpdateStatus(r.Context(), orderID, &req)
	if err != nil {
		if handleCommonError(w, err) {
			return
		}
		switch {
		case errors.Is(err, usecase.ErrInvalidOrderStatus):
			response.BadRequest(w, "Invalid pharmacy order status")
		case errors.Is(err, usecase.ErrOrderNotFound):
			response.NotFound(w, "Pharmacy order not found")
		default:
			response.Error(w, http.StatusInternalServerError, "Failed to update pharmacy order", err.Error())
		}
		return
	}

	response.Success(w, http.StatusOK, "Pharmacy order updated successfully", order)
}
