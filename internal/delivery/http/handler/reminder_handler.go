package handler

import (
	"net/http"

	"vet-appointments-service/internal/usecase"
	"vet-appointments-service/pkg/response"
)

type ReminderHandler struct {
	reminderUsecase usecase.ReminderUsecase
}

func NewReminderHandler(reminderUsecase usecase.ReminderUsecase) *ReminderHandler {
	return &ReminderHandler{
		reminderUsecase: reminderUsecase,
	}
}

func (h *ReminderHandler) GetReminders(w http.ResponseWriter, r *http.Request) {
	reminders, err := h.reminderUsecase.GetReminders(r.Context())
	if err != nil {
		if handleCommonError(w, err) {
			return
		}
		response.Error(w, http.StatusInternalServerError, "Failed to scan reminders", err.Error())
		return
	}

	response.Success(w, http.StatusOK, "Reminders retrieved successfully", reminders)
}

func (h *ReminderHandler) SendReminders(w http.ResponseWriter, r *http.Request) {
	result, err := h.reminderUsecase.SendReminders(r.Context())
	if err != nil {
		if handleCommonError(w, err) {
			return
		}
		response.Error(w, http.StatusInternalServerError, "Failed to send reminders", err.Error())
		return
	}

	response.Success(w, http.StatusOK, "Reminders dispatched", result)
}
