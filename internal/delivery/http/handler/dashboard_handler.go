package handler

import (
	"net/http"

	"vet-appointments-service/internal/usecase"
	"vet-appointments-service/pkg/response"
)

type DashboardHandler struct {
	dashboardUsecase usecase.DashboardUsecase
}

func NewDashboardHandler(dashboardUsecase usecase.DashboardUsecase) *DashboardHandler {
	return &DashboardHandler{
		dashboardUsecase: dashboardUsecase,
	}
}

func (h *DashboardHandler) GetVeterinarianDashboard(w http.ResponseWriter, r *http.Request) {
	dashboard, err := h.dashboardUsecase.GetVeterinarianDashboard(r.Context())
	if err != nil {
		if handleCommonError(w, err) {
			return
		}
		response.Error(w, http.StatusInternalServerError, "Failed to get dashboard", err.Error())
		return
	}

	response.Success(w, http.StatusOK, "Dashboard retrieved successfully", dashboard)
}

func (h *DashboardHandler) GetFollowUps(w http.ResponseWriter, r *http.Request) {
	followUps, err := h.dashboardUsecase.GetFollowUps(r.Context())
	if err != nil {
		if handleCommonError(w, err) {
			return
		}
		response.Error(w, http.StatusInternalServerError, "Failed to get follow-ups", err.Error())
		return
	}

	response.Success(w, http.StatusOK, "Follow-ups retrieved successfully", followUps)
}
