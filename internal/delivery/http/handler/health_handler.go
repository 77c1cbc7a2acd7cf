package handler

import (
	"net/http"

	"vet-appointments-service/pkg/response"
)

type HealthHandler struct {
}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

func (h *HealthHandler) Check(w http.ResponseWriter, r *http.Request) {
	response.Success(w, http.StatusOK, "Service is healthy", map[string]string{
		"service": "vet-appointments-service",
		"status":  "up",
	})
}
