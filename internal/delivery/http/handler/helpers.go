package handler

import (
	"errors"
	"net/http"
	"strconv"

	"vet-appointments-service/internal/gateway"
	"vet-appointments-service/internal/usecase"
	"vet-appointments-service/pkg/response"

	"github.com/gorilla/mux"
)

func pathID(r *http.Request, name string) (int, bool) {
	id, err := strconv.Atoi(mux.Vars(r)[name])
	if err != nil || id < 1 {
		return 0, false
	}
	return id, true
}

// handleCommonError covers the errors shared across all workflows: missing
// identity, upstream auth rejection, and dependency failures. Returns true
// when the error was written.
func handleCommonError(w http.ResponseWriter, err error) bool {
	switch {
	case errors.Is(err, usecase.ErrUnauthenticated):
		response.Unauthorized(w, "User not found in context")
	case errors.Is(err, gateway.ErrUnauthorized):
		response.Unauthorized(w, "Upstream service rejected the token")
	case errors.Is(err, gateway.ErrUnavailable):
		// The upstream message is kept for operator diagnosis.
		response.Error(w, http.StatusInternalServerError, "Dependency failure", err.Error())
	default:
		return false
	}
	return true
}
