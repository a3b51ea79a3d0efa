package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	svc "github.com/kubelab-dev/sysinfo-service/internal/services"
)

const genericServerError = "the server encountered a problem and could not process your request"

func (h *Handlers) logError(r *http.Request, err error) {
	h.factory.Logger.Error().
		Str("method", r.Method).
		Str("path", r.URL.Path).
		Err(err).
		Msg("request_failed")
}

// errorResponse writes a {"message","status"} body. Anything that is not an
// APIError is treated as an internal fault: the caller gets a generic 500
// and the real error goes to the log only.
func (h *Handlers) errorResponse(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	message := genericServerError

	var apiErr *svc.APIError
	if errors.As(err, &apiErr) {
		status = apiErr.Status
		message = apiErr.Message
	} else {
		h.logError(r, err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if encodeErr := json.NewEncoder(w).Encode(map[string]any{
		"message": message,
		"status":  status,
	}); encodeErr != nil {
		h.logError(r, fmt.Errorf("failed to write error response: %w", encodeErr))
	}
}

func (h *Handlers) NotFoundHandler(w http.ResponseWriter, r *http.Request) {
	h.errorResponse(w, r, &svc.APIError{
		Status:  http.StatusNotFound,
		Message: "the requested resource could not be found",
	})
}

func (h *Handlers) MethodNotAllowedHandler(w http.ResponseWriter, r *http.Request) {
	h.errorResponse(w, r, &svc.APIError{
		Status:  http.StatusMethodNotAllowed,
		Message: fmt.Sprintf("the %s method is not supported for this resource", r.Method),
	})
}
