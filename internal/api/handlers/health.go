package handlers

import "net/http"

func (h *Handlers) HealthCheckHandler(w http.ResponseWriter, r *http.Request) {
	resp := h.factory.Services.System.Health()

	if err := h.writeJSON(w, http.StatusOK, resp, nil); err != nil {
		h.errorResponse(w, r, err)
	}
}
