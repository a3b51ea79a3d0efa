package handlers

import "net/http"

func (h *Handlers) InfoHandler(w http.ResponseWriter, r *http.Request) {
	info, err := h.factory.Services.System.Info()
	if err != nil {
		h.errorResponse(w, r, err)
		return
	}

	if err := h.writeJSON(w, http.StatusOK, info, nil); err != nil {
		h.errorResponse(w, r, err)
	}
}
