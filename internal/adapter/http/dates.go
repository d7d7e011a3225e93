package httpadapter

import (
	"net/http"

	"campaign-tracker/internal/core/domain"
)

type maskResponse struct {
	Value string `json:"value"`
}

// handleMaskDate applies the DD/MM/YYYY typing mask to the value parameter.
func (h *Handler) handleMaskDate(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, r, http.StatusOK, maskResponse{Value: domain.MaskAsTyped(r.URL.Query().Get("value"))})
}
