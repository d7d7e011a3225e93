package httpadapter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"

	"campaign-tracker/internal/core/domain"
	"campaign-tracker/internal/core/port"
)

type errorResponse struct {
	Error string `json:"error"`
}

func (h *Handler) writeJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.logger.ErrorContext(r.Context(), "encode response error",
			slog.String("request_id", middleware.GetReqID(r.Context())),
			slog.Any("error", err))
	}
}

func (h *Handler) writeMessage(w http.ResponseWriter, r *http.Request, status int, msg string) {
	h.writeJSON(w, r, status, errorResponse{Error: msg})
}

// writeError maps usecase errors to status codes. Validation messages are
// returned verbatim; anything unexpected is logged and hidden behind a
// generic 500.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, op string, err error) {
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		h.writeMessage(w, r, http.StatusUnprocessableEntity, verr.Message)
	case errors.Is(err, port.ErrCampaignNotFound):
		h.writeMessage(w, r, http.StatusNotFound, err.Error())
	default:
		h.logger.ErrorContext(r.Context(), op+" error",
			slog.String("request_id", middleware.GetReqID(r.Context())),
			slog.Any("error", err))
		h.writeMessage(w, r, http.StatusInternalServerError, "internal error")
	}
}
