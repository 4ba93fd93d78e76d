package httpadapter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"campaign-manager/internal/core/domain"
)

const maxBodyBytes = 1 << 20

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}

func (h *Handler) writeError(w http.ResponseWriter, status int, msg string) {
	h.writeJSON(w, status, map[string]string{"error": msg})
}

func (h *Handler) writeMessage(w http.ResponseWriter, msg string) {
	h.writeJSON(w, http.StatusOK, map[string]string{"message": msg})
}

// decodeBody reads a JSON object into dst. Budget coercion failures keep
// their own message; anything else is reported as invalid JSON.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		var verr *domain.ValidationError
		if errors.As(err, &verr) {
			return verr
		}
		return domain.NewValidationError("Invalid JSON")
	}
	return nil
}

// pathID parses a numeric path parameter. The routes only match digits, so
// a failure here means the value overflowed int64.
func pathID(r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	return id, err == nil
}

// writeFailure maps use case errors onto status codes. Unexpected errors
// are logged and hidden behind a generic 500.
func (h *Handler) writeFailure(w http.ResponseWriter, r *http.Request, err error) {
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		h.writeError(w, http.StatusBadRequest, verr.Message)
	case errors.Is(err, domain.ErrCampaignNotFound):
		h.writeError(w, http.StatusNotFound, "Campaign not found")
	case errors.Is(err, domain.ErrAdvertisementNotFound):
		h.writeError(w, http.StatusNotFound, "Advertisement not found")
	default:
		h.logger.ErrorContext(r.Context(), "request failed",
			slog.Any("error", err),
			slog.String("request_id", requestIDFrom(r.Context())),
		)
		h.writeError(w, http.StatusInternalServerError, "internal error")
	}
}
