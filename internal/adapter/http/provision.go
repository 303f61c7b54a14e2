package httpadapter

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
)

type errorResponse struct {
	Error string `json:"error"`
}

// handleProvision runs the configured plan and writes the result record.
// The request body is an opaque event and is discarded. Any failure of the
// run, including authentication, is reported as 502 because it originates
// at the advertising platform.
func (h *Handler) handleProvision(w http.ResponseWriter, r *http.Request) {
	_, _ = io.Copy(io.Discard, r.Body)

	result, err := h.svc.Provision(r.Context(), h.plan)
	if err != nil {
		h.logger.Error("provision error",
			slog.String("request_id", middleware.GetReqID(r.Context())),
			slog.Any("error", err),
		)
		writeJSON(w, h.logger, http.StatusBadGateway, errorResponse{Error: err.Error()})
		return
	}
	writeJSON(w, h.logger, http.StatusOK, result)
}

func writeJSON(w http.ResponseWriter, logger *slog.Logger, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		// encoding should rarely fail; the status is already sent
		logger.Error("encode response error", slog.Any("error", err))
	}
}
