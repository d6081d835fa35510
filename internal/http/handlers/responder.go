package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/preston-bernstein/football-odds-service/internal/domain/odds"
	"github.com/preston-bernstein/football-odds-service/internal/logging"
)

const defaultCacheMaxAge = 300 * time.Second

var errNoFetcher = errors.New("odds service not configured")

func writeJSON(w http.ResponseWriter, status int, payload any, logger *slog.Logger) {
	body, err := json.Marshal(payload)
	if err != nil {
		logging.Error(logger, "failed to encode response", err)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"internal error"}`))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(body); err != nil {
		logging.Warn(logger, "failed to write response", "error", err.Error())
	}
}

// writeError emits the failure envelope with the underlying reason.
func writeError(w http.ResponseWriter, status int, message string, cause error, logger *slog.Logger) {
	resp := odds.ErrorResponse{Error: message}
	if cause != nil {
		resp.Message = cause.Error()
	}
	writeJSON(w, status, resp, logger)
}

func loggerFromContext(r *http.Request, fallback *slog.Logger) *slog.Logger {
	if r == nil {
		return fallback
	}
	return logging.FromContext(r.Context(), fallback)
}
