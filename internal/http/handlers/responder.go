package handlers

import (
	"log/slog"
	"net/http"

	"github.com/bytedance/sonic"

	"scoreboard-relay/internal/logging"
)

func writeJSON(w http.ResponseWriter, status int, payload any, logger *slog.Logger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	body, err := sonic.Marshal(payload)
	if err != nil {
		logging.Error(logger, "failed to encode response", err)
		return
	}
	_, _ = w.Write(append(body, '\n'))
}

func writeError(w http.ResponseWriter, status int, message string, logger *slog.Logger) {
	writeJSON(w, status, errorBody{Error: message}, logger)
}

type errorBody struct {
	Error string `json:"error"`
}

// fetchErrorBody is returned when a league refresh fails.
type fetchErrorBody struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

func loggerFromContext(r *http.Request, fallback *slog.Logger) *slog.Logger {
	if r == nil {
		return fallback
	}
	return logging.FromContext(r.Context(), fallback)
}
