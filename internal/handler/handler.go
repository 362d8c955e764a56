package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"compumart/internal/model"

	"github.com/rs/zerolog"
)

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		// Headers are already sent; nothing left to do.
		return
	}
}

// writeError writes the standard error envelope with the given status code.
func writeError(w http.ResponseWriter, status int, code, message string, logger zerolog.Logger) {
	logger.Error().
		Str("code", code).
		Str("error", message).
		Int("status", status).
		Msg("handler error")
	writeJSON(w, status, model.ErrorResponse{Error: code, Message: message})
}

// writeDomainError maps a service error to the error envelope: domain errors
// keep their code and use the supplied status, anything else is a 500.
func writeDomainError(w http.ResponseWriter, status int, err error, logger zerolog.Logger) {
	var domainErr *model.DomainError
	if errors.As(err, &domainErr) {
		writeError(w, status, domainErr.Code, domainErr.Message, logger)
		return
	}
	writeError(w, http.StatusInternalServerError, model.ErrCodeInternalError, "internal server error", logger)
}
