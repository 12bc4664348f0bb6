package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"financetracker/backend/services"

	"github.com/rs/zerolog"
)

const notFoundMessage = "Transaction not found"

// ErrorResponse is the body of every 4xx/5xx reply except a missing
// transaction.
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse is the body of a 404 for a missing transaction.
type MessageResponse struct {
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// WriteError writes a JSON error body with the given status.
func WriteError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, ErrorResponse{Error: message})
}

// writeServiceError maps a service error to its HTTP status.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var validationErr *services.ValidationError
	var paramErr *services.InvalidParameterError

	switch {
	case errors.As(err, &validationErr):
		WriteError(w, http.StatusBadRequest, validationErr.Error())
	case errors.As(err, &paramErr):
		WriteError(w, http.StatusBadRequest, paramErr.Error())
	case errors.Is(err, services.ErrNotFound):
		writeJSON(w, http.StatusNotFound, MessageResponse{Message: notFoundMessage})
	default:
		zerolog.Ctx(r.Context()).Error().Err(err).Str("path", r.URL.Path).Msg("Store failure")
		WriteError(w, http.StatusInternalServerError, err.Error())
	}
}
