package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"matrimonial-backend/internal/models"
)

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// respondJSON writes a JSON response with the given status code
func respondJSON(w http.ResponseWriter, statusCode int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(body)
}

// respondError sends an error response
func respondError(w http.ResponseWriter, message string, statusCode int) {
	respondJSON(w, statusCode, ErrorResponse{Error: message})
}

// respondServiceError maps sentinel service errors to HTTP status codes.
// Anything outside the taxonomy is a 500 with the detail withheld.
func respondServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, models.ErrInvalidArgument), errors.Is(err, models.ErrAlreadyExists):
		respondError(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, models.ErrUnauthorized):
		respondError(w, err.Error(), http.StatusUnauthorized)
	case errors.Is(err, models.ErrNotFound):
		respondError(w, err.Error(), http.StatusNotFound)
	default:
		respondError(w, "internal server error", http.StatusInternalServerError)
	}
}
