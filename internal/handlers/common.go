package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"swipe-travel-backend/internal/models"
	"swipe-travel-backend/internal/repository"
	"swipe-travel-backend/internal/services"
)

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// respondJSON sends a JSON response
func respondJSON(w http.ResponseWriter, statusCode int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(v)
}

// respondError sends an error response
func respondError(w http.ResponseWriter, message string, statusCode int) {
	respondJSON(w, statusCode, ErrorResponse{Error: message})
}

// respondServiceError maps a service error to its HTTP status: 404 for
// missing resources, 400 for state violations, 500 otherwise. Internal
// errors are not echoed to the client.
func respondServiceError(w http.ResponseWriter, err error) {
	switch statusForError(err) {
	case http.StatusNotFound:
		respondError(w, err.Error(), http.StatusNotFound)
	case http.StatusBadRequest:
		respondError(w, err.Error(), http.StatusBadRequest)
	default:
		respondError(w, "Internal server error", http.StatusInternalServerError)
	}
}

func statusForError(err error) int {
	switch {
	case errors.Is(err, repository.ErrUserNotFound),
		errors.Is(err, repository.ErrPlaceNotFound),
		errors.Is(err, repository.ErrJourneyNotFound),
		errors.Is(err, repository.ErrRewardNotFound),
		errors.Is(err, repository.ErrLikedPlaceNotFound):
		return http.StatusNotFound
	case errors.Is(err, models.ErrPlaceNotInJourney),
		errors.Is(err, models.ErrPlaceAlreadyVisited),
		errors.Is(err, models.ErrInsufficientCoins),
		errors.Is(err, repository.ErrAlreadySwiped),
		errors.Is(err, services.ErrInvalidDirection),
		errors.Is(err, services.ErrEmptyJourney):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// HealthCheck handles GET /api/health
func HealthCheck(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]any{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
