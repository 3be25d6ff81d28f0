package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"swipe-travel-backend/internal/services"

	"github.com/rs/zerolog/log"
)

// TripService is the trip-generation surface the handler needs
type TripService interface {
	Generate(ctx context.Context, preferences map[string]any, likedPlaceIDs []int64) (*services.TripPlan, error)
}

// TripHandler handles trip-generation HTTP requests
type TripHandler struct {
	tripService TripService
}

// NewTripHandler creates a new trip handler
func NewTripHandler(tripService TripService) *TripHandler {
	return &TripHandler{tripService: tripService}
}

// GenerateTripRequest is the body for POST /api/trips/generate
type GenerateTripRequest struct {
	Preferences   map[string]any `json:"preferences"`
	LikedPlaceIDs []int64        `json:"liked_place_ids"`
}

// GenerateTrip handles POST /api/trips/generate. Hosted-model failures are
// absorbed by the service's fallback, so this only errors on bad input or
// storage problems.
func (h *TripHandler) GenerateTrip(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req GenerateTripRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	plan, err := h.tripService.Generate(ctx, req.Preferences, req.LikedPlaceIDs)
	if err != nil {
		log.Error().Err(err).Msg("Failed to generate trip")
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, plan)
}
