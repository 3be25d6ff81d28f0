package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"swipe-travel-backend/internal/models"
	"swipe-travel-backend/internal/services"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

// JourneyService is the journey-engine surface the handler needs
type JourneyService interface {
	Create(ctx context.Context, lineUserID string, personality, duration *string, placeIDs []int64) (*models.Journey, error)
	Current(ctx context.Context, lineUserID string) (*models.Journey, error)
	MarkVisited(ctx context.Context, lineUserID string, journeyID, placeID int64, photos []string) (*services.VisitResult, error)
}

// JourneyHandler handles journey-related HTTP requests
type JourneyHandler struct {
	journeyService JourneyService
}

// NewJourneyHandler creates a new journey handler
func NewJourneyHandler(journeyService JourneyService) *JourneyHandler {
	return &JourneyHandler{journeyService: journeyService}
}

// CreateJourneyRequest is the body for POST /api/users/{line_user_id}/journeys
type CreateJourneyRequest struct {
	Personality string  `json:"personality"`
	Duration    string  `json:"duration"`
	PlaceIDs    []int64 `json:"place_ids"`
}

// CreateJourney handles POST /api/users/{line_user_id}/journeys
func (h *JourneyHandler) CreateJourney(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	lineUserID := chi.URLParam(r, "line_user_id")

	var req CreateJourneyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	journey, err := h.journeyService.Create(ctx, lineUserID, &req.Personality, &req.Duration, req.PlaceIDs)
	if err != nil {
		log.Error().Err(err).Str("line_user_id", lineUserID).Msg("Failed to create journey")
		respondServiceError(w, err)
		return
	}

	log.Info().
		Str("line_user_id", lineUserID).
		Int64("journey_id", journey.ID).
		Int("places", len(journey.PlaceIDs)).
		Msg("Journey created")

	respondJSON(w, http.StatusOK, journey)
}

// GetCurrentJourney handles GET /api/users/{line_user_id}/journeys/current
func (h *JourneyHandler) GetCurrentJourney(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	lineUserID := chi.URLParam(r, "line_user_id")

	journey, err := h.journeyService.Current(ctx, lineUserID)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, journey)
}

// MarkVisitedRequest is the body for POST /api/users/{line_user_id}/journeys/{journey_id}/visit
type MarkVisitedRequest struct {
	PlaceID int64    `json:"place_id"`
	Photos  []string `json:"photos"`
}

// MarkVisited handles POST /api/users/{line_user_id}/journeys/{journey_id}/visit
func (h *JourneyHandler) MarkVisited(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	lineUserID := chi.URLParam(r, "line_user_id")

	journeyID, err := strconv.ParseInt(chi.URLParam(r, "journey_id"), 10, 64)
	if err != nil {
		respondError(w, "Invalid journey id", http.StatusBadRequest)
		return
	}

	var req MarkVisitedRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	result, err := h.journeyService.MarkVisited(ctx, lineUserID, journeyID, req.PlaceID, req.Photos)
	if err != nil {
		log.Error().
			Err(err).
			Str("line_user_id", lineUserID).
			Int64("journey_id", journeyID).
			Int64("place_id", req.PlaceID).
			Msg("Failed to mark place visited")
		respondServiceError(w, err)
		return
	}

	log.Info().
		Str("line_user_id", lineUserID).
		Int64("journey_id", journeyID).
		Int64("place_id", req.PlaceID).
		Int64("coins_earned", result.CoinsEarned).
		Bool("journey_completed", result.JourneyCompleted).
		Msg("Place visited")

	respondJSON(w, http.StatusOK, result)
}
