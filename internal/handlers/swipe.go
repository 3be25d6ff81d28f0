package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"swipe-travel-backend/internal/models"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

// SwipeService is the swipe surface the handler needs
type SwipeService interface {
	Deck(ctx context.Context, lineUserID string, cities []string) ([]models.Place, error)
	Record(ctx context.Context, lineUserID string, placeID int64, direction string) (*models.Swipe, error)
	Liked(ctx context.Context, lineUserID string) ([]models.Place, error)
	RemoveLiked(ctx context.Context, lineUserID string, placeID int64) error
	ClearLiked(ctx context.Context, lineUserID string) error
}

// SwipeHandler handles swipe-related HTTP requests
type SwipeHandler struct {
	swipeService SwipeService
}

// NewSwipeHandler creates a new swipe handler
func NewSwipeHandler(swipeService SwipeService) *SwipeHandler {
	return &SwipeHandler{swipeService: swipeService}
}

// GetTinderPlaces handles GET /api/users/{line_user_id}/tinder-places
func (h *SwipeHandler) GetTinderPlaces(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	lineUserID := chi.URLParam(r, "line_user_id")
	cities := splitCities(r.URL.Query().Get("cities"))

	places, err := h.swipeService.Deck(ctx, lineUserID, cities)
	if err != nil {
		log.Error().Err(err).Str("line_user_id", lineUserID).Msg("Failed to get tinder places")
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"places":   places,
		"total":    len(places),
		"page":     1,
		"per_page": len(places),
	})
}

// CreateSwipeRequest is the body for POST /api/users/{line_user_id}/swipes
type CreateSwipeRequest struct {
	PlaceID   int64  `json:"place_id"`
	Direction string `json:"direction"`
}

// CreateSwipe handles POST /api/users/{line_user_id}/swipes
func (h *SwipeHandler) CreateSwipe(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	lineUserID := chi.URLParam(r, "line_user_id")

	var req CreateSwipeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	swipe, err := h.swipeService.Record(ctx, lineUserID, req.PlaceID, req.Direction)
	if err != nil {
		log.Error().
			Err(err).
			Str("line_user_id", lineUserID).
			Int64("place_id", req.PlaceID).
			Msg("Failed to record swipe")
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, swipe)
}

// GetLikedPlaces handles GET /api/users/{line_user_id}/liked-places
func (h *SwipeHandler) GetLikedPlaces(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	lineUserID := chi.URLParam(r, "line_user_id")

	places, err := h.swipeService.Liked(ctx, lineUserID)
	if err != nil {
		log.Error().Err(err).Str("line_user_id", lineUserID).Msg("Failed to get liked places")
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"places": places,
		"total":  len(places),
	})
}

// RemoveLikedPlace handles DELETE /api/users/{line_user_id}/liked-places/{place_id}
func (h *SwipeHandler) RemoveLikedPlace(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	lineUserID := chi.URLParam(r, "line_user_id")

	placeID, err := strconv.ParseInt(chi.URLParam(r, "place_id"), 10, 64)
	if err != nil {
		respondError(w, "Invalid place id", http.StatusBadRequest)
		return
	}

	if err := h.swipeService.RemoveLiked(ctx, lineUserID, placeID); err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Place removed from liked places",
	})
}

// ClearLikedPlaces handles DELETE /api/users/{line_user_id}/liked-places
func (h *SwipeHandler) ClearLikedPlaces(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	lineUserID := chi.URLParam(r, "line_user_id")

	if err := h.swipeService.ClearLiked(ctx, lineUserID); err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "All liked places cleared",
	})
}
