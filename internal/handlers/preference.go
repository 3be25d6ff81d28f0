package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"swipe-travel-backend/internal/models"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

// PreferenceService is the preference surface the handler needs
type PreferenceService interface {
	Get(ctx context.Context, lineUserID string) (*models.Preference, error)
	Update(ctx context.Context, lineUserID string, selectedCities []string, travelPersonality *string, preferredTags []string) (*models.Preference, error)
}

// PreferenceHandler handles preference-related HTTP requests
type PreferenceHandler struct {
	prefService PreferenceService
}

// NewPreferenceHandler creates a new preference handler
func NewPreferenceHandler(prefService PreferenceService) *PreferenceHandler {
	return &PreferenceHandler{prefService: prefService}
}

// GetPreferences handles GET /api/users/{line_user_id}/preferences
func (h *PreferenceHandler) GetPreferences(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	lineUserID := chi.URLParam(r, "line_user_id")

	pref, err := h.prefService.Get(ctx, lineUserID)
	if err != nil {
		log.Error().Err(err).Str("line_user_id", lineUserID).Msg("Failed to get preferences")
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, pref)
}

// UpdatePreferencesRequest is the body for PUT /api/users/{line_user_id}/preferences
type UpdatePreferencesRequest struct {
	SelectedCities    []string `json:"selected_cities"`
	TravelPersonality *string  `json:"travel_personality"`
	PreferredTags     []string `json:"preferred_tags"`
}

// UpdatePreferences handles PUT /api/users/{line_user_id}/preferences
func (h *PreferenceHandler) UpdatePreferences(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	lineUserID := chi.URLParam(r, "line_user_id")

	var req UpdatePreferencesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	pref, err := h.prefService.Update(ctx, lineUserID, req.SelectedCities, req.TravelPersonality, req.PreferredTags)
	if err != nil {
		log.Error().Err(err).Str("line_user_id", lineUserID).Msg("Failed to update preferences")
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, pref)
}
