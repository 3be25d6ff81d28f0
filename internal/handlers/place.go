package handlers

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"swipe-travel-backend/internal/models"
	"swipe-travel-backend/internal/repository"
	"swipe-travel-backend/internal/services"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

// PlaceService is the catalog surface the handler needs
type PlaceService interface {
	List(ctx context.Context, params repository.ListPlacesParams) (*services.PlaceList, error)
	Get(ctx context.Context, id int64) (*models.Place, error)
	Cities(ctx context.Context) ([]models.CityCount, error)
}

// PlaceHandler handles catalog-related HTTP requests
type PlaceHandler struct {
	placeService PlaceService
}

// NewPlaceHandler creates a new place handler
func NewPlaceHandler(placeService PlaceService) *PlaceHandler {
	return &PlaceHandler{placeService: placeService}
}

// ListPlaces handles GET /api/places
func (h *PlaceHandler) ListPlaces(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	q := r.URL.Query()

	params := repository.ListPlacesParams{
		City:   q.Get("city"),
		Cities: splitCities(q.Get("cities")),
		Tag:    q.Get("tag"),
	}
	if page, err := strconv.Atoi(q.Get("page")); err == nil {
		params.Page = page
	}
	if perPage, err := strconv.Atoi(q.Get("per_page")); err == nil {
		params.PerPage = perPage
	}

	list, err := h.placeService.List(ctx, params)
	if err != nil {
		log.Error().Err(err).Msg("Failed to list places")
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, list)
}

// GetPlace handles GET /api/places/{place_id}
func (h *PlaceHandler) GetPlace(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	placeID, err := strconv.ParseInt(chi.URLParam(r, "place_id"), 10, 64)
	if err != nil {
		respondError(w, "Invalid place id", http.StatusBadRequest)
		return
	}

	place, err := h.placeService.Get(ctx, placeID)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, place)
}

// GetCities handles GET /api/cities
func (h *PlaceHandler) GetCities(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	cities, err := h.placeService.Cities(ctx)
	if err != nil {
		log.Error().Err(err).Msg("Failed to list cities")
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{"cities": cities})
}

// splitCities parses a comma-separated cities filter
func splitCities(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	cities := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			cities = append(cities, p)
		}
	}
	return cities
}
