package services

import (
	"context"

	"swipe-travel-backend/internal/models"

	"github.com/rs/zerolog/log"
)

// fallbackTripLimit caps the fallback itinerary when the hosted model is
// unavailable or returns nothing usable.
const fallbackTripLimit = 5

const (
	defaultTripName        = "My Trip"
	defaultTripDescription = "Enjoy your trip!"
)

// Itinerary is the hosted model's answer: a trip title, a short overview and
// the subset of candidate place ids it selected, in travel order.
type Itinerary struct {
	TripName         string  `json:"trip_name"`
	Description      string  `json:"description"`
	SelectedPlaceIDs []int64 `json:"selected_place_ids"`
}

// ItineraryGenerator turns preferences and candidate places into an ordered
// itinerary. Implementations may fail; the trip service recovers locally.
type ItineraryGenerator interface {
	GenerateItinerary(ctx context.Context, preferences map[string]any, places []models.Place) (*Itinerary, error)
}

// PlaceFinder resolves catalog places by id
type PlaceFinder interface {
	ListByIDs(ctx context.Context, ids []int64) ([]models.Place, error)
}

// TripPlan is the assembled trip returned to the client
type TripPlan struct {
	TripName    string         `json:"trip_name"`
	Description string         `json:"description"`
	Places      []models.Place `json:"places"`
}

// TripService assembles trips from a user's liked places, delegating the
// selection and ordering to an injected itinerary generator.
type TripService struct {
	places    PlaceFinder
	generator ItineraryGenerator
}

// NewTripService creates a new trip service. A nil generator means every trip
// uses the local fallback.
func NewTripService(places PlaceFinder, generator ItineraryGenerator) *TripService {
	return &TripService{places: places, generator: generator}
}

// Generate builds a trip from the liked places. The generator's selected ids
// are mapped back to places in the generator's order; ids outside the
// candidate set are dropped. When the generator fails, returns malformed
// content, or selects nothing that matches, the plan falls back to the first
// few candidates. Generator failure is never surfaced to the caller.
func (s *TripService) Generate(ctx context.Context, preferences map[string]any, likedPlaceIDs []int64) (*TripPlan, error) {
	candidates, err := s.places.ListByIDs(ctx, likedPlaceIDs)
	if err != nil {
		return nil, err
	}

	plan := &TripPlan{
		TripName:    defaultTripName,
		Description: defaultTripDescription,
	}

	var itinerary *Itinerary
	if s.generator != nil {
		itinerary, err = s.generator.GenerateItinerary(ctx, preferences, candidates)
		if err != nil {
			log.Warn().Err(err).Msg("Itinerary generation failed, using fallback")
			itinerary = nil
		}
	}

	if itinerary != nil {
		if itinerary.TripName != "" {
			plan.TripName = itinerary.TripName
		}
		if itinerary.Description != "" {
			plan.Description = itinerary.Description
		}

		byID := make(map[int64]models.Place, len(candidates))
		for _, p := range candidates {
			byID[p.ID] = p
		}
		for _, id := range itinerary.SelectedPlaceIDs {
			if p, ok := byID[id]; ok {
				plan.Places = append(plan.Places, p)
			}
		}
	}

	if len(plan.Places) == 0 {
		plan.Places = candidates
		if len(plan.Places) > fallbackTripLimit {
			plan.Places = plan.Places[:fallbackTripLimit]
		}
	}
	return plan, nil
}
