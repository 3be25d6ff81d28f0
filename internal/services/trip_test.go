package services

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"swipe-travel-backend/internal/models"
)

type stubPlaceFinder struct {
	places []models.Place
	err    error
}

func (s *stubPlaceFinder) ListByIDs(ctx context.Context, ids []int64) ([]models.Place, error) {
	return s.places, s.err
}

type stubGenerator struct {
	itinerary *Itinerary
	err       error
}

func (s *stubGenerator) GenerateItinerary(ctx context.Context, preferences map[string]any, places []models.Place) (*Itinerary, error) {
	return s.itinerary, s.err
}

func testPlaces(n int) []models.Place {
	places := make([]models.Place, n)
	for i := range places {
		places[i] = models.Place{ID: int64(i + 1), Name: fmt.Sprintf("Place %d", i+1)}
	}
	return places
}

func placeIDs(places []models.Place) []int64 {
	ids := make([]int64, len(places))
	for i, p := range places {
		ids[i] = p.ID
	}
	return ids
}

func TestGenerateUsesItineraryOrder(t *testing.T) {
	finder := &stubPlaceFinder{places: testPlaces(4)}
	gen := &stubGenerator{itinerary: &Itinerary{
		TripName:         "Temple Run",
		Description:      "A day of temples",
		SelectedPlaceIDs: []int64{3, 1},
	}}
	svc := NewTripService(finder, gen)

	plan, err := svc.Generate(context.Background(), nil, []int64{1, 2, 3, 4})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if plan.TripName != "Temple Run" || plan.Description != "A day of temples" {
		t.Errorf("plan header = %q / %q", plan.TripName, plan.Description)
	}
	if got := placeIDs(plan.Places); len(got) != 2 || got[0] != 3 || got[1] != 1 {
		t.Errorf("plan places = %v, want [3 1]", got)
	}
}

func TestGenerateDropsUnknownSelectedIDs(t *testing.T) {
	finder := &stubPlaceFinder{places: testPlaces(2)}
	gen := &stubGenerator{itinerary: &Itinerary{
		TripName:         "Trip",
		SelectedPlaceIDs: []int64{2, 77, 1},
	}}
	svc := NewTripService(finder, gen)

	plan, err := svc.Generate(context.Background(), nil, []int64{1, 2})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if got := placeIDs(plan.Places); len(got) != 2 || got[0] != 2 || got[1] != 1 {
		t.Errorf("plan places = %v, want [2 1]", got)
	}
}

func TestGenerateFallsBackOnGeneratorError(t *testing.T) {
	finder := &stubPlaceFinder{places: testPlaces(7)}
	gen := &stubGenerator{err: errors.New("model unavailable")}
	svc := NewTripService(finder, gen)

	plan, err := svc.Generate(context.Background(), nil, []int64{1, 2, 3, 4, 5, 6, 7})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if plan.TripName != "My Trip" || plan.Description != "Enjoy your trip!" {
		t.Errorf("fallback header = %q / %q", plan.TripName, plan.Description)
	}
	if got := placeIDs(plan.Places); len(got) != 5 || got[0] != 1 || got[4] != 5 {
		t.Errorf("fallback places = %v, want first 5 candidates", got)
	}
}

func TestGenerateFallsBackWhenNothingSelected(t *testing.T) {
	finder := &stubPlaceFinder{places: testPlaces(3)}
	gen := &stubGenerator{itinerary: &Itinerary{
		TripName:         "Ghost Trip",
		SelectedPlaceIDs: []int64{88, 99},
	}}
	svc := NewTripService(finder, gen)

	plan, err := svc.Generate(context.Background(), nil, []int64{1, 2, 3})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	// The generator's header is kept; only the place list falls back.
	if plan.TripName != "Ghost Trip" {
		t.Errorf("trip name = %q, want generator title", plan.TripName)
	}
	if got := placeIDs(plan.Places); len(got) != 3 {
		t.Errorf("fallback places = %v, want all 3 candidates", got)
	}
}

func TestGenerateWithoutGenerator(t *testing.T) {
	finder := &stubPlaceFinder{places: testPlaces(2)}
	svc := NewTripService(finder, nil)

	plan, err := svc.Generate(context.Background(), nil, []int64{1, 2})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(plan.Places) != 2 {
		t.Errorf("plan places = %v, want both candidates", placeIDs(plan.Places))
	}
}

func TestGeneratePropagatesLookupError(t *testing.T) {
	finder := &stubPlaceFinder{err: errors.New("db down")}
	svc := NewTripService(finder, &stubGenerator{})

	if _, err := svc.Generate(context.Background(), nil, []int64{1}); err == nil {
		t.Fatal("expected error from place lookup")
	}
}
