package handlers_test

import (
	"context"
	"net/http"
	"testing"

	"swipe-travel-backend/internal/handlers"
	"swipe-travel-backend/internal/models"
	"swipe-travel-backend/internal/repository"
	"swipe-travel-backend/internal/services"

	"github.com/go-chi/chi/v5"
)

type stubSwipeService struct {
	deck  []models.Place
	swipe *models.Swipe
	liked []models.Place
	err   error

	gotCities    []string
	gotPlaceID   int64
	gotDirection string
}

func (s *stubSwipeService) Deck(ctx context.Context, lineUserID string, cities []string) ([]models.Place, error) {
	s.gotCities = cities
	return s.deck, s.err
}

func (s *stubSwipeService) Record(ctx context.Context, lineUserID string, placeID int64, direction string) (*models.Swipe, error) {
	s.gotPlaceID = placeID
	s.gotDirection = direction
	if s.err != nil {
		return nil, s.err
	}
	return s.swipe, nil
}

func (s *stubSwipeService) Liked(ctx context.Context, lineUserID string) ([]models.Place, error) {
	return s.liked, s.err
}

func (s *stubSwipeService) RemoveLiked(ctx context.Context, lineUserID string, placeID int64) error {
	s.gotPlaceID = placeID
	return s.err
}

func (s *stubSwipeService) ClearLiked(ctx context.Context, lineUserID string) error {
	return s.err
}

func swipeRouter(svc *stubSwipeService) chi.Router {
	h := handlers.NewSwipeHandler(svc)
	r := chi.NewRouter()
	r.Get("/api/users/{line_user_id}/tinder-places", h.GetTinderPlaces)
	r.Post("/api/users/{line_user_id}/swipes", h.CreateSwipe)
	r.Get("/api/users/{line_user_id}/liked-places", h.GetLikedPlaces)
	r.Delete("/api/users/{line_user_id}/liked-places", h.ClearLikedPlaces)
	r.Delete("/api/users/{line_user_id}/liked-places/{place_id}", h.RemoveLikedPlace)
	return r
}

func TestGetTinderPlaces(t *testing.T) {
	svc := &stubSwipeService{deck: []models.Place{{ID: 1, Name: "Wat Arun"}, {ID: 2, Name: "Wat Pho"}}}
	r := swipeRouter(svc)

	rec := doRequest(t, r, "GET", "/api/users/U1/tinder-places?cities=Bangkok,Phuket", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}

	if len(svc.gotCities) != 2 || svc.gotCities[0] != "Bangkok" || svc.gotCities[1] != "Phuket" {
		t.Errorf("cities filter = %v", svc.gotCities)
	}

	m := decodeBody(t, rec)
	if m["total"] != float64(2) {
		t.Errorf("total = %v, want 2", m["total"])
	}
	places, ok := m["places"].([]any)
	if !ok || len(places) != 2 {
		t.Errorf("places = %v", m["places"])
	}
}

func TestCreateSwipe(t *testing.T) {
	svc := &stubSwipeService{swipe: &models.Swipe{ID: 9, UserID: 1, PlaceID: 4, Direction: "right"}}
	r := swipeRouter(svc)

	rec := doRequest(t, r, "POST", "/api/users/U1/swipes", `{"place_id":4,"direction":"right"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	if svc.gotPlaceID != 4 || svc.gotDirection != "right" {
		t.Errorf("service got place=%d direction=%q", svc.gotPlaceID, svc.gotDirection)
	}

	m := decodeBody(t, rec)
	if m["direction"] != "right" {
		t.Errorf("direction = %v", m["direction"])
	}
}

func TestCreateSwipeErrors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"duplicate swipe", repository.ErrAlreadySwiped, http.StatusBadRequest},
		{"invalid direction", services.ErrInvalidDirection, http.StatusBadRequest},
		{"unknown user", repository.ErrUserNotFound, http.StatusNotFound},
		{"unknown place", repository.ErrPlaceNotFound, http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := swipeRouter(&stubSwipeService{err: tt.err})
			rec := doRequest(t, r, "POST", "/api/users/U1/swipes", `{"place_id":4,"direction":"up"}`)
			if rec.Code != tt.want {
				t.Fatalf("status = %d, want %d", rec.Code, tt.want)
			}
		})
	}
}

func TestRemoveLikedPlace(t *testing.T) {
	svc := &stubSwipeService{}
	r := swipeRouter(svc)

	rec := doRequest(t, r, "DELETE", "/api/users/U1/liked-places/6", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if svc.gotPlaceID != 6 {
		t.Errorf("place id = %d, want 6", svc.gotPlaceID)
	}
	m := decodeBody(t, rec)
	if m["success"] != true {
		t.Errorf("body = %v", m)
	}
}

func TestRemoveLikedPlaceNotFound(t *testing.T) {
	r := swipeRouter(&stubSwipeService{err: repository.ErrLikedPlaceNotFound})

	rec := doRequest(t, r, "DELETE", "/api/users/U1/liked-places/6", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}

func TestClearLikedPlaces(t *testing.T) {
	r := swipeRouter(&stubSwipeService{})

	rec := doRequest(t, r, "DELETE", "/api/users/U1/liked-places", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
}
