package services

import (
	"context"

	"swipe-travel-backend/internal/models"
	"swipe-travel-backend/internal/repository"
)

// PlaceService handles catalog-related business logic
type PlaceService struct {
	placeRepo *repository.PlaceRepository
}

// NewPlaceService creates a new place service
func NewPlaceService(placeRepo *repository.PlaceRepository) *PlaceService {
	return &PlaceService{placeRepo: placeRepo}
}

// PlaceList is a paginated page of the catalog
type PlaceList struct {
	Places  []models.Place `json:"places"`
	Total   int64          `json:"total"`
	Page    int            `json:"page"`
	PerPage int            `json:"per_page"`
}

// List retrieves active places matching the filters. Page defaults to 1,
// per-page to 20 with a cap of 100.
func (s *PlaceService) List(ctx context.Context, params repository.ListPlacesParams) (*PlaceList, error) {
	if params.Page < 1 {
		params.Page = 1
	}
	if params.PerPage < 1 {
		params.PerPage = 20
	}
	if params.PerPage > 100 {
		params.PerPage = 100
	}

	places, total, err := s.placeRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}
	return &PlaceList{
		Places:  places,
		Total:   total,
		Page:    params.Page,
		PerPage: params.PerPage,
	}, nil
}

// Get retrieves a place by ID
func (s *PlaceService) Get(ctx context.Context, id int64) (*models.Place, error) {
	return s.placeRepo.GetByID(ctx, id)
}

// Cities lists available cities with their active place counts
func (s *PlaceService) Cities(ctx context.Context) ([]models.CityCount, error) {
	return s.placeRepo.Cities(ctx)
}
