package services

import (
	"context"
	"errors"
	"fmt"

	"swipe-travel-backend/internal/models"
	"swipe-travel-backend/internal/repository"
)

// ErrInvalidDirection rejects swipe directions other than left/right
var ErrInvalidDirection = errors.New("direction must be 'left' or 'right'")

// SwipeService handles swipe-related business logic
type SwipeService struct {
	swipeRepo *repository.SwipeRepository
	userRepo  *repository.UserRepository
	placeRepo *repository.PlaceRepository
	prefRepo  *repository.PreferenceRepository
}

// NewSwipeService creates a new swipe service
func NewSwipeService(
	swipeRepo *repository.SwipeRepository,
	userRepo *repository.UserRepository,
	placeRepo *repository.PlaceRepository,
	prefRepo *repository.PreferenceRepository,
) *SwipeService {
	return &SwipeService{
		swipeRepo: swipeRepo,
		userRepo:  userRepo,
		placeRepo: placeRepo,
		prefRepo:  prefRepo,
	}
}

// Deck retrieves the places the user can still swipe on. An explicit cities
// filter wins; otherwise the user's stored city preference applies when set.
func (s *SwipeService) Deck(ctx context.Context, lineUserID string, cities []string) ([]models.Place, error) {
	user, err := s.userRepo.GetByLineID(ctx, lineUserID)
	if err != nil {
		return nil, err
	}

	if len(cities) == 0 {
		pref, err := s.prefRepo.GetByUserID(ctx, user.ID)
		if err != nil && !errors.Is(err, repository.ErrPreferenceNotFound) {
			return nil, err
		}
		if pref != nil {
			cities = pref.SelectedCities
		}
	}

	return s.placeRepo.ListUnswiped(ctx, user.ID, cities)
}

// Record persists a swipe. The second swipe on the same (user, place) pair is
// rejected, never merged or overwritten.
func (s *SwipeService) Record(ctx context.Context, lineUserID string, placeID int64, direction string) (*models.Swipe, error) {
	if direction != models.SwipeLeft && direction != models.SwipeRight {
		return nil, ErrInvalidDirection
	}

	user, err := s.userRepo.GetByLineID(ctx, lineUserID)
	if err != nil {
		return nil, err
	}
	if _, err := s.placeRepo.GetByID(ctx, placeID); err != nil {
		return nil, err
	}

	exists, err := s.swipeRepo.Exists(ctx, user.ID, placeID)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing swipe: %w", err)
	}
	if exists {
		return nil, repository.ErrAlreadySwiped
	}

	swipe := &models.Swipe{
		UserID:    user.ID,
		PlaceID:   placeID,
		Direction: direction,
	}
	if err := s.swipeRepo.Create(ctx, swipe); err != nil {
		return nil, err
	}
	return swipe, nil
}

// Liked retrieves the places the user has swiped right on
func (s *SwipeService) Liked(ctx context.Context, lineUserID string) ([]models.Place, error) {
	user, err := s.userRepo.GetByLineID(ctx, lineUserID)
	if err != nil {
		return nil, err
	}
	return s.swipeRepo.ListLikedPlaces(ctx, user.ID)
}

// RemoveLiked removes a single place from the user's liked places
func (s *SwipeService) RemoveLiked(ctx context.Context, lineUserID string, placeID int64) error {
	user, err := s.userRepo.GetByLineID(ctx, lineUserID)
	if err != nil {
		return err
	}
	return s.swipeRepo.DeleteLiked(ctx, user.ID, placeID)
}

// ClearLiked removes all of the user's liked places
func (s *SwipeService) ClearLiked(ctx context.Context, lineUserID string) error {
	user, err := s.userRepo.GetByLineID(ctx, lineUserID)
	if err != nil {
		return err
	}
	return s.swipeRepo.ClearLiked(ctx, user.ID)
}
