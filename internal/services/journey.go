package services

import (
	"context"
	"errors"

	"swipe-travel-backend/internal/models"
	"swipe-travel-backend/internal/repository"
)

// ErrEmptyJourney rejects journey creation without target places
var ErrEmptyJourney = errors.New("place_ids must not be empty")

// VisitResult is the outcome of a single mark-visited call
type VisitResult struct {
	Success          bool  `json:"success"`
	CoinsEarned      int64 `json:"coins_earned"`
	TotalCoins       int64 `json:"total_coins"`
	JourneyCompleted bool  `json:"journey_completed"`
}

// JourneyService owns the journey lifecycle: creation, visit recording, coin
// accrual and completion detection.
type JourneyService struct {
	journeyRepo *repository.JourneyRepository
	userRepo    *repository.UserRepository
	photos      *PhotoStorage
}

// NewJourneyService creates a new journey service
func NewJourneyService(journeyRepo *repository.JourneyRepository, userRepo *repository.UserRepository, photos *PhotoStorage) *JourneyService {
	return &JourneyService{
		journeyRepo: journeyRepo,
		userRepo:    userRepo,
		photos:      photos,
	}
}

// Create starts a new journey over the given target places. Place ids are
// taken as supplied; validating them against the catalog is the caller's
// responsibility. The user's balance is untouched.
func (s *JourneyService) Create(ctx context.Context, lineUserID string, personality, duration *string, placeIDs []int64) (*models.Journey, error) {
	if len(placeIDs) == 0 {
		return nil, ErrEmptyJourney
	}

	user, err := s.userRepo.GetByLineID(ctx, lineUserID)
	if err != nil {
		return nil, err
	}

	journey := &models.Journey{
		UserID:      user.ID,
		Personality: personality,
		Duration:    duration,
		PlaceIDs:    placeIDs,
	}
	if err := s.journeyRepo.Create(ctx, journey); err != nil {
		return nil, err
	}
	return journey, nil
}

// Current retrieves the user's most recently started incomplete journey
func (s *JourneyService) Current(ctx context.Context, lineUserID string) (*models.Journey, error) {
	user, err := s.userRepo.GetByLineID(ctx, lineUserID)
	if err != nil {
		return nil, err
	}
	return s.journeyRepo.CurrentByUser(ctx, user.ID)
}

// MarkVisited records a visit to a place within the journey, storing the
// submitted photos and crediting coins (10 per photo, plus a flat 100 bonus
// when this visit completes the journey).
func (s *JourneyService) MarkVisited(ctx context.Context, lineUserID string, journeyID, placeID int64, photos []string) (*VisitResult, error) {
	user, err := s.userRepo.GetByLineID(ctx, lineUserID)
	if err != nil {
		return nil, err
	}

	photoURLs := make([]string, 0, len(photos))
	for _, payload := range photos {
		photoURLs = append(photoURLs, s.photos.Store(ctx, journeyID, payload))
	}

	outcome, balance, err := s.journeyRepo.MarkVisited(ctx, user.ID, journeyID, placeID, photoURLs)
	if err != nil {
		return nil, err
	}

	return &VisitResult{
		Success:          true,
		CoinsEarned:      outcome.CoinsEarned,
		TotalCoins:       balance,
		JourneyCompleted: outcome.Completed,
	}, nil
}
