package services

import (
	"context"
	"errors"

	"swipe-travel-backend/internal/models"
	"swipe-travel-backend/internal/repository"
)

// PreferenceService handles preference-related business logic
type PreferenceService struct {
	prefRepo *repository.PreferenceRepository
	userRepo *repository.UserRepository
}

// NewPreferenceService creates a new preference service
func NewPreferenceService(prefRepo *repository.PreferenceRepository, userRepo *repository.UserRepository) *PreferenceService {
	return &PreferenceService{prefRepo: prefRepo, userRepo: userRepo}
}

// Get retrieves the user's preferences, creating an empty default row when
// none exists yet.
func (s *PreferenceService) Get(ctx context.Context, lineUserID string) (*models.Preference, error) {
	user, err := s.userRepo.GetByLineID(ctx, lineUserID)
	if err != nil {
		return nil, err
	}

	pref, err := s.prefRepo.GetByUserID(ctx, user.ID)
	if err == nil {
		return pref, nil
	}
	if !errors.Is(err, repository.ErrPreferenceNotFound) {
		return nil, err
	}

	pref = &models.Preference{
		UserID:         user.ID,
		SelectedCities: []string{},
		PreferredTags:  []string{},
	}
	if err := s.prefRepo.Upsert(ctx, pref); err != nil {
		return nil, err
	}
	return pref, nil
}

// Update fully replaces the user's preferences
func (s *PreferenceService) Update(ctx context.Context, lineUserID string, selectedCities []string, travelPersonality *string, preferredTags []string) (*models.Preference, error) {
	user, err := s.userRepo.GetByLineID(ctx, lineUserID)
	if err != nil {
		return nil, err
	}

	if selectedCities == nil {
		selectedCities = []string{}
	}
	if preferredTags == nil {
		preferredTags = []string{}
	}

	pref := &models.Preference{
		UserID:            user.ID,
		SelectedCities:    selectedCities,
		TravelPersonality: travelPersonality,
		PreferredTags:     preferredTags,
	}
	if err := s.prefRepo.Upsert(ctx, pref); err != nil {
		return nil, err
	}
	return pref, nil
}
