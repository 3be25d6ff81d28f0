package services

import (
	"context"

	"swipe-travel-backend/internal/models"
	"swipe-travel-backend/internal/repository"
)

// UserService handles user-related business logic
type UserService struct {
	userRepo *repository.UserRepository
}

// NewUserService creates a new user service
func NewUserService(userRepo *repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// CreateOrUpdate creates a user on first contact from a LINE identity, or
// refreshes the display fields of an existing one. New users start with a
// zero coin balance.
func (s *UserService) CreateOrUpdate(ctx context.Context, lineUserID string, displayName, pictureURL *string) (*models.User, error) {
	return s.userRepo.Upsert(ctx, lineUserID, displayName, pictureURL)
}

// Get retrieves a user by LINE user ID
func (s *UserService) Get(ctx context.Context, lineUserID string) (*models.User, error) {
	return s.userRepo.GetByLineID(ctx, lineUserID)
}

// Stats retrieves the user's activity counters
func (s *UserService) Stats(ctx context.Context, lineUserID string) (*models.UserStats, error) {
	user, err := s.userRepo.GetByLineID(ctx, lineUserID)
	if err != nil {
		return nil, err
	}
	return s.userRepo.Stats(ctx, user.ID)
}
