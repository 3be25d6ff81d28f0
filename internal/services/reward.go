package services

import (
	"context"
	"fmt"

	"swipe-travel-backend/internal/models"
	"swipe-travel-backend/internal/repository"
)

// RedemptionResult is the outcome of a successful redemption
type RedemptionResult struct {
	Success        bool    `json:"success"`
	Message        string  `json:"message"`
	DiscountCode   *string `json:"discount_code"`
	RemainingCoins int64   `json:"remaining_coins"`
}

// RewardService handles the reward catalog and redemptions
type RewardService struct {
	rewardRepo *repository.RewardRepository
	userRepo   *repository.UserRepository
}

// NewRewardService creates a new reward service
func NewRewardService(rewardRepo *repository.RewardRepository, userRepo *repository.UserRepository) *RewardService {
	return &RewardService{rewardRepo: rewardRepo, userRepo: userRepo}
}

// List retrieves all active rewards
func (s *RewardService) List(ctx context.Context) ([]models.Reward, error) {
	return s.rewardRepo.ListActive(ctx)
}

// Redeem exchanges coins for the reward. The debit and the redemption log
// entry are applied atomically; there is no way to reverse a redemption.
func (s *RewardService) Redeem(ctx context.Context, lineUserID string, rewardID int64) (*RedemptionResult, error) {
	user, err := s.userRepo.GetByLineID(ctx, lineUserID)
	if err != nil {
		return nil, err
	}

	reward, remaining, err := s.rewardRepo.Redeem(ctx, user.ID, rewardID)
	if err != nil {
		return nil, err
	}

	return &RedemptionResult{
		Success:        true,
		Message:        fmt.Sprintf("Successfully redeemed: %s", reward.Name),
		DiscountCode:   reward.DiscountCode,
		RemainingCoins: remaining,
	}, nil
}

// Redeemed retrieves the catalog entries the user has redeemed
func (s *RewardService) Redeemed(ctx context.Context, lineUserID string) ([]models.Reward, error) {
	user, err := s.userRepo.GetByLineID(ctx, lineUserID)
	if err != nil {
		return nil, err
	}
	return s.rewardRepo.ListRedeemed(ctx, user.ID)
}
