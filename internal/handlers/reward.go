package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"swipe-travel-backend/internal/models"
	"swipe-travel-backend/internal/services"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

// RewardService is the reward-ledger surface the handler needs
type RewardService interface {
	List(ctx context.Context) ([]models.Reward, error)
	Redeem(ctx context.Context, lineUserID string, rewardID int64) (*services.RedemptionResult, error)
	Redeemed(ctx context.Context, lineUserID string) ([]models.Reward, error)
}

// RewardHandler handles reward-related HTTP requests
type RewardHandler struct {
	rewardService RewardService
}

// NewRewardHandler creates a new reward handler
func NewRewardHandler(rewardService RewardService) *RewardHandler {
	return &RewardHandler{rewardService: rewardService}
}

// GetRewards handles GET /api/rewards
func (h *RewardHandler) GetRewards(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	rewards, err := h.rewardService.List(ctx)
	if err != nil {
		log.Error().Err(err).Msg("Failed to list rewards")
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, rewards)
}

// RedeemRewardRequest is the body for POST /api/users/{line_user_id}/rewards/redeem
type RedeemRewardRequest struct {
	RewardID int64 `json:"reward_id"`
}

// RedeemReward handles POST /api/users/{line_user_id}/rewards/redeem
func (h *RewardHandler) RedeemReward(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	lineUserID := chi.URLParam(r, "line_user_id")

	var req RedeemRewardRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	result, err := h.rewardService.Redeem(ctx, lineUserID, req.RewardID)
	if err != nil {
		log.Error().
			Err(err).
			Str("line_user_id", lineUserID).
			Int64("reward_id", req.RewardID).
			Msg("Failed to redeem reward")
		respondServiceError(w, err)
		return
	}

	log.Info().
		Str("line_user_id", lineUserID).
		Int64("reward_id", req.RewardID).
		Int64("remaining_coins", result.RemainingCoins).
		Msg("Reward redeemed")

	respondJSON(w, http.StatusOK, result)
}

// GetRedeemedRewards handles GET /api/users/{line_user_id}/rewards/redeemed
func (h *RewardHandler) GetRedeemedRewards(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	lineUserID := chi.URLParam(r, "line_user_id")

	rewards, err := h.rewardService.Redeemed(ctx, lineUserID)
	if err != nil {
		log.Error().Err(err).Str("line_user_id", lineUserID).Msg("Failed to get redeemed rewards")
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, rewards)
}
