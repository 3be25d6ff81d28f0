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

type stubRewardService struct {
	rewards  []models.Reward
	redeemed []models.Reward
	result   *services.RedemptionResult
	err      error

	gotRewardID int64
}

func (s *stubRewardService) List(ctx context.Context) ([]models.Reward, error) {
	return s.rewards, s.err
}

func (s *stubRewardService) Redeem(ctx context.Context, lineUserID string, rewardID int64) (*services.RedemptionResult, error) {
	s.gotRewardID = rewardID
	if s.err != nil {
		return nil, s.err
	}
	return s.result, nil
}

func (s *stubRewardService) Redeemed(ctx context.Context, lineUserID string) ([]models.Reward, error) {
	return s.redeemed, s.err
}

func rewardRouter(svc *stubRewardService) chi.Router {
	h := handlers.NewRewardHandler(svc)
	r := chi.NewRouter()
	r.Get("/api/rewards", h.GetRewards)
	r.Post("/api/users/{line_user_id}/rewards/redeem", h.RedeemReward)
	r.Get("/api/users/{line_user_id}/rewards/redeemed", h.GetRedeemedRewards)
	return r
}

func TestGetRewards(t *testing.T) {
	svc := &stubRewardService{rewards: []models.Reward{
		{ID: 1, Name: "Free Coffee", CoinCost: 30, Category: "food"},
		{ID: 2, Name: "Farm Tour", CoinCost: 100, Category: "experience"},
	}}
	r := rewardRouter(svc)

	rec := doRequest(t, r, "GET", "/api/rewards", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
}

func TestRedeemReward(t *testing.T) {
	code := "YEEPFREE"
	svc := &stubRewardService{result: &services.RedemptionResult{
		Success:        true,
		Message:        "Successfully redeemed: Free Coffee",
		DiscountCode:   &code,
		RemainingCoins: 10,
	}}
	r := rewardRouter(svc)

	rec := doRequest(t, r, "POST", "/api/users/U1/rewards/redeem", `{"reward_id":1}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	if svc.gotRewardID != 1 {
		t.Errorf("reward id = %d, want 1", svc.gotRewardID)
	}

	m := decodeBody(t, rec)
	if m["success"] != true || m["discount_code"] != "YEEPFREE" || m["remaining_coins"] != float64(10) {
		t.Errorf("unexpected body: %v", m)
	}
}

func TestRedeemRewardErrors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"insufficient coins", models.ErrInsufficientCoins, http.StatusBadRequest},
		{"unknown reward", repository.ErrRewardNotFound, http.StatusNotFound},
		{"unknown user", repository.ErrUserNotFound, http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := rewardRouter(&stubRewardService{err: tt.err})
			rec := doRequest(t, r, "POST", "/api/users/U1/rewards/redeem", `{"reward_id":1}`)
			if rec.Code != tt.want {
				t.Fatalf("status = %d, want %d", rec.Code, tt.want)
			}
		})
	}
}

func TestGetRedeemedRewards(t *testing.T) {
	svc := &stubRewardService{redeemed: []models.Reward{{ID: 1, Name: "Free Coffee"}}}
	r := rewardRouter(svc)

	rec := doRequest(t, r, "GET", "/api/users/U1/rewards/redeemed", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
}
