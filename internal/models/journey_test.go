package models

import (
	"errors"
	"slices"
	"testing"
	"time"
)

func newJourney(placeIDs ...int64) *Journey {
	return &Journey{
		ID:       1,
		UserID:   1,
		PlaceIDs: placeIDs,
	}
}

func TestRecordVisitRejectsPlaceOutsideJourney(t *testing.T) {
	j := newJourney(1, 2, 3)

	_, err := j.RecordVisit(99, 1, time.Now())
	if !errors.Is(err, ErrPlaceNotInJourney) {
		t.Fatalf("expected ErrPlaceNotInJourney, got %v", err)
	}
	if len(j.VisitedPlaceIDs) != 0 || j.TotalCoinsEarned != 0 {
		t.Errorf("journey mutated on rejected visit: %+v", j)
	}
}

func TestRecordVisitRejectsRepeatVisit(t *testing.T) {
	j := newJourney(1, 2, 3)

	if _, err := j.RecordVisit(1, 2, time.Now()); err != nil {
		t.Fatalf("first visit failed: %v", err)
	}
	coinsBefore := j.TotalCoinsEarned

	_, err := j.RecordVisit(1, 2, time.Now())
	if !errors.Is(err, ErrPlaceAlreadyVisited) {
		t.Fatalf("expected ErrPlaceAlreadyVisited, got %v", err)
	}
	if j.TotalCoinsEarned != coinsBefore {
		t.Errorf("repeat visit changed coins: %d -> %d", coinsBefore, j.TotalCoinsEarned)
	}
	if got := len(j.VisitedPlaceIDs); got != 1 {
		t.Errorf("expected 1 visited place, got %d", got)
	}
}

// A visit to a place outside the journey must be rejected as such even when a
// place with that id was already visited on some other journey; the membership
// check runs first.
func TestRecordVisitMembershipCheckedBeforeVisited(t *testing.T) {
	j := newJourney(1, 2)
	j.VisitedPlaceIDs = []int64{99}

	_, err := j.RecordVisit(99, 0, time.Now())
	if !errors.Is(err, ErrPlaceNotInJourney) {
		t.Fatalf("expected ErrPlaceNotInJourney, got %v", err)
	}
}

func TestRecordVisitCoinAccrual(t *testing.T) {
	j := newJourney(1, 2, 3)
	now := time.Now()

	out, err := j.RecordVisit(1, 1, now)
	if err != nil {
		t.Fatalf("visit 1 failed: %v", err)
	}
	if out.CoinsEarned != 10 || out.Completed {
		t.Errorf("visit 1: got %+v, want 10 coins and not completed", out)
	}

	out, err = j.RecordVisit(2, 0, now)
	if err != nil {
		t.Fatalf("visit 2 failed: %v", err)
	}
	if out.CoinsEarned != 0 || out.Completed {
		t.Errorf("visit 2: got %+v, want 0 coins and not completed", out)
	}

	out, err = j.RecordVisit(3, 2, now)
	if err != nil {
		t.Fatalf("visit 3 failed: %v", err)
	}
	if out.CoinsEarned != 120 || !out.Completed {
		t.Errorf("visit 3: got %+v, want 120 coins and completed", out)
	}

	if j.TotalCoinsEarned != 130 {
		t.Errorf("journey total coins = %d, want 130", j.TotalCoinsEarned)
	}
	if !j.IsCompleted || j.CompletedAt == nil {
		t.Errorf("journey not marked completed: %+v", j)
	}
	if !j.CompletedAt.Equal(now) {
		t.Errorf("completed_at = %v, want %v", j.CompletedAt, now)
	}
}

func TestRecordVisitVisitedStaysWithinJourney(t *testing.T) {
	j := newJourney(4, 5, 6)
	now := time.Now()

	for _, id := range []int64{5, 4, 6} {
		if _, err := j.RecordVisit(id, 1, now); err != nil {
			t.Fatalf("visit %d failed: %v", id, err)
		}
		for _, v := range j.VisitedPlaceIDs {
			if !slices.Contains(j.PlaceIDs, v) {
				t.Fatalf("visited place %d not in journey places %v", v, j.PlaceIDs)
			}
		}
	}
}

func TestRecordVisitCompletionIgnoresOrder(t *testing.T) {
	j := newJourney(1, 2, 3)
	now := time.Now()

	j.RecordVisit(3, 0, now)
	j.RecordVisit(1, 0, now)
	out, err := j.RecordVisit(2, 0, now)
	if err != nil {
		t.Fatalf("final visit failed: %v", err)
	}
	if !out.Completed || out.CoinsEarned != CompletionBonus {
		t.Errorf("final visit: got %+v, want completion with bonus only", out)
	}
}

func TestRecordVisitDuplicateTargetsCannotBlockCompletion(t *testing.T) {
	j := newJourney(1, 2, 2)
	now := time.Now()

	j.RecordVisit(1, 0, now)
	out, err := j.RecordVisit(2, 0, now)
	if err != nil {
		t.Fatalf("visit failed: %v", err)
	}
	if !out.Completed {
		t.Error("journey with duplicate target ids never completed")
	}
}

func TestCompletedJourneyRejectsFurtherVisits(t *testing.T) {
	j := newJourney(1)
	now := time.Now()

	if _, err := j.RecordVisit(1, 1, now); err != nil {
		t.Fatalf("visit failed: %v", err)
	}
	if !j.IsCompleted {
		t.Fatal("journey should be completed")
	}

	_, err := j.RecordVisit(1, 1, now)
	if !errors.Is(err, ErrPlaceAlreadyVisited) {
		t.Fatalf("expected ErrPlaceAlreadyVisited, got %v", err)
	}
	_, err = j.RecordVisit(2, 1, now)
	if !errors.Is(err, ErrPlaceNotInJourney) {
		t.Fatalf("expected ErrPlaceNotInJourney, got %v", err)
	}
}

func TestApplyRedemption(t *testing.T) {
	tests := []struct {
		name    string
		balance int64
		cost    int64
		wantErr error
		want    int64
	}{
		{"exact balance", 50, 50, nil, 0},
		{"surplus", 40, 30, nil, 10},
		{"insufficient", 40, 50, ErrInsufficientCoins, 40},
		{"zero balance", 0, 1, ErrInsufficientCoins, 0},
		{"free reward", 0, 0, nil, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u := &User{TotalCoins: tt.balance}
			r := &Reward{CoinCost: tt.cost}

			err := u.ApplyRedemption(r)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("err = %v, want %v", err, tt.wantErr)
			}
			if u.TotalCoins != tt.want {
				t.Errorf("balance = %d, want %d", u.TotalCoins, tt.want)
			}
		})
	}
}
