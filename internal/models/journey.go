package models

import (
	"errors"
	"slices"
	"time"
)

// Coin values awarded by the journey engine.
const (
	PhotoCoinValue  = 10
	CompletionBonus = 100
)

// Swipe directions.
const (
	SwipeLeft  = "left"
	SwipeRight = "right"
)

// State-violation errors returned by the journey and reward logic.
var (
	ErrPlaceNotInJourney   = errors.New("place not in journey")
	ErrPlaceAlreadyVisited = errors.New("place already visited")
	ErrInsufficientCoins   = errors.New("insufficient coins")
)

// VisitOutcome describes the effect of a single successful visit.
type VisitOutcome struct {
	CoinsEarned int64
	Completed   bool
}

// CanVisit reports whether placeID is a valid next visit for the journey.
// The membership check runs before the already-visited check so the two
// rejections stay distinguishable to the caller.
func (j *Journey) CanVisit(placeID int64) error {
	if !slices.Contains(j.PlaceIDs, placeID) {
		return ErrPlaceNotInJourney
	}
	if slices.Contains(j.VisitedPlaceIDs, placeID) {
		// A repeat visit is a hard rejection, not a no-op. A second call
		// crediting zero coins would still mask a client bug, and crediting
		// again would double-pay, so the contract is: succeed once, fail after.
		return ErrPlaceAlreadyVisited
	}
	return nil
}

// RecordVisit applies a visit to the journey in memory and returns the coins
// earned by this visit, including the completion bonus when this visit covers
// the last remaining target place. The journey is left untouched on rejection.
func (j *Journey) RecordVisit(placeID int64, photoCount int, now time.Time) (VisitOutcome, error) {
	if err := j.CanVisit(placeID); err != nil {
		return VisitOutcome{}, err
	}

	coins := int64(photoCount) * PhotoCoinValue
	j.VisitedPlaceIDs = append(j.VisitedPlaceIDs, placeID)
	j.TotalCoinsEarned += coins

	out := VisitOutcome{CoinsEarned: coins}
	if j.coversAllPlaces() {
		j.IsCompleted = true
		completed := now
		j.CompletedAt = &completed
		j.TotalCoinsEarned += CompletionBonus
		out.CoinsEarned += CompletionBonus
		out.Completed = true
	}
	return out, nil
}

// coversAllPlaces reports whether every target place has been visited.
// Order is irrelevant; this is a set-superset test, so duplicate target ids
// cannot keep a journey open.
func (j *Journey) coversAllPlaces() bool {
	for _, id := range j.PlaceIDs {
		if !slices.Contains(j.VisitedPlaceIDs, id) {
			return false
		}
	}
	return true
}

// ApplyRedemption debits the reward's cost from the user's balance.
// The balance is left untouched when it cannot cover the cost.
func (u *User) ApplyRedemption(r *Reward) error {
	if u.TotalCoins < r.CoinCost {
		return ErrInsufficientCoins
	}
	u.TotalCoins -= r.CoinCost
	return nil
}
