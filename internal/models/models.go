package models

import "time"

// User represents an app user identified by their LINE user ID
type User struct {
	ID          int64     `json:"id"`
	LineUserID  string    `json:"line_user_id"`
	DisplayName *string   `json:"display_name"`
	PictureURL  *string   `json:"picture_url"`
	TotalCoins  int64     `json:"total_coins"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"-"`
}

// Place represents a travel destination in the catalog
type Place struct {
	ID          int64     `json:"id"`
	ExternalID  *string   `json:"external_id"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	Latitude    float64   `json:"latitude"`
	Longitude   float64   `json:"longitude"`
	ImageURL    *string   `json:"image_url"`
	Country     string    `json:"country"`
	City        string    `json:"city"`
	Rating      *float64  `json:"rating"`
	Distance    *string   `json:"distance"`
	Tags        []string  `json:"tags"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"-"`
}

// Swipe represents a single like/dislike action on a place.
// At most one swipe exists per (user, place).
type Swipe struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	PlaceID   int64     `json:"place_id"`
	Direction string    `json:"direction"`
	CreatedAt time.Time `json:"created_at"`
}

// Preference holds a user's place-filtering preferences
type Preference struct {
	ID                int64     `json:"id"`
	UserID            int64     `json:"user_id"`
	SelectedCities    []string  `json:"selected_cities"`
	TravelPersonality *string   `json:"travel_personality"`
	PreferredTags     []string  `json:"preferred_tags"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// Journey represents a user's multi-stop trip with progress and coin tracking
type Journey struct {
	ID               int64      `json:"id"`
	UserID           int64      `json:"user_id"`
	Personality      *string    `json:"personality"`
	Duration         *string    `json:"duration"`
	PlaceIDs         []int64    `json:"place_ids"`
	VisitedPlaceIDs  []int64    `json:"visited_place_ids"`
	TotalCoinsEarned int64      `json:"total_coins_earned"`
	IsCompleted      bool       `json:"is_completed"`
	StartedAt        time.Time  `json:"started_at"`
	CompletedAt      *time.Time `json:"completed_at"`
}

// JourneyPhoto is a photo attached to a single visit within a journey.
// CoinsEarned holds the per-photo value at award time and is never recomputed.
type JourneyPhoto struct {
	ID          int64     `json:"id"`
	JourneyID   int64     `json:"journey_id"`
	PlaceID     int64     `json:"place_id"`
	PhotoURL    string    `json:"photo_url"`
	CoinsEarned int64     `json:"coins_earned"`
	UploadedAt  time.Time `json:"uploaded_at"`
}

// Reward is a catalog entry users can redeem coins for
type Reward struct {
	ID            int64   `json:"id"`
	Name          string  `json:"name"`
	Description   *string `json:"description"`
	ImageURL      *string `json:"image_url"`
	CoinCost      int64   `json:"coin_cost"`
	Category      string  `json:"category"`
	DiscountCode  *string `json:"discount_code"`
	ValidUntil    *string `json:"valid_until"`
	Location      *string `json:"location"`
	OriginalPrice *string `json:"original_price"`
	IsActive      bool    `json:"is_active"`
}

// RedeemedReward is an append-only log entry recording a redemption
type RedeemedReward struct {
	ID         int64     `json:"id"`
	UserID     int64     `json:"user_id"`
	RewardID   int64     `json:"reward_id"`
	RedeemedAt time.Time `json:"redeemed_at"`
}

// CityCount pairs a city name with its number of active places
type CityCount struct {
	Name       string `json:"name"`
	PlaceCount int64  `json:"place_count"`
}

// UserStats aggregates a user's activity counters
type UserStats struct {
	TotalSwipes       int64 `json:"total_swipes"`
	LikedPlaces       int64 `json:"liked_places"`
	DislikedPlaces    int64 `json:"disliked_places"`
	TotalCoins        int64 `json:"total_coins"`
	JourneysCompleted int64 `json:"journeys_completed"`
	PhotosUploaded    int64 `json:"photos_uploaded"`
}
