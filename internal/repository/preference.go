package repository

import (
	"context"
	"errors"
	"fmt"

	"swipe-travel-backend/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PreferenceRepository handles database operations for user preferences
type PreferenceRepository struct {
	db *pgxpool.Pool
}

// NewPreferenceRepository creates a new preference repository
func NewPreferenceRepository(db *pgxpool.Pool) *PreferenceRepository {
	return &PreferenceRepository{db: db}
}

// GetByUserID retrieves the preferences row for a user
func (r *PreferenceRepository) GetByUserID(ctx context.Context, userID int64) (*models.Preference, error) {
	query := `
		SELECT id, user_id, selected_cities, travel_personality, preferred_tags, updated_at
		FROM user_preferences
		WHERE user_id = $1
	`
	var pref models.Preference
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&pref.ID, &pref.UserID, &pref.SelectedCities,
		&pref.TravelPersonality, &pref.PreferredTags, &pref.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrPreferenceNotFound
		}
		return nil, fmt.Errorf("failed to get preferences: %w", err)
	}
	normalizePreference(&pref)
	return &pref, nil
}

// Upsert fully replaces the user's preferences, creating the row when absent
func (r *PreferenceRepository) Upsert(ctx context.Context, pref *models.Preference) error {
	query := `
		INSERT INTO user_preferences (user_id, selected_cities, travel_personality, preferred_tags)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id) DO UPDATE SET
			selected_cities    = EXCLUDED.selected_cities,
			travel_personality = EXCLUDED.travel_personality,
			preferred_tags     = EXCLUDED.preferred_tags,
			updated_at         = now()
		RETURNING id, updated_at
	`
	err := r.db.QueryRow(ctx, query,
		pref.UserID, pref.SelectedCities, pref.TravelPersonality, pref.PreferredTags,
	).Scan(&pref.ID, &pref.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to upsert preferences: %w", err)
	}
	normalizePreference(pref)
	return nil
}

func normalizePreference(pref *models.Preference) {
	if pref.SelectedCities == nil {
		pref.SelectedCities = []string{}
	}
	if pref.PreferredTags == nil {
		pref.PreferredTags = []string{}
	}
}
