package repository

import (
	"context"
	"errors"
	"fmt"

	"swipe-travel-backend/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// UserRepository handles database operations for users
type UserRepository struct {
	db *pgxpool.Pool
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{db: db}
}

// Upsert creates a user keyed by LINE user ID, or updates the display fields
// of an existing one. Fields passed as nil are left untouched.
func (r *UserRepository) Upsert(ctx context.Context, lineUserID string, displayName, pictureURL *string) (*models.User, error) {
	query := `
		INSERT INTO users (line_user_id, display_name, picture_url, total_coins)
		VALUES ($1, $2, $3, 0)
		ON CONFLICT (line_user_id) DO UPDATE SET
			display_name = COALESCE(EXCLUDED.display_name, users.display_name),
			picture_url  = COALESCE(EXCLUDED.picture_url, users.picture_url),
			updated_at   = now()
		RETURNING id, line_user_id, display_name, picture_url, total_coins, created_at, updated_at
	`
	var user models.User
	err := r.db.QueryRow(ctx, query, lineUserID, displayName, pictureURL).Scan(
		&user.ID, &user.LineUserID, &user.DisplayName, &user.PictureURL,
		&user.TotalCoins, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert user: %w", err)
	}
	return &user, nil
}

// GetByLineID retrieves a user by LINE user ID
func (r *UserRepository) GetByLineID(ctx context.Context, lineUserID string) (*models.User, error) {
	query := `
		SELECT id, line_user_id, display_name, picture_url, total_coins, created_at, updated_at
		FROM users
		WHERE line_user_id = $1
	`
	var user models.User
	err := r.db.QueryRow(ctx, query, lineUserID).Scan(
		&user.ID, &user.LineUserID, &user.DisplayName, &user.PictureURL,
		&user.TotalCoins, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return &user, nil
}

// Stats aggregates the user's swipe, journey and photo counters
func (r *UserRepository) Stats(ctx context.Context, userID int64) (*models.UserStats, error) {
	var stats models.UserStats

	query := `
		SELECT
			count(*),
			count(*) FILTER (WHERE direction = 'right'),
			count(*) FILTER (WHERE direction = 'left')
		FROM swipes
		WHERE user_id = $1
	`
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&stats.TotalSwipes, &stats.LikedPlaces, &stats.DislikedPlaces,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to count swipes: %w", err)
	}

	query = `SELECT count(*) FROM journeys WHERE user_id = $1 AND is_completed`
	if err := r.db.QueryRow(ctx, query, userID).Scan(&stats.JourneysCompleted); err != nil {
		return nil, fmt.Errorf("failed to count journeys: %w", err)
	}

	query = `
		SELECT count(*)
		FROM journey_photos jp
		JOIN journeys j ON j.id = jp.journey_id
		WHERE j.user_id = $1
	`
	if err := r.db.QueryRow(ctx, query, userID).Scan(&stats.PhotosUploaded); err != nil {
		return nil, fmt.Errorf("failed to count photos: %w", err)
	}

	query = `SELECT total_coins FROM users WHERE id = $1`
	if err := r.db.QueryRow(ctx, query, userID).Scan(&stats.TotalCoins); err != nil {
		return nil, fmt.Errorf("failed to get coin balance: %w", err)
	}

	return &stats, nil
}
