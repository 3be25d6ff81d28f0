package repository

import (
	"context"
	"errors"
	"fmt"

	"swipe-travel-backend/internal/models"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// SwipeRepository handles database operations for swipes
type SwipeRepository struct {
	db *pgxpool.Pool
}

// NewSwipeRepository creates a new swipe repository
func NewSwipeRepository(db *pgxpool.Pool) *SwipeRepository {
	return &SwipeRepository{db: db}
}

// Create persists a swipe. The (user, place) pair is unique; a duplicate
// insert is reported as ErrAlreadySwiped even when two requests race past the
// existence check, via the unique-violation error code.
func (r *SwipeRepository) Create(ctx context.Context, swipe *models.Swipe) error {
	query := `
		INSERT INTO swipes (user_id, place_id, direction)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`
	err := r.db.QueryRow(ctx, query, swipe.UserID, swipe.PlaceID, swipe.Direction).
		Scan(&swipe.ID, &swipe.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrAlreadySwiped
		}
		return fmt.Errorf("failed to create swipe: %w", err)
	}
	return nil
}

// Exists checks whether the user has already swiped on the place
func (r *SwipeRepository) Exists(ctx context.Context, userID, placeID int64) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM swipes WHERE user_id = $1 AND place_id = $2)`
	var exists bool
	if err := r.db.QueryRow(ctx, query, userID, placeID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check swipe existence: %w", err)
	}
	return exists, nil
}

// ListLikedPlaces retrieves the places the user has swiped right on
func (r *SwipeRepository) ListLikedPlaces(ctx context.Context, userID int64) ([]models.Place, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM places p
		JOIN swipes s ON s.place_id = p.id
		WHERE s.user_id = $1 AND s.direction = 'right'
		ORDER BY s.created_at DESC
	`, prefixedPlaceColumns("p"))

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query liked places: %w", err)
	}
	defer rows.Close()

	places := []models.Place{}
	for rows.Next() {
		place, err := scanPlace(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan liked place: %w", err)
		}
		places = append(places, *place)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating liked places: %w", err)
	}
	return places, nil
}

// DeleteLiked removes a single right-swipe for (user, place)
func (r *SwipeRepository) DeleteLiked(ctx context.Context, userID, placeID int64) error {
	query := `DELETE FROM swipes WHERE user_id = $1 AND place_id = $2 AND direction = 'right'`
	result, err := r.db.Exec(ctx, query, userID, placeID)
	if err != nil {
		return fmt.Errorf("failed to delete liked place: %w", err)
	}
	if result.RowsAffected() == 0 {
		return ErrLikedPlaceNotFound
	}
	return nil
}

// ClearLiked removes all right-swipes for the user
func (r *SwipeRepository) ClearLiked(ctx context.Context, userID int64) error {
	query := `DELETE FROM swipes WHERE user_id = $1 AND direction = 'right'`
	if _, err := r.db.Exec(ctx, query, userID); err != nil {
		return fmt.Errorf("failed to clear liked places: %w", err)
	}
	return nil
}

func prefixedPlaceColumns(alias string) string {
	return fmt.Sprintf(`%[1]s.id, %[1]s.external_id, %[1]s.name, %[1]s.description,
		%[1]s.latitude, %[1]s.longitude, %[1]s.image_url, %[1]s.country, %[1]s.city,
		%[1]s.rating, %[1]s.distance, %[1]s.tags, %[1]s.is_active, %[1]s.created_at`, alias)
}
