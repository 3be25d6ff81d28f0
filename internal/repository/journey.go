package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"swipe-travel-backend/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// JourneyRepository handles database operations for journeys
type JourneyRepository struct {
	db *pgxpool.Pool
}

// NewJourneyRepository creates a new journey repository
func NewJourneyRepository(db *pgxpool.Pool) *JourneyRepository {
	return &JourneyRepository{db: db}
}

// Create persists a new journey with an empty visited set
func (r *JourneyRepository) Create(ctx context.Context, journey *models.Journey) error {
	query := `
		INSERT INTO journeys (user_id, personality, duration, place_ids,
			visited_place_ids, total_coins_earned, is_completed)
		VALUES ($1, $2, $3, $4, '{}', 0, FALSE)
		RETURNING id, started_at
	`
	err := r.db.QueryRow(ctx, query,
		journey.UserID, journey.Personality, journey.Duration, journey.PlaceIDs,
	).Scan(&journey.ID, &journey.StartedAt)
	if err != nil {
		return fmt.Errorf("failed to create journey: %w", err)
	}
	journey.VisitedPlaceIDs = []int64{}
	return nil
}

// CurrentByUser retrieves the most recently started incomplete journey.
// The "current" journey is a query, not a flag on the row.
func (r *JourneyRepository) CurrentByUser(ctx context.Context, userID int64) (*models.Journey, error) {
	query := journeySelect + `
		WHERE user_id = $1 AND NOT is_completed
		ORDER BY started_at DESC
		LIMIT 1
	`
	journey, err := scanJourney(r.db.QueryRow(ctx, query, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrJourneyNotFound
		}
		return nil, fmt.Errorf("failed to get current journey: %w", err)
	}
	return journey, nil
}

// MarkVisited records a visit to a place within the journey: it persists one
// photo record per stored photo URL, appends the place to the visited set,
// credits photo coins plus any completion bonus, and updates the user's
// balance. The whole sequence runs in one transaction with the journey and
// user rows locked, so concurrent visits to the same journey serialize and
// neither can complete it against a stale visited set. On a rejected
// precondition nothing is written.
//
// Returns the visit outcome and the user's new coin balance.
func (r *JourneyRepository) MarkVisited(ctx context.Context, userID, journeyID, placeID int64, photoURLs []string) (models.VisitOutcome, int64, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return models.VisitOutcome{}, 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	query := journeySelect + ` WHERE id = $1 AND user_id = $2 FOR UPDATE`
	journey, err := scanJourney(tx.QueryRow(ctx, query, journeyID, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.VisitOutcome{}, 0, ErrJourneyNotFound
		}
		return models.VisitOutcome{}, 0, fmt.Errorf("failed to get journey: %w", err)
	}

	var balance int64
	err = tx.QueryRow(ctx, `SELECT total_coins FROM users WHERE id = $1 FOR UPDATE`, userID).
		Scan(&balance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.VisitOutcome{}, 0, ErrUserNotFound
		}
		return models.VisitOutcome{}, 0, fmt.Errorf("failed to lock user: %w", err)
	}

	outcome, err := journey.RecordVisit(placeID, len(photoURLs), time.Now().UTC())
	if err != nil {
		return models.VisitOutcome{}, 0, err
	}

	for _, url := range photoURLs {
		_, err = tx.Exec(ctx, `
			INSERT INTO journey_photos (journey_id, place_id, photo_url, coins_earned)
			VALUES ($1, $2, $3, $4)
		`, journeyID, placeID, url, int64(models.PhotoCoinValue))
		if err != nil {
			return models.VisitOutcome{}, 0, fmt.Errorf("failed to create journey photo: %w", err)
		}
	}

	_, err = tx.Exec(ctx, `
		UPDATE journeys
		SET visited_place_ids = $1, total_coins_earned = $2, is_completed = $3, completed_at = $4
		WHERE id = $5
	`, journey.VisitedPlaceIDs, journey.TotalCoinsEarned, journey.IsCompleted, journey.CompletedAt, journeyID)
	if err != nil {
		return models.VisitOutcome{}, 0, fmt.Errorf("failed to update journey: %w", err)
	}

	balance += outcome.CoinsEarned
	_, err = tx.Exec(ctx, `UPDATE users SET total_coins = $1, updated_at = now() WHERE id = $2`,
		balance, userID)
	if err != nil {
		return models.VisitOutcome{}, 0, fmt.Errorf("failed to update user balance: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return models.VisitOutcome{}, 0, fmt.Errorf("failed to commit visit: %w", err)
	}
	return outcome, balance, nil
}

const journeySelect = `
	SELECT id, user_id, personality, duration, place_ids, visited_place_ids,
		total_coins_earned, is_completed, started_at, completed_at
	FROM journeys
`

func scanJourney(row pgx.Row) (*models.Journey, error) {
	var journey models.Journey
	err := row.Scan(
		&journey.ID, &journey.UserID, &journey.Personality, &journey.Duration,
		&journey.PlaceIDs, &journey.VisitedPlaceIDs, &journey.TotalCoinsEarned,
		&journey.IsCompleted, &journey.StartedAt, &journey.CompletedAt,
	)
	if err != nil {
		return nil, err
	}
	if journey.PlaceIDs == nil {
		journey.PlaceIDs = []int64{}
	}
	if journey.VisitedPlaceIDs == nil {
		journey.VisitedPlaceIDs = []int64{}
	}
	return &journey, nil
}
