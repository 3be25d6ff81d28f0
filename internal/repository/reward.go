package repository

import (
	"context"
	"errors"
	"fmt"

	"swipe-travel-backend/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const rewardColumns = `id, name, description, image_url, coin_cost, category,
	discount_code, valid_until, location, original_price, is_active`

// RewardRepository handles database operations for the reward catalog and
// the redemption log
type RewardRepository struct {
	db *pgxpool.Pool
}

// NewRewardRepository creates a new reward repository
func NewRewardRepository(db *pgxpool.Pool) *RewardRepository {
	return &RewardRepository{db: db}
}

// ListActive retrieves all active rewards
func (r *RewardRepository) ListActive(ctx context.Context) ([]models.Reward, error) {
	query := fmt.Sprintf(`SELECT %s FROM rewards WHERE is_active ORDER BY coin_cost`, rewardColumns)
	return r.queryRewards(ctx, query)
}

// Redeem debits the reward's cost from the user's balance and appends a
// redemption log entry. The debit and the log entry commit together or not at
// all; the user row is locked for the balance check, so two concurrent
// redemptions cannot both pass it against a stale balance.
//
// Returns the redeemed reward and the remaining balance.
func (r *RewardRepository) Redeem(ctx context.Context, userID, rewardID int64) (*models.Reward, int64, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	var user models.User
	err = tx.QueryRow(ctx, `SELECT id, total_coins FROM users WHERE id = $1 FOR UPDATE`, userID).
		Scan(&user.ID, &user.TotalCoins)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, 0, ErrUserNotFound
		}
		return nil, 0, fmt.Errorf("failed to lock user: %w", err)
	}

	query := fmt.Sprintf(`SELECT %s FROM rewards WHERE id = $1 AND is_active`, rewardColumns)
	reward, err := scanReward(tx.QueryRow(ctx, query, rewardID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, 0, ErrRewardNotFound
		}
		return nil, 0, fmt.Errorf("failed to get reward: %w", err)
	}

	if err := user.ApplyRedemption(reward); err != nil {
		return nil, 0, err
	}

	_, err = tx.Exec(ctx, `UPDATE users SET total_coins = $1, updated_at = now() WHERE id = $2`,
		user.TotalCoins, userID)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to debit user: %w", err)
	}

	_, err = tx.Exec(ctx, `INSERT INTO redeemed_rewards (user_id, reward_id) VALUES ($1, $2)`,
		userID, rewardID)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to log redemption: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, 0, fmt.Errorf("failed to commit redemption: %w", err)
	}
	return reward, user.TotalCoins, nil
}

// ListRedeemed retrieves the catalog entries the user has redeemed
func (r *RewardRepository) ListRedeemed(ctx context.Context, userID int64) ([]models.Reward, error) {
	query := fmt.Sprintf(`
		SELECT DISTINCT %s FROM rewards
		WHERE id IN (SELECT reward_id FROM redeemed_rewards WHERE user_id = $1)
		ORDER BY id
	`, rewardColumns)
	return r.queryRewards(ctx, query, userID)
}

// Create inserts a catalog entry; used by seeding
func (r *RewardRepository) Create(ctx context.Context, reward *models.Reward) error {
	query := `
		INSERT INTO rewards (name, description, image_url, coin_cost, category,
			discount_code, valid_until, location, original_price, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id
	`
	err := r.db.QueryRow(ctx, query,
		reward.Name, reward.Description, reward.ImageURL, reward.CoinCost, reward.Category,
		reward.DiscountCode, reward.ValidUntil, reward.Location, reward.OriginalPrice,
		reward.IsActive,
	).Scan(&reward.ID)
	if err != nil {
		return fmt.Errorf("failed to create reward: %w", err)
	}
	return nil
}

// HasAny reports whether the reward catalog contains any entries
func (r *RewardRepository) HasAny(ctx context.Context) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM rewards)`).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check rewards: %w", err)
	}
	return exists, nil
}

func (r *RewardRepository) queryRewards(ctx context.Context, query string, args ...any) ([]models.Reward, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query rewards: %w", err)
	}
	defer rows.Close()

	rewards := []models.Reward{}
	for rows.Next() {
		reward, err := scanReward(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan reward: %w", err)
		}
		rewards = append(rewards, *reward)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rewards: %w", err)
	}
	return rewards, nil
}

func scanReward(row pgx.Row) (*models.Reward, error) {
	var reward models.Reward
	err := row.Scan(
		&reward.ID, &reward.Name, &reward.Description, &reward.ImageURL,
		&reward.CoinCost, &reward.Category, &reward.DiscountCode, &reward.ValidUntil,
		&reward.Location, &reward.OriginalPrice, &reward.IsActive,
	)
	if err != nil {
		return nil, err
	}
	return &reward, nil
}
