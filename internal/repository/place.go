package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"swipe-travel-backend/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const placeColumns = `id, external_id, name, description, latitude, longitude,
	image_url, country, city, rating, distance, tags, is_active, created_at`

// PlaceRepository handles database operations for the place catalog
type PlaceRepository struct {
	db *pgxpool.Pool
}

// NewPlaceRepository creates a new place repository
func NewPlaceRepository(db *pgxpool.Pool) *PlaceRepository {
	return &PlaceRepository{db: db}
}

// ListPlacesParams are the catalog filters accepted by List
type ListPlacesParams struct {
	City    string
	Cities  []string
	Tag     string
	Page    int
	PerPage int
}

// List retrieves active places matching the filters, with the total count
// before pagination.
func (r *PlaceRepository) List(ctx context.Context, p ListPlacesParams) ([]models.Place, int64, error) {
	where := []string{"is_active"}
	args := []any{}

	if p.City != "" {
		args = append(args, p.City)
		where = append(where, fmt.Sprintf("city = $%d", len(args)))
	}
	if len(p.Cities) > 0 {
		args = append(args, p.Cities)
		where = append(where, fmt.Sprintf("city = ANY($%d)", len(args)))
	}
	if p.Tag != "" {
		args = append(args, p.Tag)
		where = append(where, fmt.Sprintf("$%d = ANY(tags)", len(args)))
	}
	cond := strings.Join(where, " AND ")

	var total int64
	countQuery := `SELECT count(*) FROM places WHERE ` + cond
	if err := r.db.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count places: %w", err)
	}

	args = append(args, p.PerPage, (p.Page-1)*p.PerPage)
	query := fmt.Sprintf(`SELECT %s FROM places WHERE %s ORDER BY id LIMIT $%d OFFSET $%d`,
		placeColumns, cond, len(args)-1, len(args))

	places, err := r.queryPlaces(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	return places, total, nil
}

// GetByID retrieves a place by ID
func (r *PlaceRepository) GetByID(ctx context.Context, id int64) (*models.Place, error) {
	query := fmt.Sprintf(`SELECT %s FROM places WHERE id = $1`, placeColumns)
	row := r.db.QueryRow(ctx, query, id)

	place, err := scanPlace(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrPlaceNotFound
		}
		return nil, fmt.Errorf("failed to get place: %w", err)
	}
	return place, nil
}

// ListUnswiped retrieves active places the user has not swiped on yet,
// optionally restricted to the given cities.
func (r *PlaceRepository) ListUnswiped(ctx context.Context, userID int64, cities []string) ([]models.Place, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM places
		WHERE is_active
		  AND id NOT IN (SELECT place_id FROM swipes WHERE user_id = $1)
	`, placeColumns)
	args := []any{userID}

	if len(cities) > 0 {
		args = append(args, cities)
		query += fmt.Sprintf(" AND city = ANY($%d)", len(args))
	}
	query += " ORDER BY id"

	return r.queryPlaces(ctx, query, args...)
}

// ListByIDs retrieves places by id; missing ids are silently skipped
func (r *PlaceRepository) ListByIDs(ctx context.Context, ids []int64) ([]models.Place, error) {
	query := fmt.Sprintf(`SELECT %s FROM places WHERE id = ANY($1) ORDER BY id`, placeColumns)
	return r.queryPlaces(ctx, query, ids)
}

// Cities lists distinct cities of active places with their place counts
func (r *PlaceRepository) Cities(ctx context.Context) ([]models.CityCount, error) {
	query := `
		SELECT city, count(*)
		FROM places
		WHERE is_active
		GROUP BY city
		ORDER BY city
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list cities: %w", err)
	}
	defer rows.Close()

	cities := []models.CityCount{}
	for rows.Next() {
		var c models.CityCount
		if err := rows.Scan(&c.Name, &c.PlaceCount); err != nil {
			return nil, fmt.Errorf("failed to scan city: %w", err)
		}
		cities = append(cities, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating cities: %w", err)
	}
	return cities, nil
}

// HasAny reports whether the catalog contains any places at all
func (r *PlaceRepository) HasAny(ctx context.Context) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM places)`).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check places: %w", err)
	}
	return exists, nil
}

// Create inserts a catalog entry; used by seeding
func (r *PlaceRepository) Create(ctx context.Context, place *models.Place) error {
	query := `
		INSERT INTO places (external_id, name, description, latitude, longitude,
			image_url, country, city, rating, distance, tags, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id, created_at
	`
	err := r.db.QueryRow(ctx, query,
		place.ExternalID, place.Name, place.Description, place.Latitude, place.Longitude,
		place.ImageURL, place.Country, place.City, place.Rating, place.Distance,
		place.Tags, place.IsActive,
	).Scan(&place.ID, &place.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create place: %w", err)
	}
	return nil
}

func (r *PlaceRepository) queryPlaces(ctx context.Context, query string, args ...any) ([]models.Place, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query places: %w", err)
	}
	defer rows.Close()

	places := []models.Place{}
	for rows.Next() {
		place, err := scanPlace(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan place: %w", err)
		}
		places = append(places, *place)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating places: %w", err)
	}
	return places, nil
}

func scanPlace(row pgx.Row) (*models.Place, error) {
	var place models.Place
	err := row.Scan(
		&place.ID, &place.ExternalID, &place.Name, &place.Description,
		&place.Latitude, &place.Longitude, &place.ImageURL, &place.Country,
		&place.City, &place.Rating, &place.Distance, &place.Tags,
		&place.IsActive, &place.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	if place.Tags == nil {
		place.Tags = []string{}
	}
	return &place, nil
}
