package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/lezzetkesif/lezzetkesif/database"
	"github.com/lezzetkesif/lezzetkesif/models"
	"github.com/lezzetkesif/lezzetkesif/pkg"
)

// sqlRestaurantRepo, RestaurantRepository'nin SQL implementasyonu (SQLite + Postgres).
type sqlRestaurantRepo struct {
	db database.TxQuerier
}

// NewSQLRestaurantRepo, constructor.
func NewSQLRestaurantRepo(db database.TxQuerier) RestaurantRepository {
	return &sqlRestaurantRepo{db: db}
}

const restaurantColumns = `id, name, description, address, phone, website, image_url,
	cuisine_type, district, price_range, rating, latitude, longitude, created_at, updated_at`

func (r *sqlRestaurantRepo) Create(ctx context.Context, rest *models.Restaurant) error {
	if rest.ID == "" {
		rest.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	rest.CreatedAt, rest.UpdatedAt = now, now

	// position = mevcut en büyük + 1 → liste sonuna eklenir
	query := `
		INSERT INTO restaurants (id, position, name, description, address, phone, website, image_url,
			cuisine_type, district, price_range, rating, latitude, longitude, created_at, updated_at)
		VALUES (?, (SELECT COALESCE(MAX(position), -1) + 1 FROM restaurants), ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	_, err := r.db.ExecContext(ctx, query,
		rest.ID, rest.Name, rest.Description, rest.Address, rest.Phone, rest.Website, rest.ImageURL,
		rest.CuisineType, rest.District, string(rest.PriceRange), rest.Rating, rest.Latitude, rest.Longitude,
		rest.CreatedAt, rest.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create restaurant: %w", err)
	}
	return nil
}

func (r *sqlRestaurantRepo) GetByID(ctx context.Context, id string) (*models.Restaurant, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+restaurantColumns+` FROM restaurants WHERE id = ?`, id)

	rest, err := scanRestaurant(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, pkg.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get restaurant by id: %w", err)
	}
	return rest, nil
}

func (r *sqlRestaurantRepo) GetAll(ctx context.Context) ([]models.Restaurant, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+restaurantColumns+` FROM restaurants ORDER BY position ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list restaurants: %w", err)
	}
	defer rows.Close()

	var out []models.Restaurant
	for rows.Next() {
		rest, err := scanRestaurant(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan restaurant row: %w", err)
		}
		out = append(out, *rest)
	}
	return out, rows.Err()
}

func (r *sqlRestaurantRepo) Update(ctx context.Context, rest *models.Restaurant) error {
	rest.UpdatedAt = time.Now().UTC()

	query := `
		UPDATE restaurants SET name = ?, description = ?, address = ?, phone = ?, website = ?, image_url = ?,
			cuisine_type = ?, district = ?, price_range = ?, rating = ?, latitude = ?, longitude = ?, updated_at = ?
		WHERE id = ?`

	result, err := r.db.ExecContext(ctx, query,
		rest.Name, rest.Description, rest.Address, rest.Phone, rest.Website, rest.ImageURL,
		rest.CuisineType, rest.District, string(rest.PriceRange), rest.Rating, rest.Latitude, rest.Longitude,
		rest.UpdatedAt, rest.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update restaurant: %w", err)
	}
	return expectOneRow(result)
}

func (r *sqlRestaurantRepo) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM restaurants WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete restaurant: %w", err)
	}
	return expectOneRow(result)
}

// CascadesOnDelete: reviews ve favorites restaurant_id üzerinden ON DELETE CASCADE.
func (r *sqlRestaurantRepo) CascadesOnDelete() bool { return true }

// rowScanner, *sql.Row ve *sql.Rows'un ortak Scan metodu.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanRestaurant(s rowScanner) (*models.Restaurant, error) {
	rest := &models.Restaurant{}
	var price string
	err := s.Scan(
		&rest.ID, &rest.Name, &rest.Description, &rest.Address, &rest.Phone, &rest.Website, &rest.ImageURL,
		&rest.CuisineType, &rest.District, &price, &rest.Rating, &rest.Latitude, &rest.Longitude,
		&rest.CreatedAt, &rest.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	rest.PriceRange = models.PriceRange(price)
	return rest, nil
}

// expectOneRow, UPDATE/DELETE tam olarak bir satırı etkilemediyse ErrNotFound döner.
func expectOneRow(result sql.Result) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if affected == 0 {
		return pkg.ErrNotFound
	}
	return nil
}
