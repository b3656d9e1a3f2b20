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

// sqlReviewRepo, ReviewRepository'nin SQL implementasyonu.
type sqlReviewRepo struct {
	db database.TxQuerier
}

// NewSQLReviewRepo, constructor.
func NewSQLReviewRepo(db database.TxQuerier) ReviewRepository {
	return &sqlReviewRepo{db: db}
}

const reviewColumns = `id, restaurant_id, user_id, user_name, rating, comment, status, created_at`

func (r *sqlReviewRepo) Create(ctx context.Context, rv *models.Review) error {
	if rv.ID == "" {
		rv.ID = uuid.NewString()
	}
	if rv.CreatedAt.IsZero() {
		rv.CreatedAt = time.Now().UTC()
	}

	// position = en küçük - 1 → listenin başına eklenir (en yeni başta)
	query := `
		INSERT INTO reviews (id, position, restaurant_id, user_id, user_name, rating, comment, status, created_at)
		VALUES (?, (SELECT COALESCE(MIN(position), 1) - 1 FROM reviews), ?, ?, ?, ?, ?, ?, ?)`

	if _, err := r.db.ExecContext(ctx, query,
		rv.ID, rv.RestaurantID, rv.UserID, rv.UserName, rv.Rating, rv.Comment, string(rv.Status), rv.CreatedAt,
	); err != nil {
		return fmt.Errorf("failed to create review: %w", err)
	}
	return nil
}

func (r *sqlReviewRepo) GetByID(ctx context.Context, id string) (*models.Review, error) {
	rv, err := scanReview(r.db.QueryRowContext(ctx, `SELECT `+reviewColumns+` FROM reviews WHERE id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, pkg.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get review by id: %w", err)
	}
	return rv, nil
}

func (r *sqlReviewRepo) List(ctx context.Context, status models.ReviewStatus) ([]models.Review, error) {
	if status == "" {
		return r.query(ctx, `SELECT `+reviewColumns+` FROM reviews ORDER BY position ASC`)
	}
	return r.query(ctx, `SELECT `+reviewColumns+` FROM reviews WHERE status = ? ORDER BY position ASC`, string(status))
}

func (r *sqlReviewRepo) ListByRestaurant(ctx context.Context, restaurantID string) ([]models.Review, error) {
	return r.query(ctx, `SELECT `+reviewColumns+` FROM reviews WHERE restaurant_id = ? ORDER BY position ASC`, restaurantID)
}

func (r *sqlReviewRepo) ListByUser(ctx context.Context, userID string) ([]models.Review, error) {
	return r.query(ctx, `SELECT `+reviewColumns+` FROM reviews WHERE user_id = ? ORDER BY position ASC`, userID)
}

func (r *sqlReviewRepo) UpdateStatus(ctx context.Context, id string, status models.ReviewStatus) error {
	result, err := r.db.ExecContext(ctx, `UPDATE reviews SET status = ? WHERE id = ?`, string(status), id)
	if err != nil {
		return fmt.Errorf("failed to update review status: %w", err)
	}
	return expectOneRow(result)
}

func (r *sqlReviewRepo) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM reviews WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete review: %w", err)
	}
	return expectOneRow(result)
}

func (r *sqlReviewRepo) DeleteByRestaurant(ctx context.Context, restaurantID string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM reviews WHERE restaurant_id = ?`, restaurantID); err != nil {
		return fmt.Errorf("failed to delete restaurant reviews: %w", err)
	}
	return nil
}

func (r *sqlReviewRepo) query(ctx context.Context, query string, args ...any) ([]models.Review, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}
	defer rows.Close()

	var out []models.Review
	for rows.Next() {
		rv, err := scanReview(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan review row: %w", err)
		}
		out = append(out, *rv)
	}
	return out, rows.Err()
}

func scanReview(s rowScanner) (*models.Review, error) {
	rv := &models.Review{}
	var status string
	if err := s.Scan(&rv.ID, &rv.RestaurantID, &rv.UserID, &rv.UserName, &rv.Rating, &rv.Comment,
		&status, &rv.CreatedAt); err != nil {
		return nil, err
	}
	rv.Status = models.ReviewStatus(status)
	return rv, nil
}
