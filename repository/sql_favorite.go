package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/lezzetkesif/lezzetkesif/database"
	"github.com/lezzetkesif/lezzetkesif/models"
)

// sqlFavoriteRepo, FavoriteRepository'nin SQL implementasyonu.
type sqlFavoriteRepo struct {
	db database.TxQuerier
}

// NewSQLFavoriteRepo, constructor.
func NewSQLFavoriteRepo(db database.TxQuerier) FavoriteRepository {
	return &sqlFavoriteRepo{db: db}
}

func (r *sqlFavoriteRepo) Add(ctx context.Context, userID, restaurantID string) error {
	// ON CONFLICT DO NOTHING hem SQLite (3.24+) hem Postgres'te geçerli.
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO favorites (user_id, restaurant_id, created_at) VALUES (?, ?, ?)
		ON CONFLICT (user_id, restaurant_id) DO NOTHING`,
		userID, restaurantID, time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("failed to add favorite: %w", err)
	}
	return nil
}

func (r *sqlFavoriteRepo) Remove(ctx context.Context, userID, restaurantID string) error {
	if _, err := r.db.ExecContext(ctx,
		`DELETE FROM favorites WHERE user_id = ? AND restaurant_id = ?`, userID, restaurantID,
	); err != nil {
		return fmt.Errorf("failed to remove favorite: %w", err)
	}
	return nil
}

func (r *sqlFavoriteRepo) ListByUser(ctx context.Context, userID string) ([]models.Favorite, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT user_id, restaurant_id, created_at FROM favorites
		WHERE user_id = ? ORDER BY created_at DESC`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list favorites: %w", err)
	}
	defer rows.Close()

	var out []models.Favorite
	for rows.Next() {
		var f models.Favorite
		if err := rows.Scan(&f.UserID, &f.RestaurantID, &f.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan favorite row: %w", err)
		}
		out = append(out, f)
	}
	return out, rows.Err()
}

func (r *sqlFavoriteRepo) DeleteByRestaurant(ctx context.Context, restaurantID string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM favorites WHERE restaurant_id = ?`, restaurantID); err != nil {
		return fmt.Errorf("failed to delete restaurant favorites: %w", err)
	}
	return nil
}
