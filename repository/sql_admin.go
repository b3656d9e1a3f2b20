package repository

import (
	"context"
	"fmt"

	"github.com/lezzetkesif/lezzetkesif/database"
)

// sqlAdminRepo, AdminRepository'nin SQL implementasyonu.
type sqlAdminRepo struct {
	db database.TxQuerier
}

// NewSQLAdminRepo, constructor.
func NewSQLAdminRepo(db database.TxQuerier) AdminRepository {
	return &sqlAdminRepo{db: db}
}

func (r *sqlAdminRepo) Exists(ctx context.Context, userID string) (bool, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM admins WHERE id = ?`, userID).Scan(&n); err != nil {
		return false, fmt.Errorf("failed to query admins: %w", err)
	}
	return n > 0, nil
}
