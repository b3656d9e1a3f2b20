package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/lezzetkesif/lezzetkesif/database"
	"github.com/lezzetkesif/lezzetkesif/models"
	"github.com/lezzetkesif/lezzetkesif/pkg"
)

// sqlUserRepo, UserRepository'nin SQL implementasyonu.
type sqlUserRepo struct {
	db database.TxQuerier
}

// NewSQLUserRepo, constructor.
func NewSQLUserRepo(db database.TxQuerier) UserRepository {
	return &sqlUserRepo{db: db}
}

func (r *sqlUserRepo) Create(ctx context.Context, u *models.User) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	u.CreatedAt = time.Now().UTC()

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO users (id, email, display_name, password_hash, created_at) VALUES (?, ?, ?, ?, ?)`,
		u.ID, u.Email, u.DisplayName, u.PasswordHash, u.CreatedAt,
	)
	if err != nil {
		// UNIQUE constraint mesajı sürücüye göre değişir:
		// SQLite "UNIQUE constraint failed", Postgres "duplicate key value".
		msg := err.Error()
		if strings.Contains(msg, "UNIQUE") || strings.Contains(msg, "duplicate key") {
			return fmt.Errorf("%w: email already registered", pkg.ErrAlreadyExists)
		}
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

func (r *sqlUserRepo) GetByID(ctx context.Context, id string) (*models.User, error) {
	return r.getOne(ctx, `SELECT id, email, display_name, password_hash, created_at FROM users WHERE id = ?`, id)
}

func (r *sqlUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.getOne(ctx, `SELECT id, email, display_name, password_hash, created_at FROM users WHERE email = ?`,
		strings.ToLower(email))
}

func (r *sqlUserRepo) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM users`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count users: %w", err)
	}
	return n, nil
}

func (r *sqlUserRepo) getOne(ctx context.Context, query string, arg string) (*models.User, error) {
	u := &models.User{}
	err := r.db.QueryRowContext(ctx, query, arg).Scan(&u.ID, &u.Email, &u.DisplayName, &u.PasswordHash, &u.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, pkg.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return u, nil
}
