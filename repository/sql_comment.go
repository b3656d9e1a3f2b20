package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/lezzetkesif/lezzetkesif/database"
	"github.com/lezzetkesif/lezzetkesif/models"
)

// sqlCommentRepo, CommentRepository'nin SQL implementasyonu.
type sqlCommentRepo struct {
	db database.TxQuerier
}

// NewSQLCommentRepo, constructor.
func NewSQLCommentRepo(db database.TxQuerier) CommentRepository {
	return &sqlCommentRepo{db: db}
}

func (r *sqlCommentRepo) Create(ctx context.Context, c *models.Comment) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now().UTC()
	}

	query := `
		INSERT INTO comments (id, position, blog_post_id, user_id, user_name, content, created_at)
		VALUES (?, (SELECT COALESCE(MIN(position), 1) - 1 FROM comments), ?, ?, ?, ?, ?)`

	if _, err := r.db.ExecContext(ctx, query,
		c.ID, c.BlogPostID, c.UserID, c.UserName, c.Content, c.CreatedAt,
	); err != nil {
		return fmt.Errorf("failed to create comment: %w", err)
	}
	return nil
}

func (r *sqlCommentRepo) ListByPost(ctx context.Context, postID string) ([]models.Comment, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, blog_post_id, user_id, user_name, content, created_at
		FROM comments WHERE blog_post_id = ? ORDER BY position ASC`, postID)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}
	defer rows.Close()

	var out []models.Comment
	for rows.Next() {
		var c models.Comment
		if err := rows.Scan(&c.ID, &c.BlogPostID, &c.UserID, &c.UserName, &c.Content, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan comment row: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *sqlCommentRepo) DeleteByPost(ctx context.Context, postID string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM comments WHERE blog_post_id = ?`, postID); err != nil {
		return fmt.Errorf("failed to delete post comments: %w", err)
	}
	return nil
}
