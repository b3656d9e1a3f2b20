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

// sqlBlogPostRepo, BlogPostRepository'nin SQL implementasyonu.
type sqlBlogPostRepo struct {
	db database.TxQuerier
}

// NewSQLBlogPostRepo, constructor.
func NewSQLBlogPostRepo(db database.TxQuerier) BlogPostRepository {
	return &sqlBlogPostRepo{db: db}
}

const blogColumns = `id, title, content, excerpt, image_url, author_id, published, created_at, updated_at`

func (r *sqlBlogPostRepo) Create(ctx context.Context, p *models.BlogPost) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	p.CreatedAt, p.UpdatedAt = now, now

	query := `
		INSERT INTO blog_posts (id, position, title, content, excerpt, image_url, author_id, published, created_at, updated_at)
		VALUES (?, (SELECT COALESCE(MAX(position), -1) + 1 FROM blog_posts), ?, ?, ?, ?, ?, ?, ?, ?)`

	if _, err := r.db.ExecContext(ctx, query,
		p.ID, p.Title, p.Content, p.Excerpt, p.ImageURL, p.AuthorID, p.Published, p.CreatedAt, p.UpdatedAt,
	); err != nil {
		return fmt.Errorf("failed to create blog post: %w", err)
	}
	return nil
}

func (r *sqlBlogPostRepo) GetByID(ctx context.Context, id string) (*models.BlogPost, error) {
	p, err := scanBlogPost(r.db.QueryRowContext(ctx, `SELECT `+blogColumns+` FROM blog_posts WHERE id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, pkg.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get blog post by id: %w", err)
	}
	return p, nil
}

func (r *sqlBlogPostRepo) GetAll(ctx context.Context) ([]models.BlogPost, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+blogColumns+` FROM blog_posts ORDER BY position ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list blog posts: %w", err)
	}
	defer rows.Close()

	var out []models.BlogPost
	for rows.Next() {
		p, err := scanBlogPost(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan blog post row: %w", err)
		}
		out = append(out, *p)
	}
	return out, rows.Err()
}

func (r *sqlBlogPostRepo) Update(ctx context.Context, p *models.BlogPost) error {
	p.UpdatedAt = time.Now().UTC()
	result, err := r.db.ExecContext(ctx, `
		UPDATE blog_posts SET title = ?, content = ?, excerpt = ?, image_url = ?, published = ?, updated_at = ?
		WHERE id = ?`,
		p.Title, p.Content, p.Excerpt, p.ImageURL, p.Published, p.UpdatedAt, p.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update blog post: %w", err)
	}
	return expectOneRow(result)
}

func (r *sqlBlogPostRepo) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM blog_posts WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete blog post: %w", err)
	}
	return expectOneRow(result)
}

// CascadesOnDelete: comments blog_post_id üzerinden ON DELETE CASCADE.
func (r *sqlBlogPostRepo) CascadesOnDelete() bool { return true }

func scanBlogPost(s rowScanner) (*models.BlogPost, error) {
	p := &models.BlogPost{}
	if err := s.Scan(&p.ID, &p.Title, &p.Content, &p.Excerpt, &p.ImageURL, &p.AuthorID, &p.Published,
		&p.CreatedAt, &p.UpdatedAt); err != nil {
		return nil, err
	}
	return p, nil
}
