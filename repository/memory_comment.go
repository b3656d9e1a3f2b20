package repository

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/lezzetkesif/lezzetkesif/models"
)

// memoryCommentRepo, CommentRepository'nin bellek içi implementasyonu.
type memoryCommentRepo struct {
	mu    sync.RWMutex
	items []models.Comment
}

// NewMemoryCommentRepo, seed verisiyle dolu bir repo oluşturur.
func NewMemoryCommentRepo(seed []models.Comment) CommentRepository {
	items := make([]models.Comment, len(seed))
	copy(items, seed)
	return &memoryCommentRepo{items: items}
}

func (r *memoryCommentRepo) Create(_ context.Context, c *models.Comment) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now().UTC()
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append([]models.Comment{*c}, r.items...)
	return nil
}

func (r *memoryCommentRepo) ListByPost(_ context.Context, postID string) ([]models.Comment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []models.Comment
	for _, c := range r.items {
		if c.BlogPostID == postID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *memoryCommentRepo) DeleteByPost(_ context.Context, postID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	kept := r.items[:0]
	for _, c := range r.items {
		if c.BlogPostID != postID {
			kept = append(kept, c)
		}
	}
	r.items = kept
	return nil
}
