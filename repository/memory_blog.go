package repository

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/lezzetkesif/lezzetkesif/models"
	"github.com/lezzetkesif/lezzetkesif/pkg"
)

// memoryBlogPostRepo, BlogPostRepository'nin bellek içi implementasyonu.
type memoryBlogPostRepo struct {
	mu    sync.RWMutex
	items []models.BlogPost
}

// NewMemoryBlogPostRepo, seed verisiyle dolu bir repo oluşturur.
func NewMemoryBlogPostRepo(seed []models.BlogPost) BlogPostRepository {
	items := make([]models.BlogPost, len(seed))
	copy(items, seed)
	return &memoryBlogPostRepo{items: items}
}

func (r *memoryBlogPostRepo) Create(_ context.Context, p *models.BlogPost) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	p.CreatedAt, p.UpdatedAt = now, now

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.indexOf(p.ID) >= 0 {
		return pkg.ErrAlreadyExists
	}
	r.items = append(r.items, *p)
	return nil
}

func (r *memoryBlogPostRepo) GetByID(_ context.Context, id string) (*models.BlogPost, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	i := r.indexOf(id)
	if i < 0 {
		return nil, pkg.ErrNotFound
	}
	p := r.items[i]
	return &p, nil
}

func (r *memoryBlogPostRepo) GetAll(_ context.Context) ([]models.BlogPost, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.BlogPost, len(r.items))
	copy(out, r.items)
	return out, nil
}

func (r *memoryBlogPostRepo) Update(_ context.Context, p *models.BlogPost) error {
	p.UpdatedAt = time.Now().UTC()

	r.mu.Lock()
	defer r.mu.Unlock()
	i := r.indexOf(p.ID)
	if i < 0 {
		return pkg.ErrNotFound
	}
	p.CreatedAt = r.items[i].CreatedAt
	r.items[i] = *p
	return nil
}

func (r *memoryBlogPostRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	i := r.indexOf(id)
	if i < 0 {
		return pkg.ErrNotFound
	}
	r.items = append(r.items[:i], r.items[i+1:]...)
	return nil
}

func (r *memoryBlogPostRepo) indexOf(id string) int {
	for i := range r.items {
		if r.items[i].ID == id {
			return i
		}
	}
	return -1
}
