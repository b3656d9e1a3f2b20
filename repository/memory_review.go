package repository

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/lezzetkesif/lezzetkesif/models"
	"github.com/lezzetkesif/lezzetkesif/pkg"
)

// memoryReviewRepo, ReviewRepository'nin bellek içi implementasyonu.
// Yeni yorumlar slice'ın başına eklenir.
type memoryReviewRepo struct {
	mu    sync.RWMutex
	items []models.Review
}

// NewMemoryReviewRepo, seed verisiyle dolu bir repo oluşturur.
func NewMemoryReviewRepo(seed []models.Review) ReviewRepository {
	items := make([]models.Review, len(seed))
	copy(items, seed)
	return &memoryReviewRepo{items: items}
}

func (r *memoryReviewRepo) Create(_ context.Context, rv *models.Review) error {
	if rv.ID == "" {
		rv.ID = uuid.NewString()
	}
	if rv.CreatedAt.IsZero() {
		rv.CreatedAt = time.Now().UTC()
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append([]models.Review{*rv}, r.items...)
	return nil
}

func (r *memoryReviewRepo) GetByID(_ context.Context, id string) (*models.Review, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	i := r.indexOf(id)
	if i < 0 {
		return nil, pkg.ErrNotFound
	}
	rv := r.items[i]
	return &rv, nil
}

func (r *memoryReviewRepo) List(_ context.Context, status models.ReviewStatus) ([]models.Review, error) {
	return r.filter(func(rv *models.Review) bool { return status == "" || rv.Status == status }), nil
}

func (r *memoryReviewRepo) ListByRestaurant(_ context.Context, restaurantID string) ([]models.Review, error) {
	return r.filter(func(rv *models.Review) bool { return rv.RestaurantID == restaurantID }), nil
}

func (r *memoryReviewRepo) ListByUser(_ context.Context, userID string) ([]models.Review, error) {
	return r.filter(func(rv *models.Review) bool { return rv.UserID == userID }), nil
}

func (r *memoryReviewRepo) UpdateStatus(_ context.Context, id string, status models.ReviewStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	i := r.indexOf(id)
	if i < 0 {
		return pkg.ErrNotFound
	}
	r.items[i].Status = status
	return nil
}

func (r *memoryReviewRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	i := r.indexOf(id)
	if i < 0 {
		return pkg.ErrNotFound
	}
	r.items = append(r.items[:i], r.items[i+1:]...)
	return nil
}

func (r *memoryReviewRepo) DeleteByRestaurant(_ context.Context, restaurantID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	kept := r.items[:0]
	for _, rv := range r.items {
		if rv.RestaurantID != restaurantID {
			kept = append(kept, rv)
		}
	}
	r.items = kept
	return nil
}

func (r *memoryReviewRepo) filter(keep func(*models.Review) bool) []models.Review {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []models.Review
	for i := range r.items {
		if keep(&r.items[i]) {
			out = append(out, r.items[i])
		}
	}
	return out
}

func (r *memoryReviewRepo) indexOf(id string) int {
	for i := range r.items {
		if r.items[i].ID == id {
			return i
		}
	}
	return -1
}
