package repository

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/lezzetkesif/lezzetkesif/models"
	"github.com/lezzetkesif/lezzetkesif/pkg"
)

// memoryRestaurantRepo, RestaurantRepository'nin bellek içi implementasyonu.
//
// Slice sırası listeleme sırasıdır. Okumalar kopya döner; çağıran taraf
// dönen struct'ı değiştirse bile koleksiyon etkilenmez.
type memoryRestaurantRepo struct {
	mu    sync.RWMutex
	items []models.Restaurant
}

// NewMemoryRestaurantRepo, seed verisiyle dolu bir repo oluşturur.
func NewMemoryRestaurantRepo(seed []models.Restaurant) RestaurantRepository {
	items := make([]models.Restaurant, len(seed))
	copy(items, seed)
	return &memoryRestaurantRepo{items: items}
}

func (r *memoryRestaurantRepo) Create(_ context.Context, rest *models.Restaurant) error {
	if rest.ID == "" {
		rest.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	rest.CreatedAt, rest.UpdatedAt = now, now

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.indexOf(rest.ID) >= 0 {
		return pkg.ErrAlreadyExists
	}
	r.items = append(r.items, *rest)
	return nil
}

func (r *memoryRestaurantRepo) GetByID(_ context.Context, id string) (*models.Restaurant, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	i := r.indexOf(id)
	if i < 0 {
		return nil, pkg.ErrNotFound
	}
	rest := r.items[i]
	return &rest, nil
}

func (r *memoryRestaurantRepo) GetAll(_ context.Context) ([]models.Restaurant, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.Restaurant, len(r.items))
	copy(out, r.items)
	return out, nil
}

func (r *memoryRestaurantRepo) Update(_ context.Context, rest *models.Restaurant) error {
	rest.UpdatedAt = time.Now().UTC()

	r.mu.Lock()
	defer r.mu.Unlock()
	i := r.indexOf(rest.ID)
	if i < 0 {
		return pkg.ErrNotFound
	}
	rest.CreatedAt = r.items[i].CreatedAt
	r.items[i] = *rest
	return nil
}

func (r *memoryRestaurantRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	i := r.indexOf(id)
	if i < 0 {
		return pkg.ErrNotFound
	}
	r.items = append(r.items[:i], r.items[i+1:]...)
	return nil
}

// indexOf, çağıran kilidi tutarken kullanılmalı.
func (r *memoryRestaurantRepo) indexOf(id string) int {
	for i := range r.items {
		if r.items[i].ID == id {
			return i
		}
	}
	return -1
}
