package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/lezzetkesif/lezzetkesif/models"
)

// memoryFavoriteRepo, FavoriteRepository'nin bellek içi implementasyonu.
type memoryFavoriteRepo struct {
	mu    sync.RWMutex
	items []models.Favorite
}

// NewMemoryFavoriteRepo, boş bir favori deposu oluşturur.
func NewMemoryFavoriteRepo() FavoriteRepository {
	return &memoryFavoriteRepo{}
}

func (r *memoryFavoriteRepo) Add(_ context.Context, userID, restaurantID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, f := range r.items {
		if f.UserID == userID && f.RestaurantID == restaurantID {
			return nil
		}
	}
	r.items = append(r.items, models.Favorite{UserID: userID, RestaurantID: restaurantID, CreatedAt: time.Now().UTC()})
	return nil
}

func (r *memoryFavoriteRepo) Remove(_ context.Context, userID, restaurantID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, f := range r.items {
		if f.UserID == userID && f.RestaurantID == restaurantID {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	return nil
}

func (r *memoryFavoriteRepo) ListByUser(_ context.Context, userID string) ([]models.Favorite, error) {
	r.mu.RLock()
	var out []models.Favorite
	for _, f := range r.items {
		if f.UserID == userID {
			out = append(out, f)
		}
	}
	r.mu.RUnlock()

	// En son eklenen başta. Eşit zaman damgalarında ekleme sırası tersine döner.
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *memoryFavoriteRepo) DeleteByRestaurant(_ context.Context, restaurantID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	kept := r.items[:0]
	for _, f := range r.items {
		if f.RestaurantID != restaurantID {
			kept = append(kept, f)
		}
	}
	r.items = kept
	return nil
}
