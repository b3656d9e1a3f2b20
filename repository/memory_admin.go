package repository

import (
	"context"
	"sync"
)

// memoryAdminRepo, AdminRepository'nin bellek içi implementasyonu.
type memoryAdminRepo struct {
	mu  sync.RWMutex
	ids map[string]struct{}
}

// NewMemoryAdminRepo, verilen kullanıcı id'lerini admin olarak işaretler.
func NewMemoryAdminRepo(ids []string) AdminRepository {
	set := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return &memoryAdminRepo{ids: set}
}

func (r *memoryAdminRepo) Exists(_ context.Context, userID string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.ids[userID]
	return ok, nil
}
