package repository

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/lezzetkesif/lezzetkesif/models"
	"github.com/lezzetkesif/lezzetkesif/pkg"
)

// memoryUserRepo, UserRepository'nin bellek içi implementasyonu.
// PasswordHash'leri dolu kullanıcılarla beslenmelidir.
type memoryUserRepo struct {
	mu    sync.RWMutex
	byID  map[string]*models.User
	email map[string]string // küçük harf e-posta → id
}

// NewMemoryUserRepo, seed kullanıcılarıyla dolu bir repo oluşturur.
func NewMemoryUserRepo(seed []models.User) UserRepository {
	r := &memoryUserRepo{
		byID:  make(map[string]*models.User, len(seed)),
		email: make(map[string]string, len(seed)),
	}
	for i := range seed {
		u := seed[i]
		r.byID[u.ID] = &u
		r.email[strings.ToLower(u.Email)] = u.ID
	}
	return r
}

func (r *memoryUserRepo) Create(_ context.Context, u *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := strings.ToLower(u.Email)
	if _, ok := r.email[key]; ok {
		return pkg.ErrAlreadyExists
	}
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	u.CreatedAt = time.Now().UTC()

	stored := *u
	r.byID[u.ID] = &stored
	r.email[key] = u.ID
	return nil
}

func (r *memoryUserRepo) GetByID(_ context.Context, id string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	u, ok := r.byID[id]
	if !ok {
		return nil, pkg.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *memoryUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	r.mu.RLock()
	id, ok := r.email[strings.ToLower(email)]
	r.mu.RUnlock()
	if !ok {
		return nil, pkg.ErrNotFound
	}
	return r.GetByID(ctx, id)
}

func (r *memoryUserRepo) Count(_ context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.byID), nil
}
