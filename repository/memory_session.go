package repository

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/lezzetkesif/lezzetkesif/models"
	"github.com/lezzetkesif/lezzetkesif/pkg"
)

// memorySessionRepo, SessionRepository'nin bellek içi implementasyonu.
// Refresh token → session map'i.
type memorySessionRepo struct {
	mu      sync.Mutex
	byToken map[string]models.Session
}

// NewMemorySessionRepo, boş bir oturum deposu oluşturur.
func NewMemorySessionRepo() SessionRepository {
	return &memorySessionRepo{byToken: make(map[string]models.Session)}
}

func (r *memorySessionRepo) Create(_ context.Context, session *models.Session) error {
	session.ID = uuid.NewString()
	session.CreatedAt = time.Now().UTC()

	r.mu.Lock()
	defer r.mu.Unlock()
	r.byToken[session.RefreshToken] = *session
	return nil
}

func (r *memorySessionRepo) GetByRefreshToken(_ context.Context, token string) (*models.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.byToken[token]
	if !ok {
		return nil, pkg.ErrNotFound
	}
	return &s, nil
}

func (r *memorySessionRepo) DeleteByID(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for token, s := range r.byToken {
		if s.ID == id {
			delete(r.byToken, token)
		}
	}
	return nil
}

func (r *memorySessionRepo) DeleteExpired(_ context.Context) error {
	now := time.Now()
	r.mu.Lock()
	defer r.mu.Unlock()
	for token, s := range r.byToken {
		if now.After(s.ExpiresAt) {
			delete(r.byToken, token)
		}
	}
	return nil
}
