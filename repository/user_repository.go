package repository

import (
	"context"

	"github.com/lezzetkesif/lezzetkesif/models"
)

// UserRepository, kullanıcı veri erişimi.
type UserRepository interface {
	// Create, e-posta zaten kayıtlıysa pkg.ErrAlreadyExists döner.
	Create(ctx context.Context, u *models.User) error
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	Count(ctx context.Context) (int, error)
}
