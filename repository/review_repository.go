package repository

import (
	"context"

	"github.com/lezzetkesif/lezzetkesif/models"
)

// ReviewRepository, restoran yorumları veri erişimi.
//
// Listeler "en yeni başta" sıralıdır: Create yeni yorumu listenin başına ekler.
type ReviewRepository interface {
	Create(ctx context.Context, r *models.Review) error
	GetByID(ctx context.Context, id string) (*models.Review, error)
	// List, tüm yorumları döner; status boşsa filtre uygulanmaz.
	List(ctx context.Context, status models.ReviewStatus) ([]models.Review, error)
	ListByRestaurant(ctx context.Context, restaurantID string) ([]models.Review, error)
	ListByUser(ctx context.Context, userID string) ([]models.Review, error)
	UpdateStatus(ctx context.Context, id string, status models.ReviewStatus) error
	Delete(ctx context.Context, id string) error
	DeleteByRestaurant(ctx context.Context, restaurantID string) error
}
