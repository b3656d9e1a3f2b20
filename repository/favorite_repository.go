package repository

import (
	"context"

	"github.com/lezzetkesif/lezzetkesif/models"
)

// FavoriteRepository, kullanıcı favorileri. (user, restaurant) çifti tekildir;
// Add aynı çift için idempotenttir.
type FavoriteRepository interface {
	Add(ctx context.Context, userID, restaurantID string) error
	Remove(ctx context.Context, userID, restaurantID string) error
	// ListByUser, en son eklenen başta olacak şekilde favorileri döner.
	ListByUser(ctx context.Context, userID string) ([]models.Favorite, error)
	DeleteByRestaurant(ctx context.Context, restaurantID string) error
}
