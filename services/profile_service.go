package services

import (
	"context"
	"errors"

	"github.com/lezzetkesif/lezzetkesif/models"
	"github.com/lezzetkesif/lezzetkesif/pkg"
	"github.com/lezzetkesif/lezzetkesif/repository"
)

// ProfileService, kullanıcının favorileri ve kendi değerlendirmeleri.
type ProfileService interface {
	// Favorites, favori restoranları en son eklenen başta olacak şekilde döner.
	// Bu arada silinmiş restoranlar atlanır.
	Favorites(ctx context.Context, userID string) ([]models.Restaurant, error)
	AddFavorite(ctx context.Context, userID, restaurantID string) error
	RemoveFavorite(ctx context.Context, userID, restaurantID string) error
	IsFavorite(ctx context.Context, userID, restaurantID string) (bool, error)
}

type profileService struct {
	favoriteRepo   repository.FavoriteRepository
	restaurantRepo repository.RestaurantRepository
}

// NewProfileService, constructor.
func NewProfileService(favoriteRepo repository.FavoriteRepository, restaurantRepo repository.RestaurantRepository) ProfileService {
	return &profileService{favoriteRepo: favoriteRepo, restaurantRepo: restaurantRepo}
}

func (s *profileService) Favorites(ctx context.Context, userID string) ([]models.Restaurant, error) {
	favs, err := s.favoriteRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	out := make([]models.Restaurant, 0, len(favs))
	for _, f := range favs {
		r, err := s.restaurantRepo.GetByID(ctx, f.RestaurantID)
		if err != nil {
			if errors.Is(err, pkg.ErrNotFound) {
				continue
			}
			return nil, err
		}
		out = append(out, *r)
	}
	return out, nil
}

func (s *profileService) AddFavorite(ctx context.Context, userID, restaurantID string) error {
	if _, err := s.restaurantRepo.GetByID(ctx, restaurantID); err != nil {
		return err
	}
	return s.favoriteRepo.Add(ctx, userID, restaurantID)
}

func (s *profileService) RemoveFavorite(ctx context.Context, userID, restaurantID string) error {
	return s.favoriteRepo.Remove(ctx, userID, restaurantID)
}

func (s *profileService) IsFavorite(ctx context.Context, userID, restaurantID string) (bool, error) {
	favs, err := s.favoriteRepo.ListByUser(ctx, userID)
	if err != nil {
		return false, err
	}
	for _, f := range favs {
		if f.RestaurantID == restaurantID {
			return true, nil
		}
	}
	return false, nil
}
