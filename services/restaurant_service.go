package services

import (
	"context"
	"net/url"
	"strconv"

	"github.com/lezzetkesif/lezzetkesif/models"
	"github.com/lezzetkesif/lezzetkesif/pkg/listing"
	"github.com/lezzetkesif/lezzetkesif/repository"
)

// maxPageSize, API'nin page_size parametresi için üst sınır.
const maxPageSize = 50

// RestaurantService, herkese açık restoran okuma işlemleri.
type RestaurantService interface {
	// Browse, query string'deki filtre ve sayfa ile liste görünümünü üretir.
	Browse(ctx context.Context, q url.Values) (*listing.View, *listing.Browser, error)
	Facets(ctx context.Context) (listing.Facets, error)
	// Map, filtrelenmiş kümenin tamamını (sayfalanmadan) GeoJSON olarak döner.
	Map(ctx context.Context, q url.Values) (models.FeatureCollection, error)
	GetByID(ctx context.Context, id string) (*models.Restaurant, error)
	// Featured, ana sayfadaki ilk n restoran.
	Featured(ctx context.Context, n int) ([]models.Restaurant, error)
	Count(ctx context.Context) (int, error)
}

type restaurantService struct {
	restaurantRepo repository.RestaurantRepository
	pageSize       int
}

// NewRestaurantService, constructor. pageSize <= 0 ise listing.DefaultPageSize.
func NewRestaurantService(restaurantRepo repository.RestaurantRepository, pageSize int) RestaurantService {
	if pageSize <= 0 {
		pageSize = listing.DefaultPageSize
	}
	return &restaurantService{restaurantRepo: restaurantRepo, pageSize: pageSize}
}

func (s *restaurantService) Browse(ctx context.Context, q url.Values) (*listing.View, *listing.Browser, error) {
	all, err := s.restaurantRepo.GetAll(ctx)
	if err != nil {
		return nil, nil, err
	}

	size := s.pageSize
	if v, err := strconv.Atoi(q.Get(models.QueryPageSize)); err == nil && v > 0 {
		size = min(v, maxPageSize)
	}

	b := listing.FromQuery(q, size)
	view := b.View(all)
	return &view, b, nil
}

func (s *restaurantService) Facets(ctx context.Context) (listing.Facets, error) {
	all, err := s.restaurantRepo.GetAll(ctx)
	if err != nil {
		return listing.Facets{}, err
	}
	return listing.BuildFacets(all), nil
}

func (s *restaurantService) Map(ctx context.Context, q url.Values) (models.FeatureCollection, error) {
	all, err := s.restaurantRepo.GetAll(ctx)
	if err != nil {
		return models.FeatureCollection{}, err
	}
	return models.RestaurantFeatures(listing.Filter(all, models.ParseFilterCriteria(q))), nil
}

func (s *restaurantService) GetByID(ctx context.Context, id string) (*models.Restaurant, error) {
	return s.restaurantRepo.GetByID(ctx, id)
}

func (s *restaurantService) Featured(ctx context.Context, n int) ([]models.Restaurant, error) {
	all, err := s.restaurantRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	if len(all) > n {
		all = all[:n]
	}
	return all, nil
}

func (s *restaurantService) Count(ctx context.Context) (int, error) {
	all, err := s.restaurantRepo.GetAll(ctx)
	if err != nil {
		return 0, err
	}
	return len(all), nil
}
