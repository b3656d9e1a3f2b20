package services

import (
	"context"
	"fmt"
	"time"

	"github.com/lezzetkesif/lezzetkesif/models"
	"github.com/lezzetkesif/lezzetkesif/pkg"
	"github.com/lezzetkesif/lezzetkesif/pkg/ratelimit"
	"github.com/lezzetkesif/lezzetkesif/repository"
	"github.com/lezzetkesif/lezzetkesif/ws"
)

// ReviewService, restoran değerlendirmeleri.
type ReviewService interface {
	// Submit, değerlendirmeyi listenin başına ekler. user nil ise hiçbir şey
	// yapmaz ve (nil, nil) döner; giriş zorunluluğu HTTP katmanında uygulanır.
	Submit(ctx context.Context, user *models.User, restaurantID string, req *models.CreateReviewRequest) (*models.Review, error)
	// ListApproved, restoranın onaylı değerlendirmeleri ve özeti (en yeni önce).
	ListApproved(ctx context.Context, restaurantID string) ([]models.Review, models.ReviewSummary, error)
	ListByUser(ctx context.Context, userID string) ([]models.Review, error)
	CountApproved(ctx context.Context) (int, error)
}

type reviewService struct {
	reviewRepo     repository.ReviewRepository
	restaurantRepo repository.RestaurantRepository
	hub            ws.EventPublisher
	gate           submitGate
}

// NewReviewService, constructor. limiter nil olabilir; delay 0 ise beklenmez.
func NewReviewService(
	reviewRepo repository.ReviewRepository,
	restaurantRepo repository.RestaurantRepository,
	hub ws.EventPublisher,
	limiter *ratelimit.SubmitRateLimiter,
	delay time.Duration,
) ReviewService {
	return &reviewService{
		reviewRepo:     reviewRepo,
		restaurantRepo: restaurantRepo,
		hub:            hub,
		gate:           submitGate{limiter: limiter, delay: delay},
	}
}

func (s *reviewService) Submit(ctx context.Context, user *models.User, restaurantID string, req *models.CreateReviewRequest) (*models.Review, error) {
	if user == nil {
		return nil, nil
	}
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", pkg.ErrBadRequest, err.Error())
	}
	if _, err := s.restaurantRepo.GetByID(ctx, restaurantID); err != nil {
		return nil, err
	}

	if err := s.gate.pass(ctx, user.ID); err != nil {
		return nil, err
	}

	review := &models.Review{
		RestaurantID: restaurantID,
		UserID:       user.ID,
		UserName:     user.Name(),
		Rating:       req.Rating,
		Status:       models.ReviewApproved,
	}
	if req.Comment != "" {
		comment := req.Comment
		review.Comment = &comment
	}

	if err := s.reviewRepo.Create(ctx, review); err != nil {
		return nil, fmt.Errorf("failed to create review: %w", err)
	}

	publish(s.hub, ws.OpReviewCreate, review)
	return review, nil
}

func (s *reviewService) ListApproved(ctx context.Context, restaurantID string) ([]models.Review, models.ReviewSummary, error) {
	if _, err := s.restaurantRepo.GetByID(ctx, restaurantID); err != nil {
		return nil, models.ReviewSummary{}, err
	}

	all, err := s.reviewRepo.ListByRestaurant(ctx, restaurantID)
	if err != nil {
		return nil, models.ReviewSummary{}, err
	}

	approved := make([]models.Review, 0, len(all))
	for _, r := range all {
		if r.Status == models.ReviewApproved {
			approved = append(approved, r)
		}
	}
	return approved, models.Summarize(approved), nil
}

func (s *reviewService) ListByUser(ctx context.Context, userID string) ([]models.Review, error) {
	return s.reviewRepo.ListByUser(ctx, userID)
}

func (s *reviewService) CountApproved(ctx context.Context) (int, error) {
	approved, err := s.reviewRepo.List(ctx, models.ReviewApproved)
	if err != nil {
		return 0, err
	}
	return len(approved), nil
}
