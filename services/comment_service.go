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

// CommentService, blog yorumları.
type CommentService interface {
	// Submit, yorumu listenin başına ekler. user nil ise (nil, nil) döner.
	Submit(ctx context.Context, user *models.User, postID string, req *models.CreateCommentRequest) (*models.Comment, error)
	ListForPost(ctx context.Context, postID string) ([]models.Comment, error)
}

type commentService struct {
	commentRepo repository.CommentRepository
	blogService BlogService
	hub         ws.EventPublisher
	gate        submitGate
}

// NewCommentService, constructor.
func NewCommentService(
	commentRepo repository.CommentRepository,
	blogService BlogService,
	hub ws.EventPublisher,
	limiter *ratelimit.SubmitRateLimiter,
	delay time.Duration,
) CommentService {
	return &commentService{
		commentRepo: commentRepo,
		blogService: blogService,
		hub:         hub,
		gate:        submitGate{limiter: limiter, delay: delay},
	}
}

func (s *commentService) Submit(ctx context.Context, user *models.User, postID string, req *models.CreateCommentRequest) (*models.Comment, error) {
	if user == nil {
		return nil, nil
	}
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", pkg.ErrBadRequest, err.Error())
	}
	// Taslak yazıya yorum yapılamaz.
	if _, err := s.blogService.GetPublished(ctx, postID); err != nil {
		return nil, err
	}

	if err := s.gate.pass(ctx, user.ID); err != nil {
		return nil, err
	}

	comment := &models.Comment{
		BlogPostID: postID,
		UserID:     user.ID,
		UserName:   user.Name(),
		Content:    req.Content,
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, fmt.Errorf("failed to create comment: %w", err)
	}

	publish(s.hub, ws.OpCommentCreate, comment)
	return comment, nil
}

func (s *commentService) ListForPost(ctx context.Context, postID string) ([]models.Comment, error) {
	if _, err := s.blogService.GetPublished(ctx, postID); err != nil {
		return nil, err
	}
	return s.commentRepo.ListByPost(ctx, postID)
}
