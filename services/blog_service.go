package services

import (
	"context"
	"fmt"

	"github.com/lezzetkesif/lezzetkesif/models"
	"github.com/lezzetkesif/lezzetkesif/pkg"
	"github.com/lezzetkesif/lezzetkesif/repository"
)

// BlogService, herkese açık blog okuma işlemleri.
// Yayınlanmamış (taslak) yazılar burada görünmez; sadece admin paneli listeler.
type BlogService interface {
	ListPublished(ctx context.Context) ([]models.BlogPost, error)
	// GetPublished, taslak veya bilinmeyen id için ErrNotFound döner.
	GetPublished(ctx context.Context, id string) (*models.BlogPost, error)
	// Related, verilen yazı dışındaki en fazla n yayınlanmış yazı.
	Related(ctx context.Context, postID string, n int) ([]models.BlogPost, error)
}

type blogService struct {
	blogRepo repository.BlogPostRepository
}

// NewBlogService, constructor.
func NewBlogService(blogRepo repository.BlogPostRepository) BlogService {
	return &blogService{blogRepo: blogRepo}
}

func (s *blogService) ListPublished(ctx context.Context) ([]models.BlogPost, error) {
	all, err := s.blogRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]models.BlogPost, 0, len(all))
	for _, p := range all {
		if p.Published {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *blogService) GetPublished(ctx context.Context, id string) (*models.BlogPost, error) {
	post, err := s.blogRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !post.Published {
		return nil, fmt.Errorf("%w: blog post", pkg.ErrNotFound)
	}
	return post, nil
}

func (s *blogService) Related(ctx context.Context, postID string, n int) ([]models.BlogPost, error) {
	published, err := s.ListPublished(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]models.BlogPost, 0, n)
	for _, p := range published {
		if len(out) == n {
			break
		}
		if p.ID != postID {
			out = append(out, p)
		}
	}
	return out, nil
}
