package repository

import (
	"context"

	"github.com/lezzetkesif/lezzetkesif/models"
)

// BlogPostRepository, blog yazısı veri erişimi. Sıra ekleme sırasıdır.
type BlogPostRepository interface {
	Create(ctx context.Context, p *models.BlogPost) error
	GetByID(ctx context.Context, id string) (*models.BlogPost, error)
	GetAll(ctx context.Context) ([]models.BlogPost, error)
	Update(ctx context.Context, p *models.BlogPost) error
	Delete(ctx context.Context, id string) error
}
