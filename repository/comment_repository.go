package repository

import (
	"context"

	"github.com/lezzetkesif/lezzetkesif/models"
)

// CommentRepository, blog yorumları veri erişimi. Listeler en yeni başta.
type CommentRepository interface {
	Create(ctx context.Context, c *models.Comment) error
	ListByPost(ctx context.Context, postID string) ([]models.Comment, error)
	DeleteByPost(ctx context.Context, postID string) error
}
