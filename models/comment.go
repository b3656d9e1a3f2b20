package models

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"
)

// Comment, bir blog yazısına yapılmış yorum. DB'deki "comments" tablosunun karşılığı.
type Comment struct {
	ID         string    `json:"id" yaml:"id"`
	BlogPostID string    `json:"blog_post_id" yaml:"blog_post_id"`
	UserID     string    `json:"user_id" yaml:"user_id"`
	UserName   string    `json:"user_name" yaml:"user_name"`
	Content    string    `json:"content" yaml:"content"`
	CreatedAt  time.Time `json:"created_at" yaml:"created_at"`
}

// CreateCommentRequest, blog yorumu gönderme isteği.
type CreateCommentRequest struct {
	Content string `json:"content"`
}

// Validate, içerik boş olamaz (trim sonrası) ve max 2000 karakter olabilir.
func (r *CreateCommentRequest) Validate() error {
	r.Content = strings.TrimSpace(r.Content)
	if r.Content == "" {
		return fmt.Errorf("comment content is required")
	}
	if utf8.RuneCountInString(r.Content) > 2000 {
		return fmt.Errorf("comment must be at most 2000 characters")
	}
	return nil
}
