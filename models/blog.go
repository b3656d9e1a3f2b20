package models

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"
)

// wordsPerMinute, okuma süresi hesabında kullanılan ortalama okuma hızı.
const wordsPerMinute = 200

// BlogPost, bir blog yazısını temsil eder. DB'deki "blog_posts" tablosunun karşılığı.
type BlogPost struct {
	ID        string    `json:"id" yaml:"id"`
	Title     string    `json:"title" yaml:"title"`
	Content   string    `json:"content" yaml:"content"`
	Excerpt   *string   `json:"excerpt" yaml:"excerpt"`
	ImageURL  *string   `json:"image_url" yaml:"image_url"`
	AuthorID  string    `json:"author_id" yaml:"author_id"`
	Published bool      `json:"published" yaml:"published"`
	CreatedAt time.Time `json:"created_at" yaml:"created_at"`
	UpdatedAt time.Time `json:"updated_at" yaml:"updated_at"`
}

// ReadingMinutes, yazının tahmini okuma süresi (dakika). En az 1.
func (p BlogPost) ReadingMinutes() int {
	words := len(strings.Fields(p.Content))
	minutes := (words + wordsPerMinute - 1) / wordsPerMinute
	if minutes < 1 {
		return 1
	}
	return minutes
}

// Summary, kartlarda gösterilen kısa metin: excerpt varsa o, yoksa içeriğin başı.
func (p BlogPost) Summary() string {
	if p.Excerpt != nil && *p.Excerpt != "" {
		return *p.Excerpt
	}
	const maxRunes = 160
	if utf8.RuneCountInString(p.Content) <= maxRunes {
		return p.Content
	}
	runes := []rune(p.Content)
	return strings.TrimSpace(string(runes[:maxRunes])) + "..."
}

// CreateBlogPostRequest, admin panelinden yeni yazı ekleme isteği.
// AuthorID request'ten gelmez, service katmanı işlemi yapan admin'i yazar.
type CreateBlogPostRequest struct {
	Title     string `json:"title"`
	Content   string `json:"content"`
	Excerpt   string `json:"excerpt"`
	ImageURL  string `json:"image_url"`
	Published bool   `json:"published"`
}

// Validate, CreateBlogPostRequest'i doğrular.
func (r *CreateBlogPostRequest) Validate() error {
	r.Title = strings.TrimSpace(r.Title)
	if err := validateName("title", r.Title, 200); err != nil {
		return err
	}
	r.Content = strings.TrimSpace(r.Content)
	if r.Content == "" {
		return fmt.Errorf("content is required")
	}
	return nil
}

// Build, doğrulanmış istekten yeni bir BlogPost üretir.
func (r *CreateBlogPostRequest) Build(authorID string) *BlogPost {
	return &BlogPost{
		Title:     r.Title,
		Content:   r.Content,
		Excerpt:   optionalString(r.Excerpt),
		ImageURL:  optionalString(r.ImageURL),
		AuthorID:  authorID,
		Published: r.Published,
	}
}

// UpdateBlogPostRequest, blog yazısı için kısmi güncelleme.
type UpdateBlogPostRequest struct {
	Title     *string `json:"title"`
	Content   *string `json:"content"`
	Excerpt   *string `json:"excerpt"`
	ImageURL  *string `json:"image_url"`
	Published *bool   `json:"published"`
}

// Validate, UpdateBlogPostRequest'i doğrular.
func (r *UpdateBlogPostRequest) Validate() error {
	if r.Title != nil {
		*r.Title = strings.TrimSpace(*r.Title)
		if err := validateName("title", *r.Title, 200); err != nil {
			return err
		}
	}
	if r.Content != nil {
		*r.Content = strings.TrimSpace(*r.Content)
		if *r.Content == "" {
			return fmt.Errorf("content cannot be empty")
		}
	}
	return nil
}

// ApplyTo, patch'i mevcut yazının üzerine uygular.
func (r *UpdateBlogPostRequest) ApplyTo(p *BlogPost) {
	if r.Title != nil {
		p.Title = *r.Title
	}
	if r.Content != nil {
		p.Content = *r.Content
	}
	if r.Excerpt != nil {
		p.Excerpt = optionalString(*r.Excerpt)
	}
	if r.ImageURL != nil {
		p.ImageURL = optionalString(*r.ImageURL)
	}
	if r.Published != nil {
		p.Published = *r.Published
	}
}
