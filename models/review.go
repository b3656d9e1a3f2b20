package models

import (
	"fmt"
	"math"
	"strings"
	"time"
	"unicode/utf8"
)

// ReviewStatus, yorumun moderasyon durumu.
type ReviewStatus string

const (
	ReviewPending  ReviewStatus = "pending"
	ReviewApproved ReviewStatus = "approved"
	ReviewRejected ReviewStatus = "rejected"
)

// Valid, durumun bilinen değerlerden biri olup olmadığını döner.
func (s ReviewStatus) Valid() bool {
	return s == ReviewPending || s == ReviewApproved || s == ReviewRejected
}

// Review, bir restoran değerlendirmesi. DB'deki "reviews" tablosunun karşılığı.
//
// UserName denormalize edilmiştir: yorum yazıldığı andaki görünen isim saklanır,
// liste sorgusu users tablosuna JOIN atmaz.
type Review struct {
	ID           string       `json:"id" yaml:"id"`
	RestaurantID string       `json:"restaurant_id" yaml:"restaurant_id"`
	UserID       string       `json:"user_id" yaml:"user_id"`
	UserName     string       `json:"user_name" yaml:"user_name"`
	Rating       int          `json:"rating" yaml:"rating"`
	Comment      *string      `json:"comment" yaml:"comment"`
	Status       ReviewStatus `json:"status" yaml:"status"`
	CreatedAt    time.Time    `json:"created_at" yaml:"created_at"`
}

// CreateReviewRequest, ziyaretçinin restoran sayfasından gönderdiği yorum.
type CreateReviewRequest struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

// Validate, CreateReviewRequest'i doğrular.
// Rating 0-5 arası olmalı; yorum metni opsiyonel, max 2000 karakter.
func (r *CreateReviewRequest) Validate() error {
	if r.Rating < int(MinRating) || r.Rating > int(MaxRating) {
		return fmt.Errorf("rating must be between 0 and 5")
	}
	r.Comment = strings.TrimSpace(r.Comment)
	if utf8.RuneCountInString(r.Comment) > 2000 {
		return fmt.Errorf("comment must be at most 2000 characters")
	}
	return nil
}

// UpdateReviewStatusRequest, admin moderasyon isteği.
type UpdateReviewStatusRequest struct {
	Status ReviewStatus `json:"status"`
}

// Validate, UpdateReviewStatusRequest'i doğrular.
func (r *UpdateReviewStatusRequest) Validate() error {
	if !r.Status.Valid() {
		return fmt.Errorf("status must be one of pending, approved, rejected")
	}
	return nil
}

// ReviewSummary, bir restoranın onaylı yorumlarının özeti.
type ReviewSummary struct {
	Count   int     `json:"count"`
	Average float64 `json:"average"`
}

// Summarize, onaylı yorumlardan sayı ve ortalama üretir. Ortalama bir ondalığa yuvarlanır.
func Summarize(reviews []Review) ReviewSummary {
	var s ReviewSummary
	total := 0
	for _, r := range reviews {
		if r.Status != ReviewApproved {
			continue
		}
		s.Count++
		total += r.Rating
	}
	if s.Count > 0 {
		s.Average = math.Round(float64(total)/float64(s.Count)*10) / 10
	}
	return s
}
