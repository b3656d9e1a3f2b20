// Package models, uygulamanın domain modellerini (veri yapıları) tanımlar.
//
// Model, veritabanındaki bir tablonun Go karşılığıdır ve aynı zamanda
// API'den gelen/giden verilerin şeklini belirler.
//
// `json:"..."` tag'leri API response'larında, `yaml:"..."` tag'leri
// gömülü mock veri setinin (mockdata) okunmasında kullanılır.
package models

import (
	"fmt"
	"math"
	"strings"
	"time"
	"unicode/utf8"
)

// PriceRange, restoranın fiyat bandı.
// Go'da enum yerine typed constant kullanılır.
type PriceRange string

const (
	PriceBudget    PriceRange = "$"
	PriceModerate  PriceRange = "$$"
	PriceExpensive PriceRange = "$$$"
	PriceLuxury    PriceRange = "$$$$"
)

// PriceRanges, filtre formunda gösterilen sıralı fiyat bantları.
var PriceRanges = []PriceRange{PriceBudget, PriceModerate, PriceExpensive, PriceLuxury}

// Valid, fiyat bandının izin verilen değerlerden biri olup olmadığını döner.
func (p PriceRange) Valid() bool {
	switch p {
	case PriceBudget, PriceModerate, PriceExpensive, PriceLuxury:
		return true
	}
	return false
}

const (
	MinRating = 0.0
	MaxRating = 5.0
)

// Restaurant, bir restoranı temsil eder. DB'deki "restaurants" tablosunun karşılığı.
type Restaurant struct {
	ID          string     `json:"id" yaml:"id"`
	Name        string     `json:"name" yaml:"name"`
	Description *string    `json:"description" yaml:"description"`
	Address     string     `json:"address" yaml:"address"`
	Phone       *string    `json:"phone" yaml:"phone"`
	Website     *string    `json:"website" yaml:"website"`
	ImageURL    *string    `json:"image_url" yaml:"image_url"`
	CuisineType string     `json:"cuisine_type" yaml:"cuisine_type"`
	District    string     `json:"district" yaml:"district"`
	PriceRange  PriceRange `json:"price_range" yaml:"price_range"`
	Rating      float64    `json:"rating" yaml:"rating"`
	Latitude    float64    `json:"latitude" yaml:"latitude"`
	Longitude   float64    `json:"longitude" yaml:"longitude"`
	CreatedAt   time.Time  `json:"created_at" yaml:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at" yaml:"updated_at"`
}

// DescriptionText, nullable description'ı boş string'e indirger.
func (r Restaurant) DescriptionText() string {
	if r.Description == nil {
		return ""
	}
	return *r.Description
}

// FullStars, detay sayfasındaki yıldız sayısı: puanın tam kısmı.
func (r Restaurant) FullStars() int {
	return int(math.Floor(r.Rating))
}

// CreateRestaurantRequest, admin panelinden yeni restoran ekleme isteği.
// Pointer alanlar opsiyoneldir, nil ise varsayılan değer kullanılır.
type CreateRestaurantRequest struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Address     string   `json:"address"`
	Phone       string   `json:"phone"`
	Website     string   `json:"website"`
	ImageURL    string   `json:"image_url"`
	CuisineType string   `json:"cuisine_type"`
	District    string   `json:"district"`
	PriceRange  string   `json:"price_range"`
	Rating      *float64 `json:"rating"`
	Latitude    *float64 `json:"latitude"`
	Longitude   *float64 `json:"longitude"`
}

// Validate, CreateRestaurantRequest'i doğrular ve boş alanlara varsayılanları yazar.
// Varsayılanlar: price_range "$", rating 0, koordinatlar 0.
func (r *CreateRestaurantRequest) Validate() error {
	r.Name = strings.TrimSpace(r.Name)
	if err := validateName("restaurant name", r.Name, 200); err != nil {
		return err
	}

	r.Address = strings.TrimSpace(r.Address)
	r.CuisineType = strings.TrimSpace(r.CuisineType)
	r.District = strings.TrimSpace(r.District)

	r.PriceRange = strings.TrimSpace(r.PriceRange)
	if r.PriceRange == "" {
		r.PriceRange = string(PriceBudget)
	}
	if !PriceRange(r.PriceRange).Valid() {
		return fmt.Errorf("price_range must be one of $, $$, $$$, $$$$")
	}

	if r.Rating != nil {
		if err := validateRating(*r.Rating); err != nil {
			return err
		}
	}
	return validateCoordinates(r.Latitude, r.Longitude)
}

// Build, doğrulanmış istekten yeni bir Restaurant üretir. ID ve zaman damgaları
// çağıran tarafından (repository) atanır.
func (r *CreateRestaurantRequest) Build() *Restaurant {
	rest := &Restaurant{
		Name:        r.Name,
		Description: optionalString(r.Description),
		Address:     r.Address,
		Phone:       optionalString(r.Phone),
		Website:     optionalString(r.Website),
		ImageURL:    optionalString(r.ImageURL),
		CuisineType: r.CuisineType,
		District:    r.District,
		PriceRange:  PriceRange(r.PriceRange),
	}
	if r.Rating != nil {
		rest.Rating = *r.Rating
	}
	if r.Latitude != nil {
		rest.Latitude = *r.Latitude
	}
	if r.Longitude != nil {
		rest.Longitude = *r.Longitude
	}
	return rest
}

// UpdateRestaurantRequest, kısmi güncelleme (patch) isteği.
// nil alanlar değiştirilmez; dolu alanlar mevcut kaydın üzerine yazılır.
type UpdateRestaurantRequest struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Address     *string  `json:"address"`
	Phone       *string  `json:"phone"`
	Website     *string  `json:"website"`
	ImageURL    *string  `json:"image_url"`
	CuisineType *string  `json:"cuisine_type"`
	District    *string  `json:"district"`
	PriceRange  *string  `json:"price_range"`
	Rating      *float64 `json:"rating"`
	Latitude    *float64 `json:"latitude"`
	Longitude   *float64 `json:"longitude"`
}

// Validate, UpdateRestaurantRequest'i doğrular.
func (r *UpdateRestaurantRequest) Validate() error {
	if r.Name != nil {
		*r.Name = strings.TrimSpace(*r.Name)
		if err := validateName("restaurant name", *r.Name, 200); err != nil {
			return err
		}
	}
	if r.PriceRange != nil {
		*r.PriceRange = strings.TrimSpace(*r.PriceRange)
		if !PriceRange(*r.PriceRange).Valid() {
			return fmt.Errorf("price_range must be one of $, $$, $$$, $$$$")
		}
	}
	if r.Rating != nil {
		if err := validateRating(*r.Rating); err != nil {
			return err
		}
	}
	return validateCoordinates(r.Latitude, r.Longitude)
}

// ApplyTo, patch'i mevcut restoranın üzerine uygular (merge by identity).
// ID ve CreatedAt asla değişmez.
func (r *UpdateRestaurantRequest) ApplyTo(rest *Restaurant) {
	if r.Name != nil {
		rest.Name = *r.Name
	}
	if r.Description != nil {
		rest.Description = optionalString(*r.Description)
	}
	if r.Address != nil {
		rest.Address = strings.TrimSpace(*r.Address)
	}
	if r.Phone != nil {
		rest.Phone = optionalString(*r.Phone)
	}
	if r.Website != nil {
		rest.Website = optionalString(*r.Website)
	}
	if r.ImageURL != nil {
		rest.ImageURL = optionalString(*r.ImageURL)
	}
	if r.CuisineType != nil {
		rest.CuisineType = strings.TrimSpace(*r.CuisineType)
	}
	if r.District != nil {
		rest.District = strings.TrimSpace(*r.District)
	}
	if r.PriceRange != nil {
		rest.PriceRange = PriceRange(*r.PriceRange)
	}
	if r.Rating != nil {
		rest.Rating = *r.Rating
	}
	if r.Latitude != nil {
		rest.Latitude = *r.Latitude
	}
	if r.Longitude != nil {
		rest.Longitude = *r.Longitude
	}
}

// ─── Helpers ───

func validateName(field, value string, max int) error {
	n := utf8.RuneCountInString(value)
	if n < 1 || n > max {
		return fmt.Errorf("%s must be between 1 and %d characters", field, max)
	}
	return nil
}

func validateRating(rating float64) error {
	if math.IsNaN(rating) || rating < MinRating || rating > MaxRating {
		return fmt.Errorf("rating must be between 0 and 5")
	}
	return nil
}

func validateCoordinates(lat, lng *float64) error {
	if lat != nil && (*lat < -90 || *lat > 90) {
		return fmt.Errorf("latitude must be between -90 and 90")
	}
	if lng != nil && (*lng < -180 || *lng > 180) {
		return fmt.Errorf("longitude must be between -180 and 180")
	}
	return nil
}

// optionalString, boş (veya sadece boşluk) string'i nil'e çevirir.
func optionalString(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
