// Package repository, veri erişim katmanıdır.
//
// Her entity için bir interface tanımlanır ve iki implementasyon bulunur:
//   - sql*    → database/sql üzerinden SQLite veya Postgres
//   - memory* → mutex korumalı slice'lar (varsayılan "memory" sürücüsü)
//
// Service katmanı sadece interface'leri bilir; sürücü composition root'ta seçilir.
package repository

import (
	"context"

	"github.com/lezzetkesif/lezzetkesif/models"
)

// RestaurantRepository, restoran veri erişimi.
//
// GetAll ekleme sırasını korur: yeni restoranlar listenin sonuna eklenir.
type RestaurantRepository interface {
	// Create, ID boşsa yeni bir UUID üretir ve zaman damgalarını doldurur.
	Create(ctx context.Context, r *models.Restaurant) error
	GetByID(ctx context.Context, id string) (*models.Restaurant, error)
	GetAll(ctx context.Context) ([]models.Restaurant, error)
	// Update, kaydı kimliğine göre değiştirir ve UpdatedAt'i yeniler.
	Update(ctx context.Context, r *models.Restaurant) error
	Delete(ctx context.Context, id string) error
}

// Cascader, üst kaydın silinmesiyle bağlı kayıtları (değerlendirme, favori,
// yorum) aynı ifadede silen repository'ler tarafından karşılanır. SQL sürücüleri
// bunu şemadaki ON DELETE CASCADE ile yapar; bellek sürücüsü yapmaz.
type Cascader interface {
	CascadesOnDelete() bool
}

// CascadesOnDelete, repo Cascader ise ve cascade açıksa true döner.
func CascadesOnDelete(repo any) bool {
	c, ok := repo.(Cascader)
	return ok && c.CascadesOnDelete()
}
