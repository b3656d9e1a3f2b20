// Package listing, restoran listesinin filtre ve sayfalama view-model'idir.
//
// Fonksiyonlar saftır (pure): girdi koleksiyonunu değiştirmez, hata dönmez.
// Aynı fonksiyonlar hem HTML sayfası hem JSON API tarafından kullanılır,
// böylece iki yüzey aynı sonucu üretir.
package listing

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/lezzetkesif/lezzetkesif/models"
)

// DefaultPageSize, restoran listesinde bir sayfada gösterilen kart sayısı.
const DefaultPageSize = 9

// trLower, Türkçe büyük/küçük harf kuralları (İ→i, I→ı).
// cases.Caser goroutine-safe değildir, her çağrıda yenisi üretilir.
func trLower(s string) string {
	return cases.Lower(language.Turkish).String(s)
}

// fold, arama karşılaştırması için metni küçük harfe indirger.
// Türkçe kurallarla indirgenen metin eşleşmezse sade Unicode küçültme de denenir;
// "PIZZA" aramasının hem "pizza" hem "pızza" ile eşleşmesi bu sayededir.
func fold(s string) []string {
	tr := trLower(s)
	plain := strings.ToLower(s)
	if tr == plain {
		return []string{tr}
	}
	return []string{tr, plain}
}

func containsFolded(haystack string, needles []string) bool {
	for _, h := range fold(haystack) {
		for _, n := range needles {
			if strings.Contains(h, n) {
				return true
			}
		}
	}
	return false
}

// Filter, kriterlerin TAMAMINI sağlayan restoranları döner.
// Boş/sıfır kriter atlanır. Çıktı girdi sırasını korur.
//
//   - search: ad, açıklama, mutfak veya semtte büyük/küçük harf duyarsız alt dizi
//   - cuisine / district / price: birebir eşitlik
//   - min_rating: rating >= min_rating (sadece min_rating > 0 iken)
func Filter(all []models.Restaurant, c models.FilterCriteria) []models.Restaurant {
	var needles []string
	if q := strings.TrimSpace(c.SearchQuery); q != "" {
		needles = fold(q)
	}

	out := make([]models.Restaurant, 0, len(all))
	for _, r := range all {
		if needles != nil &&
			!containsFolded(r.Name, needles) &&
			!containsFolded(r.DescriptionText(), needles) &&
			!containsFolded(r.CuisineType, needles) &&
			!containsFolded(r.District, needles) {
			continue
		}
		if c.CuisineType != "" && r.CuisineType != c.CuisineType {
			continue
		}
		if c.District != "" && r.District != c.District {
			continue
		}
		if c.MinRating > 0 && r.Rating < c.MinRating {
			continue
		}
		if c.PriceRange != "" && r.PriceRange != c.PriceRange {
			continue
		}
		out = append(out, r)
	}
	return out
}

// Page, sayfalanmış görünüm.
type Page struct {
	Items      []models.Restaurant `json:"items"`
	Page       int                 `json:"page"`
	PageSize   int                 `json:"page_size"`
	TotalItems int                 `json:"total_items"`
	TotalPages int                 `json:"total_pages"`
	// Start ve End, gösterilen öğe aralığı (1 tabanlı, "1-9 / 23 sonuç").
	// Boş sayfada ikisi de 0'dır.
	Start   int  `json:"start"`
	End     int  `json:"end"`
	HasPrev bool `json:"has_prev"`
	HasNext bool `json:"has_next"`
}

// Paginate, filtrelenmiş listeden istenen sayfayı keser.
//
// TotalPages = ceil(len / pageSize). Sayfa 1'den küçükse veya TotalPages'i
// aşıyorsa Items boş döner; hata üretilmez. pageSize <= 0 sıfır sayfa demektir.
func Paginate(filtered []models.Restaurant, page, pageSize int) Page {
	p := Page{
		Items:      []models.Restaurant{},
		Page:       page,
		PageSize:   pageSize,
		TotalItems: len(filtered),
	}
	if pageSize <= 0 {
		return p
	}
	p.TotalPages = (len(filtered) + pageSize - 1) / pageSize
	p.HasPrev = page > 1 && page <= p.TotalPages
	p.HasNext = page >= 1 && page < p.TotalPages

	if page < 1 || page > p.TotalPages {
		return p
	}

	start := (page - 1) * pageSize
	end := min(start+pageSize, len(filtered))
	p.Items = filtered[start:end:end]
	p.Start = start + 1
	p.End = end
	return p
}
