package listing

import (
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/lezzetkesif/lezzetkesif/models"
)

// Facets, filtre formundaki seçenekler: mevcut verideki benzersiz mutfak türleri ve semtler.
type Facets struct {
	CuisineTypes []string            `json:"cuisine_types"`
	Districts    []string            `json:"districts"`
	PriceRanges  []models.PriceRange `json:"price_ranges"`
}

// BuildFacets, koleksiyondan benzersiz değerleri Türkçe alfabe sırasıyla çıkarır
// ("Çankaya" "Kızılay"dan önce, "İtalyan" "Kafe"den önce gelir). Boş değerler atlanır.
func BuildFacets(all []models.Restaurant) Facets {
	cuisines := make(map[string]struct{})
	districts := make(map[string]struct{})
	for _, r := range all {
		if r.CuisineType != "" {
			cuisines[r.CuisineType] = struct{}{}
		}
		if r.District != "" {
			districts[r.District] = struct{}{}
		}
	}

	return Facets{
		CuisineTypes: sortedKeys(cuisines),
		Districts:    sortedKeys(districts),
		PriceRanges:  models.PriceRanges,
	}
}

func sortedKeys(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	// collate.Collator da goroutine-safe değildir.
	collate.New(language.Turkish).SortStrings(out)
	return out
}
