package models

import (
	"net/url"
	"strconv"
	"strings"
)

// FilterCriteria, restoran listesini daraltan kullanıcı seçimleri.
// Kalıcı değildir; her istekte query string'den okunur.
// Boş/sıfır alan "filtre yok" demektir.
type FilterCriteria struct {
	CuisineType string     `json:"cuisine_type"`
	District    string     `json:"district"`
	MinRating   float64    `json:"min_rating"`
	PriceRange  PriceRange `json:"price_range"`
	SearchQuery string     `json:"search_query"`
}

// Query string anahtarları. Sayfa ve API aynı anahtarları kullanır.
const (
	QuerySearch    = "q"
	QueryCuisine   = "cuisine"
	QueryDistrict  = "district"
	QueryMinRating = "min_rating"
	QueryPrice     = "price"
	QueryPage      = "page"
	QueryPageSize  = "page_size"
	QueryView      = "view"

	// QueryApplied, filtre formunun render edildiği andaki kriterler (encode edilmiş
	// query string). QueryClear, "Temizle" butonu.
	QueryApplied = "applied"
	QueryClear   = "clear"
)

// ParseFilterCriteria, query string'den FilterCriteria okur.
// Geçersiz min_rating veya price değerleri sessizce yok sayılır;
// filtre formu asla hata sayfası üretmemeli.
func ParseFilterCriteria(q url.Values) FilterCriteria {
	c := FilterCriteria{
		CuisineType: strings.TrimSpace(q.Get(QueryCuisine)),
		District:    strings.TrimSpace(q.Get(QueryDistrict)),
		SearchQuery: strings.TrimSpace(q.Get(QuerySearch)),
	}
	if v, err := strconv.ParseFloat(q.Get(QueryMinRating), 64); err == nil && v > 0 && v <= MaxRating {
		c.MinRating = v
	}
	if p := PriceRange(strings.TrimSpace(q.Get(QueryPrice))); p.Valid() {
		c.PriceRange = p
	}
	return c
}

// IsZero, hiçbir kriter seçili değilse true döner.
func (c FilterCriteria) IsZero() bool {
	return c == FilterCriteria{}
}

// Values, kriterleri query string'e çevirir. Boş alanlar yazılmaz;
// pagination linkleri kriterleri korumak için bunu kullanır.
func (c FilterCriteria) Values() url.Values {
	v := url.Values{}
	if c.SearchQuery != "" {
		v.Set(QuerySearch, c.SearchQuery)
	}
	if c.CuisineType != "" {
		v.Set(QueryCuisine, c.CuisineType)
	}
	if c.District != "" {
		v.Set(QueryDistrict, c.District)
	}
	if c.MinRating > 0 {
		v.Set(QueryMinRating, strconv.FormatFloat(c.MinRating, 'f', -1, 64))
	}
	if c.PriceRange != "" {
		v.Set(QueryPrice, string(c.PriceRange))
	}
	return v
}
