package listing

import (
	"net/url"
	"strconv"

	"github.com/lezzetkesif/lezzetkesif/models"
)

// Browser, liste sayfasının filtre ve sayfa durumu.
//
// Her istek kendi Browser'ını kurar; durum istekler arasında paylaşılmaz.
// Kriterlerden herhangi biri değiştiğinde sayfa 1'e döner.
type Browser struct {
	criteria models.FilterCriteria
	page     int
	pageSize int
}

// NewBrowser, boş kriterler ve 1. sayfa ile başlar. pageSize <= 0 ise DefaultPageSize kullanılır.
func NewBrowser(pageSize int) *Browser {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return &Browser{page: 1, pageSize: pageSize}
}

// FromQuery, query string'den kriterleri ve sayfayı okur.
// Geçersiz veya eksik "page" 1 kabul edilir.
//
// Filtre formu gönderildiğinde query, formun render edildiği andaki kriterleri
// ("applied") ve sayfayı taşır. Browser önce bu duruma getirilir, sonra yeni
// kriterler ApplyCriteria ile uygulanır; böylece kriter değişince sayfa 1'e döner,
// değişmeyince korunur. "clear" varsa tüm filtreler temizlenir.
func FromQuery(q url.Values, pageSize int) *Browser {
	b := NewBrowser(pageSize)
	requested := models.ParseFilterCriteria(q)

	b.criteria = requested
	if q.Has(models.QueryApplied) {
		if prev, err := url.ParseQuery(q.Get(models.QueryApplied)); err == nil {
			b.criteria = models.ParseFilterCriteria(prev)
		}
	}
	if p, err := strconv.Atoi(q.Get(models.QueryPage)); err == nil {
		b.GoToPage(p)
	}

	if q.Has(models.QueryClear) {
		b.ClearCriteria()
	} else {
		b.ApplyCriteria(requested)
	}
	return b
}

// Criteria, mevcut filtre kriterleri.
func (b *Browser) Criteria() models.FilterCriteria { return b.criteria }

// Page, mevcut sayfa numarası.
func (b *Browser) Page() int { return b.page }

// PageSize, sayfa başına öğe sayısı.
func (b *Browser) PageSize() int { return b.pageSize }

// ApplyCriteria, kriterleri değiştirir. Yeni kriterler öncekinden farklıysa
// sayfa 1'e sıfırlanır; true döner.
func (b *Browser) ApplyCriteria(c models.FilterCriteria) bool {
	if c == b.criteria {
		return false
	}
	b.criteria = c
	b.page = 1
	return true
}

// ClearCriteria, tüm filtreleri temizler ("Filtreleri Temizle").
func (b *Browser) ClearCriteria() bool {
	return b.ApplyCriteria(models.FilterCriteria{})
}

// GoToPage, sadece sayfayı değiştirir; kriterlere dokunmaz.
func (b *Browser) GoToPage(page int) {
	b.page = page
}

// View, bir render için gereken her şey.
type View struct {
	Criteria      models.FilterCriteria `json:"criteria"`
	FilteredCount int                   `json:"filtered_count"`
	Page          Page                  `json:"page"`
	PageLinks     []PageLink            `json:"page_links"`
	Facets        Facets                `json:"facets"`
	// Filtered, sayfalanmamış filtre sonucu (harita görünümü tüm sonuçları gösterir).
	Filtered []models.Restaurant `json:"-"`
}

// View, tam koleksiyondan mevcut durumun görünümünü üretir.
func (b *Browser) View(all []models.Restaurant) View {
	filtered := Filter(all, b.criteria)
	page := Paginate(filtered, b.page, b.pageSize)
	return View{
		Criteria:      b.criteria,
		FilteredCount: len(filtered),
		Page:          page,
		PageLinks:     PageNumbers(b.page, page.TotalPages),
		Facets:        BuildFacets(all),
		Filtered:      filtered,
	}
}

// PageURL, kriterleri koruyarak verilen sayfanın query string'ini üretir.
// Sayfa 1 için "page" parametresi yazılmaz.
func (b *Browser) PageURL(page int, extra url.Values) string {
	v := b.criteria.Values()
	for k, vals := range extra {
		for _, val := range vals {
			v.Add(k, val)
		}
	}
	if page > 1 {
		v.Set(models.QueryPage, strconv.Itoa(page))
	}
	if len(v) == 0 {
		return ""
	}
	return "?" + v.Encode()
}
