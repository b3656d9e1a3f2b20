package listing

import (
	"fmt"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lezzetkesif/lezzetkesif/mockdata"
	"github.com/lezzetkesif/lezzetkesif/models"
)

func seedRestaurants(t *testing.T) []models.Restaurant {
	t.Helper()
	ds, err := mockdata.Load()
	require.NoError(t, err)
	return ds.Restaurants
}

func restaurantNames(rs []models.Restaurant) []string {
	out := make([]string, len(rs))
	for i, r := range rs {
		out[i] = r.Name
	}
	return out
}

func generated(n int) []models.Restaurant {
	out := make([]models.Restaurant, n)
	for i := range out {
		out[i] = models.Restaurant{ID: fmt.Sprint(i + 1), Name: fmt.Sprintf("R%d", i+1), Rating: float64(i%6) * 0.9}
	}
	return out
}

func TestFilterEmptyCriteriaIsIdentity(t *testing.T) {
	all := seedRestaurants(t)
	assert.Equal(t, all, Filter(all, models.FilterCriteria{}))

	assert.Empty(t, Filter(nil, models.FilterCriteria{}))
}

func TestFilterByCuisinePreservesOrder(t *testing.T) {
	got := Filter(seedRestaurants(t), models.FilterCriteria{CuisineType: "Kebap"})
	assert.Equal(t, []string{"Aspava", "Kebapçı Selim Usta"}, restaurantNames(got))
}

func TestFilterSearchIsCaseInsensitive(t *testing.T) {
	all := seedRestaurants(t)

	for _, q := range []string{"pizza", "PIZZA", "Pizza", "  pizza "} {
		got := Filter(all, models.FilterCriteria{SearchQuery: q})
		assert.Equal(t, []string{"Pizza House"}, restaurantNames(got), "query %q", q)
	}
}

func TestFilterSearchMatchesEveryTextField(t *testing.T) {
	all := seedRestaurants(t)

	// açıklama
	assert.Equal(t, []string{"Trilye Restaurant"}, restaurantNames(Filter(all, models.FilterCriteria{SearchQuery: "balık"})))
	// mutfak türü, Türkçe büyük harf
	assert.Equal(t, []string{"Pizza House"}, restaurantNames(Filter(all, models.FilterCriteria{SearchQuery: "İTALYAN"})))
	// semt
	assert.Equal(t, []string{"Kebapçı Selim Usta"}, restaurantNames(Filter(all, models.FilterCriteria{SearchQuery: "kızılay"})))
	// eşleşme yok
	assert.Empty(t, Filter(all, models.FilterCriteria{SearchQuery: "sushi"}))
}

func TestFilterMinRatingExcludesLowerRatings(t *testing.T) {
	all := seedRestaurants(t)
	for _, min := range []float64{0, 4.0, 4.2, 4.25, 4.5, 5} {
		got := Filter(all, models.FilterCriteria{MinRating: min})
		for _, r := range all {
			if r.Rating < min {
				assert.NotContains(t, restaurantNames(got), r.Name, "min %.2f", min)
			} else {
				assert.Contains(t, restaurantNames(got), r.Name, "min %.2f", min)
			}
		}
	}
}

func TestFilterCombinesAllCriteria(t *testing.T) {
	all := seedRestaurants(t)

	got := Filter(all, models.FilterCriteria{District: "Çankaya", PriceRange: models.PriceModerate})
	assert.Equal(t, []string{"Aspava", "Pizza House"}, restaurantNames(got))

	got = Filter(all, models.FilterCriteria{District: "Çankaya", PriceRange: models.PriceModerate, MinRating: 4.3})
	assert.Equal(t, []string{"Pizza House"}, restaurantNames(got))

	got = Filter(all, models.FilterCriteria{CuisineType: "Kebap", SearchQuery: "selim"})
	assert.Equal(t, []string{"Kebapçı Selim Usta"}, restaurantNames(got))
}

func TestFilterDoesNotMutateInput(t *testing.T) {
	all := seedRestaurants(t)
	before := restaurantNames(all)
	_ = Filter(all, models.FilterCriteria{CuisineType: "Kebap"})
	assert.Equal(t, before, restaurantNames(all))
}

func TestPaginateTotalPages(t *testing.T) {
	cases := []struct {
		n, size, want int
	}{
		{5, 9, 1},
		{0, 9, 0},
		{9, 9, 1},
		{10, 9, 2},
		{27, 9, 3},
		{28, 9, 4},
		{7, 1, 7},
	}
	for _, tc := range cases {
		p := Paginate(generated(tc.n), 1, tc.size)
		assert.Equal(t, tc.want, p.TotalPages, "n=%d size=%d", tc.n, tc.size)
	}
}

func TestPaginateNeverExceedsPageSize(t *testing.T) {
	for n := 0; n <= 40; n++ {
		items := generated(n)
		for size := 1; size <= 12; size++ {
			first := Paginate(items, 1, size)
			for page := 1; page <= first.TotalPages; page++ {
				p := Paginate(items, page, size)
				require.LessOrEqual(t, len(p.Items), size)
				if page < p.TotalPages {
					require.Len(t, p.Items, size, "n=%d size=%d page=%d", n, size, page)
				} else {
					require.NotEmpty(t, p.Items)
				}
			}
		}
	}
}

func TestPaginateSlicesAndRanges(t *testing.T) {
	items := generated(23)

	p := Paginate(items, 3, 9)
	assert.Equal(t, []string{"R19", "R20", "R21", "R22", "R23"}, restaurantNames(p.Items))
	assert.Equal(t, 19, p.Start)
	assert.Equal(t, 23, p.End)
	assert.True(t, p.HasPrev)
	assert.False(t, p.HasNext)

	p = Paginate(items, 1, 9)
	assert.Equal(t, 1, p.Start)
	assert.Equal(t, 9, p.End)
	assert.False(t, p.HasPrev)
	assert.True(t, p.HasNext)
}

func TestPaginateOutOfRangeYieldsEmpty(t *testing.T) {
	items := generated(5)

	for _, page := range []int{0, -1, 2, 100} {
		p := Paginate(items, page, 9)
		assert.NotNil(t, p.Items)
		assert.Empty(t, p.Items, "page %d", page)
		assert.Equal(t, 1, p.TotalPages)
		assert.Zero(t, p.Start)
	}

	p := Paginate(items, 1, 0)
	assert.Zero(t, p.TotalPages)
	assert.Empty(t, p.Items)
}

func TestPaginateResultIsNotAliasedForAppend(t *testing.T) {
	items := generated(10)
	p := Paginate(items, 1, 3)
	_ = append(p.Items, models.Restaurant{Name: "x"})
	assert.Equal(t, "R4", items[3].Name)
}

func pageString(links []PageLink) string {
	s := ""
	for i, l := range links {
		if i > 0 {
			s += " "
		}
		switch {
		case l.Ellipsis:
			s += "…"
		case l.Current:
			s += fmt.Sprintf("[%d]", l.Number)
		default:
			s += fmt.Sprint(l.Number)
		}
	}
	return s
}

func TestPageNumbers(t *testing.T) {
	cases := []struct {
		current, total int
		want           string
	}{
		{1, 0, ""},
		{1, 1, "[1]"},
		{2, 5, "1 [2] 3 4 5"},
		{1, 10, "[1] 2 3 4 … 10"},
		{3, 10, "1 2 [3] 4 … 10"},
		{4, 10, "1 … 3 [4] 5 … 10"},
		{7, 10, "1 … 6 [7] 8 … 10"},
		{8, 10, "1 … 7 [8] 9 10"},
		{10, 10, "1 … 7 8 9 [10]"},
		{4, 6, "1 … 3 [4] 5 6"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, pageString(PageNumbers(tc.current, tc.total)), "current=%d total=%d", tc.current, tc.total)
	}
}

func TestBuildFacetsUsesTurkishOrder(t *testing.T) {
	f := BuildFacets(seedRestaurants(t))
	assert.Equal(t, []string{"Deniz Ürünleri", "İtalyan", "Kafe", "Kebap"}, f.CuisineTypes)
	assert.Equal(t, []string{"Bahçelievler", "Çankaya", "Kızılay"}, f.Districts)
	assert.Len(t, f.PriceRanges, 4)
}

func TestBrowserResetsPageWhenCriteriaChange(t *testing.T) {
	b := NewBrowser(0)
	assert.Equal(t, DefaultPageSize, b.PageSize())
	assert.Equal(t, 1, b.Page())

	b.GoToPage(3)
	assert.Equal(t, 3, b.Page())

	// aynı kriterler → sayfa korunur
	assert.False(t, b.ApplyCriteria(models.FilterCriteria{}))
	assert.Equal(t, 3, b.Page())

	assert.True(t, b.ApplyCriteria(models.FilterCriteria{CuisineType: "Kebap"}))
	assert.Equal(t, 1, b.Page())

	b.GoToPage(2)
	assert.True(t, b.ApplyCriteria(models.FilterCriteria{CuisineType: "Kebap", MinRating: 4}))
	assert.Equal(t, 1, b.Page())

	b.GoToPage(2)
	assert.True(t, b.ClearCriteria())
	assert.Equal(t, 1, b.Page())
	assert.True(t, b.Criteria().IsZero())
}

func TestBrowserView(t *testing.T) {
	all := seedRestaurants(t)

	b := FromQuery(url.Values{"cuisine": {"Kebap"}, "page": {"1"}}, 9)
	v := b.View(all)
	assert.Equal(t, 2, v.FilteredCount)
	assert.Equal(t, 1, v.Page.TotalPages)
	assert.Equal(t, []string{"Aspava", "Kebapçı Selim Usta"}, restaurantNames(v.Page.Items))
	assert.Len(t, v.Filtered, 2)
	assert.Equal(t, "[1]", pageString(v.PageLinks))
	assert.Len(t, v.Facets.CuisineTypes, 4)

	b = FromQuery(url.Values{"page": {"abc"}}, 2)
	assert.Equal(t, 1, b.Page())
	v = b.View(all)
	assert.Equal(t, 3, v.Page.TotalPages)
	assert.Len(t, v.Page.Items, 2)
}

func TestFromQueryReplaysFilterForm(t *testing.T) {
	applied := url.Values{"cuisine": {"Kebap"}}.Encode()

	// Aynı kriterlerle tekrar gönderim sayfayı korur.
	b := FromQuery(url.Values{"cuisine": {"Kebap"}, "page": {"2"}, "applied": {applied}}, 1)
	assert.Equal(t, 2, b.Page())
	assert.Equal(t, "Kebap", b.Criteria().CuisineType)

	// Değişen kriter 1. sayfaya döner.
	b = FromQuery(url.Values{"cuisine": {"Kebap"}, "district": {"Çankaya"}, "page": {"2"}, "applied": {applied}}, 1)
	assert.Equal(t, 1, b.Page())
	assert.Equal(t, "Çankaya", b.Criteria().District)

	// Temizle tüm kriterleri siler.
	b = FromQuery(url.Values{"cuisine": {"Kebap"}, "page": {"2"}, "applied": {applied}, "clear": {"1"}}, 1)
	assert.Equal(t, 1, b.Page())
	assert.True(t, b.Criteria().IsZero())

	// Form dışı istekler (sayfa linkleri, API) kriterleri ve sayfayı olduğu gibi alır.
	b = FromQuery(url.Values{"cuisine": {"Kebap"}, "page": {"2"}}, 1)
	assert.Equal(t, 2, b.Page())
	assert.Equal(t, "Kebap", b.Criteria().CuisineType)
}

func TestBrowserPageURLKeepsCriteria(t *testing.T) {
	b := FromQuery(url.Values{"cuisine": {"Kebap"}, "q": {"selim"}}, 9)
	assert.Equal(t, "?cuisine=Kebap&page=2&q=selim", b.PageURL(2, nil))
	assert.Equal(t, "?cuisine=Kebap&q=selim", b.PageURL(1, nil))
	assert.Equal(t, "?cuisine=Kebap&q=selim&view=map", b.PageURL(1, url.Values{"view": {"map"}}))
	assert.Equal(t, "", NewBrowser(9).PageURL(1, nil))
}
