package pages

import (
	"errors"
	"net/http"
	"net/url"
	"strconv"

	"github.com/lezzetkesif/lezzetkesif/handlers"
	"github.com/lezzetkesif/lezzetkesif/models"
	"github.com/lezzetkesif/lezzetkesif/pkg"
	"github.com/lezzetkesif/lezzetkesif/pkg/listing"
)

const viewMap = "map"

// ratingOptions, filtre formundaki minimum puan seçenekleri.
var ratingOptions = []float64{3, 3.5, 4, 4.5}

type pageLinkView struct {
	listing.PageLink
	URL string
}

type restaurantsData struct {
	View          *listing.View
	Criteria      models.FilterCriteria
	MapView       bool
	GridURL       string
	MapURL        string
	PrevURL       string
	NextURL       string
	Links         []pageLinkView
	PriceRanges   []models.PriceRange
	RatingOptions []float64
	// Applied, filtre formunun gizli alanı: mevcut kriterlerin query string'i.
	Applied string
	// GeoJSONURL, harita görünümünün filtrelenmiş kümeyi çektiği API adresi.
	GeoJSONURL string
}

// Restaurants: GET /restaurants
//
// Filtre formu mevcut sayfayı ve render anındaki kriterleri ("applied") gönderir;
// listing.FromQuery kriter değiştiyse 1. sayfaya döner. Sayfa linkleri mevcut
// kriterleri ve görünüm modunu korur.
func (p *Pages) Restaurants(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	view, browser, err := p.svc.Restaurants.Browse(r.Context(), q)
	if err != nil {
		p.fail(w, r, err, "notFound.title")
		return
	}

	mapView := q.Get(models.QueryView) == viewMap
	var extra url.Values
	if mapView {
		extra = url.Values{models.QueryView: {viewMap}}
	}
	pageURL := func(n int) string {
		return "/restaurants" + browser.PageURL(n, extra)
	}

	data := restaurantsData{
		View:          view,
		Criteria:      view.Criteria,
		Applied:       view.Criteria.Values().Encode(),
		MapView:       mapView,
		GridURL:       "/restaurants" + browser.PageURL(browser.Page(), nil),
		MapURL:        "/restaurants" + browser.PageURL(browser.Page(), url.Values{models.QueryView: {viewMap}}),
		PriceRanges:   models.PriceRanges,
		RatingOptions: ratingOptions,
		GeoJSONURL:    "/api/restaurants/map" + browser.PageURL(1, nil),
	}
	if view.Page.HasPrev {
		data.PrevURL = pageURL(browser.Page() - 1)
	}
	if view.Page.HasNext {
		data.NextURL = pageURL(browser.Page() + 1)
	}
	for _, l := range view.PageLinks {
		lv := pageLinkView{PageLink: l}
		if !l.Ellipsis {
			lv.URL = pageURL(l.Number)
		}
		data.Links = append(data.Links, lv)
	}

	pd := p.newPage(r, "", data)
	pd.Title = pd.L.T("restaurants.title")
	p.render(w, http.StatusOK, "restaurants", pd)
}

type restaurantData struct {
	Restaurant *models.Restaurant
	Reviews    []models.Review
	Summary    models.ReviewSummary
	IsFavorite bool
	// Error, form gönderimi başarısızsa gösterilen mesaj.
	Error string
}

// Restaurant: GET /restaurants/{id}
// Bilinmeyen id → 404 "restoran bulunamadı" sayfası.
func (p *Pages) Restaurant(w http.ResponseWriter, r *http.Request) {
	p.renderRestaurant(w, r, http.StatusOK, "")
}

func (p *Pages) renderRestaurant(w http.ResponseWriter, r *http.Request, status int, errMsg string) {
	ctx := r.Context()
	id := r.PathValue("id")

	rest, err := p.svc.Restaurants.GetByID(ctx, id)
	if err != nil {
		p.fail(w, r, err, "notFound.restaurant")
		return
	}
	reviews, summary, err := p.svc.Reviews.ListApproved(ctx, id)
	if err != nil {
		p.fail(w, r, err, "notFound.restaurant")
		return
	}

	data := restaurantData{Restaurant: rest, Reviews: reviews, Summary: summary, Error: errMsg}
	if user := handlers.UserFromContext(r); user != nil {
		data.IsFavorite, err = p.svc.Profile.IsFavorite(ctx, user.ID, id)
		if err != nil {
			p.fail(w, r, err, "notFound.restaurant")
			return
		}
	}

	pd := p.newPage(r, rest.Name, data)
	p.render(w, status, "restaurant", pd)
}

// SubmitReview: POST /restaurants/{id}/reviews (form)
// Giriş yapmamış kullanıcı giriş sayfasına yönlendirilir.
func (p *Pages) SubmitReview(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	user := handlers.UserFromContext(r)
	if user == nil {
		redirect(w, r, signInURL("/restaurants/"+id))
		return
	}

	rating, _ := strconv.Atoi(r.FormValue("rating"))
	req := &models.CreateReviewRequest{Rating: rating, Comment: r.FormValue("comment")}
	if _, err := p.svc.Reviews.Submit(r.Context(), user, id, req); err != nil {
		if errors.Is(err, pkg.ErrNotFound) {
			p.fail(w, r, err, "notFound.restaurant")
			return
		}
		p.renderRestaurant(w, r, pkg.StatusFor(err), p.formError(r, err))
		return
	}

	redirect(w, r, "/restaurants/"+id+"#reviews")
}

// ToggleFavorite: POST /restaurants/{id}/favorite (form)
func (p *Pages) ToggleFavorite(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	user := handlers.UserFromContext(r)
	if user == nil {
		redirect(w, r, signInURL("/restaurants/"+id))
		return
	}

	ctx := r.Context()
	fav, err := p.svc.Profile.IsFavorite(ctx, user.ID, id)
	if err == nil {
		if fav {
			err = p.svc.Profile.RemoveFavorite(ctx, user.ID, id)
		} else {
			err = p.svc.Profile.AddFavorite(ctx, user.ID, id)
		}
	}
	if err != nil {
		p.fail(w, r, err, "notFound.restaurant")
		return
	}

	redirect(w, r, "/restaurants/"+id)
}
