package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/lezzetkesif/lezzetkesif/models"
	"github.com/lezzetkesif/lezzetkesif/pkg"
	"github.com/lezzetkesif/lezzetkesif/services"
)

// RestaurantHandler, herkese açık restoran endpoint'leri ve değerlendirme gönderimi.
type RestaurantHandler struct {
	restaurantService services.RestaurantService
	reviewService     services.ReviewService
}

// NewRestaurantHandler, constructor.
func NewRestaurantHandler(restaurantService services.RestaurantService, reviewService services.ReviewService) *RestaurantHandler {
	return &RestaurantHandler{restaurantService: restaurantService, reviewService: reviewService}
}

// List godoc
// GET /api/restaurants?q=&cuisine=&district=&min_rating=&price=&page=&page_size=
// Filtre + sayfalama görünümünü döner (items, toplam, sayfa linkleri, facet'ler).
func (h *RestaurantHandler) List(w http.ResponseWriter, r *http.Request) {
	view, _, err := h.restaurantService.Browse(r.Context(), r.URL.Query())
	if err != nil {
		pkg.Error(w, err)
		return
	}
	pkg.JSON(w, http.StatusOK, view)
}

// Facets godoc
// GET /api/restaurants/facets
func (h *RestaurantHandler) Facets(w http.ResponseWriter, r *http.Request) {
	facets, err := h.restaurantService.Facets(r.Context())
	if err != nil {
		pkg.Error(w, err)
		return
	}
	pkg.JSON(w, http.StatusOK, facets)
}

// Map godoc
// GET /api/restaurants/map
// Filtrelenmiş kümenin tamamı GeoJSON FeatureCollection olarak döner.
// Ham GeoJSON döner (envelope yok); harita kütüphaneleri doğrudan okur.
func (h *RestaurantHandler) Map(w http.ResponseWriter, r *http.Request) {
	fc, err := h.restaurantService.Map(r.Context(), r.URL.Query())
	if err != nil {
		pkg.Error(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/geo+json")
	if err := json.NewEncoder(w).Encode(fc); err != nil {
		http.Error(w, "failed to encode response", http.StatusInternalServerError)
	}
}

// Get godoc
// GET /api/restaurants/{id}
func (h *RestaurantHandler) Get(w http.ResponseWriter, r *http.Request) {
	rest, err := h.restaurantService.GetByID(r.Context(), r.PathValue("id"))
	if err != nil {
		pkg.Error(w, err)
		return
	}
	pkg.JSON(w, http.StatusOK, rest)
}

// reviewList, değerlendirme listesi response'u.
type reviewList struct {
	Reviews []models.Review      `json:"reviews"`
	Summary models.ReviewSummary `json:"summary"`
}

// Reviews godoc
// GET /api/restaurants/{id}/reviews
// Sadece onaylı değerlendirmeler, en yeni önce.
func (h *RestaurantHandler) Reviews(w http.ResponseWriter, r *http.Request) {
	reviews, summary, err := h.reviewService.ListApproved(r.Context(), r.PathValue("id"))
	if err != nil {
		pkg.Error(w, err)
		return
	}
	pkg.JSON(w, http.StatusOK, reviewList{Reviews: reviews, Summary: summary})
}

// CreateReview godoc
// POST /api/restaurants/{id}/reviews
// Body: { "rating": 4, "comment": "..." }. Auth middleware gerektirir.
func (h *RestaurantHandler) CreateReview(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r)
	if user == nil {
		pkg.ErrorWithMessage(w, http.StatusUnauthorized, "user not found in context")
		return
	}

	var req models.CreateReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		pkg.ErrorWithMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	review, err := h.reviewService.Submit(r.Context(), user, r.PathValue("id"), &req)
	if err != nil {
		pkg.Error(w, err)
		return
	}
	pkg.JSON(w, http.StatusCreated, review)
}
