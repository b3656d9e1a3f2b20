package handlers

import (
	"net/http"

	"github.com/lezzetkesif/lezzetkesif/models"
	"github.com/lezzetkesif/lezzetkesif/pkg"
	"github.com/lezzetkesif/lezzetkesif/services"
)

// ProfileHandler, /api/users/me altındaki favori ve değerlendirme endpoint'leri.
// Hepsi auth middleware gerektirir.
type ProfileHandler struct {
	profileService services.ProfileService
	reviewService  services.ReviewService
}

// NewProfileHandler, constructor.
func NewProfileHandler(profileService services.ProfileService, reviewService services.ReviewService) *ProfileHandler {
	return &ProfileHandler{profileService: profileService, reviewService: reviewService}
}

// Favorites godoc
// GET /api/users/me/favorites
func (h *ProfileHandler) Favorites(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r)
	if user == nil {
		pkg.ErrorWithMessage(w, http.StatusUnauthorized, "user not found in context")
		return
	}

	favs, err := h.profileService.Favorites(r.Context(), user.ID)
	if err != nil {
		pkg.Error(w, err)
		return
	}
	pkg.JSON(w, http.StatusOK, favs)
}

// AddFavorite godoc
// POST /api/users/me/favorites/{restaurantId}
func (h *ProfileHandler) AddFavorite(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r)
	if user == nil {
		pkg.ErrorWithMessage(w, http.StatusUnauthorized, "user not found in context")
		return
	}

	if err := h.profileService.AddFavorite(r.Context(), user.ID, r.PathValue("restaurantId")); err != nil {
		pkg.Error(w, err)
		return
	}
	pkg.JSON(w, http.StatusOK, map[string]string{"message": "favorite added"})
}

// RemoveFavorite godoc
// DELETE /api/users/me/favorites/{restaurantId}
func (h *ProfileHandler) RemoveFavorite(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r)
	if user == nil {
		pkg.ErrorWithMessage(w, http.StatusUnauthorized, "user not found in context")
		return
	}

	if err := h.profileService.RemoveFavorite(r.Context(), user.ID, r.PathValue("restaurantId")); err != nil {
		pkg.Error(w, err)
		return
	}
	pkg.JSON(w, http.StatusOK, map[string]string{"message": "favorite removed"})
}

// MyReviews godoc
// GET /api/users/me/reviews
// Kullanıcı kendi değerlendirmelerini durumlarıyla birlikte görür.
func (h *ProfileHandler) MyReviews(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r)
	if user == nil {
		pkg.ErrorWithMessage(w, http.StatusUnauthorized, "user not found in context")
		return
	}

	reviews, err := h.reviewService.ListByUser(r.Context(), user.ID)
	if err != nil {
		pkg.Error(w, err)
		return
	}
	if reviews == nil {
		reviews = []models.Review{}
	}
	pkg.JSON(w, http.StatusOK, reviews)
}
