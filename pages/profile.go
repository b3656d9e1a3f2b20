package pages

import (
	"net/http"

	"github.com/lezzetkesif/lezzetkesif/handlers"
	"github.com/lezzetkesif/lezzetkesif/models"
)

const tabReviews = "reviews"

type profileData struct {
	Tab       string
	Favorites []models.Restaurant
	Reviews   []models.Review
}

// Profile: GET /profile?tab=favorites|reviews
// Giriş yapmamış kullanıcı ana sayfaya yönlendirilir.
func (p *Pages) Profile(w http.ResponseWriter, r *http.Request) {
	user := handlers.UserFromContext(r)
	if user == nil {
		redirect(w, r, "/")
		return
	}

	ctx := r.Context()
	favorites, err := p.svc.Profile.Favorites(ctx, user.ID)
	if err != nil {
		p.fail(w, r, err, "notFound.title")
		return
	}
	reviews, err := p.svc.Reviews.ListByUser(ctx, user.ID)
	if err != nil {
		p.fail(w, r, err, "notFound.title")
		return
	}

	tab := "favorites"
	if r.URL.Query().Get("tab") == tabReviews {
		tab = tabReviews
	}

	pd := p.newPage(r, "", profileData{Tab: tab, Favorites: favorites, Reviews: reviews})
	pd.Title = pd.L.T("profile.title")
	p.render(w, http.StatusOK, "profile", pd)
}
