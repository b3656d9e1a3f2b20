package pages

import (
	"net/http"

	"github.com/lezzetkesif/lezzetkesif/models"
)

const (
	featuredCount    = 3
	latestPostsCount = 2
)

type homeData struct {
	Featured        []models.Restaurant
	Posts           []models.BlogPost
	RestaurantCount int
	ReviewCount     int
	PostCount       int
}

// Home: GET /
// Öne çıkan ilk 3 restoran, son 2 yazı ve sayaçlar.
func (p *Pages) Home(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	featured, err := p.svc.Restaurants.Featured(ctx, featuredCount)
	if err != nil {
		p.fail(w, r, err, "notFound.title")
		return
	}
	restaurantCount, err := p.svc.Restaurants.Count(ctx)
	if err != nil {
		p.fail(w, r, err, "notFound.title")
		return
	}
	reviewCount, err := p.svc.Reviews.CountApproved(ctx)
	if err != nil {
		p.fail(w, r, err, "notFound.title")
		return
	}
	posts, err := p.svc.Blog.ListPublished(ctx)
	if err != nil {
		p.fail(w, r, err, "notFound.title")
		return
	}

	data := homeData{
		Featured:        featured,
		Posts:           posts[:min(latestPostsCount, len(posts))],
		RestaurantCount: restaurantCount,
		ReviewCount:     reviewCount,
		PostCount:       len(posts),
	}
	pd := p.newPage(r, "", data)
	pd.Title = pd.L.T("app.name")
	p.render(w, http.StatusOK, "home", pd)
}
