package pages

import (
	"net/http"
	"net/url"

	"github.com/lezzetkesif/lezzetkesif/handlers"
	"github.com/lezzetkesif/lezzetkesif/models"
	"github.com/lezzetkesif/lezzetkesif/pkg/editor"
)

// reviewStatusFilters, değerlendirme sekmesindeki durum filtreleri.
var reviewStatusFilters = []string{"all", "pending", "approved", "rejected"}

type deniedData struct {
	Message string
}

type adminData struct {
	Tab           models.EntityKind
	Tabs          []models.EntityKind
	Editor        editor.Snapshot
	Restaurants   []models.Restaurant
	Posts         []models.BlogPost
	Reviews       []models.Review
	StatusFilter  string
	StatusFilters []string
	PriceRanges   []models.PriceRange
	// Names, değerlendirme tablosunda restoran adını göstermek için id → ad.
	Names map[string]string

	// ShowForm, editör open-for-create veya open-for-edit iken true.
	ShowForm   bool
	Form       url.Values
	FormAction string
	FormError  string
}

// requireAdmin, admin değilse uygun sayfayı render eder ve nil döner:
//   - giriş yok → 401 "Erişim Reddedildi"
//   - admin değil → 403 "Yetkisiz Erişim"
func (p *Pages) requireAdmin(w http.ResponseWriter, r *http.Request) *models.User {
	user := handlers.UserFromContext(r)
	if user == nil {
		p.denied(w, r, http.StatusUnauthorized, "admin.unauthenticated")
		return nil
	}
	if !p.svc.Admin.IsAdmin(r.Context(), user.ID) {
		p.denied(w, r, http.StatusForbidden, "admin.unauthorized")
		return nil
	}
	return user
}

func (p *Pages) denied(w http.ResponseWriter, r *http.Request, status int, key string) {
	pd := p.newPage(r, "", nil)
	pd.Title = pd.L.T(key + ".title")
	pd.Data = deniedData{Message: pd.L.T(key + ".message")}
	p.render(w, status, "denied", pd)
}

// Admin: GET /admin?tab=restaurants|blog|reviews&status=
func (p *Pages) Admin(w http.ResponseWriter, r *http.Request) {
	user := p.requireAdmin(w, r)
	if user == nil {
		return
	}

	tab := models.EntityKind(r.URL.Query().Get("tab"))
	if !tab.Valid() {
		tab = models.KindRestaurants
	}
	p.renderAdmin(w, r, user, tab, http.StatusOK, nil, "")
}

// renderAdmin, sekmenin tablosunu ve editör durumuna göre form veya onay
// penceresini render eder. form nil ise düzenleme formu kayıttan doldurulur.
func (p *Pages) renderAdmin(w http.ResponseWriter, r *http.Request, user *models.User, tab models.EntityKind, status int, form url.Values, formErr string) {
	ctx := r.Context()
	data := adminData{
		Tab:           tab,
		Tabs:          []models.EntityKind{models.KindRestaurants, models.KindBlog, models.KindReviews},
		StatusFilters: reviewStatusFilters,
		PriceRanges:   models.PriceRanges,
		FormError:     formErr,
	}

	var err error
	data.Editor, err = p.svc.Admin.EditorState(user.ID, tab)
	if err != nil {
		p.fail(w, r, err, "notFound.title")
		return
	}

	switch tab {
	case models.KindRestaurants:
		data.Restaurants, err = p.svc.Admin.ListRestaurants(ctx)
	case models.KindBlog:
		data.Posts, err = p.svc.Admin.ListBlogPosts(ctx)
	case models.KindReviews:
		data.StatusFilter = r.URL.Query().Get("status")
		if data.StatusFilter == "" {
			data.StatusFilter = "all"
		}
		data.Reviews, err = p.svc.Admin.ListReviews(ctx, data.StatusFilter)
		if err == nil {
			var rests []models.Restaurant
			rests, err = p.svc.Admin.ListRestaurants(ctx)
			data.Names = make(map[string]string, len(rests))
			for _, rest := range rests {
				data.Names[rest.ID] = rest.Name
			}
		}
	}
	if err != nil {
		p.fail(w, r, err, "notFound.title")
		return
	}

	data.fillForm(form)

	pd := p.newPage(r, "", data)
	pd.Title = pd.L.T("admin.title")
	p.render(w, status, "admin", pd)
}

func adminTabURL(kind models.EntityKind) string {
	return "/admin?tab=" + string(kind)
}

// AdminReviewStatus: POST /admin/reviews/{id}/status (form: status)
func (p *Pages) AdminReviewStatus(w http.ResponseWriter, r *http.Request) {
	if p.requireAdmin(w, r) == nil {
		return
	}

	req := &models.UpdateReviewStatusRequest{Status: models.ReviewStatus(r.FormValue("status"))}
	if _, err := p.svc.Admin.UpdateReviewStatus(r.Context(), r.PathValue("id"), req); err != nil {
		p.fail(w, r, err, "notFound.title")
		return
	}
	redirect(w, r, adminTabURL(models.KindReviews))
}

// AdminRequestDelete: POST /admin/{kind}/{id}/delete
// Sadece onay penceresini açar; kayıt silinmez.
func (p *Pages) AdminRequestDelete(w http.ResponseWriter, r *http.Request) {
	user := p.requireAdmin(w, r)
	if user == nil {
		return
	}

	kind := models.EntityKind(r.PathValue("kind"))
	if _, err := p.svc.Admin.RequestDelete(r.Context(), user.ID, kind, r.PathValue("id")); err != nil {
		p.fail(w, r, err, "notFound.title")
		return
	}
	redirect(w, r, adminTabURL(kind))
}

// AdminConfirmDelete: POST /admin/{kind}/delete/confirm
func (p *Pages) AdminConfirmDelete(w http.ResponseWriter, r *http.Request) {
	user := p.requireAdmin(w, r)
	if user == nil {
		return
	}

	kind := models.EntityKind(r.PathValue("kind"))
	if _, err := p.svc.Admin.ConfirmDelete(r.Context(), user.ID, kind); err != nil {
		p.fail(w, r, err, "notFound.title")
		return
	}
	redirect(w, r, adminTabURL(kind))
}

// AdminCancelDelete: POST /admin/{kind}/delete/cancel
func (p *Pages) AdminCancelDelete(w http.ResponseWriter, r *http.Request) {
	user := p.requireAdmin(w, r)
	if user == nil {
		return
	}

	kind := models.EntityKind(r.PathValue("kind"))
	if _, err := p.svc.Admin.CancelDelete(user.ID, kind); err != nil {
		p.fail(w, r, err, "notFound.title")
		return
	}
	redirect(w, r, adminTabURL(kind))
}
