package pages

import (
	"errors"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/lezzetkesif/lezzetkesif/models"
	"github.com/lezzetkesif/lezzetkesif/pkg"
	"github.com/lezzetkesif/lezzetkesif/pkg/editor"
)

// Admin form akışı (restoran ve blog sekmeleri):
//
//	GET  /admin/{kind}/new        → editör open-for-create, boş form
//	POST /admin/{kind}/new        → Create*, editör kapanır
//	GET  /admin/{kind}/{id}/edit  → editör open-for-edit(id), kayıttan dolu form
//	POST /admin/{kind}/{id}/edit  → Update*, editör kapanır
//	POST /admin/{kind}/editor/close → vazgeç
//
// Doğrulama hatasında editör açık kalır ve form gönderilen değerlerle tekrar gösterilir.

// formKind, form destekleyen sekmeyi döner. Değerlendirmeler formla düzenlenmez.
func formKind(r *http.Request) (models.EntityKind, bool) {
	kind := models.EntityKind(r.PathValue("kind"))
	return kind, kind == models.KindRestaurants || kind == models.KindBlog
}

func notFoundKeyFor(kind models.EntityKind) string {
	if kind == models.KindBlog {
		return "notFound.post"
	}
	return "notFound.restaurant"
}

// AdminNewForm: GET /admin/{kind}/new
func (p *Pages) AdminNewForm(w http.ResponseWriter, r *http.Request) {
	p.openForm(w, r, "")
}

// AdminEditForm: GET /admin/{kind}/{id}/edit
func (p *Pages) AdminEditForm(w http.ResponseWriter, r *http.Request) {
	p.openForm(w, r, r.PathValue("id"))
}

func (p *Pages) openForm(w http.ResponseWriter, r *http.Request, target string) {
	user := p.requireAdmin(w, r)
	if user == nil {
		return
	}
	kind, ok := formKind(r)
	if !ok {
		p.NotFound(w, r)
		return
	}

	if _, err := p.svc.Admin.OpenEditor(r.Context(), user.ID, kind, target); err != nil {
		p.fail(w, r, err, notFoundKeyFor(kind))
		return
	}
	p.renderAdmin(w, r, user, kind, http.StatusOK, nil, "")
}

// AdminCreate: POST /admin/{kind}/new
func (p *Pages) AdminCreate(w http.ResponseWriter, r *http.Request) {
	p.saveForm(w, r, "")
}

// AdminUpdate: POST /admin/{kind}/{id}/edit
func (p *Pages) AdminUpdate(w http.ResponseWriter, r *http.Request) {
	p.saveForm(w, r, r.PathValue("id"))
}

// saveForm, target boşsa yeni kayıt oluşturur, doluysa kaydı günceller.
// Kaydetmeden önce editör ilgili forma açılır; böylece hata durumunda
// form aynı durumda tekrar render edilebilir.
func (p *Pages) saveForm(w http.ResponseWriter, r *http.Request, target string) {
	user := p.requireAdmin(w, r)
	if user == nil {
		return
	}
	kind, ok := formKind(r)
	if !ok {
		p.NotFound(w, r)
		return
	}

	ctx := r.Context()
	if _, err := p.svc.Admin.OpenEditor(ctx, user.ID, kind, target); err != nil {
		p.fail(w, r, err, notFoundKeyFor(kind))
		return
	}
	if err := r.ParseForm(); err != nil {
		p.renderAdmin(w, r, user, kind, http.StatusBadRequest, url.Values{}, p.formError(r, fmt.Errorf("%w: %s", pkg.ErrBadRequest, err.Error())))
		return
	}
	form := r.PostForm

	var err error
	switch {
	case kind == models.KindRestaurants && target == "":
		var req *models.CreateRestaurantRequest
		if req, err = createRestaurantForm(form); err == nil {
			_, err = p.svc.Admin.CreateRestaurant(ctx, user.ID, req)
		}
	case kind == models.KindRestaurants:
		var req *models.UpdateRestaurantRequest
		if req, err = updateRestaurantForm(form); err == nil {
			_, err = p.svc.Admin.UpdateRestaurant(ctx, user.ID, target, req)
		}
	case target == "":
		_, err = p.svc.Admin.CreateBlogPost(ctx, user.ID, createBlogPostForm(form))
	default:
		_, err = p.svc.Admin.UpdateBlogPost(ctx, user.ID, target, updateBlogPostForm(form))
	}
	if err != nil {
		if errors.Is(err, pkg.ErrNotFound) {
			p.fail(w, r, err, notFoundKeyFor(kind))
			return
		}
		p.renderAdmin(w, r, user, kind, pkg.StatusFor(err), form, p.formError(r, err))
		return
	}
	redirect(w, r, adminTabURL(kind))
}

// AdminCloseEditor: POST /admin/{kind}/editor/close
func (p *Pages) AdminCloseEditor(w http.ResponseWriter, r *http.Request) {
	user := p.requireAdmin(w, r)
	if user == nil {
		return
	}

	kind := models.EntityKind(r.PathValue("kind"))
	if _, err := p.svc.Admin.CloseEditor(user.ID, kind); err != nil {
		p.fail(w, r, err, "notFound.title")
		return
	}
	redirect(w, r, adminTabURL(kind))
}

// fillForm, editör durumuna göre formu hazırlar. submitted nil değilse
// (hatalı gönderim) kullanıcının girdiği değerler korunur.
func (d *adminData) fillForm(submitted url.Values) {
	switch d.Editor.State {
	case editor.StateOpenForCreate:
		d.FormAction = "/admin/" + string(d.Tab) + "/new"
	case editor.StateOpenForEdit:
		d.FormAction = "/admin/" + string(d.Tab) + "/" + d.Editor.Target + "/edit"
	default:
		return
	}
	if d.Tab != models.KindRestaurants && d.Tab != models.KindBlog {
		return
	}

	form := submitted
	if form == nil {
		form = url.Values{}
		if d.Editor.State == editor.StateOpenForEdit {
			var found bool
			form, found = d.recordValues(d.Editor.Target)
			if !found {
				// Kayıt bu arada silinmiş; form gösterilmez.
				return
			}
		}
	}
	d.Form, d.ShowForm = form, true
}

func (d *adminData) recordValues(id string) (url.Values, bool) {
	switch d.Tab {
	case models.KindRestaurants:
		for i := range d.Restaurants {
			if d.Restaurants[i].ID == id {
				return restaurantValues(&d.Restaurants[i]), true
			}
		}
	case models.KindBlog:
		for i := range d.Posts {
			if d.Posts[i].ID == id {
				return blogPostValues(&d.Posts[i]), true
			}
		}
	}
	return nil, false
}

func restaurantValues(r *models.Restaurant) url.Values {
	return url.Values{
		"name":         {r.Name},
		"description":  {deref(r.Description)},
		"address":      {r.Address},
		"phone":        {deref(r.Phone)},
		"website":      {deref(r.Website)},
		"image_url":    {deref(r.ImageURL)},
		"cuisine_type": {r.CuisineType},
		"district":     {r.District},
		"price_range":  {string(r.PriceRange)},
		"rating":       {strconv.FormatFloat(r.Rating, 'f', -1, 64)},
		"latitude":     {strconv.FormatFloat(r.Latitude, 'f', -1, 64)},
		"longitude":    {strconv.FormatFloat(r.Longitude, 'f', -1, 64)},
	}
}

func blogPostValues(bp *models.BlogPost) url.Values {
	v := url.Values{
		"title":     {bp.Title},
		"content":   {bp.Content},
		"excerpt":   {deref(bp.Excerpt)},
		"image_url": {deref(bp.ImageURL)},
	}
	if bp.Published {
		v.Set("published", "on")
	}
	return v
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// formFloat, boş alan için nil döner. Ondalık ayırıcı olarak virgül de kabul edilir.
func formFloat(form url.Values, key string) (*float64, error) {
	v := strings.TrimSpace(form.Get(key))
	if v == "" {
		return nil, nil
	}
	f, err := strconv.ParseFloat(strings.ReplaceAll(v, ",", "."), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return nil, fmt.Errorf("%w: %s must be a number", pkg.ErrBadRequest, key)
	}
	return &f, nil
}

func createRestaurantForm(form url.Values) (*models.CreateRestaurantRequest, error) {
	req := &models.CreateRestaurantRequest{
		Name:        form.Get("name"),
		Description: form.Get("description"),
		Address:     form.Get("address"),
		Phone:       form.Get("phone"),
		Website:     form.Get("website"),
		ImageURL:    form.Get("image_url"),
		CuisineType: form.Get("cuisine_type"),
		District:    form.Get("district"),
		PriceRange:  form.Get("price_range"),
	}
	var err error
	if req.Rating, err = formFloat(form, "rating"); err != nil {
		return nil, err
	}
	if req.Latitude, err = formFloat(form, "latitude"); err != nil {
		return nil, err
	}
	if req.Longitude, err = formFloat(form, "longitude"); err != nil {
		return nil, err
	}
	return req, nil
}

// updateRestaurantForm, formdaki tüm metin alanlarını yazar. Boş sayı alanları
// ve boş fiyat aralığı mevcut değeri korur.
func updateRestaurantForm(form url.Values) (*models.UpdateRestaurantRequest, error) {
	str := func(key string) *string {
		v := form.Get(key)
		return &v
	}
	req := &models.UpdateRestaurantRequest{
		Name:        str("name"),
		Description: str("description"),
		Address:     str("address"),
		Phone:       str("phone"),
		Website:     str("website"),
		ImageURL:    str("image_url"),
		CuisineType: str("cuisine_type"),
		District:    str("district"),
	}
	if pr := strings.TrimSpace(form.Get("price_range")); pr != "" {
		req.PriceRange = &pr
	}
	var err error
	if req.Rating, err = formFloat(form, "rating"); err != nil {
		return nil, err
	}
	if req.Latitude, err = formFloat(form, "latitude"); err != nil {
		return nil, err
	}
	if req.Longitude, err = formFloat(form, "longitude"); err != nil {
		return nil, err
	}
	return req, nil
}

func createBlogPostForm(form url.Values) *models.CreateBlogPostRequest {
	return &models.CreateBlogPostRequest{
		Title:     form.Get("title"),
		Content:   form.Get("content"),
		Excerpt:   form.Get("excerpt"),
		ImageURL:  form.Get("image_url"),
		Published: form.Get("published") != "",
	}
}

// updateBlogPostForm: işaretsiz checkbox formda hiç gelmez, bu yüzden
// published her zaman yazılır.
func updateBlogPostForm(form url.Values) *models.UpdateBlogPostRequest {
	title, content := form.Get("title"), form.Get("content")
	excerpt, imageURL := form.Get("excerpt"), form.Get("image_url")
	published := form.Get("published") != ""
	return &models.UpdateBlogPostRequest{
		Title:     &title,
		Content:   &content,
		Excerpt:   &excerpt,
		ImageURL:  &imageURL,
		Published: &published,
	}
}
