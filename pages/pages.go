// Package pages, sunucu tarafında render edilen HTML sayfalarını yönetir.
//
// Her sayfa bir controller metodudur: service'lerden veriyi toplar,
// sayfa modelini kurar ve html/template ile render eder. Controller'lar
// iş mantığı içermez; JSON API ile aynı service'leri kullanır.
//
// Kullanıcı, AuthMiddleware.Optional tarafından context'e konur. Sayfa
// "giriş yapılmış mı?" kararını kendi verir (formu gizle, yönlendir, 401 sayfası).
package pages

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"net/http"

	"go.uber.org/zap"

	"github.com/lezzetkesif/lezzetkesif/handlers"
	"github.com/lezzetkesif/lezzetkesif/models"
	"github.com/lezzetkesif/lezzetkesif/pkg"
	"github.com/lezzetkesif/lezzetkesif/pkg/i18n"
	"github.com/lezzetkesif/lezzetkesif/pkg/ratelimit"
	"github.com/lezzetkesif/lezzetkesif/services"
)

//go:embed templates/*.html
var templateFS embed.FS

// pageNames, layout ile birlikte parse edilen sayfa şablonları.
var pageNames = []string{
	"home", "restaurants", "restaurant", "blog", "post",
	"profile", "admin", "signin", "denied", "notfound", "error",
}

// Services, controller'ların ihtiyaç duyduğu service'ler.
type Services struct {
	Auth        services.AuthService
	Restaurants services.RestaurantService
	Blog        services.BlogService
	Reviews     services.ReviewService
	Comments    services.CommentService
	Profile     services.ProfileService
	Admin       services.AdminService
}

// Options, sayfa katmanının opsiyonel ayarları.
type Options struct {
	SecureCookie bool
	// LoginLimiter, giriş formu için IP bazlı limit. nil ise limit yok.
	// JSON API ile aynı limiter paylaşılır.
	LoginLimiter *ratelimit.LoginRateLimiter
}

// Pages, HTML sayfa controller'ları.
type Pages struct {
	svc       Services
	opts      Options
	templates map[string]*template.Template
	log       *zap.Logger
}

// New, şablonları parse eder. Şablon hatası başlangıçta yakalanır.
func New(svc Services, logger *zap.Logger, opts Options) (*Pages, error) {
	templates := make(map[string]*template.Template, len(pageNames))
	for _, name := range pageNames {
		t, err := template.New("layout.html").Funcs(funcMap).ParseFS(templateFS,
			"templates/layout.html", "templates/"+name+".html")
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s template: %w", name, err)
		}
		templates[name] = t
	}

	return &Pages{
		svc:       svc,
		opts:      opts,
		templates: templates,
		log:       logger.Named("pages"),
	}, nil
}

// pageData, her şablona verilen ortak model. Sayfaya özel veri Data'dadır.
type pageData struct {
	L       *i18n.Localizer
	User    *models.User
	IsAdmin bool
	Path    string
	Title   string
	Data    any
}

func (p *Pages) newPage(r *http.Request, title string, data any) *pageData {
	user := handlers.UserFromContext(r)
	pd := &pageData{
		L:     localizer(r),
		User:  user,
		Path:  r.URL.Path,
		Title: title,
		Data:  data,
	}
	if user != nil {
		pd.IsAdmin = p.svc.Admin.IsAdmin(r.Context(), user.ID)
	}
	return pd
}

// localizer, Accept-Language'a göre dil seçer; varsayılan Türkçe.
func localizer(r *http.Request) *i18n.Localizer {
	return i18n.NewLocalizer(i18n.DetectLanguage(r.Header.Get("Accept-Language")))
}

// render, şablonu önce buffer'a yazar; yarım kalmış HTML gönderilmez.
func (p *Pages) render(w http.ResponseWriter, status int, name string, pd *pageData) {
	t, ok := p.templates[name]
	if !ok {
		p.log.Error("unknown template", zap.String("template", name))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	var buf bytes.Buffer
	if err := t.Execute(&buf, pd); err != nil {
		p.log.Error("template render failed", zap.String("template", name), zap.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

// notFoundData, 404 sayfasının mesajı.
type notFoundData struct {
	Message string
}

// NotFound, eşleşmeyen tüm yollar için 404 sayfası.
func (p *Pages) NotFound(w http.ResponseWriter, r *http.Request) {
	p.notFound(w, r, "notFound.title")
}

func (p *Pages) notFound(w http.ResponseWriter, r *http.Request, messageKey string) {
	pd := p.newPage(r, "", nil)
	pd.Title = pd.L.T("notFound.title")
	pd.Data = notFoundData{Message: pd.L.T(messageKey)}
	p.render(w, http.StatusNotFound, "notfound", pd)
}

// fail, service hatasını sayfaya çevirir. ErrNotFound → 404 sayfası,
// diğerleri loglanıp genel hata sayfası.
func (p *Pages) fail(w http.ResponseWriter, r *http.Request, err error, notFoundKey string) {
	if errors.Is(err, pkg.ErrNotFound) {
		p.notFound(w, r, notFoundKey)
		return
	}

	status := pkg.StatusFor(err)
	if status >= http.StatusInternalServerError {
		p.log.Error("page failed", zap.String("path", r.URL.Path), zap.Error(err))
	}
	pd := p.newPage(r, "", nil)
	pd.Title = pd.L.T("errors.generic")
	p.render(w, status, "error", pd)
}

// redirect, POST sonrası GET'e yönlendirir (PRG).
func redirect(w http.ResponseWriter, r *http.Request, to string) {
	http.Redirect(w, r, to, http.StatusSeeOther)
}
