package pages

import (
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/lezzetkesif/lezzetkesif/handlers"
	"github.com/lezzetkesif/lezzetkesif/models"
	"github.com/lezzetkesif/lezzetkesif/pkg"
	"github.com/lezzetkesif/lezzetkesif/pkg/ratelimit"
)

type signInData struct {
	Email string
	Next  string
	Error string
}

// signInURL, giriş sonrası dönülecek sayfayı taşıyan giriş adresi.
func signInURL(next string) string {
	return "/signin?next=" + url.QueryEscape(next)
}

// safeNext, sadece site içi yolları kabul eder ("//evil.com" gibi adresler reddedilir).
func safeNext(next string) string {
	if !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") || strings.HasPrefix(next, "/\\") {
		return "/"
	}
	return next
}

// SignInForm: GET /signin
func (p *Pages) SignInForm(w http.ResponseWriter, r *http.Request) {
	data := signInData{Next: safeNext(r.URL.Query().Get("next"))}
	pd := p.newPage(r, "", data)
	pd.Title = pd.L.T("auth.title")
	p.render(w, http.StatusOK, "signin", pd)
}

// SignIn: POST /signin (form)
// Başarılı girişte lk_access cookie'si yazılır ve "next" sayfasına dönülür.
func (p *Pages) SignIn(w http.ResponseWriter, r *http.Request) {
	data := signInData{
		Email: r.FormValue("email"),
		Next:  safeNext(r.FormValue("next")),
	}
	l := localizer(r)

	ip := ratelimit.ExtractIP(r)
	if p.opts.LoginLimiter != nil && !p.opts.LoginLimiter.Allow(ip) {
		data.Error = l.TWithParams("errors.tooManyRequests", map[string]string{
			"seconds": strconv.Itoa(p.opts.LoginLimiter.RetryAfterSeconds(ip)),
		})
		p.renderSignIn(w, r, http.StatusTooManyRequests, data)
		return
	}

	result, err := p.svc.Auth.SignIn(r.Context(), &models.SignInRequest{
		Email:    data.Email,
		Password: r.FormValue("password"),
	})
	if err != nil {
		status := pkg.StatusFor(err)
		if errors.Is(err, pkg.ErrUnauthorized) || errors.Is(err, pkg.ErrBadRequest) {
			data.Error = l.T("errors.invalidCredentials")
		} else {
			data.Error = l.T("errors.generic")
		}
		p.renderSignIn(w, r, status, data)
		return
	}

	if p.opts.LoginLimiter != nil {
		p.opts.LoginLimiter.Reset(ip)
	}
	handlers.SetAccessCookie(w, result.Session, p.opts.SecureCookie)
	redirect(w, r, data.Next)
}

func (p *Pages) renderSignIn(w http.ResponseWriter, r *http.Request, status int, data signInData) {
	pd := p.newPage(r, "", data)
	pd.Title = pd.L.T("auth.title")
	p.render(w, status, "signin", pd)
}

// SignOut: POST /signout (form)
func (p *Pages) SignOut(w http.ResponseWriter, r *http.Request) {
	handlers.ClearAccessCookie(w, p.opts.SecureCookie)
	redirect(w, r, "/")
}
