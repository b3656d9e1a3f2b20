// Package handlers, HTTP request/response işlemlerini yönetir.
//
// Handler "ince" olmalı:
//  1. Request body'yi parse et (JSON → struct)
//  2. Service katmanını çağır
//  3. Sonucu pkg.JSON / pkg.Error ile döndür
//
// Handler iş mantığı içermez ve doğrudan veriye erişmez.
package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/lezzetkesif/lezzetkesif/models"
	"github.com/lezzetkesif/lezzetkesif/pkg"
	"github.com/lezzetkesif/lezzetkesif/pkg/ratelimit"
	"github.com/lezzetkesif/lezzetkesif/services"
)

// contextKey, context'te değer taşımak için kullanılan key tipi.
// Başka paketlerin string key'leriyle çakışmaz.
type contextKey string

// UserContextKey, auth middleware'in context'e koyduğu *models.User.
const UserContextKey contextKey = "user"

// AccessCookieName, sayfa katmanının access token'ı okuduğu cookie.
// signin/signup yazar, signout siler.
const AccessCookieName = "lk_access"

// UserFromContext, context'teki kullanıcıyı döner; yoksa nil.
func UserFromContext(r *http.Request) *models.User {
	user, _ := r.Context().Value(UserContextKey).(*models.User)
	return user
}

// AuthHandler, auth endpoint'lerini yönetir.
type AuthHandler struct {
	authService  services.AuthService
	loginLimiter *ratelimit.LoginRateLimiter
	secureCookie bool
}

// NewAuthHandler, constructor. loginLimiter nil ise rate limiting devre dışıdır.
func NewAuthHandler(authService services.AuthService, loginLimiter *ratelimit.LoginRateLimiter, secureCookie bool) *AuthHandler {
	return &AuthHandler{
		authService:  authService,
		loginLimiter: loginLimiter,
		secureCookie: secureCookie,
	}
}

// SignUp godoc
// POST /api/auth/signup
// Body: { "email": "...", "password": "...", "full_name": "..." }
func (h *AuthHandler) SignUp(w http.ResponseWriter, r *http.Request) {
	var req models.SignUpRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		pkg.ErrorWithMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.authService.SignUp(r.Context(), &req)
	if err != nil {
		pkg.Error(w, err)
		return
	}

	SetAccessCookie(w, result.Session, h.secureCookie)
	pkg.JSON(w, http.StatusCreated, result)
}

// SignIn godoc
// POST /api/auth/signin
//
// IP bazlı brute-force koruması: limit aşılınca 429 + Retry-After.
// Başarılı giriş sayacı sıfırlar.
func (h *AuthHandler) SignIn(w http.ResponseWriter, r *http.Request) {
	ip := ratelimit.ExtractIP(r)
	if h.loginLimiter != nil && !h.loginLimiter.Allow(ip) {
		retryAfter := h.loginLimiter.RetryAfterSeconds(ip)
		w.Header().Set("Retry-After", strconv.Itoa(retryAfter))
		pkg.ErrorWithMessage(w, http.StatusTooManyRequests,
			"too many sign-in attempts, please try again in "+strconv.Itoa(retryAfter)+" seconds")
		return
	}

	var req models.SignInRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		pkg.ErrorWithMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.authService.SignIn(r.Context(), &req)
	if err != nil {
		pkg.Error(w, err)
		return
	}

	if h.loginLimiter != nil {
		h.loginLimiter.Reset(ip)
	}

	SetAccessCookie(w, result.Session, h.secureCookie)
	pkg.JSON(w, http.StatusOK, result)
}

// SignOut godoc
// POST /api/auth/signout
// Body: { "refresh_token": "..." }. Body boş olsa bile cookie silinir.
func (h *AuthHandler) SignOut(w http.ResponseWriter, r *http.Request) {
	var req models.RefreshRequest
	_ = json.NewDecoder(r.Body).Decode(&req)

	if req.Validate() == nil {
		if err := h.authService.SignOut(r.Context(), req.RefreshToken); err != nil {
			pkg.Error(w, err)
			return
		}
	}

	ClearAccessCookie(w, h.secureCookie)
	pkg.JSON(w, http.StatusOK, map[string]string{"message": "signed out"})
}

// Refresh godoc
// POST /api/auth/refresh
// Body: { "refresh_token": "..." }
func (h *AuthHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	var req models.RefreshRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		pkg.ErrorWithMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		pkg.ErrorWithMessage(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.authService.Refresh(r.Context(), req.RefreshToken)
	if err != nil {
		pkg.Error(w, err)
		return
	}

	SetAccessCookie(w, result.Session, h.secureCookie)
	pkg.JSON(w, http.StatusOK, result)
}

// Me godoc
// GET /api/users/me
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r)
	if user == nil {
		pkg.ErrorWithMessage(w, http.StatusUnauthorized, "user not found in context")
		return
	}
	pkg.JSON(w, http.StatusOK, user)
}

// SetAccessCookie, access token'ı HttpOnly cookie olarak yazar.
// Sayfa katmanının giriş formu da bunu kullanır.
func SetAccessCookie(w http.ResponseWriter, tokens *models.AuthTokens, secure bool) {
	http.SetCookie(w, &http.Cookie{
		Name:     AccessCookieName,
		Value:    tokens.AccessToken,
		Path:     "/",
		MaxAge:   tokens.ExpiresIn,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// ClearAccessCookie, access token cookie'sini siler.
func ClearAccessCookie(w http.ResponseWriter, secure bool) {
	http.SetCookie(w, &http.Cookie{
		Name:     AccessCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
}
