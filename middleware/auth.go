// Package middleware, HTTP request pipeline'ına eklenen ara katmanları barındırır.
//
// Go'da middleware bir fonksiyondur:
//
//	func(next http.Handler) http.Handler
//
// Middleware kendi işini yapar (ör: token doğrula), sonra next'i çağırır.
// Hata varsa next çağrılmaz ve request burada durur.
package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/lezzetkesif/lezzetkesif/handlers"
	"github.com/lezzetkesif/lezzetkesif/models"
	"github.com/lezzetkesif/lezzetkesif/pkg"
	"github.com/lezzetkesif/lezzetkesif/services"
)

// AuthMiddleware, JWT token doğrulama middleware'ı.
//
// Token iki yerden okunur:
//   - Authorization: Bearer <token> (API client'ları)
//   - lk_access cookie'si (HTML sayfaları)
type AuthMiddleware struct {
	authService services.AuthService
}

// NewAuthMiddleware, constructor.
func NewAuthMiddleware(authService services.AuthService) *AuthMiddleware {
	return &AuthMiddleware{authService: authService}
}

// Require, token zorunlu kılan middleware.
// Token yoksa veya geçersizse → 401 Unauthorized.
func (m *AuthMiddleware) Require(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tokenString, err := tokenFromRequest(r)
		if err != nil {
			pkg.Error(w, err)
			return
		}

		user, err := m.authService.UserFromToken(r.Context(), tokenString)
		if err != nil {
			pkg.Error(w, err)
			return
		}

		next.ServeHTTP(w, withUser(r, user))
	})
}

// Optional, token varsa ve geçerliyse kullanıcıyı context'e ekler.
// Token yok veya geçersizse request anonim olarak devam eder; asla 401 dönmez.
// Sayfa controller'ları "giriş yapılmış mı?" kararını kendileri verir.
func (m *AuthMiddleware) Optional(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tokenString, err := tokenFromRequest(r)
		if err != nil {
			next.ServeHTTP(w, r)
			return
		}

		user, err := m.authService.UserFromToken(r.Context(), tokenString)
		if err != nil {
			next.ServeHTTP(w, r)
			return
		}

		next.ServeHTTP(w, withUser(r, user))
	})
}

// tokenFromRequest, önce Authorization header'ına, yoksa cookie'ye bakar.
// Header var ama formatı yanlışsa cookie'ye düşülmez.
func tokenFromRequest(r *http.Request) (string, error) {
	if authHeader := r.Header.Get("Authorization"); authHeader != "" {
		if !strings.HasPrefix(authHeader, "Bearer ") {
			return "", errInvalidAuthFormat
		}
		return strings.TrimPrefix(authHeader, "Bearer "), nil
	}

	if c, err := r.Cookie(handlers.AccessCookieName); err == nil && c.Value != "" {
		return c.Value, nil
	}
	return "", errAuthRequired
}

func withUser(r *http.Request, user *models.User) *http.Request {
	ctx := context.WithValue(r.Context(), handlers.UserContextKey, user)
	return r.WithContext(ctx)
}
