package middleware

import (
	"context"
	"net/http"

	"github.com/lezzetkesif/lezzetkesif/handlers"
	"github.com/lezzetkesif/lezzetkesif/pkg"
)

// AdminChecker, kullanıcının admin olup olmadığını söyler.
// services.AdminService bu interface'i sağlar.
type AdminChecker interface {
	IsAdmin(ctx context.Context, userID string) bool
}

// AdminMiddleware, admin endpoint'lerini korur.
//
// AuthMiddleware.Require'dan SONRA çalışmalıdır, çünkü context'teki
// kullanıcıya ihtiyaç duyar. Kontrol her istekte admins tablosuna yapılır
// (kısa TTL cache ile); token claim'lerine güvenilmez, böylece admin
// yetkisi kaldırılan kullanıcı bir sonraki cache süresinde erişimini kaybeder.
type AdminMiddleware struct {
	checker AdminChecker
}

// NewAdminMiddleware, constructor.
func NewAdminMiddleware(checker AdminChecker) *AdminMiddleware {
	return &AdminMiddleware{checker: checker}
}

// Require, admin olmayan kullanıcıya 403, kullanıcı yoksa 401 döner.
func (m *AdminMiddleware) Require(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user := handlers.UserFromContext(r)
		if user == nil {
			pkg.ErrorWithMessage(w, http.StatusUnauthorized, "user not found in context")
			return
		}

		if !m.checker.IsAdmin(r.Context(), user.ID) {
			pkg.ErrorWithMessage(w, http.StatusForbidden, "admin access required")
			return
		}

		next.ServeHTTP(w, r)
	})
}
