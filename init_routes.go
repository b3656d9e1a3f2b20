// Package main: HTTP route registration.
//
// initRoutes, tüm API endpoint'lerini ve HTML sayfalarını mux'a bağlar.
// Middleware chain helper'ları burada tanımlıdır:
//   - auth: JWT token doğrulaması
//   - authAdmin: auth + admins tablosu kontrolü
package main

import (
	"net/http"
	"strings"

	"github.com/lezzetkesif/lezzetkesif/middleware"
	"github.com/lezzetkesif/lezzetkesif/static"
)

// initRoutes, middleware chain'i kurar ve tüm endpoint'leri mux'a bağlar.
//
// Route sıralama kuralı: Go router en spesifik pattern'i seçer. Literal path'ler
// ("/api/restaurants/map") parametrik olanlarla ("/api/restaurants/{id}") çakışmaz.
// HTML tarafındaki "/" catch-all en son ve en az spesifik pattern'dir.
func initRoutes(mux *http.ServeMux, h *Handlers, svcs *Services) *middleware.AuthMiddleware {
	// ─── Middleware ───
	authMw := middleware.NewAuthMiddleware(svcs.Auth)
	adminMw := middleware.NewAdminMiddleware(svcs.Admin)

	// ─── Middleware Chain Helpers ───
	auth := func(handler http.HandlerFunc) http.Handler {
		return authMw.Require(http.HandlerFunc(handler))
	}
	authAdmin := func(handler http.HandlerFunc) http.Handler {
		return authMw.Require(adminMw.Require(http.HandlerFunc(handler)))
	}

	// Health
	mux.HandleFunc("GET /api/health", h.Health.Health)

	// Auth
	mux.HandleFunc("POST /api/auth/signup", h.Auth.SignUp)
	mux.HandleFunc("POST /api/auth/signin", h.Auth.SignIn)
	mux.HandleFunc("POST /api/auth/signout", h.Auth.SignOut)
	mux.HandleFunc("POST /api/auth/refresh", h.Auth.Refresh)

	// User
	mux.Handle("GET /api/users/me", auth(h.Auth.Me))
	mux.Handle("GET /api/users/me/favorites", auth(h.Profile.Favorites))
	mux.Handle("POST /api/users/me/favorites/{restaurantId}", auth(h.Profile.AddFavorite))
	mux.Handle("DELETE /api/users/me/favorites/{restaurantId}", auth(h.Profile.RemoveFavorite))
	mux.Handle("GET /api/users/me/reviews", auth(h.Profile.MyReviews))

	// Restaurants: okuma herkese açık, değerlendirme yazmak giriş gerektirir
	mux.HandleFunc("GET /api/restaurants", h.Restaurant.List)
	mux.HandleFunc("GET /api/restaurants/facets", h.Restaurant.Facets)
	mux.HandleFunc("GET /api/restaurants/map", h.Restaurant.Map)
	mux.HandleFunc("GET /api/restaurants/{id}", h.Restaurant.Get)
	mux.HandleFunc("GET /api/restaurants/{id}/reviews", h.Restaurant.Reviews)
	mux.Handle("POST /api/restaurants/{id}/reviews", auth(h.Restaurant.CreateReview))

	// Blog
	mux.HandleFunc("GET /api/blog", h.Blog.List)
	mux.HandleFunc("GET /api/blog/{id}", h.Blog.Get)
	mux.HandleFunc("GET /api/blog/{id}/comments", h.Blog.Comments)
	mux.Handle("POST /api/blog/{id}/comments", auth(h.Blog.CreateComment))

	// ╔══════════════════════════════════════════╗
	// ║  ADMIN ROUTES                            ║
	// ╚══════════════════════════════════════════╝

	// Status sadece giriş ister; admin olmayan kullanıcı is_admin=false alır.
	mux.Handle("GET /api/admin/status", auth(h.Admin.Status))

	mux.Handle("GET /api/admin/restaurants", authAdmin(h.Admin.ListRestaurants))
	mux.Handle("POST /api/admin/restaurants", authAdmin(h.Admin.CreateRestaurant))
	mux.Handle("PATCH /api/admin/restaurants/{id}", authAdmin(h.Admin.UpdateRestaurant))
	mux.Handle("GET /api/admin/blog", authAdmin(h.Admin.ListBlogPosts))
	mux.Handle("POST /api/admin/blog", authAdmin(h.Admin.CreateBlogPost))
	mux.Handle("PATCH /api/admin/blog/{id}", authAdmin(h.Admin.UpdateBlogPost))
	mux.Handle("GET /api/admin/reviews", authAdmin(h.Admin.ListReviews))
	mux.Handle("PATCH /api/admin/reviews/{id}/status", authAdmin(h.Admin.UpdateReviewStatus))

	// Editor oturumu ve iki aşamalı silme (kind = restaurants | blog | reviews)
	mux.Handle("GET /api/admin/{kind}/editor", authAdmin(h.Admin.Editor))
	mux.Handle("POST /api/admin/{kind}/editor/open", authAdmin(h.Admin.OpenEditor))
	mux.Handle("POST /api/admin/{kind}/editor/close", authAdmin(h.Admin.CloseEditor))
	mux.Handle("POST /api/admin/{kind}/{id}/delete", authAdmin(h.Admin.RequestDelete))
	mux.Handle("POST /api/admin/{kind}/delete/confirm", authAdmin(h.Admin.ConfirmDelete))
	mux.Handle("POST /api/admin/{kind}/delete/cancel", authAdmin(h.Admin.CancelDelete))

	mux.Handle("POST /api/admin/uploads", authAdmin(h.Admin.Upload))

	// ─── Static dosyalar ───
	mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServerFS(static.Assets())))

	// Yüklenen görseller (sadece local backend).
	// Güvenlik: sadece düz dosya isimlerini kabul et, subdirectory traversal'ı engelle.
	if svcs.UploadDir != "" {
		uploads := http.FileServer(http.Dir(svcs.UploadDir))
		mux.Handle("GET "+uploadsURLPrefix+"/", http.StripPrefix(uploadsURLPrefix+"/",
			http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.URL.Path == "" || strings.ContainsAny(r.URL.Path, `/\`) {
					http.NotFound(w, r)
					return
				}
				uploads.ServeHTTP(w, r)
			})))
	}

	// WebSocket: token opsiyonel, query parameter ile gelir (?token=JWT).
	// Tarayıcılar upgrade sırasında custom header gönderemez.
	mux.HandleFunc("GET /ws", h.WS.HandleConnection)

	// ─── HTML sayfaları ───
	h.Pages.Register(mux)

	return authMw
}

