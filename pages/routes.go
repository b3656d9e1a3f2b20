package pages

import "net/http"

// Register, HTML route'larını mux'a bağlar. "/" eşleşmeyen her yolu
// 404 sayfasına düşürür; bu yüzden API route'ları daha spesifik kalmalıdır.
//
// Kullanıcıyı context'e koymak için mux, AuthMiddleware.Optional ile sarılmalıdır.
func (p *Pages) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /{$}", p.Home)

	mux.HandleFunc("GET /restaurants", p.Restaurants)
	mux.HandleFunc("GET /restaurants/{id}", p.Restaurant)
	mux.HandleFunc("POST /restaurants/{id}/reviews", p.SubmitReview)
	mux.HandleFunc("POST /restaurants/{id}/favorite", p.ToggleFavorite)

	mux.HandleFunc("GET /blog", p.Blog)
	mux.HandleFunc("GET /blog/{id}", p.Post)
	mux.HandleFunc("POST /blog/{id}/comments", p.SubmitComment)

	mux.HandleFunc("GET /profile", p.Profile)

	mux.HandleFunc("GET /admin", p.Admin)
	mux.HandleFunc("GET /admin/{kind}/new", p.AdminNewForm)
	mux.HandleFunc("POST /admin/{kind}/new", p.AdminCreate)
	mux.HandleFunc("GET /admin/{kind}/{id}/edit", p.AdminEditForm)
	mux.HandleFunc("POST /admin/{kind}/{id}/edit", p.AdminUpdate)
	mux.HandleFunc("POST /admin/{kind}/editor/close", p.AdminCloseEditor)
	mux.HandleFunc("POST /admin/reviews/{id}/status", p.AdminReviewStatus)
	mux.HandleFunc("POST /admin/{kind}/{id}/delete", p.AdminRequestDelete)
	mux.HandleFunc("POST /admin/{kind}/delete/confirm", p.AdminConfirmDelete)
	mux.HandleFunc("POST /admin/{kind}/delete/cancel", p.AdminCancelDelete)

	mux.HandleFunc("GET /signin", p.SignInForm)
	mux.HandleFunc("POST /signin", p.SignIn)
	mux.HandleFunc("POST /signout", p.SignOut)

	mux.HandleFunc("/", p.NotFound)
}
