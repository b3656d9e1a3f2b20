// Package handlers: AdminHandler, yönetim paneli endpoint'leri.
//
// Status hariç tüm endpoint'ler AdminMiddleware ile korunur.
// Silme iki aşamalıdır: önce {kind}/{id}/delete, sonra {kind}/delete/confirm.
package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/lezzetkesif/lezzetkesif/models"
	"github.com/lezzetkesif/lezzetkesif/pkg"
	"github.com/lezzetkesif/lezzetkesif/services"
)

// AdminHandler, admin endpoint'lerini yönetir.
type AdminHandler struct {
	adminService  services.AdminService
	uploadService services.UploadService
	maxUpload     int64
}

// NewAdminHandler, constructor.
func NewAdminHandler(adminService services.AdminService, uploadService services.UploadService, maxUpload int64) *AdminHandler {
	return &AdminHandler{
		adminService:  adminService,
		uploadService: uploadService,
		maxUpload:     maxUpload,
	}
}

// Status godoc
// GET /api/admin/status
// Sadece auth gerektirir; admin olmayan kullanıcı is_admin=false alır.
func (h *AdminHandler) Status(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r)
	if user == nil {
		pkg.ErrorWithMessage(w, http.StatusUnauthorized, "user not found in context")
		return
	}
	pkg.JSON(w, http.StatusOK, models.AdminStatus{IsAdmin: h.adminService.IsAdmin(r.Context(), user.ID)})
}

// ─── Restaurants ───

// ListRestaurants: GET /api/admin/restaurants
func (h *AdminHandler) ListRestaurants(w http.ResponseWriter, r *http.Request) {
	list, err := h.adminService.ListRestaurants(r.Context())
	if err != nil {
		pkg.Error(w, err)
		return
	}
	pkg.JSON(w, http.StatusOK, list)
}

// CreateRestaurant: POST /api/admin/restaurants
func (h *AdminHandler) CreateRestaurant(w http.ResponseWriter, r *http.Request) {
	var req models.CreateRestaurantRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		pkg.ErrorWithMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	rest, err := h.adminService.CreateRestaurant(r.Context(), UserFromContext(r).ID, &req)
	if err != nil {
		pkg.Error(w, err)
		return
	}
	pkg.JSON(w, http.StatusCreated, rest)
}

// UpdateRestaurant: PATCH /api/admin/restaurants/{id}
func (h *AdminHandler) UpdateRestaurant(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateRestaurantRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		pkg.ErrorWithMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	rest, err := h.adminService.UpdateRestaurant(r.Context(), UserFromContext(r).ID, r.PathValue("id"), &req)
	if err != nil {
		pkg.Error(w, err)
		return
	}
	pkg.JSON(w, http.StatusOK, rest)
}

// ─── Blog ───

// ListBlogPosts: GET /api/admin/blog
// Taslaklar dahil.
func (h *AdminHandler) ListBlogPosts(w http.ResponseWriter, r *http.Request) {
	posts, err := h.adminService.ListBlogPosts(r.Context())
	if err != nil {
		pkg.Error(w, err)
		return
	}
	pkg.JSON(w, http.StatusOK, posts)
}

// CreateBlogPost: POST /api/admin/blog
func (h *AdminHandler) CreateBlogPost(w http.ResponseWriter, r *http.Request) {
	var req models.CreateBlogPostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		pkg.ErrorWithMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	post, err := h.adminService.CreateBlogPost(r.Context(), UserFromContext(r).ID, &req)
	if err != nil {
		pkg.Error(w, err)
		return
	}
	pkg.JSON(w, http.StatusCreated, post)
}

// UpdateBlogPost: PATCH /api/admin/blog/{id}
func (h *AdminHandler) UpdateBlogPost(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateBlogPostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		pkg.ErrorWithMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	post, err := h.adminService.UpdateBlogPost(r.Context(), UserFromContext(r).ID, r.PathValue("id"), &req)
	if err != nil {
		pkg.Error(w, err)
		return
	}
	pkg.JSON(w, http.StatusOK, post)
}

// ─── Reviews ───

// ListReviews: GET /api/admin/reviews?status=pending|approved|rejected|all
func (h *AdminHandler) ListReviews(w http.ResponseWriter, r *http.Request) {
	reviews, err := h.adminService.ListReviews(r.Context(), r.URL.Query().Get("status"))
	if err != nil {
		pkg.Error(w, err)
		return
	}
	if reviews == nil {
		reviews = []models.Review{}
	}
	pkg.JSON(w, http.StatusOK, reviews)
}

// UpdateReviewStatus: PATCH /api/admin/reviews/{id}/status
// Body: { "status": "approved" }
func (h *AdminHandler) UpdateReviewStatus(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateReviewStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		pkg.ErrorWithMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	review, err := h.adminService.UpdateReviewStatus(r.Context(), r.PathValue("id"), &req)
	if err != nil {
		pkg.Error(w, err)
		return
	}
	pkg.JSON(w, http.StatusOK, review)
}

// ─── Editor & two-phase delete ───

// editorOpenRequest, editor açma isteği. Target boşsa boş (create) form açılır.
type editorOpenRequest struct {
	Target string `json:"target"`
}

// Editor: GET /api/admin/{kind}/editor
func (h *AdminHandler) Editor(w http.ResponseWriter, r *http.Request) {
	snap, err := h.adminService.EditorState(UserFromContext(r).ID, models.EntityKind(r.PathValue("kind")))
	if err != nil {
		pkg.Error(w, err)
		return
	}
	pkg.JSON(w, http.StatusOK, snap)
}

// OpenEditor: POST /api/admin/{kind}/editor/open
// Body: { "target": "<id>" } veya boş body.
func (h *AdminHandler) OpenEditor(w http.ResponseWriter, r *http.Request) {
	var req editorOpenRequest
	if r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			pkg.ErrorWithMessage(w, http.StatusBadRequest, "invalid request body")
			return
		}
	}

	snap, err := h.adminService.OpenEditor(r.Context(), UserFromContext(r).ID, models.EntityKind(r.PathValue("kind")), req.Target)
	if err != nil {
		pkg.Error(w, err)
		return
	}
	pkg.JSON(w, http.StatusOK, snap)
}

// CloseEditor: POST /api/admin/{kind}/editor/close
func (h *AdminHandler) CloseEditor(w http.ResponseWriter, r *http.Request) {
	snap, err := h.adminService.CloseEditor(UserFromContext(r).ID, models.EntityKind(r.PathValue("kind")))
	if err != nil {
		pkg.Error(w, err)
		return
	}
	pkg.JSON(w, http.StatusOK, snap)
}

// RequestDelete: POST /api/admin/{kind}/{id}/delete
// Kaydı silmez; sadece onay bekleyen duruma geçer.
func (h *AdminHandler) RequestDelete(w http.ResponseWriter, r *http.Request) {
	snap, err := h.adminService.RequestDelete(r.Context(), UserFromContext(r).ID,
		models.EntityKind(r.PathValue("kind")), r.PathValue("id"))
	if err != nil {
		pkg.Error(w, err)
		return
	}
	pkg.JSON(w, http.StatusOK, snap)
}

// ConfirmDelete: POST /api/admin/{kind}/delete/confirm
func (h *AdminHandler) ConfirmDelete(w http.ResponseWriter, r *http.Request) {
	id, err := h.adminService.ConfirmDelete(r.Context(), UserFromContext(r).ID, models.EntityKind(r.PathValue("kind")))
	if err != nil {
		pkg.Error(w, err)
		return
	}
	pkg.JSON(w, http.StatusOK, map[string]string{"id": id, "message": "deleted"})
}

// CancelDelete: POST /api/admin/{kind}/delete/cancel
func (h *AdminHandler) CancelDelete(w http.ResponseWriter, r *http.Request) {
	snap, err := h.adminService.CancelDelete(UserFromContext(r).ID, models.EntityKind(r.PathValue("kind")))
	if err != nil {
		pkg.Error(w, err)
		return
	}
	pkg.JSON(w, http.StatusOK, snap)
}

// ─── Uploads ───

// Upload godoc
// POST /api/admin/uploads
// Content-Type: multipart/form-data, "file" alanı.
// Response: { "url": "/uploads/<uuid>.png" }
func (h *AdminHandler) Upload(w http.ResponseWriter, r *http.Request) {
	// Multipart overhead için 1MB pay bırakılır; asıl boyut kontrolü service'te.
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUpload+1<<20)
	if err := r.ParseMultipartForm(h.maxUpload); err != nil {
		pkg.ErrorWithMessage(w, http.StatusBadRequest, "file too large or invalid form data")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		pkg.ErrorWithMessage(w, http.StatusBadRequest, "file field is required")
		return
	}
	defer file.Close()

	url, err := h.uploadService.UploadImage(r.Context(), header.Filename, header.Size, file)
	if err != nil {
		pkg.Error(w, err)
		return
	}
	pkg.JSON(w, http.StatusCreated, map[string]string{"url": url})
}
