package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/lezzetkesif/lezzetkesif/models"
	"github.com/lezzetkesif/lezzetkesif/pkg"
	"github.com/lezzetkesif/lezzetkesif/services"
)

// BlogHandler, blog okuma ve yorum endpoint'leri.
type BlogHandler struct {
	blogService    services.BlogService
	commentService services.CommentService
}

// NewBlogHandler, constructor.
func NewBlogHandler(blogService services.BlogService, commentService services.CommentService) *BlogHandler {
	return &BlogHandler{blogService: blogService, commentService: commentService}
}

// blogPostView, API'de yazıya okuma süresi eklenmiş hali.
type blogPostView struct {
	models.BlogPost
	ReadingMinutes int `json:"reading_minutes"`
}

func newBlogPostView(p models.BlogPost) blogPostView {
	return blogPostView{BlogPost: p, ReadingMinutes: p.ReadingMinutes()}
}

// List godoc
// GET /api/blog
func (h *BlogHandler) List(w http.ResponseWriter, r *http.Request) {
	posts, err := h.blogService.ListPublished(r.Context())
	if err != nil {
		pkg.Error(w, err)
		return
	}
	out := make([]blogPostView, 0, len(posts))
	for _, p := range posts {
		out = append(out, newBlogPostView(p))
	}
	pkg.JSON(w, http.StatusOK, out)
}

// Get godoc
// GET /api/blog/{id}
func (h *BlogHandler) Get(w http.ResponseWriter, r *http.Request) {
	post, err := h.blogService.GetPublished(r.Context(), r.PathValue("id"))
	if err != nil {
		pkg.Error(w, err)
		return
	}
	pkg.JSON(w, http.StatusOK, newBlogPostView(*post))
}

// Comments godoc
// GET /api/blog/{id}/comments
func (h *BlogHandler) Comments(w http.ResponseWriter, r *http.Request) {
	comments, err := h.commentService.ListForPost(r.Context(), r.PathValue("id"))
	if err != nil {
		pkg.Error(w, err)
		return
	}
	if comments == nil {
		comments = []models.Comment{}
	}
	pkg.JSON(w, http.StatusOK, comments)
}

// CreateComment godoc
// POST /api/blog/{id}/comments
// Body: { "content": "..." }. Auth middleware gerektirir.
func (h *BlogHandler) CreateComment(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r)
	if user == nil {
		pkg.ErrorWithMessage(w, http.StatusUnauthorized, "user not found in context")
		return
	}

	var req models.CreateCommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		pkg.ErrorWithMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	comment, err := h.commentService.Submit(r.Context(), user, r.PathValue("id"), &req)
	if err != nil {
		pkg.Error(w, err)
		return
	}
	pkg.JSON(w, http.StatusCreated, comment)
}
