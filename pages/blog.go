package pages

import (
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/lezzetkesif/lezzetkesif/handlers"
	"github.com/lezzetkesif/lezzetkesif/models"
	"github.com/lezzetkesif/lezzetkesif/pkg"
)

const relatedPostsCount = 2

type blogData struct {
	Posts []models.BlogPost
}

// Blog: GET /blog
func (p *Pages) Blog(w http.ResponseWriter, r *http.Request) {
	posts, err := p.svc.Blog.ListPublished(r.Context())
	if err != nil {
		p.fail(w, r, err, "notFound.post")
		return
	}

	pd := p.newPage(r, "", blogData{Posts: posts})
	pd.Title = pd.L.T("blog.title")
	p.render(w, http.StatusOK, "blog", pd)
}

type postData struct {
	Post     *models.BlogPost
	Comments []models.Comment
	Related  []models.BlogPost
	Error    string
}

// Post: GET /blog/{id}
// Taslak veya bilinmeyen id → 404 "yazı bulunamadı" sayfası.
func (p *Pages) Post(w http.ResponseWriter, r *http.Request) {
	p.renderPost(w, r, http.StatusOK, "")
}

func (p *Pages) renderPost(w http.ResponseWriter, r *http.Request, status int, errMsg string) {
	ctx := r.Context()
	id := r.PathValue("id")

	post, err := p.svc.Blog.GetPublished(ctx, id)
	if err != nil {
		p.fail(w, r, err, "notFound.post")
		return
	}
	comments, err := p.svc.Comments.ListForPost(ctx, id)
	if err != nil {
		p.fail(w, r, err, "notFound.post")
		return
	}
	related, err := p.svc.Blog.Related(ctx, id, relatedPostsCount)
	if err != nil {
		p.fail(w, r, err, "notFound.post")
		return
	}

	pd := p.newPage(r, post.Title, postData{Post: post, Comments: comments, Related: related, Error: errMsg})
	p.render(w, status, "post", pd)
}

// SubmitComment: POST /blog/{id}/comments (form)
func (p *Pages) SubmitComment(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	user := handlers.UserFromContext(r)
	if user == nil {
		redirect(w, r, signInURL("/blog/"+id))
		return
	}

	req := &models.CreateCommentRequest{Content: r.FormValue("content")}
	if _, err := p.svc.Comments.Submit(r.Context(), user, id, req); err != nil {
		if errors.Is(err, pkg.ErrNotFound) {
			p.fail(w, r, err, "notFound.post")
			return
		}
		p.renderPost(w, r, pkg.StatusFor(err), p.formError(r, err))
		return
	}

	redirect(w, r, "/blog/"+id+"#comments")
}

// formError, form gönderim hatasını kullanıcıya gösterilecek mesaja çevirir.
func (p *Pages) formError(r *http.Request, err error) string {
	l := localizer(r)
	switch {
	case errors.Is(err, pkg.ErrTooManyRequests):
		return l.T("errors.slowDown")
	case errors.Is(err, pkg.ErrBadRequest):
		return l.T("errors.invalidInput")
	default:
		p.log.Warn("form submission failed", zap.String("path", r.URL.Path), zap.Error(err))
		return l.T("errors.generic")
	}
}
