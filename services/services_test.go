package services

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"
	"go.uber.org/zap/zaptest/observer"

	"github.com/lezzetkesif/lezzetkesif/mockdata"
	"github.com/lezzetkesif/lezzetkesif/models"
	"github.com/lezzetkesif/lezzetkesif/pkg"
	"github.com/lezzetkesif/lezzetkesif/pkg/cache"
	"github.com/lezzetkesif/lezzetkesif/pkg/editor"
	"github.com/lezzetkesif/lezzetkesif/pkg/ratelimit"
	"github.com/lezzetkesif/lezzetkesif/repository"
	"github.com/lezzetkesif/lezzetkesif/ws"
)

// recordingHub, yayınlanan event op'larını kaydeder.
type recordingHub struct {
	mu  sync.Mutex
	ops []string
}

func (h *recordingHub) BroadcastToAll(e ws.Event) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.ops = append(h.ops, e.Op)
}

func (h *recordingHub) BroadcastToUser(_ string, e ws.Event) { h.BroadcastToAll(e) }

func (h *recordingHub) Ops() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]string(nil), h.ops...)
}

type fixture struct {
	users       repository.UserRepository
	sessions    repository.SessionRepository
	admins      repository.AdminRepository
	restaurants repository.RestaurantRepository
	posts       repository.BlogPostRepository
	reviews     repository.ReviewRepository
	comments    repository.CommentRepository
	favorites   repository.FavoriteRepository
	hub         *recordingHub
}

// newFixture, mock veri setiyle dolu bellek içi repository'ler kurar.
// Şifre hash'i sadece "1" numaralı kullanıcı için gerçek bcrypt'tir.
func newFixture(t *testing.T) *fixture {
	t.Helper()
	ds, err := mockdata.Load()
	require.NoError(t, err)

	users := make([]models.User, 0, len(ds.Users))
	for _, su := range ds.Users {
		u := su.User
		u.PasswordHash = "unused"
		if u.ID == "1" {
			u.PasswordHash, err = HashPassword(su.Password)
			require.NoError(t, err)
		}
		users = append(users, u)
	}

	return &fixture{
		users:       repository.NewMemoryUserRepo(users),
		sessions:    repository.NewMemorySessionRepo(),
		admins:      repository.NewMemoryAdminRepo(ds.Admins),
		restaurants: repository.NewMemoryRestaurantRepo(ds.Restaurants),
		posts:       repository.NewMemoryBlogPostRepo(ds.BlogPosts),
		reviews:     repository.NewMemoryReviewRepo(ds.Reviews),
		comments:    repository.NewMemoryCommentRepo(ds.Comments),
		favorites:   repository.NewMemoryFavoriteRepo(),
		hub:         &recordingHub{},
	}
}

func (f *fixture) admin(t *testing.T, logger *zap.Logger) AdminService {
	return NewAdminService(f.admins, f.restaurants, f.posts, f.reviews, f.comments, f.favorites,
		f.hub, cache.New[string, bool](time.Minute, 0), logger)
}

func testUser() *models.User {
	name := "Test User"
	return &models.User{ID: "1", Email: "test@example.com", DisplayName: &name}
}

// ─── Auth ───

func TestAuthSignInWithSeedUser(t *testing.T) {
	f := newFixture(t)
	auth := NewAuthService(f.users, f.sessions, nil, zaptest.NewLogger(t), "secret", 15, 7)
	ctx := context.Background()

	res, err := auth.SignIn(ctx, &models.SignInRequest{Email: "Test@Example.com", Password: "password"})
	require.NoError(t, err)
	assert.Equal(t, "1", res.User.ID)
	assert.Empty(t, res.User.PasswordHash)
	assert.Equal(t, 15*60, res.Session.ExpiresIn)

	claims, err := auth.ValidateAccessToken(res.Session.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "1", claims.UserID)

	u, err := auth.UserFromToken(ctx, res.Session.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "Test User", u.Name())

	_, err = auth.SignIn(ctx, &models.SignInRequest{Email: "test@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, pkg.ErrUnauthorized)

	_, err = auth.SignIn(ctx, &models.SignInRequest{Email: "nobody@example.com", Password: "password"})
	assert.ErrorIs(t, err, pkg.ErrUnauthorized)
}

func TestAuthRefreshRotatesAndSignOutRevokes(t *testing.T) {
	f := newFixture(t)
	auth := NewAuthService(f.users, f.sessions, nil, zaptest.NewLogger(t), "secret", 15, 7)
	ctx := context.Background()

	res, err := auth.SignIn(ctx, &models.SignInRequest{Email: "test@example.com", Password: "password"})
	require.NoError(t, err)

	refreshed, err := auth.Refresh(ctx, res.Session.RefreshToken)
	require.NoError(t, err)
	assert.NotEqual(t, res.Session.RefreshToken, refreshed.Session.RefreshToken)

	_, err = auth.Refresh(ctx, res.Session.RefreshToken)
	assert.ErrorIs(t, err, pkg.ErrUnauthorized, "refresh tokens are single use")

	require.NoError(t, auth.SignOut(ctx, refreshed.Session.RefreshToken))
	_, err = auth.Refresh(ctx, refreshed.Session.RefreshToken)
	assert.ErrorIs(t, err, pkg.ErrUnauthorized)

	assert.NoError(t, auth.SignOut(ctx, "unknown"))
}

type recordingMailer struct {
	sent chan string
}

func (m *recordingMailer) SendWelcome(_ context.Context, to, _ string) error {
	m.sent <- to
	return nil
}

func TestAuthSignUp(t *testing.T) {
	f := newFixture(t)
	mailer := &recordingMailer{sent: make(chan string, 1)}
	auth := NewAuthService(f.users, f.sessions, mailer, zaptest.NewLogger(t), "secret", 15, 7)
	ctx := context.Background()

	res, err := auth.SignUp(ctx, &models.SignUpRequest{Email: "New@Example.com", Password: "secret1", FullName: "Yeni Üye"})
	require.NoError(t, err)
	assert.Equal(t, "new@example.com", res.User.Email)
	assert.Equal(t, "Yeni Üye", res.User.Name())

	select {
	case to := <-mailer.sent:
		assert.Equal(t, "new@example.com", to)
	case <-time.After(2 * time.Second):
		t.Fatal("welcome email not sent")
	}

	_, err = auth.SignUp(ctx, &models.SignUpRequest{Email: "new@example.com", Password: "secret1"})
	assert.ErrorIs(t, err, pkg.ErrAlreadyExists)

	_, err = auth.SignUp(ctx, &models.SignUpRequest{Email: "x@example.com", Password: "123"})
	assert.ErrorIs(t, err, pkg.ErrBadRequest)
}

func TestValidateAccessTokenRejectsForeignSecret(t *testing.T) {
	f := newFixture(t)
	a := NewAuthService(f.users, f.sessions, nil, zap.NewNop(), "secret-a", 15, 7)
	b := NewAuthService(f.users, f.sessions, nil, zap.NewNop(), "secret-b", 15, 7)

	res, err := a.SignIn(context.Background(), &models.SignInRequest{Email: "test@example.com", Password: "password"})
	require.NoError(t, err)

	_, err = b.ValidateAccessToken(res.Session.AccessToken)
	assert.ErrorIs(t, err, pkg.ErrUnauthorized)
	_, err = b.ValidateAccessToken("not-a-jwt")
	assert.ErrorIs(t, err, pkg.ErrUnauthorized)
}

// ─── Restaurants & blog ───

func TestRestaurantBrowse(t *testing.T) {
	f := newFixture(t)
	svc := NewRestaurantService(f.restaurants, 9)
	ctx := context.Background()

	view, b, err := svc.Browse(ctx, map[string][]string{"cuisine": {"Kebap"}})
	require.NoError(t, err)
	assert.Equal(t, 2, view.FilteredCount)
	assert.Equal(t, 1, b.Page())
	require.Len(t, view.Page.Items, 2)
	assert.Equal(t, "Aspava", view.Page.Items[0].Name)
	assert.Equal(t, "Kebapçı Selim Usta", view.Page.Items[1].Name)

	view, _, err = svc.Browse(ctx, map[string][]string{"page_size": {"2"}, "page": {"3"}})
	require.NoError(t, err)
	assert.Equal(t, 3, view.Page.TotalPages)
	assert.Len(t, view.Page.Items, 1)

	fc, err := svc.Map(ctx, map[string][]string{"q": {"pizza"}})
	require.NoError(t, err)
	require.Len(t, fc.Features, 1)
	assert.Equal(t, "Pizza House", fc.Features[0].Properties["name"])

	featured, err := svc.Featured(ctx, 3)
	require.NoError(t, err)
	assert.Len(t, featured, 3)
}

func TestBlogHidesDrafts(t *testing.T) {
	f := newFixture(t)
	admin := f.admin(t, zaptest.NewLogger(t))
	blog := NewBlogService(f.posts)
	ctx := context.Background()

	draft, err := admin.CreateBlogPost(ctx, "1", &models.CreateBlogPostRequest{Title: "Taslak", Content: "henüz değil"})
	require.NoError(t, err)
	assert.Equal(t, "1", draft.AuthorID)
	assert.False(t, draft.Published)

	_, err = blog.GetPublished(ctx, draft.ID)
	assert.ErrorIs(t, err, pkg.ErrNotFound)
	_, err = blog.GetPublished(ctx, "unknown-id")
	assert.ErrorIs(t, err, pkg.ErrNotFound)

	published, err := blog.ListPublished(ctx)
	require.NoError(t, err)
	assert.Len(t, published, 2)

	related, err := blog.Related(ctx, "1", 2)
	require.NoError(t, err)
	require.Len(t, related, 1)
	assert.Equal(t, "2", related[0].ID)
}

// ─── Reviews & comments ───

func TestReviewSubmitWithoutUserIsNoop(t *testing.T) {
	f := newFixture(t)
	svc := NewReviewService(f.reviews, f.restaurants, f.hub, nil, 0)

	before, err := f.reviews.List(context.Background(), "")
	require.NoError(t, err)

	got, err := svc.Submit(context.Background(), nil, "1", &models.CreateReviewRequest{Rating: 5})
	assert.NoError(t, err)
	assert.Nil(t, got)

	after, err := f.reviews.List(context.Background(), "")
	require.NoError(t, err)
	assert.Len(t, after, len(before))
	assert.Empty(t, f.hub.Ops())
}

func TestReviewSubmitPrependsAndSummarizes(t *testing.T) {
	f := newFixture(t)
	svc := NewReviewService(f.reviews, f.restaurants, f.hub, nil, 0)
	ctx := context.Background()

	created, err := svc.Submit(ctx, testUser(), "2", &models.CreateReviewRequest{Rating: 3, Comment: "  İdare eder  "})
	require.NoError(t, err)
	assert.Equal(t, "Test User", created.UserName)
	assert.Equal(t, models.ReviewApproved, created.Status)
	require.NotNil(t, created.Comment)
	assert.Equal(t, "İdare eder", *created.Comment)

	list, summary, err := svc.ListApproved(ctx, "2")
	require.NoError(t, err)
	require.NotEmpty(t, list)
	assert.Equal(t, created.ID, list[0].ID, "newest first")
	assert.Equal(t, len(list), summary.Count)
	assert.Equal(t, []string{ws.OpReviewCreate}, f.hub.Ops())

	_, err = svc.Submit(ctx, testUser(), "404", &models.CreateReviewRequest{Rating: 3})
	assert.ErrorIs(t, err, pkg.ErrNotFound)
	_, err = svc.Submit(ctx, testUser(), "2", &models.CreateReviewRequest{Rating: 6})
	assert.ErrorIs(t, err, pkg.ErrBadRequest)
}

func TestReviewSubmitDelayHonorsCancellation(t *testing.T) {
	f := newFixture(t)
	svc := NewReviewService(f.reviews, f.restaurants, f.hub, nil, time.Hour)

	before, err := f.reviews.ListByUser(context.Background(), "1")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = svc.Submit(ctx, testUser(), "1", &models.CreateReviewRequest{Rating: 4})
	assert.ErrorIs(t, err, context.Canceled)

	after, err := f.reviews.ListByUser(context.Background(), "1")
	require.NoError(t, err)
	assert.Len(t, after, len(before), "cancelled submission must not be stored")
}

func TestReviewSubmitRateLimited(t *testing.T) {
	f := newFixture(t)
	limiter := ratelimit.NewSubmitRateLimiter(1, time.Minute, time.Minute)
	defer limiter.Close()
	svc := NewReviewService(f.reviews, f.restaurants, f.hub, limiter, 0)
	ctx := context.Background()

	_, err := svc.Submit(ctx, testUser(), "1", &models.CreateReviewRequest{Rating: 4})
	require.NoError(t, err)
	_, err = svc.Submit(ctx, testUser(), "1", &models.CreateReviewRequest{Rating: 4})
	assert.ErrorIs(t, err, pkg.ErrTooManyRequests)
}

func TestCommentSubmit(t *testing.T) {
	f := newFixture(t)
	svc := NewCommentService(f.comments, NewBlogService(f.posts), f.hub, nil, 0)
	ctx := context.Background()

	got, err := svc.Submit(ctx, nil, "1", &models.CreateCommentRequest{Content: "x"})
	assert.NoError(t, err)
	assert.Nil(t, got)

	_, err = svc.Submit(ctx, testUser(), "1", &models.CreateCommentRequest{Content: "   "})
	assert.ErrorIs(t, err, pkg.ErrBadRequest)

	first, err := svc.Submit(ctx, testUser(), "1", &models.CreateCommentRequest{Content: "İlk"})
	require.NoError(t, err)
	second, err := svc.Submit(ctx, testUser(), "1", &models.CreateCommentRequest{Content: "İkinci"})
	require.NoError(t, err)

	list, err := svc.ListForPost(ctx, "1")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, second.ID, list[0].ID)
	assert.Equal(t, first.ID, list[1].ID)

	_, err = svc.Submit(ctx, testUser(), "unknown-id", &models.CreateCommentRequest{Content: "x"})
	assert.ErrorIs(t, err, pkg.ErrNotFound)
}

// ─── Admin ───

type failingAdminRepo struct{}

func (failingAdminRepo) Exists(context.Context, string) (bool, error) {
	return false, errors.New("connection refused")
}

func TestIsAdmin(t *testing.T) {
	f := newFixture(t)
	svc := f.admin(t, zaptest.NewLogger(t))
	ctx := context.Background()

	assert.True(t, svc.IsAdmin(ctx, "1"))
	assert.False(t, svc.IsAdmin(ctx, "2"))
	assert.False(t, svc.IsAdmin(ctx, ""))
}

func TestIsAdminFailsClosedAndLogs(t *testing.T) {
	f := newFixture(t)
	core, logs := observer.New(zap.ErrorLevel)
	svc := NewAdminService(failingAdminRepo{}, f.restaurants, f.posts, f.reviews, f.comments, f.favorites,
		f.hub, cache.New[string, bool](time.Minute, 0), zap.New(core))

	assert.False(t, svc.IsAdmin(context.Background(), "1"))
	assert.Equal(t, 1, logs.FilterMessage("admin check failed").Len())
}

func TestAdminTwoPhaseDelete(t *testing.T) {
	f := newFixture(t)
	svc := f.admin(t, zaptest.NewLogger(t))
	ctx := context.Background()

	// Onay istenmeden silme yok.
	_, err := svc.ConfirmDelete(ctx, "1", models.KindRestaurants)
	assert.ErrorIs(t, err, pkg.ErrBadRequest)

	snap, err := svc.RequestDelete(ctx, "1", models.KindRestaurants, "3")
	require.NoError(t, err)
	assert.Equal(t, editor.StateConfirmingDelete, snap.State)
	assert.Equal(t, "3", snap.Target)

	// Vazgeç: liste değişmez.
	snap, err = svc.CancelDelete("1", models.KindRestaurants)
	require.NoError(t, err)
	assert.Equal(t, editor.StateClosed, snap.State)
	all, err := svc.ListRestaurants(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 5)

	// Onayla: tam olarak bir kayıt silinir.
	_, err = svc.RequestDelete(ctx, "1", models.KindRestaurants, "3")
	require.NoError(t, err)
	deleted, err := svc.ConfirmDelete(ctx, "1", models.KindRestaurants)
	require.NoError(t, err)
	assert.Equal(t, "3", deleted)

	all, err = svc.ListRestaurants(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 4)
	for _, r := range all {
		assert.NotEqual(t, "3", r.ID)
	}

	reviews, err := f.reviews.ListByRestaurant(ctx, "3")
	require.NoError(t, err)
	assert.Empty(t, reviews, "reviews of a deleted restaurant are removed")
	assert.Contains(t, f.hub.Ops(), ws.OpRestaurantDelete)

	_, err = svc.RequestDelete(ctx, "1", models.KindRestaurants, "3")
	assert.ErrorIs(t, err, pkg.ErrNotFound)
}

// cascadingRestaurants, şemada ON DELETE CASCADE olan bir SQL deposunu taklit eder.
type cascadingRestaurants struct {
	repository.RestaurantRepository
}

func (cascadingRestaurants) CascadesOnDelete() bool { return true }

// failingRestaurants, silme sırasında hata veren bir depo.
type failingRestaurants struct {
	repository.RestaurantRepository
}

func (failingRestaurants) Delete(context.Context, string) error { return errors.New("disk full") }

type countingReviews struct {
	repository.ReviewRepository
	deleteByRestaurant int
}

func (r *countingReviews) DeleteByRestaurant(ctx context.Context, id string) error {
	r.deleteByRestaurant++
	return r.ReviewRepository.DeleteByRestaurant(ctx, id)
}

func TestAdminDeleteCascade(t *testing.T) {
	ctx := context.Background()
	newSvc := func(f *fixture, rests repository.RestaurantRepository, reviews repository.ReviewRepository) AdminService {
		return NewAdminService(f.admins, rests, f.posts, reviews, f.comments, f.favorites,
			f.hub, nil, zaptest.NewLogger(t))
	}

	t.Run("store cascades", func(t *testing.T) {
		f := newFixture(t)
		reviews := &countingReviews{ReviewRepository: f.reviews}
		svc := newSvc(f, cascadingRestaurants{f.restaurants}, reviews)

		_, err := svc.RequestDelete(ctx, "1", models.KindRestaurants, "3")
		require.NoError(t, err)
		_, err = svc.ConfirmDelete(ctx, "1", models.KindRestaurants)
		require.NoError(t, err)
		assert.Zero(t, reviews.deleteByRestaurant)
	})

	t.Run("memory store", func(t *testing.T) {
		f := newFixture(t)
		reviews := &countingReviews{ReviewRepository: f.reviews}
		svc := newSvc(f, f.restaurants, reviews)

		_, err := svc.RequestDelete(ctx, "1", models.KindRestaurants, "3")
		require.NoError(t, err)
		_, err = svc.ConfirmDelete(ctx, "1", models.KindRestaurants)
		require.NoError(t, err)
		assert.Equal(t, 1, reviews.deleteByRestaurant)
	})

	t.Run("failed parent delete keeps children", func(t *testing.T) {
		f := newFixture(t)
		reviews := &countingReviews{ReviewRepository: f.reviews}
		svc := newSvc(f, failingRestaurants{f.restaurants}, reviews)

		_, err := svc.RequestDelete(ctx, "1", models.KindRestaurants, "3")
		require.NoError(t, err)
		_, err = svc.ConfirmDelete(ctx, "1", models.KindRestaurants)
		require.Error(t, err)
		assert.Zero(t, reviews.deleteByRestaurant)

		left, err := f.reviews.ListByRestaurant(ctx, "3")
		require.NoError(t, err)
		assert.NotEmpty(t, left)

		snap, err := svc.EditorState("1", models.KindRestaurants)
		require.NoError(t, err)
		assert.Equal(t, editor.StateConfirmingDelete, snap.State)
	})
}

func TestAdminEditorsAreIsolatedPerAdminAndKind(t *testing.T) {
	f := newFixture(t)
	svc := f.admin(t, zaptest.NewLogger(t))
	ctx := context.Background()

	_, err := svc.RequestDelete(ctx, "1", models.KindBlog, "1")
	require.NoError(t, err)

	_, err = svc.ConfirmDelete(ctx, "other-admin", models.KindBlog)
	assert.ErrorIs(t, err, pkg.ErrBadRequest)
	_, err = svc.ConfirmDelete(ctx, "1", models.KindRestaurants)
	assert.ErrorIs(t, err, pkg.ErrBadRequest)

	snap, err := svc.EditorState("1", models.KindBlog)
	require.NoError(t, err)
	assert.Equal(t, editor.StateConfirmingDelete, snap.State)

	_, err = svc.EditorState("1", models.EntityKind("users"))
	assert.ErrorIs(t, err, pkg.ErrBadRequest)
}

func TestAdminSaveClosesEditor(t *testing.T) {
	f := newFixture(t)
	svc := f.admin(t, zaptest.NewLogger(t))
	ctx := context.Background()

	snap, err := svc.OpenEditor(ctx, "1", models.KindRestaurants, "")
	require.NoError(t, err)
	assert.Equal(t, editor.StateOpenForCreate, snap.State)

	created, err := svc.CreateRestaurant(ctx, "1", &models.CreateRestaurantRequest{Name: "Yeni Lokanta"})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, models.PriceBudget, created.PriceRange)
	assert.Zero(t, created.Rating)

	snap, err = svc.EditorState("1", models.KindRestaurants)
	require.NoError(t, err)
	assert.Equal(t, editor.StateClosed, snap.State)

	all, err := svc.ListRestaurants(ctx)
	require.NoError(t, err)
	assert.Equal(t, created.ID, all[len(all)-1].ID, "created restaurants are appended")

	snap, err = svc.OpenEditor(ctx, "1", models.KindRestaurants, created.ID)
	require.NoError(t, err)
	assert.Equal(t, editor.StateOpenForEdit, snap.State)

	rating := 4.5
	updated, err := svc.UpdateRestaurant(ctx, "1", created.ID, &models.UpdateRestaurantRequest{Rating: &rating})
	require.NoError(t, err)
	assert.Equal(t, 4.5, updated.Rating)
	assert.Equal(t, "Yeni Lokanta", updated.Name)

	bad := 7.0
	_, err = svc.UpdateRestaurant(ctx, "1", created.ID, &models.UpdateRestaurantRequest{Rating: &bad})
	assert.ErrorIs(t, err, pkg.ErrBadRequest)

	assert.Equal(t, []string{ws.OpRestaurantCreate, ws.OpRestaurantUpdate}, f.hub.Ops())
}

func TestAdminReviewModeration(t *testing.T) {
	f := newFixture(t)
	svc := f.admin(t, zaptest.NewLogger(t))
	ctx := context.Background()

	all, err := svc.ListReviews(ctx, "all")
	require.NoError(t, err)
	require.NotEmpty(t, all)

	assert.Len(t, all, 4)

	rejected, err := svc.ListReviews(ctx, "rejected")
	require.NoError(t, err)
	assert.Len(t, rejected, 1)

	updated, err := svc.UpdateReviewStatus(ctx, "1", &models.UpdateReviewStatusRequest{Status: models.ReviewRejected})
	require.NoError(t, err)
	assert.Equal(t, models.ReviewRejected, updated.Status)

	rejected, err = svc.ListReviews(ctx, "rejected")
	require.NoError(t, err)
	assert.Len(t, rejected, 2)

	_, err = svc.UpdateReviewStatus(ctx, "404", &models.UpdateReviewStatusRequest{Status: models.ReviewApproved})
	assert.ErrorIs(t, err, pkg.ErrNotFound)

	_, err = svc.ListReviews(ctx, "spam")
	assert.ErrorIs(t, err, pkg.ErrBadRequest)
}

func TestProfileFavorites(t *testing.T) {
	f := newFixture(t)
	svc := NewProfileService(f.favorites, f.restaurants)
	ctx := context.Background()

	require.NoError(t, svc.AddFavorite(ctx, "1", "2"))
	require.NoError(t, svc.AddFavorite(ctx, "1", "5"))
	require.NoError(t, svc.AddFavorite(ctx, "1", "5"))
	assert.ErrorIs(t, svc.AddFavorite(ctx, "1", "404"), pkg.ErrNotFound)

	favs, err := svc.Favorites(ctx, "1")
	require.NoError(t, err)
	require.Len(t, favs, 2)
	assert.Equal(t, "5", favs[0].ID)

	ok, err := svc.IsFavorite(ctx, "1", "2")
	require.NoError(t, err)
	assert.True(t, ok)

	require.NoError(t, svc.RemoveFavorite(ctx, "1", "2"))
	favs, err = svc.Favorites(ctx, "1")
	require.NoError(t, err)
	assert.Len(t, favs, 1)
}
