package repository

import (
	"context"
	"io/fs"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/lezzetkesif/lezzetkesif/database"
	"github.com/lezzetkesif/lezzetkesif/mockdata"
	"github.com/lezzetkesif/lezzetkesif/models"
	"github.com/lezzetkesif/lezzetkesif/pkg"
)

// store, bir sürücünün tüm repository'leri. Aynı davranış testleri
// memory ve sqlite için ayrı ayrı koşar.
type store struct {
	restaurants RestaurantRepository
	blog        BlogPostRepository
	reviews     ReviewRepository
	comments    CommentRepository
	users       UserRepository
	sessions    SessionRepository
	admins      AdminRepository
	favorites   FavoriteRepository
}

func memoryStore(t *testing.T) store {
	t.Helper()
	ds, err := mockdata.Load()
	require.NoError(t, err)

	users := make([]models.User, len(ds.Users))
	for i, u := range ds.Users {
		users[i] = u.User
		users[i].PasswordHash = "hash:" + u.Password
	}
	return store{
		restaurants: NewMemoryRestaurantRepo(ds.Restaurants),
		blog:        NewMemoryBlogPostRepo(ds.BlogPosts),
		reviews:     NewMemoryReviewRepo(ds.Reviews),
		comments:    NewMemoryCommentRepo(ds.Comments),
		users:       NewMemoryUserRepo(users),
		sessions:    NewMemorySessionRepo(),
		admins:      NewMemoryAdminRepo(ds.Admins),
		favorites:   NewMemoryFavoriteRepo(),
	}
}

func sqliteStore(t *testing.T) store {
	t.Helper()
	migrations, err := fs.Sub(database.EmbeddedMigrations, "migrations")
	require.NoError(t, err)

	db, err := database.New(database.DialectSQLite, filepath.Join(t.TempDir(), "repo.db"), migrations, zaptest.NewLogger(t))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	ds, err := mockdata.Load()
	require.NoError(t, err)
	require.NoError(t, db.Seed(context.Background(), ds, func(p string) (string, error) { return "hash:" + p, nil }))

	q := db.Querier()
	return store{
		restaurants: NewSQLRestaurantRepo(q),
		blog:        NewSQLBlogPostRepo(q),
		reviews:     NewSQLReviewRepo(q),
		comments:    NewSQLCommentRepo(q),
		users:       NewSQLUserRepo(q),
		sessions:    NewSQLSessionRepo(q),
		admins:      NewSQLAdminRepo(q),
		favorites:   NewSQLFavoriteRepo(q),
	}
}

func forEachDriver(t *testing.T, fn func(t *testing.T, s store)) {
	t.Run("memory", func(t *testing.T) { fn(t, memoryStore(t)) })
	t.Run("sqlite", func(t *testing.T) { fn(t, sqliteStore(t)) })
}

func names(rs []models.Restaurant) []string {
	out := make([]string, len(rs))
	for i, r := range rs {
		out[i] = r.Name
	}
	return out
}

func TestRestaurantRepository(t *testing.T) {
	forEachDriver(t, func(t *testing.T, s store) {
		ctx := context.Background()

		all, err := s.restaurants.GetAll(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{"Trilye Restaurant", "Aspava", "Liva Pastacılık", "Kebapçı Selim Usta", "Pizza House"}, names(all))

		// Yeni kayıt sona eklenir ve kimlik üretilir
		r := &models.Restaurant{Name: "Yeni", PriceRange: models.PriceBudget}
		require.NoError(t, s.restaurants.Create(ctx, r))
		assert.NotEmpty(t, r.ID)

		all, err = s.restaurants.GetAll(ctx)
		require.NoError(t, err)
		require.Len(t, all, 6)
		assert.Equal(t, "Yeni", all[5].Name)

		// Güncelleme kimliğe göre yerinde
		got, err := s.restaurants.GetByID(ctx, "2")
		require.NoError(t, err)
		got.Name = "Aspava Esat"
		require.NoError(t, s.restaurants.Update(ctx, got))

		all, err = s.restaurants.GetAll(ctx)
		require.NoError(t, err)
		assert.Equal(t, "Aspava Esat", all[1].Name)

		// Silme tam olarak bir kayıt kaldırır
		require.NoError(t, s.restaurants.Delete(ctx, "2"))
		all, err = s.restaurants.GetAll(ctx)
		require.NoError(t, err)
		assert.Len(t, all, 5)

		_, err = s.restaurants.GetByID(ctx, "2")
		assert.ErrorIs(t, err, pkg.ErrNotFound)
		assert.ErrorIs(t, s.restaurants.Delete(ctx, "2"), pkg.ErrNotFound)
		assert.ErrorIs(t, s.restaurants.Update(ctx, &models.Restaurant{ID: "missing", PriceRange: models.PriceBudget}), pkg.ErrNotFound)
	})
}

func TestBlogPostRepository(t *testing.T) {
	forEachDriver(t, func(t *testing.T, s store) {
		ctx := context.Background()

		p := &models.BlogPost{Title: "Yeni yazı", Content: "içerik", AuthorID: "1"}
		require.NoError(t, s.blog.Create(ctx, p))

		all, err := s.blog.GetAll(ctx)
		require.NoError(t, err)
		require.Len(t, all, 3)
		assert.Equal(t, "Ankara'nın En İyi Kebap Mekanları", all[0].Title)
		assert.False(t, all[2].Published)

		p.Published = true
		require.NoError(t, s.blog.Update(ctx, p))
		got, err := s.blog.GetByID(ctx, p.ID)
		require.NoError(t, err)
		assert.True(t, got.Published)

		require.NoError(t, s.blog.Delete(ctx, p.ID))
		_, err = s.blog.GetByID(ctx, p.ID)
		assert.ErrorIs(t, err, pkg.ErrNotFound)
	})
}

func TestReviewRepositoryPrependsAndModerates(t *testing.T) {
	forEachDriver(t, func(t *testing.T, s store) {
		ctx := context.Background()

		rv := &models.Review{RestaurantID: "1", UserID: "1", UserName: "Test User", Rating: 5, Status: models.ReviewApproved}
		require.NoError(t, s.reviews.Create(ctx, rv))

		byRest, err := s.reviews.ListByRestaurant(ctx, "1")
		require.NoError(t, err)
		require.Len(t, byRest, 2)
		assert.Equal(t, rv.ID, byRest[0].ID, "new review is listed first")

		pending, err := s.reviews.List(ctx, models.ReviewPending)
		require.NoError(t, err)
		require.Len(t, pending, 1)
		assert.Equal(t, "Fatma Demir", pending[0].UserName)

		require.NoError(t, s.reviews.UpdateStatus(ctx, "2", models.ReviewApproved))
		got, err := s.reviews.GetByID(ctx, "2")
		require.NoError(t, err)
		assert.Equal(t, models.ReviewApproved, got.Status)

		all, err := s.reviews.List(ctx, "")
		require.NoError(t, err)
		assert.Len(t, all, 5)

		mine, err := s.reviews.ListByUser(ctx, "1")
		require.NoError(t, err)
		assert.Len(t, mine, 2)

		require.NoError(t, s.reviews.Delete(ctx, "4"))
		assert.ErrorIs(t, s.reviews.Delete(ctx, "4"), pkg.ErrNotFound)

		require.NoError(t, s.reviews.DeleteByRestaurant(ctx, "1"))
		byRest, err = s.reviews.ListByRestaurant(ctx, "1")
		require.NoError(t, err)
		assert.Empty(t, byRest)
	})
}

func TestCommentRepository(t *testing.T) {
	forEachDriver(t, func(t *testing.T, s store) {
		ctx := context.Background()

		first := &models.Comment{BlogPostID: "1", UserID: "1", UserName: "Test User", Content: "ilk"}
		second := &models.Comment{BlogPostID: "1", UserID: "1", UserName: "Test User", Content: "ikinci"}
		require.NoError(t, s.comments.Create(ctx, first))
		require.NoError(t, s.comments.Create(ctx, second))

		list, err := s.comments.ListByPost(ctx, "1")
		require.NoError(t, err)
		require.Len(t, list, 2)
		assert.Equal(t, "ikinci", list[0].Content)

		other, err := s.comments.ListByPost(ctx, "2")
		require.NoError(t, err)
		assert.Empty(t, other)

		require.NoError(t, s.comments.DeleteByPost(ctx, "1"))
		list, err = s.comments.ListByPost(ctx, "1")
		require.NoError(t, err)
		assert.Empty(t, list)
	})
}

func TestSQLDeleteCascadesToChildren(t *testing.T) {
	ctx := context.Background()
	s := sqliteStore(t)
	assert.True(t, CascadesOnDelete(s.restaurants))
	assert.True(t, CascadesOnDelete(s.blog))
	assert.False(t, CascadesOnDelete(memoryStore(t).restaurants))

	require.NoError(t, s.favorites.Add(ctx, "2", "1"))
	require.NoError(t, s.comments.Create(ctx, &models.Comment{BlogPostID: "1", UserID: "1", UserName: "Test User", Content: "ilk"}))

	require.NoError(t, s.restaurants.Delete(ctx, "1"))
	reviews, err := s.reviews.ListByRestaurant(ctx, "1")
	require.NoError(t, err)
	assert.Empty(t, reviews)
	favs, err := s.favorites.ListByUser(ctx, "2")
	require.NoError(t, err)
	assert.Empty(t, favs)

	require.NoError(t, s.blog.Delete(ctx, "1"))
	comments, err := s.comments.ListByPost(ctx, "1")
	require.NoError(t, err)
	assert.Empty(t, comments)
}

func TestUserRepository(t *testing.T) {
	forEachDriver(t, func(t *testing.T, s store) {
		ctx := context.Background()

		u, err := s.users.GetByEmail(ctx, "TEST@example.com")
		require.NoError(t, err)
		assert.Equal(t, "1", u.ID)
		assert.Equal(t, "Test User", u.Name())
		assert.Equal(t, "hash:password", u.PasswordHash)

		err = s.users.Create(ctx, &models.User{Email: "test@example.com", PasswordHash: "x"})
		assert.ErrorIs(t, err, pkg.ErrAlreadyExists)

		nu := &models.User{Email: "yeni@example.com", PasswordHash: "x"}
		require.NoError(t, s.users.Create(ctx, nu))
		got, err := s.users.GetByID(ctx, nu.ID)
		require.NoError(t, err)
		assert.Equal(t, "yeni@example.com", got.Name())

		_, err = s.users.GetByID(ctx, "missing")
		assert.ErrorIs(t, err, pkg.ErrNotFound)
	})
}

func TestSessionRepository(t *testing.T) {
	forEachDriver(t, func(t *testing.T, s store) {
		ctx := context.Background()

		live := &models.Session{UserID: "1", RefreshToken: "live", ExpiresAt: time.Now().Add(time.Hour)}
		old := &models.Session{UserID: "1", RefreshToken: "old", ExpiresAt: time.Now().Add(-time.Hour)}
		require.NoError(t, s.sessions.Create(ctx, live))
		require.NoError(t, s.sessions.Create(ctx, old))

		require.NoError(t, s.sessions.DeleteExpired(ctx))
		_, err := s.sessions.GetByRefreshToken(ctx, "old")
		assert.ErrorIs(t, err, pkg.ErrNotFound)

		got, err := s.sessions.GetByRefreshToken(ctx, "live")
		require.NoError(t, err)
		assert.Equal(t, live.ID, got.ID)

		require.NoError(t, s.sessions.DeleteByID(ctx, live.ID))
		_, err = s.sessions.GetByRefreshToken(ctx, "live")
		assert.ErrorIs(t, err, pkg.ErrNotFound)
	})
}

func TestAdminRepository(t *testing.T) {
	forEachDriver(t, func(t *testing.T, s store) {
		ok, err := s.admins.Exists(context.Background(), "1")
		require.NoError(t, err)
		assert.True(t, ok)

		ok, err = s.admins.Exists(context.Background(), "2")
		require.NoError(t, err)
		assert.False(t, ok)
	})
}

func TestFavoriteRepository(t *testing.T) {
	forEachDriver(t, func(t *testing.T, s store) {
		ctx := context.Background()

		require.NoError(t, s.favorites.Add(ctx, "1", "3"))
		require.NoError(t, s.favorites.Add(ctx, "1", "3"))
		require.NoError(t, s.favorites.Add(ctx, "2", "3"))

		favs, err := s.favorites.ListByUser(ctx, "1")
		require.NoError(t, err)
		require.Len(t, favs, 1)
		assert.Equal(t, "3", favs[0].RestaurantID)

		require.NoError(t, s.favorites.Remove(ctx, "1", "3"))
		favs, err = s.favorites.ListByUser(ctx, "1")
		require.NoError(t, err)
		assert.Empty(t, favs)

		require.NoError(t, s.favorites.DeleteByRestaurant(ctx, "3"))
		favs, err = s.favorites.ListByUser(ctx, "2")
		require.NoError(t, err)
		assert.Empty(t, favs)
	})
}
