// Package main: Repository katmanı başlatma.
//
// initRepositories, STORE_DRIVER'a göre repository implementasyonlarını oluşturur:
//   - memory: mock veri seti her açılışta belleğe yüklenir
//   - sqlite / postgres: veritabanı açılır, migration'lar çalışır, boşsa seed edilir
package main

import (
	"context"
	"fmt"
	"io/fs"

	"go.uber.org/zap"

	"github.com/lezzetkesif/lezzetkesif/config"
	"github.com/lezzetkesif/lezzetkesif/database"
	"github.com/lezzetkesif/lezzetkesif/mockdata"
	"github.com/lezzetkesif/lezzetkesif/models"
	"github.com/lezzetkesif/lezzetkesif/repository"
	"github.com/lezzetkesif/lezzetkesif/services"
)

// Repositories, tüm repository instance'larını tutan container struct.
type Repositories struct {
	User       repository.UserRepository
	Session    repository.SessionRepository
	Admin      repository.AdminRepository
	Restaurant repository.RestaurantRepository
	BlogPost   repository.BlogPostRepository
	Review     repository.ReviewRepository
	Comment    repository.CommentRepository
	Favorite   repository.FavoriteRepository
}

// initRepositories, konfigürasyondaki driver için repository'leri kurar.
// Dönen cleanup fonksiyonu (varsa) veritabanı bağlantısını kapatır.
func initRepositories(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*Repositories, func(), error) {
	ds, err := mockdata.Load()
	if err != nil {
		return nil, nil, err
	}

	if cfg.Store.Driver == config.StoreMemory {
		repos, err := initMemoryRepositories(ds)
		if err != nil {
			return nil, nil, err
		}
		logger.Info("using in-memory store",
			zap.Int("restaurants", len(ds.Restaurants)),
			zap.Int("blog_posts", len(ds.BlogPosts)))
		return repos, func() {}, nil
	}

	db, err := openDatabase(cfg, logger)
	if err != nil {
		return nil, nil, err
	}
	if err := db.Seed(ctx, ds, services.HashPassword); err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("failed to seed database: %w", err)
	}

	q := db.Querier()
	repos := &Repositories{
		User:       repository.NewSQLUserRepo(q),
		Session:    repository.NewSQLSessionRepo(q),
		Admin:      repository.NewSQLAdminRepo(q),
		Restaurant: repository.NewSQLRestaurantRepo(q),
		BlogPost:   repository.NewSQLBlogPostRepo(q),
		Review:     repository.NewSQLReviewRepo(q),
		Comment:    repository.NewSQLCommentRepo(q),
		Favorite:   repository.NewSQLFavoriteRepo(q),
	}
	return repos, func() { db.Close() }, nil
}

// initMemoryRepositories, seed kullanıcılarının şifrelerini hash'leyip
// bellek içi repository'leri doldurur.
func initMemoryRepositories(ds *mockdata.Dataset) (*Repositories, error) {
	users := make([]models.User, 0, len(ds.Users))
	for _, su := range ds.Users {
		u := su.User
		hash, err := services.HashPassword(su.Password)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password for %s: %w", u.Email, err)
		}
		u.PasswordHash = hash
		users = append(users, u)
	}

	return &Repositories{
		User:       repository.NewMemoryUserRepo(users),
		Session:    repository.NewMemorySessionRepo(),
		Admin:      repository.NewMemoryAdminRepo(ds.Admins),
		Restaurant: repository.NewMemoryRestaurantRepo(ds.Restaurants),
		BlogPost:   repository.NewMemoryBlogPostRepo(ds.BlogPosts),
		Review:     repository.NewMemoryReviewRepo(ds.Reviews),
		Comment:    repository.NewMemoryCommentRepo(ds.Comments),
		Favorite:   repository.NewMemoryFavoriteRepo(),
	}, nil
}

// openDatabase, sqlite veya postgres bağlantısını açar ve migration'ları çalıştırır.
// migrate komutu da bunu kullanır.
func openDatabase(cfg *config.Config, logger *zap.Logger) (*database.DB, error) {
	migrations, err := fs.Sub(database.EmbeddedMigrations, "migrations")
	if err != nil {
		return nil, fmt.Errorf("failed to open embedded migrations: %w", err)
	}

	switch cfg.Store.Driver {
	case config.StoreSQLite:
		return database.New(database.DialectSQLite, cfg.Store.Path, migrations, logger)
	case config.StorePostgres:
		return database.New(database.DialectPostgres, cfg.Store.URL, migrations, logger)
	default:
		return nil, fmt.Errorf("store driver %q has no database", cfg.Store.Driver)
	}
}
