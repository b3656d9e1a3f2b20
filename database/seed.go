package database

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/lezzetkesif/lezzetkesif/mockdata"
)

// PasswordHasher, seed kullanıcılarının düz metin şifrelerini hash'ler.
// Üretimde bcrypt (services.HashPassword), testlerde düşük maliyetli bcrypt verilir.
type PasswordHasher func(password string) (string, error)

// Seed, veritabanı boşsa (restaurants tablosunda satır yoksa) mock veri setini
// tek bir transaction içinde yazar. Dolu veritabanına dokunmaz; bu yüzden her
// açılışta güvenle çağrılabilir.
func (db *DB) Seed(ctx context.Context, ds *mockdata.Dataset, hash PasswordHasher) error {
	var count int
	if err := db.Querier().QueryRowContext(ctx, "SELECT COUNT(*) FROM restaurants").Scan(&count); err != nil {
		return fmt.Errorf("failed to count restaurants: %w", err)
	}
	if count > 0 {
		db.log.Debug("database already seeded", zap.Int("restaurants", count))
		return nil
	}

	err := db.WithTx(ctx, func(q TxQuerier) error {
		for _, u := range ds.Users {
			h, err := hash(u.Password)
			if err != nil {
				return fmt.Errorf("failed to hash password for %s: %w", u.Email, err)
			}
			if _, err := q.ExecContext(ctx,
				`INSERT INTO users (id, email, display_name, password_hash, created_at) VALUES (?, ?, ?, ?, ?)`,
				u.ID, u.Email, u.DisplayName, h, orNow(u.CreatedAt),
			); err != nil {
				return fmt.Errorf("failed to seed user %s: %w", u.ID, err)
			}
		}

		for _, id := range ds.Admins {
			if _, err := q.ExecContext(ctx, `INSERT INTO admins (id) VALUES (?)`, id); err != nil {
				return fmt.Errorf("failed to seed admin %s: %w", id, err)
			}
		}

		for i, r := range ds.Restaurants {
			if _, err := q.ExecContext(ctx,
				`INSERT INTO restaurants (id, position, name, description, address, phone, website, image_url,
				 cuisine_type, district, price_range, rating, latitude, longitude, created_at, updated_at)
				 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
				r.ID, i, r.Name, r.Description, r.Address, r.Phone, r.Website, r.ImageURL,
				r.CuisineType, r.District, string(r.PriceRange), r.Rating, r.Latitude, r.Longitude,
				orNow(r.CreatedAt), orNow(r.UpdatedAt),
			); err != nil {
				return fmt.Errorf("failed to seed restaurant %s: %w", r.ID, err)
			}
		}

		for i, p := range ds.BlogPosts {
			if _, err := q.ExecContext(ctx,
				`INSERT INTO blog_posts (id, position, title, content, excerpt, image_url, author_id, published, created_at, updated_at)
				 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
				p.ID, i, p.Title, p.Content, p.Excerpt, p.ImageURL, p.AuthorID, p.Published,
				orNow(p.CreatedAt), orNow(p.UpdatedAt),
			); err != nil {
				return fmt.Errorf("failed to seed blog post %s: %w", p.ID, err)
			}
		}

		for i, rv := range ds.Reviews {
			if _, err := q.ExecContext(ctx,
				`INSERT INTO reviews (id, position, restaurant_id, user_id, user_name, rating, comment, status, created_at)
				 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
				rv.ID, i, rv.RestaurantID, rv.UserID, rv.UserName, rv.Rating, rv.Comment, string(rv.Status),
				orNow(rv.CreatedAt),
			); err != nil {
				return fmt.Errorf("failed to seed review %s: %w", rv.ID, err)
			}
		}

		for i, c := range ds.Comments {
			if _, err := q.ExecContext(ctx,
				`INSERT INTO comments (id, position, blog_post_id, user_id, user_name, content, created_at)
				 VALUES (?, ?, ?, ?, ?, ?, ?)`,
				c.ID, i, c.BlogPostID, c.UserID, c.UserName, c.Content, orNow(c.CreatedAt),
			); err != nil {
				return fmt.Errorf("failed to seed comment %s: %w", c.ID, err)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	db.log.Info("mock dataset seeded",
		zap.Int("restaurants", len(ds.Restaurants)),
		zap.Int("blog_posts", len(ds.BlogPosts)),
		zap.Int("reviews", len(ds.Reviews)),
	)
	return nil
}

func orNow(t time.Time) time.Time {
	if t.IsZero() {
		return time.Now().UTC()
	}
	return t.UTC()
}
