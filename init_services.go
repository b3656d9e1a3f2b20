// Package main: Service katmanı başlatma.
//
// initServices, tüm business logic service'lerini ve rate limiter'ları oluşturur.
// Opsiyonel altyapı (e-posta, S3) konfigürasyona göre açılır; kapalıysa
// service'ler nil dependency ile çalışır.
package main

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/lezzetkesif/lezzetkesif/config"
	"github.com/lezzetkesif/lezzetkesif/pkg/cache"
	"github.com/lezzetkesif/lezzetkesif/pkg/email"
	"github.com/lezzetkesif/lezzetkesif/pkg/ratelimit"
	"github.com/lezzetkesif/lezzetkesif/pkg/storage"
	"github.com/lezzetkesif/lezzetkesif/services"
	"github.com/lezzetkesif/lezzetkesif/ws"
)

// uploadsURLPrefix, local backend'de yüklenen görsellerin servis edildiği yol.
const uploadsURLPrefix = "/uploads"

// Services, tüm service instance'larını tutan container struct.
type Services struct {
	Auth       services.AuthService
	Restaurant services.RestaurantService
	Blog       services.BlogService
	Review     services.ReviewService
	Comment    services.CommentService
	Profile    services.ProfileService
	Admin      services.AdminService
	Upload     services.UploadService

	// UploadDir, local backend'in yazdığı dizin. S3 kullanılıyorsa boştur
	// ve /uploads/ route'u kurulmaz.
	UploadDir string

	adminCache *cache.TTLCache[string, bool]
}

// RateLimiters, tüm rate limiter instance'larını tutan container.
type RateLimiters struct {
	Login  *ratelimit.LoginRateLimiter
	Submit *ratelimit.SubmitRateLimiter
}

// Close, arka plan temizlik goroutine'lerini durdurur.
func (rl *RateLimiters) Close() {
	rl.Login.Close()
	rl.Submit.Close()
}

// Close, service'lerin tuttuğu arka plan kaynaklarını bırakır.
func (s *Services) Close() {
	s.adminCache.Close()
}

// initServices, tüm service'leri ve rate limiter'ları oluşturur.
// hub tüm yazma işlemlerinin event'lerini yayınlar.
func initServices(ctx context.Context, repos *Repositories, hub ws.EventPublisher, cfg *config.Config, logger *zap.Logger) (*Services, *RateLimiters, error) {
	log := logger.Named("main")

	// ─── Rate limiter'lar ───
	// Login: IP başına 2 dakikada 5 deneme.
	// Submit: kullanıcı başına dakikada 5 gönderim, aşılırsa 2 dakika ceza.
	limiters := &RateLimiters{
		Login:  ratelimit.NewLoginRateLimiter(5, 2*time.Minute),
		Submit: ratelimit.NewSubmitRateLimiter(5, time.Minute, 2*time.Minute),
	}

	// ─── Email service (opsiyonel) ───
	var emailSender email.Sender
	if cfg.Email.ResendAPIKey != "" {
		emailSender = email.NewResendSender(cfg.Email.ResendAPIKey, cfg.Email.From, cfg.Email.AppURL)
		log.Info("email service enabled", zap.String("from", cfg.Email.From))
	} else {
		log.Info("email service disabled (RESEND_API_KEY not set)")
	}

	// ─── Görsel depolama ───
	store, uploadDir, err := initStorage(ctx, cfg)
	if err != nil {
		limiters.Close()
		return nil, nil, err
	}
	log.Info("upload storage ready", zap.String("backend", cfg.Upload.Backend))

	adminCache := cache.New[string, bool](cfg.Features.AdminCacheTTL, time.Minute)

	// ─── Service'ler ───
	authService := services.NewAuthService(
		repos.User, repos.Session, emailSender, logger,
		cfg.JWT.Secret, cfg.JWT.AccessTokenExpiry, cfg.JWT.RefreshTokenExpiry,
	)
	blogService := services.NewBlogService(repos.BlogPost)

	svcs := &Services{
		Auth:       authService,
		Restaurant: services.NewRestaurantService(repos.Restaurant, cfg.Features.PageSize),
		Blog:       blogService,
		Review: services.NewReviewService(
			repos.Review, repos.Restaurant, hub, limiters.Submit, cfg.Features.SubmitDelay,
		),
		Comment: services.NewCommentService(
			repos.Comment, blogService, hub, limiters.Submit, cfg.Features.SubmitDelay,
		),
		Profile: services.NewProfileService(repos.Favorite, repos.Restaurant),
		Admin: services.NewAdminService(
			repos.Admin, repos.Restaurant, repos.BlogPost, repos.Review,
			repos.Comment, repos.Favorite, hub, adminCache, logger,
		),
		Upload:     services.NewUploadService(store, cfg.Upload.MaxSize),
		UploadDir:  uploadDir,
		adminCache: adminCache,
	}
	return svcs, limiters, nil
}

// initStorage, UPLOAD_BACKEND'e göre local dizin veya S3 bucket'ı hazırlar.
func initStorage(ctx context.Context, cfg *config.Config) (storage.Storage, string, error) {
	if cfg.Upload.Backend == config.UploadS3 {
		s3, err := storage.NewS3Storage(ctx, storage.S3Config{
			Endpoint:  cfg.S3.Endpoint,
			AccessKey: cfg.S3.AccessKey,
			SecretKey: cfg.S3.SecretKey,
			Bucket:    cfg.S3.Bucket,
			Region:    cfg.S3.Region,
			UseSSL:    cfg.S3.UseSSL,
			PublicURL: cfg.S3.PublicURL,
		})
		if err != nil {
			return nil, "", fmt.Errorf("failed to initialize S3 storage: %w", err)
		}
		return s3, "", nil
	}

	local, err := storage.NewLocalStorage(cfg.Upload.Dir, uploadsURLPrefix)
	if err != nil {
		return nil, "", err
	}
	return local, local.Dir(), nil
}
