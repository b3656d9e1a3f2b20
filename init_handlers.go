// Package main: Handler katmanı başlatma.
//
// initHandlers, tüm HTTP handler'larını oluşturur.
// Her handler, ihtiyaç duyduğu service interface'lerini constructor'dan alır.
// Handler'lar "thin" dir, sadece HTTP parse + service call + response write.
package main

import (
	"fmt"
	"io/fs"
	"strings"

	"go.uber.org/zap"

	"github.com/lezzetkesif/lezzetkesif/config"
	"github.com/lezzetkesif/lezzetkesif/handlers"
	"github.com/lezzetkesif/lezzetkesif/pages"
	"github.com/lezzetkesif/lezzetkesif/pkg/i18n"
	"github.com/lezzetkesif/lezzetkesif/ws"
)

// Handlers, tüm handler instance'larını tutan container struct.
type Handlers struct {
	Health     *handlers.HealthHandler
	Auth       *handlers.AuthHandler
	Restaurant *handlers.RestaurantHandler
	Blog       *handlers.BlogHandler
	Profile    *handlers.ProfileHandler
	Admin      *handlers.AdminHandler
	WS         *ws.Handler
	Pages      *pages.Pages
}

// initHandlers, tüm handler'ları service ve rate limiter dependency'leri ile oluşturur.
//
// Cookie'ler APP_URL https ise Secure işaretlenir. Çeviriler sayfalardan önce
// yüklenir; yüklenemezse başlangıç başarısız olur.
func initHandlers(svcs *Services, limiters *RateLimiters, hub *ws.Hub, cfg *config.Config, logger *zap.Logger) (*Handlers, error) {
	if err := loadTranslations(logger); err != nil {
		return nil, err
	}

	secureCookie := strings.HasPrefix(cfg.Email.AppURL, "https://")

	pg, err := pages.New(pages.Services{
		Auth:        svcs.Auth,
		Restaurants: svcs.Restaurant,
		Blog:        svcs.Blog,
		Reviews:     svcs.Review,
		Comments:    svcs.Comment,
		Profile:     svcs.Profile,
		Admin:       svcs.Admin,
	}, logger, pages.Options{
		SecureCookie: secureCookie,
		LoginLimiter: limiters.Login,
	})
	if err != nil {
		return nil, err
	}

	return &Handlers{
		Health:     handlers.NewHealthHandler(hub),
		Auth:       handlers.NewAuthHandler(svcs.Auth, limiters.Login, secureCookie),
		Restaurant: handlers.NewRestaurantHandler(svcs.Restaurant, svcs.Review),
		Blog:       handlers.NewBlogHandler(svcs.Blog, svcs.Comment),
		Profile:    handlers.NewProfileHandler(svcs.Profile, svcs.Review),
		Admin:      handlers.NewAdminHandler(svcs.Admin, svcs.Upload, cfg.Upload.MaxSize),
		WS:         ws.NewHandler(hub, svcs.Auth, cfg.Server.CORSOrigins),
		Pages:      pg,
	}, nil
}

// loadTranslations, gömülü locale dosyalarını i18n paketine yükler.
func loadTranslations(logger *zap.Logger) error {
	locales, err := fs.Sub(i18n.EmbeddedLocales, "locales")
	if err != nil {
		return fmt.Errorf("failed to open embedded locales: %w", err)
	}
	if err := i18n.Load(locales); err != nil {
		return fmt.Errorf("failed to load i18n translations: %w", err)
	}
	logger.Named("main").Info("translations loaded",
		zap.Int("tr", i18n.KeyCount("tr")),
		zap.Int("en", i18n.KeyCount("en")))
	return nil
}
