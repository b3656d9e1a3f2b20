package main

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/lezzetkesif/lezzetkesif/config"
	"github.com/lezzetkesif/lezzetkesif/services"
	"github.com/lezzetkesif/lezzetkesif/ws"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	return &config.Config{
		Store:    config.StoreConfig{Driver: config.StoreMemory},
		JWT:      config.JWTConfig{Secret: "test-secret", AccessTokenExpiry: 15, RefreshTokenExpiry: 7},
		Upload:   config.UploadConfig{Backend: config.UploadLocal, Dir: t.TempDir(), MaxSize: 1 << 20},
		Features: config.FeatureConfig{PageSize: 2, AdminCacheTTL: time.Minute},
		Log:      config.LogConfig{Level: "debug"},
	}
}

func TestInitMemoryRepositories(t *testing.T) {
	cfg := testConfig(t)
	repos, closeRepos, err := initRepositories(context.Background(), cfg, zaptest.NewLogger(t))
	require.NoError(t, err)
	defer closeRepos()

	all, err := repos.Restaurant.GetAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, all, 5)

	ok, err := repos.Admin.Exists(context.Background(), "1")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestPrintRestaurants(t *testing.T) {
	color.NoColor = true
	cfg := testConfig(t)
	repos, closeRepos, err := initRepositories(context.Background(), cfg, zaptest.NewLogger(t))
	require.NoError(t, err)
	defer closeRepos()

	svc := services.NewRestaurantService(repos.Restaurant, cfg.Features.PageSize)

	t.Run("filtered page", func(t *testing.T) {
		view, _, err := svc.Browse(context.Background(), url.Values{"cuisine": {"Kebap"}})
		require.NoError(t, err)

		var buf bytes.Buffer
		require.NoError(t, printRestaurants(&buf, view))
		out := buf.String()
		assert.Contains(t, out, "Aspava")
		assert.Contains(t, out, "Kebapçı Selim Usta")
		assert.Contains(t, out, "1-2 / 2 sonuç (sayfa 1/1)")
	})

	t.Run("empty result", func(t *testing.T) {
		view, _, err := svc.Browse(context.Background(), url.Values{"q": {"sushi"}})
		require.NoError(t, err)

		var buf bytes.Buffer
		require.NoError(t, printRestaurants(&buf, view))
		assert.Contains(t, buf.String(), "Sonuç bulunamadı (0 restoran filtreye uydu)")
	})
}

func TestServerWireUp(t *testing.T) {
	cfg := testConfig(t)
	log := zaptest.NewLogger(t)
	ctx := context.Background()

	repos, closeRepos, err := initRepositories(ctx, cfg, log)
	require.NoError(t, err)
	defer closeRepos()

	hub := ws.NewHub(log, nil)
	svcs, limiters, err := initServices(ctx, repos, hub, cfg, log)
	require.NoError(t, err)
	defer svcs.Close()
	defer limiters.Close()
	assert.Equal(t, cfg.Upload.Dir, svcs.UploadDir)

	h, err := initHandlers(svcs, limiters, hub, cfg, log)
	require.NoError(t, err)

	mux := http.NewServeMux()
	authMw := initRoutes(mux, h, svcs)
	srv := httptest.NewServer(authMw.Optional(mux))
	defer srv.Close()

	tests := []struct {
		path     string
		want     int
		contains string
	}{
		{"/api/health", http.StatusOK, ""},
		{"/api/restaurants/map", http.StatusOK, ""},
		{"/api/admin/restaurants", http.StatusUnauthorized, ""},
		{"/static/app.css", http.StatusOK, ""},
		{"/uploads/missing.png", http.StatusNotFound, ""},
		{"/", http.StatusOK, "Öne Çıkan Restoranlar"},
		{"/restaurants", http.StatusOK, "Restoranlar"},
		{"/blog/unknown-id", http.StatusNotFound, "Aradığınız blog yazısı bulunamadı."},
		{"/admin", http.StatusUnauthorized, "Erişim Reddedildi"},
	}
	for _, tt := range tests {
		resp, err := http.Get(srv.URL + tt.path)
		require.NoError(t, err)
		body, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		require.NoError(t, err)

		assert.Equal(t, tt.want, resp.StatusCode, tt.path)
		if tt.contains != "" {
			assert.Contains(t, string(body), tt.contains, tt.path)
		}
	}
	// Çeviri anahtarları ham haliyle sayfaya düşmemeli.
	resp, err := http.Get(srv.URL + "/blog/unknown-id")
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	require.NoError(t, err)
	assert.NotContains(t, string(body), "notFound.title")
	assert.NotContains(t, string(body), "nav.home")
}
