// Package main, LezzetKeşif sunucusunun giriş noktasıdır.
//
// serve komutunun görevi, Dependency Injection "wire-up":
//
//  1. Config'i yükle
//  2. Logger'ı kur
//  3. Repository'leri oluştur (memory veya veritabanı)
//  4. Event sink + WebSocket Hub
//  5. Service'leri oluştur (repository'ler + hub ile)
//  6. Handler'ları oluştur (service'ler ile)
//  7. HTTP router'ı kur, route'ları bağla
//  8. CORS + request log
//  9. HTTP Server'ı başlat
//  10. Graceful shutdown
//
// Global değişken YOK, her şey runServe içinde oluşturulup birbirine bağlanıyor.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/cors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/lezzetkesif/lezzetkesif/config"
	"github.com/lezzetkesif/lezzetkesif/middleware"
	"github.com/lezzetkesif/lezzetkesif/pkg/kafkasink"
	"github.com/lezzetkesif/lezzetkesif/repository"
	"github.com/lezzetkesif/lezzetkesif/ws"
)

// sessionCleanupInterval, süresi dolmuş refresh oturumlarının silinme aralığı.
const sessionCleanupInterval = time.Hour

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// runServe, sunucuyu kurar ve SIGINT/SIGTERM gelene kadar çalıştırır.
func runServe(cfg *config.Config, log *zap.Logger) error {
	log = log.Named("main")
	log.Info("lezzetkesif server starting",
		zap.String("store", cfg.Store.Driver),
		zap.Int("port", cfg.Server.Port))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// ─── 3. Repository Layer ───
	repos, closeRepos, err := initRepositories(ctx, cfg, log.Named("store"))
	if err != nil {
		return err
	}
	defer closeRepos()

	// ─── 4. Event sink + WebSocket Hub ───
	//
	// Hub tüm yazma event'lerini bağlı client'lara yayar. KAFKA_BROKERS
	// tanımlıysa aynı event'ler Kafka'ya da kopyalanır.
	// Sink nil interface olarak kalmalı; typed-nil pointer Hub'a verilmez.
	var (
		sinkIface ws.EventSink
		sink      *kafkasink.Sink
	)
	if len(cfg.Kafka.Brokers) > 0 {
		sink = kafkasink.New(cfg.Kafka.Brokers, cfg.Kafka.Topic, log)
		sinkIface = sink
		log.Info("kafka event sink enabled",
			zap.Strings("brokers", cfg.Kafka.Brokers),
			zap.String("topic", cfg.Kafka.Topic))
	}
	hub := ws.NewHub(log, sinkIface)

	// ─── 5. Service Layer ───
	svcs, limiters, err := initServices(ctx, repos, hub, cfg, log)
	if err != nil {
		return err
	}
	defer svcs.Close()
	defer limiters.Close()

	// ─── 6. Handler Layer ───
	h, err := initHandlers(svcs, limiters, hub, cfg, log)
	if err != nil {
		return err
	}

	// ─── 7. HTTP Router ───
	mux := http.NewServeMux()
	authMw := initRoutes(mux, h, svcs)

	// ─── 8. CORS + request log ───
	//
	// Optional auth tüm isteklerde kullanıcıyı context'e koyar; HTML sayfaları
	// ve handler'lar kullanıcıyı buradan okur. Require gereken route'larda ayrıca uygulanır.
	var handler http.Handler = authMw.Optional(mux)
	if len(cfg.Server.CORSOrigins) > 0 {
		corsHandler := cors.New(cors.Options{
			AllowedOrigins:   cfg.Server.CORSOrigins,
			AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Authorization", "Content-Type"},
			AllowCredentials: true,
			Debug:            false,
		})
		handler = corsHandler.Handler(handler)
	}
	handler = middleware.RequestLogger(log)(handler)

	// ─── 9. HTTP Server ───
	srv := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// ─── 10. Graceful Shutdown ───
	//
	// Herhangi bir goroutine hata dönerse gctx iptal olur ve diğerleri de durur.
	// Önce Hub bağlantıları kapatır, sonra HTTP server mevcut isteklerin
	// bitmesini bekler (5sn timeout).
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return hub.Run(gctx)
	})
	if sink != nil {
		g.Go(func() error {
			return sink.Run(gctx)
		})
	}
	g.Go(func() error {
		cleanupSessions(gctx, repos.Session, log)
		return nil
	})
	g.Go(func() error {
		log.Info("server listening", zap.String("addr", cfg.Server.Addr()))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutting down...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Error("server stopped with error", zap.Error(err))
		return err
	}
	log.Info("server stopped gracefully")
	return nil
}

// cleanupSessions, süresi dolmuş oturumları ctx iptal edilene kadar periyodik siler.
func cleanupSessions(ctx context.Context, sessions repository.SessionRepository, log *zap.Logger) {
	ticker := time.NewTicker(sessionCleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := sessions.DeleteExpired(ctx); err != nil {
				log.Warn("failed to delete expired sessions", zap.Error(err))
			}
		}
	}
}
