// Package config, uygulamanın tüm konfigürasyonunu merkezi olarak yönetir.
// Environment variable'lardan okur, .env dosyasını da destekler.
//
// Değerler viper üzerinden okunur: her key için bir varsayılan tanımlanır,
// AutomaticEnv aynı isimli environment variable'ı varsayılanın önüne koyar.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Store driver'ları. memory varsayılandır: veri her başlangıçta mock dataset'ten
// yüklenir ve restart'ta kaybolur.
const (
	StoreMemory   = "memory"
	StoreSQLite   = "sqlite"
	StorePostgres = "postgres"
)

// Upload backend'leri.
const (
	UploadLocal = "local"
	UploadS3    = "s3"
)

// devJWTSecret sadece memory driver ile, JWT_SECRET verilmemişse kullanılır.
const devJWTSecret = "lezzetkesif-dev-secret-change-me"

// Config, uygulamanın tüm konfigürasyon değerlerini taşır.
type Config struct {
	Server   ServerConfig
	Store    StoreConfig
	JWT      JWTConfig
	Upload   UploadConfig
	S3       S3Config
	Email    EmailConfig
	Kafka    KafkaConfig
	Features FeatureConfig
	Log      LogConfig
}

// ServerConfig, HTTP server ayarları.
type ServerConfig struct {
	Host        string
	Port        int
	CORSOrigins []string
}

// StoreConfig, veri katmanı ayarları.
type StoreConfig struct {
	Driver string // memory | sqlite | postgres
	Path   string // SQLite dosya yolu (ör: ./data/lezzetkesif.db)
	URL    string // Postgres DSN
}

// JWTConfig, JWT token ayarları.
type JWTConfig struct {
	Secret             string // Token imzalama anahtarı, GİZLİ TUTULMALI
	AccessTokenExpiry  int    // Dakika cinsinden (varsayılan: 15)
	RefreshTokenExpiry int    // Gün cinsinden (varsayılan: 7)
}

// UploadConfig, görsel yükleme ayarları.
type UploadConfig struct {
	Backend string // local | s3
	Dir     string // local backend'in yazdığı dizin
	MaxSize int64  // Byte cinsinden max dosya boyutu (varsayılan: 5MB)
}

// S3Config, UPLOAD_BACKEND=s3 iken kullanılan bucket ayarları.
type S3Config struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	Region    string
	UseSSL    bool
	PublicURL string
}

// EmailConfig, hoş geldin e-postası ayarları. APIKey boşsa e-posta gönderilmez.
type EmailConfig struct {
	ResendAPIKey string
	From         string
	AppURL       string
}

// KafkaConfig, domain event sink ayarları. Brokers boşsa sink kapalıdır.
type KafkaConfig struct {
	Brokers []string
	Topic   string
}

// FeatureConfig, davranış ayarları.
type FeatureConfig struct {
	SubmitDelay   time.Duration // değerlendirme/yorum gönderiminde yapay gecikme
	PageSize      int           // restoran listesinde sayfa başına kayıt
	AdminCacheTTL time.Duration
}

// LogConfig, logger ayarları.
type LogConfig struct {
	Level  string
	Format string // json | console
}

// defaults, her key'in varsayılan değeri.
var defaults = map[string]any{
	"SERVER_HOST":               "0.0.0.0",
	"SERVER_PORT":               8080,
	"CORS_ORIGINS":              "",
	"STORE_DRIVER":              StoreMemory,
	"DATABASE_PATH":             "./data/lezzetkesif.db",
	"DATABASE_URL":              "",
	"JWT_SECRET":                "",
	"JWT_ACCESS_EXPIRY_MINUTES": 15,
	"JWT_REFRESH_EXPIRY_DAYS":   7,
	"UPLOAD_BACKEND":            UploadLocal,
	"UPLOAD_DIR":                "./data/uploads",
	"UPLOAD_MAX_SIZE":           5 << 20, // 5MB
	"S3_ENDPOINT":               "",
	"S3_ACCESS_KEY":             "",
	"S3_SECRET_KEY":             "",
	"S3_BUCKET":                 "lezzetkesif",
	"S3_REGION":                 "",
	"S3_USE_SSL":                false,
	"S3_PUBLIC_URL":             "",
	"RESEND_API_KEY":            "",
	"EMAIL_FROM":                "LezzetKeşif <noreply@lezzetkesif.app>",
	"APP_URL":                   "http://localhost:8080",
	"KAFKA_BROKERS":             "",
	"KAFKA_TOPIC":               "lezzetkesif.events",
	"MOCK_SUBMIT_DELAY":         "0s",
	"PAGE_SIZE":                 9,
	"ADMIN_CACHE_TTL":           "1m",
	"LOG_LEVEL":                 "info",
	"LOG_FORMAT":                "json",
}

// Load, environment variable'lardan Config oluşturur.
// .env dosyası varsa önce onu yükler (development kolaylığı için).
func Load() (*Config, error) {
	// .env yoksa hata vermez. Production'da gerçek env variable'lar kullanılır.
	_ = godotenv.Load()

	v := viper.New()
	for key, val := range defaults {
		v.SetDefault(key, val)
	}
	v.AutomaticEnv()

	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Host:        v.GetString("SERVER_HOST"),
			Port:        v.GetInt("SERVER_PORT"),
			CORSOrigins: splitList(v.GetString("CORS_ORIGINS")),
		},
		Store: StoreConfig{
			Driver: strings.ToLower(v.GetString("STORE_DRIVER")),
			Path:   v.GetString("DATABASE_PATH"),
			URL:    v.GetString("DATABASE_URL"),
		},
		JWT: JWTConfig{
			Secret:             v.GetString("JWT_SECRET"),
			AccessTokenExpiry:  v.GetInt("JWT_ACCESS_EXPIRY_MINUTES"),
			RefreshTokenExpiry: v.GetInt("JWT_REFRESH_EXPIRY_DAYS"),
		},
		Upload: UploadConfig{
			Backend: strings.ToLower(v.GetString("UPLOAD_BACKEND")),
			Dir:     v.GetString("UPLOAD_DIR"),
			MaxSize: v.GetInt64("UPLOAD_MAX_SIZE"),
		},
		S3: S3Config{
			Endpoint:  v.GetString("S3_ENDPOINT"),
			AccessKey: v.GetString("S3_ACCESS_KEY"),
			SecretKey: v.GetString("S3_SECRET_KEY"),
			Bucket:    v.GetString("S3_BUCKET"),
			Region:    v.GetString("S3_REGION"),
			UseSSL:    v.GetBool("S3_USE_SSL"),
			PublicURL: v.GetString("S3_PUBLIC_URL"),
		},
		Email: EmailConfig{
			ResendAPIKey: v.GetString("RESEND_API_KEY"),
			From:         v.GetString("EMAIL_FROM"),
			AppURL:       v.GetString("APP_URL"),
		},
		Kafka: KafkaConfig{
			Brokers: splitList(v.GetString("KAFKA_BROKERS")),
			Topic:   v.GetString("KAFKA_TOPIC"),
		},
		Features: FeatureConfig{
			SubmitDelay:   v.GetDuration("MOCK_SUBMIT_DELAY"),
			PageSize:      v.GetInt("PAGE_SIZE"),
			AdminCacheTTL: v.GetDuration("ADMIN_CACHE_TTL"),
		},
		Log: LogConfig{
			Level:  v.GetString("LOG_LEVEL"),
			Format: v.GetString("LOG_FORMAT"),
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid SERVER_PORT: %d", c.Server.Port)
	}

	switch c.Store.Driver {
	case StoreMemory, StoreSQLite:
	case StorePostgres:
		if c.Store.URL == "" {
			return fmt.Errorf("DATABASE_URL is required when STORE_DRIVER=postgres")
		}
	default:
		return fmt.Errorf("invalid STORE_DRIVER %q (memory, sqlite or postgres)", c.Store.Driver)
	}

	// Kalıcı bir store ile sabit geliştirme anahtarı kabul edilmez.
	if c.JWT.Secret == "" {
		if c.Store.Driver != StoreMemory {
			return fmt.Errorf("JWT_SECRET environment variable is required")
		}
		c.JWT.Secret = devJWTSecret
	}
	if c.JWT.AccessTokenExpiry <= 0 {
		return fmt.Errorf("invalid JWT_ACCESS_EXPIRY_MINUTES: %d", c.JWT.AccessTokenExpiry)
	}
	if c.JWT.RefreshTokenExpiry <= 0 {
		return fmt.Errorf("invalid JWT_REFRESH_EXPIRY_DAYS: %d", c.JWT.RefreshTokenExpiry)
	}

	switch c.Upload.Backend {
	case UploadLocal:
	case UploadS3:
		if c.S3.Endpoint == "" {
			return fmt.Errorf("S3_ENDPOINT is required when UPLOAD_BACKEND=s3")
		}
	default:
		return fmt.Errorf("invalid UPLOAD_BACKEND %q (local or s3)", c.Upload.Backend)
	}
	if c.Upload.MaxSize <= 0 {
		return fmt.Errorf("invalid UPLOAD_MAX_SIZE: %d", c.Upload.MaxSize)
	}

	if c.Features.SubmitDelay < 0 {
		return fmt.Errorf("invalid MOCK_SUBMIT_DELAY: %s", c.Features.SubmitDelay)
	}
	if c.Features.PageSize <= 0 {
		return fmt.Errorf("invalid PAGE_SIZE: %d", c.Features.PageSize)
	}
	return nil
}

// Addr, HTTP server'ın dinleyeceği adresi döner (ör: "0.0.0.0:8080").
func (c *ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// splitList: "a, b,,c" → ["a" "b" "c"]
func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
