// Package logger, uygulamanın structured logger'ını (zap) kurar.
//
// Tek bir root logger main'de oluşturulur, her bileşen kendi adıyla
// türetilmiş child logger alır:
//
//	log := root.Named("database")
//	log.Info("migration applied", zap.String("file", name))
//
// Çıktıda "database" gibi isimler, eski "[database]" prefix'lerinin yerini tutar.
package logger

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Format, log çıktı formatı.
type Format string

const (
	FormatJSON    Format = "json"
	FormatConsole Format = "console"
)

// New, verilen seviye ve formatla bir zap logger oluşturur.
//
// level: "debug", "info", "warn", "error"
// format: "json" (production) veya "console" (development, renkli seviye)
func New(level string, format Format) (*zap.Logger, error) {
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(strings.ToLower(strings.TrimSpace(level)))); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	var cfg zap.Config
	switch format {
	case FormatConsole:
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	case FormatJSON, "":
		cfg = zap.NewProductionConfig()
		cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	default:
		return nil, fmt.Errorf("unknown log format %q", format)
	}

	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.DisableStacktrace = lvl > zapcore.DebugLevel

	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}
	return logger, nil
}
