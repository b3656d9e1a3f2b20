// Package storage, yüklenen restoran/blog görsellerinin saklandığı yer.
//
// İki backend vardır:
//   - local: UPLOAD_DIR altına dosya yazar, /uploads/<ad> altından servis edilir
//   - s3:    S3 uyumlu bir bucket'a (MinIO, AWS S3) PutObject ile yazar
//
// Upload service sadece Storage interface'ini bilir.
package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// Storage, görsel saklama backend'i.
type Storage interface {
	// Save, içeriği name anahtarıyla yazar ve herkese açık URL'ini döner.
	Save(ctx context.Context, name, contentType string, r io.Reader, size int64) (string, error)
}

// ObjectName, yüklenen dosya için çakışmayan bir nesne adı üretir.
// Orijinal uzantı (küçük harfle) korunur; yol bileşenleri atılır.
func ObjectName(original string) string {
	ext := strings.ToLower(path.Ext(filepath.Base(original)))
	if len(ext) > 8 {
		ext = ""
	}
	return uuid.NewString() + ext
}

// LocalStorage, dosyaları yerel bir dizine yazar.
type LocalStorage struct {
	dir       string
	urlPrefix string // ör: "/uploads"
}

// NewLocalStorage, dizini (yoksa) oluşturur.
func NewLocalStorage(dir, urlPrefix string) (*LocalStorage, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	return &LocalStorage{dir: dir, urlPrefix: strings.TrimRight(urlPrefix, "/")}, nil
}

// Dir, dosyaların yazıldığı dizin. HTTP file server bu dizini servis eder.
func (s *LocalStorage) Dir() string { return s.dir }

func (s *LocalStorage) Save(ctx context.Context, name, _ string, r io.Reader, _ int64) (string, error) {
	if name != filepath.Base(name) || name == "." || name == ".." {
		return "", fmt.Errorf("invalid object name %q", name)
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	dst := filepath.Join(s.dir, name)
	f, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		return "", fmt.Errorf("failed to create upload file: %w", err)
	}
	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		os.Remove(dst)
		return "", fmt.Errorf("failed to write upload file: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(dst)
		return "", fmt.Errorf("failed to close upload file: %w", err)
	}
	return s.urlPrefix + "/" + name, nil
}
