package services

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/lezzetkesif/lezzetkesif/pkg"
	"github.com/lezzetkesif/lezzetkesif/pkg/storage"
)

// UploadService, admin görsel yükleme iş mantığı.
type UploadService interface {
	// UploadImage, görseli doğrular, depolar ve herkese açık URL'ini döner.
	UploadImage(ctx context.Context, filename string, size int64, r io.Reader) (string, error)
}

type uploadService struct {
	store   storage.Storage
	maxSize int64
}

// NewUploadService, constructor.
func NewUploadService(store storage.Storage, maxSize int64) UploadService {
	return &uploadService{store: store, maxSize: maxSize}
}

// allowedImageTypes, yüklemeye izin verilen görsel türleri.
var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

func (s *uploadService) UploadImage(ctx context.Context, filename string, size int64, r io.Reader) (string, error) {
	if size <= 0 {
		return "", fmt.Errorf("%w: empty file", pkg.ErrBadRequest)
	}
	if size > s.maxSize {
		return "", fmt.Errorf("%w: file too large (max %dMB)", pkg.ErrBadRequest, s.maxSize/(1024*1024))
	}

	// Content-Type header'ına güvenilmez; ilk 512 byte'tan tespit edilir.
	br := bufio.NewReaderSize(r, 512)
	head, err := br.Peek(512)
	if err != nil && err != io.EOF && err != bufio.ErrBufferFull {
		return "", fmt.Errorf("failed to read upload: %w", err)
	}
	contentType := http.DetectContentType(head)
	if !allowedImageTypes[contentType] {
		return "", fmt.Errorf("%w: file type not allowed: %s", pkg.ErrBadRequest, contentType)
	}

	url, err := s.store.Save(ctx, storage.ObjectName(filename), contentType, io.LimitReader(br, s.maxSize), size)
	if err != nil {
		return "", err
	}
	return url, nil
}
