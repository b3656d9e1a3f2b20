package storage

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// S3Config, S3 uyumlu backend ayarları.
type S3Config struct {
	Endpoint  string // ör: "localhost:9000"
	AccessKey string
	SecretKey string
	Bucket    string
	Region    string
	UseSSL    bool
	// PublicURL, nesnelerin dışarıdan erişildiği taban adres
	// (ör: "https://cdn.lezzetkesif.app"). Boşsa endpoint + bucket kullanılır.
	PublicURL string
}

// objectPutter, minio.Client'ın kullandığımız alt kümesi. Testlerde taklit edilir.
type objectPutter interface {
	PutObject(ctx context.Context, bucketName, objectName string, reader io.Reader, objectSize int64,
		opts minio.PutObjectOptions) (minio.UploadInfo, error)
}

// S3Storage, görselleri bir S3 bucket'ına yazar.
type S3Storage struct {
	client    objectPutter
	bucket    string
	publicURL string
}

// NewS3Storage, MinIO client'ı kurar ve bucket yoksa oluşturur.
func NewS3Storage(ctx context.Context, cfg S3Config) (*S3Storage, error) {
	if cfg.Endpoint == "" || cfg.AccessKey == "" || cfg.SecretKey == "" || cfg.Bucket == "" {
		return nil, fmt.Errorf("missing one or more required S3 settings: S3_ENDPOINT, S3_ACCESS_KEY, S3_SECRET_KEY, S3_BUCKET")
	}

	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create S3 client: %w", err)
	}

	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket %s: %w", cfg.Bucket, err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{Region: cfg.Region}); err != nil {
			return nil, fmt.Errorf("failed to create bucket %s: %w", cfg.Bucket, err)
		}
	}

	return newS3Storage(client, cfg), nil
}

func newS3Storage(client objectPutter, cfg S3Config) *S3Storage {
	public := strings.TrimRight(cfg.PublicURL, "/")
	if public == "" {
		scheme := "http"
		if cfg.UseSSL {
			scheme = "https"
		}
		public = fmt.Sprintf("%s://%s/%s", scheme, cfg.Endpoint, cfg.Bucket)
	}
	return &S3Storage{client: client, bucket: cfg.Bucket, publicURL: public}
}

func (s *S3Storage) Save(ctx context.Context, name, contentType string, r io.Reader, size int64) (string, error) {
	key := "images/" + name
	_, err := s.client.PutObject(ctx, s.bucket, key, r, size, minio.PutObjectOptions{
		ContentType:  contentType,
		CacheControl: "public, max-age=31536000, immutable",
	})
	if err != nil {
		return "", fmt.Errorf("failed to store object in S3: %w", err)
	}
	return s.publicURL + "/" + key, nil
}
