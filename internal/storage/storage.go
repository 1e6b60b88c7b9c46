package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/straye-as/fieldservice-api/internal/config"
	"go.uber.org/zap"
)

// ErrNotFound is returned by Download when nothing is stored at the path
var ErrNotFound = errors.New("stored object not found")

// Storage defines the interface for rendered document storage
type Storage interface {
	Upload(ctx context.Context, filename string, contentType string, data io.Reader) (string, int64, error)
	Download(ctx context.Context, storagePath string) (io.ReadCloser, error)
	Delete(ctx context.Context, storagePath string) error
}

// NewStorage creates a storage backend based on configuration.
// local stores on disk, azure in Azure Blob Storage and s3 in any
// S3-compatible object store.
func NewStorage(cfg *config.StorageConfig, logger *zap.Logger) (Storage, error) {
	switch cfg.Mode {
	case "local":
		return NewLocalStorage(cfg.LocalBasePath)
	case "cloud", "azure":
		if cfg.CloudConnectionString == "" {
			return nil, fmt.Errorf("cloud connection string required for azure storage")
		}
		return NewAzureBlobStorage(cfg.CloudConnectionString, cfg.CloudContainer, logger)
	case "s3":
		if cfg.S3Endpoint == "" {
			return nil, fmt.Errorf("s3 endpoint required for s3 storage")
		}
		return NewS3Storage(S3Options{
			Endpoint:  cfg.S3Endpoint,
			AccessKey: cfg.S3AccessKey,
			SecretKey: cfg.S3SecretKey,
			Bucket:    cfg.S3Bucket,
			UseSSL:    cfg.S3UseSSL,
		}, logger)
	default:
		return nil, fmt.Errorf("unsupported storage mode: %s", cfg.Mode)
	}
}

// objectName builds a unique key grouped by month, e.g. 2026/05/<uuid>.pdf.
// The original extension is kept so downloads get a sensible content type.
func objectName(filename string, now time.Time) string {
	return path.Join(now.Format("2006"), now.Format("01"), uuid.New().String()+filepath.Ext(filename))
}

// countingReader wraps an io.Reader and counts the number of bytes read
type countingReader struct {
	r     io.Reader
	count int64
}

func (c *countingReader) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	c.count += int64(n)
	return n, err
}
