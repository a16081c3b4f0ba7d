package ports

import (
	"context"
	"io"
)

// StoragePort เก็บไฟล์ snapshot (local หรือ S3-compatible)
type StoragePort interface {
	// UploadFile returns the URL of the stored object.
	UploadFile(ctx context.Context, file io.Reader, size int64, path string, contentType string) (string, error)
	GetFileURL(path string) string
	GetProviderName() string
}
