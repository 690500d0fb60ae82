package storage

import (
	"context"
	"io"
	"time"
)

// FileInfo describes one stored object or folder.
type FileInfo struct {
	Path      string
	Name      string
	Size      int64
	IsDir     bool
	UpdatedAt time.Time
}

// FileStorage is the object storage the drive module runs on. The local-disk
// implementation is the default; the interface keeps an S3-style backend
// swappable.
type FileStorage interface {
	// Upload stores a file and returns its storage key.
	Upload(ctx context.Context, file io.Reader, path string, contentType string) (string, error)

	// Download retrieves a file.
	Download(ctx context.Context, path string) (io.ReadCloser, error)

	// Delete removes a file. Deleting a missing file is a no-op.
	Delete(ctx context.Context, path string) error

	// List returns the immediate children of a folder.
	List(ctx context.Context, prefix string) ([]FileInfo, error)

	// CreateFolder creates an empty folder.
	CreateFolder(ctx context.Context, path string) error

	// GetURL generates a public or presigned URL.
	GetURL(ctx context.Context, path string, expiry time.Duration) (string, error)

	// Exists checks whether a file exists.
	Exists(ctx context.Context, path string) (bool, error)
}
