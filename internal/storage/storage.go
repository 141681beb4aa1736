package storage

import (
	"context"
	"errors"
)

var ErrFileNotFound = errors.New("stored file not found")

// StoredFile is the pair of public URLs produced by storing an image.
type StoredFile struct {
	URL          string
	ThumbnailURL string
}

// FileStore stores and deletes uploaded image files. Delete is best-effort:
// callers log and surface errors but do not compensate.
type FileStore interface {
	Store(ctx context.Context, data []byte, name, folder string) (StoredFile, error)
	Delete(ctx context.Context, url string) error
}
