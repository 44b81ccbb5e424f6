package filestorage

import (
	"context"
	"errors"
	"time"
)

var ErrObjectExists = errors.New("object already exists")

type UploadInfo struct {
	Bucket string
	Key    string
	ETag   string
	Size   int64
}

// Storage is the object store badges are uploaded to.
type Storage interface {
	// Bucket every key is relative to
	Bucket() string
	// UploadFile uploads the local file at path under key. Unless the store
	// allows overwriting, an existing key fails with ErrObjectExists.
	UploadFile(ctx context.Context, key, path, contentType string) (UploadInfo, error)
	// PresignGet returns a time-limited download URL for key.
	PresignGet(ctx context.Context, key string, expiry time.Duration) (string, error)
	Delete(ctx context.Context, key string) error
}
