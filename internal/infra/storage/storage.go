package storage

import (
	"context"
	"errors"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ErrNotConfigured is returned by the disabled store when object storage
// credentials are missing from the environment.
var ErrNotConfigured = errors.New("object storage not configured")

// ObjectStore is the blob-store surface the editors need: put a file, remove
// files, and resolve the public URL of a stored key.
type ObjectStore interface {
	Upload(ctx context.Context, key string, data []byte, contentType string) (string, error)
	Remove(ctx context.Context, keys ...string) error
	PublicURL(key string) string
	// KeyFromURL maps a public URL previously returned by Upload back to its
	// object key. Returns "" for URLs this store did not produce.
	KeyFromURL(url string) string
}

// File is an upload received from an editor form, already read into memory.
type File struct {
	Filename    string
	ContentType string
	Data        []byte
}

// NewObjectKey builds a collision-resistant key for an uploaded file:
// <prefix>/<unix-ms>-<random>.<ext>. No content hashing or deduplication.
func NewObjectKey(prefix, filename string) string {
	ext := strings.ToLower(path.Ext(filename))
	name := fmt.Sprintf("%d-%s%s", time.Now().UnixMilli(), uuid.NewString(), ext)
	prefix = strings.Trim(prefix, "/")
	if prefix == "" {
		return name
	}
	return prefix + "/" + name
}

// Disabled is the store used when S3 is not configured: every mutation fails
// with ErrNotConfigured instead of crashing at startup.
type Disabled struct{}

func (Disabled) Upload(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	return "", ErrNotConfigured
}

func (Disabled) Remove(ctx context.Context, keys ...string) error { return ErrNotConfigured }

func (Disabled) PublicURL(key string) string { return "" }

func (Disabled) KeyFromURL(url string) string { return "" }
