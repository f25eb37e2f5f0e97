package storage

import (
	"context"
	"strings"
	"sync"
)

// Recorder is an in-memory ObjectStore for tests and local development. It
// records every upload and removal in order so tests can assert on the exact
// storage traffic an operation produced.
type Recorder struct {
	BaseURL string

	mu       sync.Mutex
	Uploads  []string
	Removals []string
}

var _ ObjectStore = (*Recorder)(nil)

func NewRecorder() *Recorder {
	return &Recorder{BaseURL: "https://storage.test"}
}

func (r *Recorder) Upload(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Uploads = append(r.Uploads, key)
	return r.PublicURL(key), nil
}

func (r *Recorder) Remove(ctx context.Context, keys ...string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Removals = append(r.Removals, keys...)
	return nil
}

func (r *Recorder) PublicURL(key string) string {
	return r.BaseURL + "/" + strings.TrimPrefix(key, "/")
}

func (r *Recorder) KeyFromURL(url string) string {
	prefix := r.BaseURL + "/"
	if !strings.HasPrefix(url, prefix) {
		return ""
	}
	return strings.TrimPrefix(url, prefix)
}
