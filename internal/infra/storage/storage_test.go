package storage

import (
	"context"
	"strings"
	"testing"
)

func TestNewObjectKey(t *testing.T) {
	key := NewObjectKey("gallery", "photo.JPG")
	if !strings.HasPrefix(key, "gallery/") {
		t.Fatalf("expected gallery/ prefix, got %s", key)
	}
	if !strings.HasSuffix(key, ".jpg") {
		t.Fatalf("expected lowercased .jpg extension, got %s", key)
	}

	other := NewObjectKey("gallery", "photo.JPG")
	if key == other {
		t.Fatalf("expected unique keys, got %s twice", key)
	}

	bare := NewObjectKey("", "a.png")
	if strings.Contains(bare, "/") {
		t.Fatalf("expected no prefix separator, got %s", bare)
	}
}

func TestRecorderRoundTrip(t *testing.T) {
	rec := NewRecorder()

	url, err := rec.Upload(context.Background(), "gallery/x.png", []byte("data"), "image/png")
	if err != nil {
		t.Fatalf("upload failed: %v", err)
	}
	if got := rec.KeyFromURL(url); got != "gallery/x.png" {
		t.Fatalf("expected key round-trip, got %q", got)
	}
	if rec.KeyFromURL("https://elsewhere.test/y.png") != "" {
		t.Fatalf("expected empty key for foreign URL")
	}
}

func TestDisabledStoreFails(t *testing.T) {
	var store ObjectStore = Disabled{}
	if _, err := store.Upload(context.Background(), "k", nil, ""); err != ErrNotConfigured {
		t.Fatalf("expected ErrNotConfigured, got %v", err)
	}
	if err := store.Remove(context.Background(), "k"); err != ErrNotConfigured {
		t.Fatalf("expected ErrNotConfigured, got %v", err)
	}
}
