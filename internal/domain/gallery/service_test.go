package gallery

import (
	"context"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"storefront-app/internal/infra/storage"
)

func setupGalleryTest(t *testing.T) (*Service, *storage.Recorder) {
	t.Helper()

	dsn := "file:" + t.Name() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	if err := db.AutoMigrate(&Item{}); err != nil {
		t.Fatalf("failed to migrate test db: %v", err)
	}

	rec := storage.NewRecorder()
	return NewService(db, rec), rec
}

func upload(name string) *storage.File {
	return &storage.File{Filename: name, ContentType: "image/png", Data: []byte("png-bytes")}
}

func TestCreateRequiresImage(t *testing.T) {
	svc, _ := setupGalleryTest(t)

	if _, err := svc.Create(context.Background(), Input{Title: "no file"}, nil); err != ErrImageRequired {
		t.Fatalf("expected ErrImageRequired, got %v", err)
	}
}

func TestCreateAppendsAtEnd(t *testing.T) {
	svc, _ := setupGalleryTest(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		if _, err := svc.Create(ctx, Input{}, upload("a.png")); err != nil {
			t.Fatalf("create %d failed: %v", i, err)
		}
	}

	item, err := svc.Create(ctx, Input{Title: "sixth"}, upload("b.png"))
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if item.DisplayOrder != 5 {
		t.Fatalf("expected display_order 5 for sixth item, got %d", item.DisplayOrder)
	}
	if item.Size != SizeMedium {
		t.Fatalf("expected default size medium, got %s", item.Size)
	}
}

func TestCreateClampsColumnIndex(t *testing.T) {
	svc, _ := setupGalleryTest(t)

	item, err := svc.Create(context.Background(), Input{ColumnIndex: 7}, upload("a.png"))
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if item.ColumnIndex != 2 {
		t.Fatalf("expected column clamped to 2, got %d", item.ColumnIndex)
	}
}

func TestUpdateTitleOnlyKeepsImage(t *testing.T) {
	svc, rec := setupGalleryTest(t)
	ctx := context.Background()

	item, err := svc.Create(ctx, Input{Title: "before"}, upload("a.png"))
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	uploadsBefore := len(rec.Uploads)

	updated, err := svc.Update(ctx, item.ID, Input{Title: "after", Size: item.Size, ColumnIndex: item.ColumnIndex}, nil)
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.ImageURL != item.ImageURL {
		t.Fatalf("expected image_url unchanged, got %s", updated.ImageURL)
	}
	if len(rec.Uploads) != uploadsBefore {
		t.Fatalf("expected zero new uploads, got %d", len(rec.Uploads)-uploadsBefore)
	}
	if len(rec.Removals) != 0 {
		t.Fatalf("expected zero removals, got %d", len(rec.Removals))
	}
	if updated.Title == nil || *updated.Title != "after" {
		t.Fatalf("expected title updated")
	}
}

func TestUpdateWithNewFileReplacesBlob(t *testing.T) {
	svc, rec := setupGalleryTest(t)
	ctx := context.Background()

	item, err := svc.Create(ctx, Input{}, upload("a.png"))
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	oldKey := rec.Uploads[0]

	updated, err := svc.Update(ctx, item.ID, Input{Size: item.Size}, upload("b.png"))
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.ImageURL == item.ImageURL {
		t.Fatalf("expected image_url replaced")
	}
	if len(rec.Uploads) != 2 {
		t.Fatalf("expected 2 uploads, got %d", len(rec.Uploads))
	}
	if len(rec.Removals) != 1 || rec.Removals[0] != oldKey {
		t.Fatalf("expected old blob %s removed, got %v", oldKey, rec.Removals)
	}
}

func TestDeleteRemovesBlobThenRow(t *testing.T) {
	svc, rec := setupGalleryTest(t)
	ctx := context.Background()

	item, err := svc.Create(ctx, Input{}, upload("a.png"))
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if err := svc.Delete(ctx, item.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if len(rec.Removals) != 1 {
		t.Fatalf("expected 1 blob removal, got %d", len(rec.Removals))
	}
	if _, err := svc.Get(item.ID); err != ErrNotFound {
		t.Fatalf("expected row gone, got %v", err)
	}
}

func TestReorderSwapsNeighbors(t *testing.T) {
	svc, _ := setupGalleryTest(t)
	ctx := context.Background()

	first, _ := svc.Create(ctx, Input{Title: "first"}, upload("a.png"))
	second, _ := svc.Create(ctx, Input{Title: "second"}, upload("b.png"))

	if err := svc.Reorder(first.ID, 1); err != nil {
		t.Fatalf("reorder failed: %v", err)
	}

	items, err := svc.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if items[0].ID != second.ID || items[1].ID != first.ID {
		t.Fatalf("expected swapped order")
	}

	// Top item moving up is a no-op.
	if err := svc.Reorder(second.ID, -1); err != nil {
		t.Fatalf("boundary reorder failed: %v", err)
	}
	items, _ = svc.List()
	if items[0].ID != second.ID {
		t.Fatalf("expected boundary move to be a no-op")
	}
}
