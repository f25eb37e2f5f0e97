package contact

import (
	"errors"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupContactTest(t *testing.T) *Service {
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
	if err := db.AutoMigrate(&Message{}); err != nil {
		t.Fatalf("failed to migrate test db: %v", err)
	}
	return NewService(db)
}

func TestSubmitTrimsAndStores(t *testing.T) {
	svc := setupContactTest(t)

	m, err := svc.Submit("  Alice  ", " alice@example.com ", "  I'd like a board.  ")
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}
	if m.Name != "Alice" || m.Email != "alice@example.com" || m.Message != "I'd like a board." {
		t.Fatalf("fields not trimmed: %+v", m)
	}
	if m.ID == "" {
		t.Fatal("expected generated id")
	}
}

func TestSubmitRejectsMissingFields(t *testing.T) {
	svc := setupContactTest(t)

	if _, err := svc.Submit("", "alice@example.com", "hi"); !errors.Is(err, ErrFieldsRequired) {
		t.Fatalf("expected ErrFieldsRequired, got %v", err)
	}
	if _, err := svc.Submit("Alice", "alice@example.com", "   "); !errors.Is(err, ErrFieldsRequired) {
		t.Fatalf("expected ErrFieldsRequired, got %v", err)
	}
}

func TestSubmitRejectsBadEmail(t *testing.T) {
	svc := setupContactTest(t)

	for _, email := range []string{"alice", "alice@", "@example.com", "alice@example"} {
		if _, err := svc.Submit("Alice", email, "hi"); !errors.Is(err, ErrInvalidEmail) {
			t.Fatalf("expected ErrInvalidEmail for %q, got %v", email, err)
		}
	}
}

func TestListNewestFirst(t *testing.T) {
	svc := setupContactTest(t)

	older, err := svc.Submit("Alice", "alice@example.com", "first")
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}
	newer, err := svc.Submit("Bob", "bob@example.com", "second")
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}
	// Make the ordering deterministic regardless of timestamp resolution.
	if err := svc.db.Model(&Message{}).Where("id = ?", older.ID).
		Update("created_at", time.Now().Add(-time.Hour)).Error; err != nil {
		t.Fatalf("backdate failed: %v", err)
	}

	msgs, err := svc.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(msgs) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(msgs))
	}
	if msgs[0].ID != newer.ID {
		t.Fatalf("expected newest first, got %q", msgs[0].Message)
	}
}

func TestDelete(t *testing.T) {
	svc := setupContactTest(t)

	m, err := svc.Submit("Alice", "alice@example.com", "hi")
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}

	if err := svc.Delete(m.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if err := svc.Delete(m.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
