package content

import (
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupContentTest(t *testing.T) *Service {
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
	if err := db.AutoMigrate(&Row{}); err != nil {
		t.Fatalf("failed to migrate test db: %v", err)
	}
	return NewService(db)
}

func TestSetCreatesThenUpdates(t *testing.T) {
	svc := setupContentTest(t)

	row, err := svc.Set("hero_title", "Slowwwy")
	if err != nil {
		t.Fatalf("set failed: %v", err)
	}
	if row.Value != "Slowwwy" {
		t.Fatalf("unexpected value %q", row.Value)
	}

	if _, err := svc.Set("hero_title", "Slowwwy Keyboards"); err != nil {
		t.Fatalf("update failed: %v", err)
	}

	m, err := svc.Map()
	if err != nil {
		t.Fatalf("map failed: %v", err)
	}
	if m["hero_title"] != "Slowwwy Keyboards" {
		t.Fatalf("expected updated value, got %q", m["hero_title"])
	}

	rows, _ := svc.List()
	if len(rows) != 1 {
		t.Fatalf("expected one row per key, got %d", len(rows))
	}
}

func TestSetRejectsEmptyKey(t *testing.T) {
	svc := setupContentTest(t)

	if _, err := svc.Set("  ", "v"); err != ErrKeyMissing {
		t.Fatalf("expected ErrKeyMissing, got %v", err)
	}
}

func TestSeedDoesNotOverwrite(t *testing.T) {
	svc := setupContentTest(t)

	if _, err := svc.Set("hero_title", "Custom"); err != nil {
		t.Fatalf("set failed: %v", err)
	}
	if err := svc.Seed(); err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	m, _ := svc.Map()
	if m["hero_title"] != "Custom" {
		t.Fatalf("seed overwrote an existing value: %q", m["hero_title"])
	}
	if len(m) != len(DefaultKeys) {
		t.Fatalf("expected %d keys after seed, got %d", len(DefaultKeys), len(m))
	}

	if err := svc.Seed(); err != nil {
		t.Fatalf("second seed failed: %v", err)
	}
	m, _ = svc.Map()
	if len(m) != len(DefaultKeys) {
		t.Fatalf("seed is not idempotent: %d keys", len(m))
	}
}
