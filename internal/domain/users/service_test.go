package users

import (
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupUsersTest(t *testing.T) *Service {
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
	if err := db.AutoMigrate(&User{}); err != nil {
		t.Fatalf("failed to migrate test db: %v", err)
	}
	return NewService(db)
}

func TestSeedAndAuthenticate(t *testing.T) {
	svc := setupUsersTest(t)

	if err := svc.SeedAdmin("Admin@Example.com", "hunter2hunter2"); err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	u, err := svc.Authenticate("admin@example.com", "hunter2hunter2")
	if err != nil {
		t.Fatalf("authenticate failed: %v", err)
	}
	if u.Role != "admin" {
		t.Fatalf("expected admin role, got %s", u.Role)
	}

	if _, err := svc.Authenticate("admin@example.com", "wrong"); err != ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if _, err := svc.Authenticate("nobody@example.com", "hunter2hunter2"); err != ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials for unknown email, got %v", err)
	}
}

func TestSeedDoesNotRotatePassword(t *testing.T) {
	svc := setupUsersTest(t)

	if err := svc.SeedAdmin("op@example.com", "firstpassword1"); err != nil {
		t.Fatalf("seed failed: %v", err)
	}
	if err := svc.SeedAdmin("op@example.com", "secondpassword2"); err != nil {
		t.Fatalf("reseed failed: %v", err)
	}

	if _, err := svc.Authenticate("op@example.com", "firstpassword1"); err != nil {
		t.Fatalf("original password must keep working, got %v", err)
	}
}

func TestLinkGoogleRequiresExistingAccount(t *testing.T) {
	svc := setupUsersTest(t)

	if _, err := svc.LinkGoogle("ghost@example.com", "sub-1"); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	if err := svc.SeedAdmin("op@example.com", "password123"); err != nil {
		t.Fatalf("seed failed: %v", err)
	}
	u, err := svc.LinkGoogle("op@example.com", "sub-1")
	if err != nil {
		t.Fatalf("link failed: %v", err)
	}
	if u.GoogleSub == nil || *u.GoogleSub != "sub-1" {
		t.Fatalf("expected linked subject")
	}
}
