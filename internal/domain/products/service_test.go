package products

import (
	"context"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"storefront-app/internal/infra/storage"
)

func setupProductsTest(t *testing.T) *Service {
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
	if err := db.AutoMigrate(&Product{}); err != nil {
		t.Fatalf("failed to migrate test db: %v", err)
	}
	return NewService(db, storage.NewRecorder())
}

func TestCreateAppendsAndDefaults(t *testing.T) {
	svc := setupProductsTest(t)
	ctx := context.Background()

	if _, err := svc.Create(ctx, Input{Name: " "}, nil); err != ErrNameRequired {
		t.Fatalf("expected ErrNameRequired, got %v", err)
	}

	first, err := svc.Create(ctx, Input{Name: "Alice Blue", PriceCents: 45000, Visible: true}, nil)
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	second, err := svc.Create(ctx, Input{Name: "GMK Honey", PriceCents: 52000, Visible: true}, nil)
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if first.DisplayOrder != 0 || second.DisplayOrder != 1 {
		t.Fatalf("expected orders 0 and 1, got %d and %d", first.DisplayOrder, second.DisplayOrder)
	}
	if first.Sold {
		t.Fatalf("new product must not be sold")
	}
	if first.StripePriceID != nil {
		t.Fatalf("expected nil price id when blank")
	}
}

func TestCheckoutTarget(t *testing.T) {
	svc := setupProductsTest(t)
	ctx := context.Background()

	bare, _ := svc.Create(ctx, Input{Name: "No Price", Visible: true}, nil)
	if _, err := svc.CheckoutTarget(bare.ID); err != ErrNoCheckout {
		t.Fatalf("expected ErrNoCheckout, got %v", err)
	}

	p, _ := svc.Create(ctx, Input{Name: "Buyable", StripePriceID: "price_123", Visible: true}, nil)
	target, err := svc.CheckoutTarget(p.ID)
	if err != nil {
		t.Fatalf("checkout target failed: %v", err)
	}
	if *target.StripePriceID != "price_123" {
		t.Fatalf("unexpected price id %v", target.StripePriceID)
	}

	if err := svc.MarkSoldByPriceID("price_123"); err != nil {
		t.Fatalf("mark sold failed: %v", err)
	}
	if _, err := svc.CheckoutTarget(p.ID); err != ErrSold {
		t.Fatalf("expected ErrSold after purchase, got %v", err)
	}

	if err := svc.MarkSoldByPriceID("price_unknown"); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound for unknown price, got %v", err)
	}
}

func TestPublicListKeepsSoldHidesInvisible(t *testing.T) {
	svc := setupProductsTest(t)
	ctx := context.Background()

	sold, _ := svc.Create(ctx, Input{Name: "Sold One", StripePriceID: "price_s", Visible: true}, nil)
	if err := svc.MarkSoldByPriceID("price_s"); err != nil {
		t.Fatalf("mark sold failed: %v", err)
	}
	if _, err := svc.Create(ctx, Input{Name: "Hidden", Visible: false}, nil); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	public, err := svc.List(true)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(public) != 1 || public[0].ID != sold.ID || !public[0].Sold {
		t.Fatalf("expected the sold-but-visible product only, got %d rows", len(public))
	}
}
