package database

import (
	"fmt"
	"log"

	"storefront-app/internal/domain/contact"
	"storefront-app/internal/domain/content"
	"storefront-app/internal/domain/gallery"
	"storefront-app/internal/domain/pastworks"
	"storefront-app/internal/domain/products"
	"storefront-app/internal/domain/sections"
	"storefront-app/internal/domain/users"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Init connects to Postgres and migrates every table. The returned handle is
// passed explicitly to each service; nothing holds it globally.
func Init(dsn string) (*gorm.DB, error) {
	if dsn == "" {
		return nil, fmt.Errorf("DB_URL not set")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS pgcrypto;`).Error; err != nil {
		return nil, fmt.Errorf("failed to enable pgcrypto extension: %w", err)
	}

	if err := db.AutoMigrate(
		&users.User{},
		&gallery.Item{},
		&content.Row{},
		&pastworks.Work{},
		&products.Product{},
		&contact.Message{},
	); err != nil {
		return nil, fmt.Errorf("auto-migrate error: %w", err)
	}

	// The commission and about pages share one section shape over two tables.
	for _, table := range []string{"commission_sections", "about_sections"} {
		if err := db.Table(table).AutoMigrate(&sections.Section{}); err != nil {
			return nil, fmt.Errorf("auto-migrate %s: %w", table, err)
		}
	}

	log.Println("✅ Connected and migrated successfully")
	return db, nil
}
