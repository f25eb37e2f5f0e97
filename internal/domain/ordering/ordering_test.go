package ordering

import (
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type orderedThing struct {
	ID           string `gorm:"primaryKey"`
	Name         string
	DisplayOrder int
}

func (orderedThing) TableName() string { return "ordered_things" }

func setupOrderingTestDB(t *testing.T) *gorm.DB {
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
	if err := db.AutoMigrate(&orderedThing{}); err != nil {
		t.Fatalf("failed to migrate test db: %v", err)
	}

	for i, name := range []string{"alpha", "beta", "gamma", "delta"} {
		row := orderedThing{ID: name, Name: name, DisplayOrder: i}
		if err := db.Create(&row).Error; err != nil {
			t.Fatalf("failed to seed row %s: %v", name, err)
		}
	}
	return db
}

func fetchOrdered(t *testing.T, db *gorm.DB) []orderedThing {
	t.Helper()

	var rows []orderedThing
	if err := db.Order("display_order ASC").Find(&rows).Error; err != nil {
		t.Fatalf("failed to fetch rows: %v", err)
	}
	return rows
}

func toRows(things []orderedThing) []Row {
	rows := make([]Row, 0, len(things))
	for _, it := range things {
		rows = append(rows, Row{ID: it.ID, DisplayOrder: it.DisplayOrder})
	}
	return rows
}

func assertSequence(t *testing.T, things []orderedThing, want ...string) {
	t.Helper()

	if len(things) != len(want) {
		t.Fatalf("expected %d rows, got %d", len(want), len(things))
	}
	for i, name := range want {
		if things[i].ID != name {
			t.Fatalf("position %d: expected %s, got %s", i, name, things[i].ID)
		}
	}
}

func TestMoveSwapsAdjacentPair(t *testing.T) {
	db := setupOrderingTestDB(t)

	before := fetchOrdered(t, db)
	if err := Move(db, "ordered_things", toRows(before), "beta", 1); err != nil {
		t.Fatalf("move failed: %v", err)
	}

	after := fetchOrdered(t, db)
	assertSequence(t, after, "alpha", "gamma", "beta", "delta")

	// Order values are swapped, not renumbered.
	if after[1].DisplayOrder != 1 || after[2].DisplayOrder != 2 {
		t.Fatalf("expected swapped order values 1 and 2, got %d and %d", after[1].DisplayOrder, after[2].DisplayOrder)
	}
}

func TestMoveUpThenDownRoundTrips(t *testing.T) {
	db := setupOrderingTestDB(t)

	rows := fetchOrdered(t, db)
	if err := Move(db, "ordered_things", toRows(rows), "gamma", -1); err != nil {
		t.Fatalf("move up failed: %v", err)
	}
	rows = fetchOrdered(t, db)
	assertSequence(t, rows, "alpha", "gamma", "beta", "delta")

	if err := Move(db, "ordered_things", toRows(rows), "gamma", 1); err != nil {
		t.Fatalf("move down failed: %v", err)
	}
	assertSequence(t, fetchOrdered(t, db), "alpha", "beta", "gamma", "delta")
}

func TestMoveAtBoundariesIsNoOp(t *testing.T) {
	db := setupOrderingTestDB(t)

	rows := fetchOrdered(t, db)
	if err := Move(db, "ordered_things", toRows(rows), "alpha", -1); err != nil {
		t.Fatalf("move above top failed: %v", err)
	}
	assertSequence(t, fetchOrdered(t, db), "alpha", "beta", "gamma", "delta")

	if err := Move(db, "ordered_things", toRows(rows), "delta", 1); err != nil {
		t.Fatalf("move below bottom failed: %v", err)
	}
	assertSequence(t, fetchOrdered(t, db), "alpha", "beta", "gamma", "delta")
}

func TestMoveUnknownRow(t *testing.T) {
	db := setupOrderingTestDB(t)

	rows := fetchOrdered(t, db)
	if err := Move(db, "ordered_things", toRows(rows), "nope", 1); err != ErrRowMissing {
		t.Fatalf("expected ErrRowMissing, got %v", err)
	}
}

func TestMoveRejectsBadDirection(t *testing.T) {
	db := setupOrderingTestDB(t)

	rows := fetchOrdered(t, db)
	if err := Move(db, "ordered_things", toRows(rows), "beta", 2); err == nil {
		t.Fatalf("expected error for direction 2")
	}
}

func TestNextOrderAppends(t *testing.T) {
	if got := NextOrder(0); got != 0 {
		t.Fatalf("expected 0 for empty list, got %d", got)
	}
	if got := NextOrder(5); got != 5 {
		t.Fatalf("expected 5 for five rows, got %d", got)
	}
}
