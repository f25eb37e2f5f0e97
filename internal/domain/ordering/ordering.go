package ordering

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// Every editor-managed table keeps an integer display_order column that the
// operator adjusts one step at a time. The list is always re-read from the
// database after a move, so this package never mutates the slice it is given.

var ErrRowMissing = errors.New("row not in list")

// Row is the minimal shape shared by all reorderable tables.
type Row struct {
	ID           string
	DisplayOrder int
}

// NextOrder returns the sort key assigned to a row appended after n existing
// rows. Keys are never compacted, so this can collide with an existing value
// after deletions; ties are resolved by created_at in queries.
func NextOrder(n int) int {
	return n
}

// Move nudges the row with the given id one position up (-1) or down (+1)
// within rows, which must already be sorted ascending by display order.
// A move past either end of the list is a silent no-op. The two display_order
// updates run in one transaction so the swap is all-or-nothing.
func Move(db *gorm.DB, table string, rows []Row, id string, direction int) error {
	if direction != -1 && direction != 1 {
		return fmt.Errorf("direction must be -1 or +1, got %d", direction)
	}

	idx := -1
	for i, r := range rows {
		if r.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return ErrRowMissing
	}

	swapIdx := idx + direction
	if swapIdx < 0 || swapIdx >= len(rows) {
		return nil
	}

	a, b := rows[idx], rows[swapIdx]

	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Table(table).
			Where("id = ?", a.ID).
			Update("display_order", b.DisplayOrder).Error; err != nil {
			return err
		}
		return tx.Table(table).
			Where("id = ?", b.ID).
			Update("display_order", a.DisplayOrder).Error
	})
}
