package gallery

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	SizeLarge  = "large"
	SizeMedium = "medium"
	SizeSmall  = "small"
)

// Item is one tile of the home-page gallery grid. There is no visibility
// flag; every row renders publicly.
type Item struct {
	ID          string  `gorm:"type:uuid;primaryKey" json:"id"`
	Title       *string `json:"title"`
	Description *string `json:"description"`
	ImageURL    string  `gorm:"not null" json:"image_url"`

	Size         string `gorm:"type:text;not null;default:'medium'" json:"size"`
	ColumnIndex  int    `gorm:"not null;default:0" json:"column_index"`
	DisplayOrder int    `gorm:"not null;default:0;index" json:"display_order"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Item) TableName() string { return "gallery_items" }

func (i *Item) BeforeCreate(tx *gorm.DB) error {
	if i.ID == "" {
		i.ID = uuid.NewString()
	}
	return nil
}

// ValidSize reports whether s is one of the three grid tile sizes.
func ValidSize(s string) bool {
	return s == SizeLarge || s == SizeMedium || s == SizeSmall
}

// ClampColumn forces a column index into the three-column grid.
func ClampColumn(c int) int {
	if c < 0 {
		return 0
	}
	if c > 2 {
		return 2
	}
	return c
}
