package content

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Row is one logical copy slot on the public site, addressed by key.
type Row struct {
	ID    string `gorm:"type:uuid;primaryKey" json:"id"`
	Key   string `gorm:"not null;uniqueIndex" json:"key"`
	Value string `gorm:"not null;default:''" json:"value"`

	UpdatedAt time.Time `json:"updated_at"`
}

func (Row) TableName() string { return "site_content" }

func (r *Row) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}

// DefaultKeys are the copy slots the editors expect to exist. Seeding keeps
// the admin panel from rendering an empty list on a fresh database.
var DefaultKeys = map[string]string{
	"hero_meta":              "Keyboards",
	"hero_title":             "Slowwwy",
	"gallery_label":          "Selected Builds",
	"commission_meta":        "Commissions",
	"commission_title":       "Commission a Build",
	"commission_description": "Custom keyboards, built to order.",
}
