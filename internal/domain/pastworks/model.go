package pastworks

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Work is one finished build shown on the past-works page.
type Work struct {
	ID          string `gorm:"type:uuid;primaryKey" json:"id"`
	Title       string `gorm:"not null" json:"title"`
	Slug        string `gorm:"not null;uniqueIndex" json:"slug"`
	Description string `json:"description"`

	CoverImage string     `json:"cover_image"`
	Images     StringList `gorm:"type:jsonb;not null;default:'[]'" json:"images"`
	Specs      StringMap  `gorm:"type:jsonb;not null;default:'{}'" json:"specs"`
	Tags       StringList `gorm:"type:jsonb;not null;default:'[]'" json:"tags"`

	Visible      bool `gorm:"not null;default:true" json:"visible"`
	DisplayOrder int  `gorm:"not null;default:0;index" json:"display_order"`

	CompletedAt *time.Time `json:"completed_at"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func (Work) TableName() string { return "past_works" }

func (w *Work) BeforeCreate(tx *gorm.DB) error {
	if w.ID == "" {
		w.ID = uuid.NewString()
	}
	return nil
}

// StringList stores an ordered list of strings as a JSON column. The order
// of Images is the display order within the work.
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		l = StringList{}
	}
	b, err := json.Marshal(l)
	return string(b), err
}

func (l *StringList) Scan(value interface{}) error {
	return scanJSON(value, l)
}

// StringMap stores a key -> value map as a JSON column (the specs table of a
// build: switches, keycaps, plate, ...).
type StringMap map[string]string

func (m StringMap) Value() (driver.Value, error) {
	if m == nil {
		m = StringMap{}
	}
	b, err := json.Marshal(m)
	return string(b), err
}

func (m *StringMap) Scan(value interface{}) error {
	return scanJSON(value, m)
}

func scanJSON(value interface{}, into interface{}) error {
	switch v := value.(type) {
	case nil:
		return nil
	case []byte:
		return json.Unmarshal(v, into)
	case string:
		return json.Unmarshal([]byte(v), into)
	default:
		return fmt.Errorf("unsupported column type %T", value)
	}
}
