package sections

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Section is one block of a composed page (commission or about). The content
// column is JSON whose schema is keyed by SectionType; see variants.go.
type Section struct {
	ID          string          `gorm:"type:uuid;primaryKey" json:"id"`
	SectionType string          `gorm:"type:text;not null" json:"section_type"`
	Title       string          `gorm:"not null" json:"title"`
	Content     json.RawMessage `gorm:"type:jsonb;not null;default:'{}'" json:"content"`

	DisplayOrder int  `gorm:"not null;default:0;index" json:"display_order"`
	Visible      bool `gorm:"not null;default:true" json:"visible"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (s *Section) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}
