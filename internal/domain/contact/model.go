package contact

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Message is one contact-form submission.
type Message struct {
	ID      string `gorm:"type:uuid;primaryKey" json:"id"`
	Name    string `gorm:"not null" json:"name"`
	Email   string `gorm:"not null" json:"email"`
	Message string `gorm:"not null" json:"message"`

	CreatedAt time.Time `json:"created_at"`
}

func (Message) TableName() string { return "contact_messages" }

func (m *Message) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}
