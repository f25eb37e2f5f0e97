package contact

import (
	"errors"
	"regexp"
	"strings"

	"gorm.io/gorm"
)

var (
	ErrNotFound       = errors.New("message not found")
	ErrFieldsRequired = errors.New("name, email and message are required")
	ErrInvalidEmail   = errors.New("invalid email address")
)

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// Submit validates and stores a contact-form message.
func (s *Service) Submit(name, email, message string) (*Message, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	message = strings.TrimSpace(message)

	if name == "" || email == "" || message == "" {
		return nil, ErrFieldsRequired
	}
	if !emailPattern.MatchString(email) {
		return nil, ErrInvalidEmail
	}

	m := Message{Name: name, Email: email, Message: message}
	if err := s.db.Create(&m).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

// List returns messages newest first for the admin inbox.
func (s *Service) List() ([]Message, error) {
	var msgs []Message
	if err := s.db.Order("created_at DESC").Find(&msgs).Error; err != nil {
		return nil, err
	}
	return msgs, nil
}

func (s *Service) Delete(id string) error {
	res := s.db.Delete(&Message{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
