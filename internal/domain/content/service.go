package content

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

var (
	ErrNotFound   = errors.New("content key not found")
	ErrKeyMissing = errors.New("content key is required")
)

// Service reads and writes the site_content key/value table.
type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// List returns every copy slot sorted by key, the order the editor shows.
func (s *Service) List() ([]Row, error) {
	var rows []Row
	if err := s.db.Order("key ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// Map returns all content as key -> value, the shape public pages consume.
func (s *Service) Map() (map[string]string, error) {
	rows, err := s.List()
	if err != nil {
		return nil, err
	}
	out := make(map[string]string, len(rows))
	for _, r := range rows {
		out[r.Key] = r.Value
	}
	return out, nil
}

// Set creates or updates the value of a copy slot.
func (s *Service) Set(key, value string) (*Row, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return nil, ErrKeyMissing
	}

	var row Row
	err := s.db.First(&row, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		row = Row{Key: key, Value: value}
		if err := s.db.Create(&row).Error; err != nil {
			return nil, err
		}
		return &row, nil
	}
	if err != nil {
		return nil, err
	}

	if err := s.db.Model(&Row{}).Where("key = ?", key).Update("value", value).Error; err != nil {
		return nil, err
	}
	row.Value = value
	return &row, nil
}

// Seed inserts the default copy slots that do not exist yet. Existing values
// are never overwritten.
func (s *Service) Seed() error {
	for key, value := range DefaultKeys {
		var count int64
		if err := s.db.Model(&Row{}).Where("key = ?", key).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			continue
		}
		if err := s.db.Create(&Row{Key: key, Value: value}).Error; err != nil {
			return err
		}
	}
	return nil
}
