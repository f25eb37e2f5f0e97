package sections

import (
	"encoding/json"
	"errors"
	"strings"

	"gorm.io/gorm"

	"storefront-app/internal/domain/ordering"
)

var (
	ErrNotFound      = errors.New("section not found")
	ErrTitleRequired = errors.New("title is required")
)

// Service manages one sectioned page's table. The commission and about
// editors are two instances over different tables and type sets.
type Service struct {
	db    *gorm.DB
	table string
	page  Page
}

func NewCommissionService(db *gorm.DB) *Service {
	return &Service{db: db, table: "commission_sections", page: PageCommission}
}

func NewAboutService(db *gorm.DB) *Service {
	return &Service{db: db, table: "about_sections", page: PageAbout}
}

// Table exposes the backing table name for migration wiring.
func (s *Service) Table() string { return s.table }

// Page returns which section-type family this service validates against.
func (s *Service) Page() Page { return s.page }

// List returns sections in operator order. With visibleOnly set, hidden
// sections are filtered out (the public read path).
func (s *Service) List(visibleOnly bool) ([]Section, error) {
	q := s.db.Table(s.table).Order("display_order ASC, created_at ASC")
	if visibleOnly {
		q = q.Where("visible = ?", true)
	}
	var rows []Section
	if err := q.Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (s *Service) Get(id string) (*Section, error) {
	var row Section
	err := s.db.Table(s.table).First(&row, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// Input is the editor's draft for a section.
type Input struct {
	SectionType string
	Title       string
	Content     json.RawMessage
	Visible     bool
}

// Create validates the draft and appends the section at the end of the page.
func (s *Service) Create(in Input) (*Section, error) {
	if strings.TrimSpace(in.Title) == "" {
		return nil, ErrTitleRequired
	}
	if err := s.page.ValidateContent(in.SectionType, in.Content); err != nil {
		return nil, err
	}

	var count int64
	if err := s.db.Table(s.table).Count(&count).Error; err != nil {
		return nil, err
	}

	row := Section{
		SectionType:  in.SectionType,
		Title:        in.Title,
		Content:      in.Content,
		Visible:      in.Visible,
		DisplayOrder: ordering.NextOrder(int(count)),
	}
	if err := s.db.Table(s.table).Create(&row).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

// Update validates and saves the draft. The section type of an existing row
// is fixed; the draft's content is checked against it. Nothing is written
// when validation fails.
func (s *Service) Update(id string, title string, content json.RawMessage, visible bool) (*Section, error) {
	row, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(title) == "" {
		return nil, ErrTitleRequired
	}
	if err := s.page.ValidateContent(row.SectionType, content); err != nil {
		return nil, err
	}

	err = s.db.Table(s.table).Where("id = ?", id).Updates(map[string]interface{}{
		"title":   title,
		"content": string(content),
		"visible": visible,
	}).Error
	if err != nil {
		return nil, err
	}

	row.Title = title
	row.Content = content
	row.Visible = visible
	return row, nil
}

func (s *Service) Delete(id string) error {
	res := s.db.Table(s.table).Delete(&Section{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Reorder nudges one section up or down. Hidden sections take part in the
// ordering; the admin list shows them in place.
func (s *Service) Reorder(id string, direction int) error {
	rowsList, err := s.List(false)
	if err != nil {
		return err
	}
	rows := make([]ordering.Row, 0, len(rowsList))
	for _, r := range rowsList {
		rows = append(rows, ordering.Row{ID: r.ID, DisplayOrder: r.DisplayOrder})
	}
	if err := ordering.Move(s.db, s.table, rows, id, direction); err != nil {
		if errors.Is(err, ordering.ErrRowMissing) {
			return ErrNotFound
		}
		return err
	}
	return nil
}
