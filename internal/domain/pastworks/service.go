package pastworks

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"strings"
	"time"

	"gorm.io/gorm"

	"storefront-app/internal/domain/ordering"
	"storefront-app/internal/infra/storage"
)

var (
	ErrNotFound      = errors.New("past work not found")
	ErrTitleRequired = errors.New("title is required")
	ErrInvalidSpecs  = errors.New("invalid specs JSON")
	ErrSlugTaken     = errors.New("slug already in use")
)

// Service handles the past-works portfolio: CRUD, the image set lifecycle
// and manual reordering.
type Service struct {
	db    *gorm.DB
	store storage.ObjectStore
}

func NewService(db *gorm.DB, store storage.ObjectStore) *Service {
	return &Service{db: db, store: store}
}

// Input is the editor's draft for a work. SpecsJSON is the raw text of the
// specs field exactly as typed; it must parse into a string-to-string map.
type Input struct {
	Title       string
	Slug        string
	Description string
	SpecsJSON   string
	Tags        []string
	Visible     bool
	CompletedAt *time.Time
}

// List returns works in operator order; visibleOnly is the public read path.
func (s *Service) List(visibleOnly bool) ([]Work, error) {
	q := s.db.Order("display_order ASC, created_at ASC")
	if visibleOnly {
		q = q.Where("visible = ?", true)
	}
	var works []Work
	if err := q.Find(&works).Error; err != nil {
		return nil, err
	}
	return works, nil
}

func (s *Service) Get(id string) (*Work, error) {
	var w Work
	err := s.db.First(&w, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &w, nil
}

// GetBySlug resolves the public detail view. Hidden works 404.
func (s *Service) GetBySlug(slug string) (*Work, error) {
	var w Work
	err := s.db.First(&w, "slug = ? AND visible = ?", slug, true).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &w, nil
}

// Create validates the draft, uploads the cover and gallery images, and
// appends the work at the end of the list. The slug is derived from the
// title when left blank.
func (s *Service) Create(ctx context.Context, in Input, cover *storage.File, images []storage.File) (*Work, error) {
	specs, tags, slug, err := s.prepare(in, "")
	if err != nil {
		return nil, err
	}

	coverURL := ""
	if cover != nil && len(cover.Data) > 0 {
		coverURL, err = s.upload(ctx, *cover)
		if err != nil {
			return nil, err
		}
	}

	imageURLs := make(StringList, 0, len(images))
	for _, img := range images {
		url, err := s.upload(ctx, img)
		if err != nil {
			return nil, err
		}
		imageURLs = append(imageURLs, url)
	}

	var count int64
	if err := s.db.Model(&Work{}).Count(&count).Error; err != nil {
		return nil, err
	}

	w := Work{
		Title:        strings.TrimSpace(in.Title),
		Slug:         slug,
		Description:  in.Description,
		CoverImage:   coverURL,
		Images:       imageURLs,
		Specs:        specs,
		Tags:         tags,
		Visible:      in.Visible,
		CompletedAt:  in.CompletedAt,
		DisplayOrder: ordering.NextOrder(int(count)),
	}
	if err := s.db.Create(&w).Error; err != nil {
		return nil, err
	}
	return &w, nil
}

// Update saves the draft. A new cover replaces the old blob only after the
// row points at the new URL. removeImages lists existing gallery image URLs
// the operator took out of the set; newImages are appended at the end.
func (s *Service) Update(ctx context.Context, id string, in Input, cover *storage.File, newImages []storage.File, removeImages []string) (*Work, error) {
	w, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	specs, tags, slug, err := s.prepare(in, w.ID)
	if err != nil {
		return nil, err
	}

	oldCover := w.CoverImage
	if cover != nil && len(cover.Data) > 0 {
		newURL, err := s.upload(ctx, *cover)
		if err != nil {
			return nil, err
		}
		w.CoverImage = newURL
	}

	removed := make(map[string]bool, len(removeImages))
	for _, url := range removeImages {
		removed[url] = true
	}
	kept := make(StringList, 0, len(w.Images))
	for _, url := range w.Images {
		if !removed[url] {
			kept = append(kept, url)
		}
	}
	for _, img := range newImages {
		url, err := s.upload(ctx, img)
		if err != nil {
			return nil, err
		}
		kept = append(kept, url)
	}

	w.Title = strings.TrimSpace(in.Title)
	w.Slug = slug
	w.Description = in.Description
	w.Images = kept
	w.Specs = specs
	w.Tags = tags
	w.Visible = in.Visible
	w.CompletedAt = in.CompletedAt

	if err := s.db.Save(w).Error; err != nil {
		return nil, err
	}

	if w.CoverImage != oldCover {
		s.removeBlob(ctx, oldCover)
	}
	for url := range removed {
		s.removeBlob(ctx, url)
	}
	return w, nil
}

// Delete removes the cover and every gallery image from storage, one delete
// per referenced URL, then the row. Blob cleanup is best-effort.
func (s *Service) Delete(ctx context.Context, id string) error {
	w, err := s.Get(id)
	if err != nil {
		return err
	}

	s.removeBlob(ctx, w.CoverImage)
	for _, url := range w.Images {
		s.removeBlob(ctx, url)
	}

	res := s.db.Delete(&Work{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Reorder nudges one work up or down a single position.
func (s *Service) Reorder(id string, direction int) error {
	works, err := s.List(false)
	if err != nil {
		return err
	}
	rows := make([]ordering.Row, 0, len(works))
	for _, w := range works {
		rows = append(rows, ordering.Row{ID: w.ID, DisplayOrder: w.DisplayOrder})
	}
	if err := ordering.Move(s.db, Work{}.TableName(), rows, id, direction); err != nil {
		if errors.Is(err, ordering.ErrRowMissing) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

// prepare validates the draft fields shared by create and update. selfID is
// the row being edited, excluded from the slug uniqueness check.
func (s *Service) prepare(in Input, selfID string) (StringMap, StringList, string, error) {
	if strings.TrimSpace(in.Title) == "" {
		return nil, nil, "", ErrTitleRequired
	}

	specs := StringMap{}
	if strings.TrimSpace(in.SpecsJSON) != "" {
		if err := json.Unmarshal([]byte(in.SpecsJSON), &specs); err != nil {
			return nil, nil, "", ErrInvalidSpecs
		}
	}

	tags := make(StringList, 0, len(in.Tags))
	for _, tag := range in.Tags {
		if t := strings.TrimSpace(tag); t != "" {
			tags = append(tags, t)
		}
	}

	slug := strings.TrimSpace(in.Slug)
	if slug == "" {
		slug = Slugify(in.Title)
	}

	var count int64
	q := s.db.Model(&Work{}).Where("slug = ?", slug)
	if selfID != "" {
		q = q.Where("id <> ?", selfID)
	}
	if err := q.Count(&count).Error; err != nil {
		return nil, nil, "", err
	}
	if count > 0 {
		return nil, nil, "", ErrSlugTaken
	}

	return specs, tags, slug, nil
}

func (s *Service) upload(ctx context.Context, file storage.File) (string, error) {
	key := storage.NewObjectKey("past-works", file.Filename)
	return s.store.Upload(ctx, key, file.Data, file.ContentType)
}

func (s *Service) removeBlob(ctx context.Context, url string) {
	key := s.store.KeyFromURL(url)
	if key == "" {
		return
	}
	if err := s.store.Remove(ctx, key); err != nil {
		log.Printf("pastworks: failed to remove %s: %v", key, err)
	}
}
