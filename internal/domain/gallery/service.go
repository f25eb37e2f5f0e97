package gallery

import (
	"context"
	"errors"
	"log"

	"gorm.io/gorm"

	"storefront-app/internal/domain/ordering"
	"storefront-app/internal/infra/storage"
)

var (
	ErrNotFound      = errors.New("gallery item not found")
	ErrImageRequired = errors.New("an image is required")
	ErrInvalidSize   = errors.New("size must be large, medium or small")
)

// Service handles gallery CRUD and manual reordering.
type Service struct {
	db    *gorm.DB
	store storage.ObjectStore
}

func NewService(db *gorm.DB, store storage.ObjectStore) *Service {
	return &Service{db: db, store: store}
}

// Input carries the editable fields of a gallery item. Empty title and
// description are stored as NULL.
type Input struct {
	Title       string
	Description string
	Size        string
	ColumnIndex int
}

// List returns every item, operator order first.
func (s *Service) List() ([]Item, error) {
	var items []Item
	if err := s.db.Order("display_order ASC, created_at ASC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (s *Service) Get(id string) (*Item, error) {
	var item Item
	if err := s.db.First(&item, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &item, nil
}

// Create uploads the image and appends a new item at the end of the list.
func (s *Service) Create(ctx context.Context, in Input, file *storage.File) (*Item, error) {
	if file == nil || len(file.Data) == 0 {
		return nil, ErrImageRequired
	}
	if in.Size == "" {
		in.Size = SizeMedium
	}
	if !ValidSize(in.Size) {
		return nil, ErrInvalidSize
	}

	key := storage.NewObjectKey("gallery", file.Filename)
	imageURL, err := s.store.Upload(ctx, key, file.Data, file.ContentType)
	if err != nil {
		return nil, err
	}

	var count int64
	if err := s.db.Model(&Item{}).Count(&count).Error; err != nil {
		return nil, err
	}

	item := Item{
		Title:        optional(in.Title),
		Description:  optional(in.Description),
		ImageURL:     imageURL,
		Size:         in.Size,
		ColumnIndex:  ClampColumn(in.ColumnIndex),
		DisplayOrder: ordering.NextOrder(int(count)),
	}
	if err := s.db.Create(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// Update saves the draft fields. When a replacement file is provided the new
// image is uploaded first and the old blob removed only after the row points
// at the new URL, so a failure mid-sequence never leaves the item without a
// live image. With no file, the stored image_url is untouched and no storage
// call is made.
func (s *Service) Update(ctx context.Context, id string, in Input, file *storage.File) (*Item, error) {
	item, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if in.Size == "" {
		in.Size = item.Size
	}
	if !ValidSize(in.Size) {
		return nil, ErrInvalidSize
	}

	oldURL := item.ImageURL
	if file != nil && len(file.Data) > 0 {
		key := storage.NewObjectKey("gallery", file.Filename)
		newURL, err := s.store.Upload(ctx, key, file.Data, file.ContentType)
		if err != nil {
			return nil, err
		}
		item.ImageURL = newURL
	}

	item.Title = optional(in.Title)
	item.Description = optional(in.Description)
	item.Size = in.Size
	item.ColumnIndex = ClampColumn(in.ColumnIndex)

	if err := s.db.Save(item).Error; err != nil {
		return nil, err
	}

	if item.ImageURL != oldURL {
		s.removeBlob(ctx, oldURL)
	}
	return item, nil
}

// Delete removes the stored image and then the row. Storage cleanup is
// best-effort: a failed blob delete does not block removing the row.
func (s *Service) Delete(ctx context.Context, id string) error {
	item, err := s.Get(id)
	if err != nil {
		return err
	}

	s.removeBlob(ctx, item.ImageURL)

	res := s.db.Delete(&Item{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Reorder nudges one item up or down a single position.
func (s *Service) Reorder(id string, direction int) error {
	items, err := s.List()
	if err != nil {
		return err
	}
	rows := make([]ordering.Row, 0, len(items))
	for _, it := range items {
		rows = append(rows, ordering.Row{ID: it.ID, DisplayOrder: it.DisplayOrder})
	}
	if err := ordering.Move(s.db, Item{}.TableName(), rows, id, direction); err != nil {
		if errors.Is(err, ordering.ErrRowMissing) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

func (s *Service) removeBlob(ctx context.Context, url string) {
	key := s.store.KeyFromURL(url)
	if key == "" {
		return
	}
	if err := s.store.Remove(ctx, key); err != nil {
		log.Printf("gallery: failed to remove %s: %v", key, err)
	}
}

func optional(v string) *string {
	if v == "" {
		return nil
	}
	return &v
}
