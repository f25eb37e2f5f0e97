package products

import (
	"context"
	"errors"
	"log"
	"strings"

	"gorm.io/gorm"

	"storefront-app/internal/domain/ordering"
	"storefront-app/internal/infra/storage"
)

var (
	ErrNotFound     = errors.New("product not found")
	ErrNameRequired = errors.New("name is required")
	ErrSold         = errors.New("product already sold")
	ErrNoCheckout   = errors.New("product has no checkout price configured")
)

// Service manages the products table.
type Service struct {
	db    *gorm.DB
	store storage.ObjectStore
}

func NewService(db *gorm.DB, store storage.ObjectStore) *Service {
	return &Service{db: db, store: store}
}

type Input struct {
	Name          string
	Description   string
	PriceCents    int64
	StripePriceID string
	Visible       bool
}

// List returns products in operator order. Public listings exclude hidden
// rows but keep sold ones so the page can show a sold badge.
func (s *Service) List(visibleOnly bool) ([]Product, error) {
	q := s.db.Order("display_order ASC, created_at ASC")
	if visibleOnly {
		q = q.Where("visible = ?", true)
	}
	var items []Product
	if err := q.Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (s *Service) Get(id string) (*Product, error) {
	var p Product
	err := s.db.First(&p, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *Service) Create(ctx context.Context, in Input, image *storage.File) (*Product, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, ErrNameRequired
	}

	imageURL := ""
	if image != nil && len(image.Data) > 0 {
		key := storage.NewObjectKey("products", image.Filename)
		url, err := s.store.Upload(ctx, key, image.Data, image.ContentType)
		if err != nil {
			return nil, err
		}
		imageURL = url
	}

	var count int64
	if err := s.db.Model(&Product{}).Count(&count).Error; err != nil {
		return nil, err
	}

	p := Product{
		Name:          strings.TrimSpace(in.Name),
		Description:   in.Description,
		PriceCents:    in.PriceCents,
		ImageURL:      imageURL,
		StripePriceID: optional(in.StripePriceID),
		Visible:       in.Visible,
		DisplayOrder:  ordering.NextOrder(int(count)),
	}
	if err := s.db.Create(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *Service) Update(ctx context.Context, id string, in Input, image *storage.File) (*Product, error) {
	p, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(in.Name) == "" {
		return nil, ErrNameRequired
	}

	oldURL := p.ImageURL
	if image != nil && len(image.Data) > 0 {
		key := storage.NewObjectKey("products", image.Filename)
		url, err := s.store.Upload(ctx, key, image.Data, image.ContentType)
		if err != nil {
			return nil, err
		}
		p.ImageURL = url
	}

	p.Name = strings.TrimSpace(in.Name)
	p.Description = in.Description
	p.PriceCents = in.PriceCents
	p.StripePriceID = optional(in.StripePriceID)
	p.Visible = in.Visible

	if err := s.db.Save(p).Error; err != nil {
		return nil, err
	}

	if p.ImageURL != oldURL {
		s.removeBlob(ctx, oldURL)
	}
	return p, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	p, err := s.Get(id)
	if err != nil {
		return err
	}

	s.removeBlob(ctx, p.ImageURL)

	res := s.db.Delete(&Product{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Service) Reorder(id string, direction int) error {
	items, err := s.List(false)
	if err != nil {
		return err
	}
	rows := make([]ordering.Row, 0, len(items))
	for _, p := range items {
		rows = append(rows, ordering.Row{ID: p.ID, DisplayOrder: p.DisplayOrder})
	}
	if err := ordering.Move(s.db, Product{}.TableName(), rows, id, direction); err != nil {
		if errors.Is(err, ordering.ErrRowMissing) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

// CheckoutTarget verifies a product can be bought right now and returns it.
// The stored Stripe price id is the allow-list: checkout never trusts a
// price id straight from the client.
func (s *Service) CheckoutTarget(id string) (*Product, error) {
	p, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if p.Sold {
		return nil, ErrSold
	}
	if p.StripePriceID == nil || *p.StripePriceID == "" {
		return nil, ErrNoCheckout
	}
	return p, nil
}

// MarkSold flags a product as sold. Called from the checkout webhook when
// the session metadata carries the product id.
func (s *Service) MarkSold(id string) error {
	res := s.db.Model(&Product{}).Where("id = ?", id).Update("sold", true)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// MarkSoldByPriceID flags the product bought through the given Stripe price.
// Webhook fallback for sessions without a product id in metadata.
func (s *Service) MarkSoldByPriceID(priceID string) error {
	if priceID == "" {
		return ErrNotFound
	}
	res := s.db.Model(&Product{}).Where("stripe_price_id = ?", priceID).Update("sold", true)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Service) removeBlob(ctx context.Context, url string) {
	key := s.store.KeyFromURL(url)
	if key == "" {
		return
	}
	if err := s.store.Remove(ctx, key); err != nil {
		log.Printf("products: failed to remove %s: %v", key, err)
	}
}

func optional(v string) *string {
	v = strings.TrimSpace(v)
	if v == "" {
		return nil
	}
	return &v
}
