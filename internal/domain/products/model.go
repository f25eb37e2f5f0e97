package products

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Product is one ready-made build offered on the products page. Artisan
// keyboards are one-offs: a product is marked sold after checkout rather
// than carrying a stock count.
type Product struct {
	ID          string `gorm:"type:uuid;primaryKey" json:"id"`
	Name        string `gorm:"not null" json:"name"`
	Description string `json:"description"`
	PriceCents  int64  `gorm:"not null;default:0" json:"price_cents"`
	ImageURL    string `json:"image_url"`

	StripePriceID *string `gorm:"uniqueIndex" json:"stripe_price_id,omitempty"`

	Sold         bool `gorm:"not null;default:false" json:"sold"`
	Visible      bool `gorm:"not null;default:true" json:"visible"`
	DisplayOrder int  `gorm:"not null;default:0;index" json:"display_order"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Product) TableName() string { return "products" }

func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
