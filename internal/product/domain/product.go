package domain

import (
	"time"

	"gorm.io/gorm"
)

// Product is the catalog entry. Its name is the natural key that stock
// details, order items and adjustments denormalize; renaming a product must
// cascade into those records explicitly.
type Product struct {
	ID             uint           `json:"id" gorm:"primaryKey"`
	Name           string         `json:"name" gorm:"not null;uniqueIndex"`
	Description    string         `json:"description"`
	Category       string         `json:"category"`
	PricePerMeters float64        `json:"price_per_meters"`
	Unit           string         `json:"unit" gorm:"default:'METERS'"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	DeletedAt      gorm.DeletedAt `json:"-" gorm:"index"`
}

// TableName specifies the table name
func (Product) TableName() string {
	return "products"
}

// ProductRepository defines the contract for product data access
type ProductRepository interface {
	Create(product *Product) error
	FindByID(id uint) (*Product, error)
	FindByName(name string) (*Product, error)
	FindAll(limit, offset int) ([]Product, int64, error)
	Update(product *Product) error
	// UpdateWithRename saves the product and rewrites the old name in every
	// dependent record set in one transaction
	UpdateWithRename(product *Product, oldName string) error
	Delete(id uint) error
}
