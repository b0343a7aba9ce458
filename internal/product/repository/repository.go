package repository

import (
	"gorm.io/gorm"

	adjustmentdomain "github.com/RehanShaikh007/texhub-backend/internal/adjustment/domain"
	orderdomain "github.com/RehanShaikh007/texhub-backend/internal/order/domain"
	"github.com/RehanShaikh007/texhub-backend/internal/product/domain"
	stockdomain "github.com/RehanShaikh007/texhub-backend/internal/stock/domain"
)

type GormProductRepository struct {
	db *gorm.DB
}

func NewGormProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

func (r *GormProductRepository) AutoMigrate() error {
	return r.db.AutoMigrate(&domain.Product{})
}

func (r *GormProductRepository) Create(product *domain.Product) error {
	return r.db.Create(product).Error
}

func (r *GormProductRepository) FindByID(id uint) (*domain.Product, error) {
	var product domain.Product
	err := r.db.First(&product, id).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *GormProductRepository) FindByName(name string) (*domain.Product, error) {
	var product domain.Product
	err := r.db.Where("name = ?", name).First(&product).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *GormProductRepository) FindAll(limit, offset int) ([]domain.Product, int64, error) {
	var products []domain.Product
	var total int64

	if err := r.db.Model(&domain.Product{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Limit(limit).Offset(offset).
		Order("name").
		Find(&products).Error
	return products, total, err
}

func (r *GormProductRepository) Update(product *domain.Product) error {
	return r.db.Save(product).Error
}

// UpdateWithRename saves the product and propagates the rename into stock
// details, order items and adjustment rows. The records join on the product
// name, so a rename left uncascaded would orphan them.
func (r *GormProductRepository) UpdateWithRename(product *domain.Product, oldName string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(product).Error; err != nil {
			return err
		}
		if err := tx.Model(&stockdomain.StockLot{}).
			Where("details_product = ?", oldName).
			Update("details_product", product.Name).Error; err != nil {
			return err
		}
		if err := tx.Model(&orderdomain.OrderItem{}).
			Where("product = ?", oldName).
			Update("product", product.Name).Error; err != nil {
			return err
		}
		return tx.Model(&adjustmentdomain.Adjustment{}).
			Where("product = ?", oldName).
			Update("product", product.Name).Error
	})
}

func (r *GormProductRepository) Delete(id uint) error {
	return r.db.Delete(&domain.Product{}, id).Error
}
