package repository

import (
	"gorm.io/gorm"

	"github.com/RehanShaikh007/texhub-backend/internal/order/domain"
	stockdomain "github.com/RehanShaikh007/texhub-backend/internal/stock/domain"
)

type GormOrderRepository struct {
	db *gorm.DB
}

func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

func (r *GormOrderRepository) AutoMigrate() error {
	return r.db.AutoMigrate(&domain.Order{}, &domain.OrderItem{})
}

func (r *GormOrderRepository) FindByID(id uint) (*domain.Order, error) {
	var order domain.Order
	err := r.db.Preload("Items").First(&order, id).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *GormOrderRepository) FindAll(limit, offset int, customer string) ([]domain.Order, int64, error) {
	var orders []domain.Order
	var total int64

	query := r.db.Model(&domain.Order{})
	if customer != "" {
		query = query.Where("customer = ?", customer)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Preload("Items").
		Limit(limit).Offset(offset).
		Order("created_at DESC").
		Find(&orders).Error
	return orders, total, err
}

func (r *GormOrderRepository) Exists(id uint) (bool, error) {
	var count int64
	err := r.db.Model(&domain.Order{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

func (r *GormOrderRepository) TotalForCustomer(name string) (float64, error) {
	var total float64
	err := r.db.Model(&domain.OrderItem{}).
		Select("COALESCE(SUM(order_items.quantity * order_items.price_per_meters), 0)").
		Joins("JOIN orders ON orders.id = order_items.order_id").
		Where("orders.customer = ? AND orders.deleted_at IS NULL", name).
		Scan(&total).Error
	return total, err
}

// CreateWithStock persists a new order and every stock lot its confirmation
// touched in one transaction
func (r *GormOrderRepository) CreateWithStock(order *domain.Order, lots []*stockdomain.StockLot) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(order).Error; err != nil {
			return err
		}
		return saveLots(tx, lots)
	})
}

// UpdateWithStock persists an updated order and its stock effects atomically
func (r *GormOrderRepository) UpdateWithStock(order *domain.Order, lots []*stockdomain.StockLot) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{FullSaveAssociations: true}).Save(order).Error; err != nil {
			return err
		}
		return saveLots(tx, lots)
	})
}

// DeleteWithStock removes an order and restores its stock lots atomically
func (r *GormOrderRepository) DeleteWithStock(order *domain.Order, lots []*stockdomain.StockLot) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(order).Error; err != nil {
			return err
		}
		return saveLots(tx, lots)
	})
}

func saveLots(tx *gorm.DB, lots []*stockdomain.StockLot) error {
	for _, lot := range lots {
		if err := tx.Session(&gorm.Session{FullSaveAssociations: true}).Save(lot).Error; err != nil {
			return err
		}
	}
	return nil
}
