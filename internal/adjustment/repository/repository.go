package repository

import (
	"gorm.io/gorm"

	"github.com/RehanShaikh007/texhub-backend/internal/adjustment/domain"
	stockdomain "github.com/RehanShaikh007/texhub-backend/internal/stock/domain"
)

type GormAdjustmentRepository struct {
	db *gorm.DB
}

func NewGormAdjustmentRepository(db *gorm.DB) *GormAdjustmentRepository {
	return &GormAdjustmentRepository{db: db}
}

func (r *GormAdjustmentRepository) AutoMigrate() error {
	return r.db.AutoMigrate(&domain.Adjustment{})
}

func (r *GormAdjustmentRepository) CreateWithStock(adjustment *domain.Adjustment, lot *stockdomain.StockLot) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{FullSaveAssociations: true}).Save(lot).Error; err != nil {
			return err
		}
		return tx.Create(adjustment).Error
	})
}

func (r *GormAdjustmentRepository) FindAll(limit, offset int) ([]domain.Adjustment, int64, error) {
	var adjustments []domain.Adjustment
	var total int64

	if err := r.db.Model(&domain.Adjustment{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Limit(limit).Offset(offset).
		Order("created_at DESC").
		Find(&adjustments).Error
	return adjustments, total, err
}
