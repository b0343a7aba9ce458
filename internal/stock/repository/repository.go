package repository

import (
	"gorm.io/gorm"

	"github.com/RehanShaikh007/texhub-backend/internal/stock/domain"
)

type GormStockRepository struct {
	db *gorm.DB
}

func NewGormStockRepository(db *gorm.DB) *GormStockRepository {
	return &GormStockRepository{db: db}
}

func (r *GormStockRepository) AutoMigrate() error {
	return r.db.AutoMigrate(&domain.StockLot{}, &domain.StockVariant{})
}

func (r *GormStockRepository) Create(lot *domain.StockLot) error {
	return r.db.Create(lot).Error
}

func (r *GormStockRepository) FindByID(id uint) (*domain.StockLot, error) {
	var lot domain.StockLot
	err := r.db.Preload("Variants").First(&lot, id).Error
	if err != nil {
		return nil, err
	}
	return &lot, nil
}

func (r *GormStockRepository) FindForOrderItem(product, color string) (*domain.StockLot, error) {
	// First matching lot in natural order wins; no explicit tie-break beyond id
	var lot domain.StockLot
	err := r.db.Preload("Variants").
		Where("details_product = ?", product).
		Where("status IN ?", []string{domain.StatusAvailable, domain.StatusLow}).
		Where("EXISTS (SELECT 1 FROM stock_variants sv WHERE sv.stock_lot_id = stock_lots.id AND sv.color = ?)", color).
		Order("id").
		First(&lot).Error
	if err != nil {
		return nil, err
	}
	return &lot, nil
}

func (r *GormStockRepository) FindAll(limit, offset int) ([]domain.StockLot, int64, error) {
	var lots []domain.StockLot
	var total int64

	if err := r.db.Model(&domain.StockLot{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Preload("Variants").
		Limit(limit).Offset(offset).
		Order("created_at DESC").
		Find(&lots).Error
	return lots, total, err
}

func (r *GormStockRepository) FindLowStock() ([]domain.StockLot, error) {
	var lots []domain.StockLot
	err := r.db.Preload("Variants").
		Where("status IN ?", []string{domain.StatusLow, domain.StatusOut}).
		Find(&lots).Error
	return lots, err
}

func (r *GormStockRepository) Save(lot *domain.StockLot) error {
	return r.db.Session(&gorm.Session{FullSaveAssociations: true}).Save(lot).Error
}

// ReplaceVariants swaps the full variant set of a lot in one transaction
func (r *GormStockRepository) ReplaceVariants(lot *domain.StockLot, variants []domain.StockVariant) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("stock_lot_id = ?", lot.ID).Delete(&domain.StockVariant{}).Error; err != nil {
			return err
		}
		for i := range variants {
			variants[i].ID = 0
			variants[i].StockLotID = lot.ID
		}
		if len(variants) > 0 {
			if err := tx.Create(&variants).Error; err != nil {
				return err
			}
		}
		lot.Variants = variants
		return tx.Save(lot).Error
	})
}

func (r *GormStockRepository) Delete(id uint) error {
	return r.db.Delete(&domain.StockLot{}, id).Error
}
