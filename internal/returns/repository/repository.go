package repository

import (
	"gorm.io/gorm"

	"github.com/RehanShaikh007/texhub-backend/internal/returns/domain"
)

type GormReturnRepository struct {
	db *gorm.DB
}

func NewGormReturnRepository(db *gorm.DB) *GormReturnRepository {
	return &GormReturnRepository{db: db}
}

func (r *GormReturnRepository) AutoMigrate() error {
	return r.db.AutoMigrate(&domain.ReturnRequest{})
}

func (r *GormReturnRepository) Create(ret *domain.ReturnRequest) error {
	return r.db.Create(ret).Error
}

func (r *GormReturnRepository) FindByID(id uint) (*domain.ReturnRequest, error) {
	var ret domain.ReturnRequest
	err := r.db.First(&ret, id).Error
	if err != nil {
		return nil, err
	}
	return &ret, nil
}

func (r *GormReturnRepository) FindAll(limit, offset int) ([]domain.ReturnRequest, int64, error) {
	var returns []domain.ReturnRequest
	var total int64

	if err := r.db.Model(&domain.ReturnRequest{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Limit(limit).Offset(offset).
		Order("created_at DESC").
		Find(&returns).Error
	return returns, total, err
}

func (r *GormReturnRepository) Update(ret *domain.ReturnRequest) error {
	return r.db.Save(ret).Error
}

func (r *GormReturnRepository) Delete(id uint) error {
	return r.db.Delete(&domain.ReturnRequest{}, id).Error
}
