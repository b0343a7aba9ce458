package repository

import (
	"gorm.io/gorm"

	"github.com/RehanShaikh007/texhub-backend/internal/customer/domain"
)

type GormCustomerRepository struct {
	db *gorm.DB
}

func NewGormCustomerRepository(db *gorm.DB) *GormCustomerRepository {
	return &GormCustomerRepository{db: db}
}

func (r *GormCustomerRepository) AutoMigrate() error {
	return r.db.AutoMigrate(&domain.Customer{})
}

func (r *GormCustomerRepository) Create(customer *domain.Customer) error {
	return r.db.Create(customer).Error
}

func (r *GormCustomerRepository) FindByID(id uint) (*domain.Customer, error) {
	var customer domain.Customer
	err := r.db.First(&customer, id).Error
	if err != nil {
		return nil, err
	}
	return &customer, nil
}

func (r *GormCustomerRepository) FindByName(name string) (*domain.Customer, error) {
	var customer domain.Customer
	err := r.db.Where("name = ?", name).First(&customer).Error
	if err != nil {
		return nil, err
	}
	return &customer, nil
}

func (r *GormCustomerRepository) FindAll(limit, offset int) ([]domain.Customer, int64, error) {
	var customers []domain.Customer
	var total int64

	if err := r.db.Model(&domain.Customer{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Limit(limit).Offset(offset).
		Order("name").
		Find(&customers).Error
	return customers, total, err
}

func (r *GormCustomerRepository) Update(customer *domain.Customer) error {
	return r.db.Save(customer).Error
}

func (r *GormCustomerRepository) Delete(id uint) error {
	return r.db.Delete(&domain.Customer{}, id).Error
}
