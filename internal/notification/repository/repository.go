package repository

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/RehanShaikh007/texhub-backend/internal/notification/domain"
)

type GormSettingRepository struct {
	db *gorm.DB
}

func NewGormSettingRepository(db *gorm.DB) *GormSettingRepository {
	return &GormSettingRepository{db: db}
}

func (r *GormSettingRepository) AutoMigrate() error {
	return r.db.AutoMigrate(&domain.Setting{}, &domain.Log{})
}

// SeedDefaults inserts an enabled toggle for every known category that does
// not have one yet
func (r *GormSettingRepository) SeedDefaults() error {
	for _, category := range domain.Categories {
		setting := domain.Setting{Category: category, Enabled: true}
		err := r.db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "category"}},
			DoNothing: true,
		}).Create(&setting).Error
		if err != nil {
			return err
		}
	}
	return nil
}

func (r *GormSettingRepository) FindByCategory(category string) (*domain.Setting, error) {
	var setting domain.Setting
	err := r.db.Where("category = ?", category).First(&setting).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		// Unknown categories default to enabled
		return &domain.Setting{Category: category, Enabled: true}, nil
	}
	if err != nil {
		return nil, err
	}
	return &setting, nil
}

func (r *GormSettingRepository) FindAll() ([]domain.Setting, error) {
	var settings []domain.Setting
	err := r.db.Order("category").Find(&settings).Error
	return settings, err
}

func (r *GormSettingRepository) Upsert(setting *domain.Setting) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "category"}},
		DoUpdates: clause.AssignmentColumns([]string{"enabled", "updated_at"}),
	}).Create(setting).Error
}

type GormLogRepository struct {
	db *gorm.DB
}

func NewGormLogRepository(db *gorm.DB) *GormLogRepository {
	return &GormLogRepository{db: db}
}

func (r *GormLogRepository) AutoMigrate() error {
	return r.db.AutoMigrate(&domain.Log{})
}

func (r *GormLogRepository) Create(log *domain.Log) error {
	return r.db.Create(log).Error
}

func (r *GormLogRepository) FindAll(limit, offset int) ([]domain.Log, int64, error) {
	var logs []domain.Log
	var total int64

	if err := r.db.Model(&domain.Log{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Limit(limit).Offset(offset).
		Order("created_at DESC").
		Find(&logs).Error
	return logs, total, err
}
