package repository

import (
	"sneakerhub/internal/models"

	"gorm.io/gorm"
)

type SettingsRepository interface {
	Get() (*models.StoreSettings, error)
	Create(settings *models.StoreSettings) error
	Update(settings *models.StoreSettings) error
}

type settingsRepository struct {
	db *gorm.DB
}

func NewSettingsRepository(db *gorm.DB) SettingsRepository {
	return &settingsRepository{db: db}
}

func (r *settingsRepository) Get() (*models.StoreSettings, error) {
	var settings models.StoreSettings
	err := r.db.Order("id DESC").First(&settings).Error
	if err != nil {
		return nil, err
	}
	return &settings, nil
}

func (r *settingsRepository) Create(settings *models.StoreSettings) error {
	return r.db.Create(settings).Error
}

func (r *settingsRepository) Update(settings *models.StoreSettings) error {
	return r.db.Save(settings).Error
}
