package services

import (
	"errors"
	"time"

	"sneakerhub/internal/models"
	"sneakerhub/internal/repository"

	"gorm.io/gorm"
)

// SettingsCache is the slice of the redis client the settings service needs;
// a nil cache disables caching.
type SettingsCache interface {
	GetStoreSettings() (*models.StoreSettings, error)
	SetStoreSettings(settings *models.StoreSettings, ttl time.Duration) error
	DeleteStoreSettings() error
}

type SettingsService interface {
	Get() (*models.StoreSettings, error)
	Update(input *models.StoreSettings) (*models.StoreSettings, error)
}

type settingsService struct {
	settingsRepo repository.SettingsRepository
	cache        SettingsCache
	cacheTTL     time.Duration
}

func NewSettingsService(settingsRepo repository.SettingsRepository, cache SettingsCache, cacheTTL time.Duration) SettingsService {
	return &settingsService{settingsRepo: settingsRepo, cache: cache, cacheTTL: cacheTTL}
}

// Get returns the store settings, creating the default row when none exists.
func (s *settingsService) Get() (*models.StoreSettings, error) {
	if s.cache != nil {
		if cached, err := s.cache.GetStoreSettings(); err == nil {
			return cached, nil
		}
	}

	settings, err := s.settingsRepo.Get()
	if errors.Is(err, gorm.ErrRecordNotFound) {
		settings = models.DefaultStoreSettings()
		if err := s.settingsRepo.Create(settings); err != nil {
			return nil, err
		}
	} else if err != nil {
		return nil, err
	}

	if s.cache != nil {
		s.cache.SetStoreSettings(settings, s.cacheTTL)
	}
	return settings, nil
}

func (s *settingsService) Update(input *models.StoreSettings) (*models.StoreSettings, error) {
	current, err := s.settingsRepo.Get()
	if errors.Is(err, gorm.ErrRecordNotFound) {
		if err := s.settingsRepo.Create(input); err != nil {
			return nil, err
		}
		current = input
	} else if err != nil {
		return nil, err
	} else {
		current.StoreName = input.StoreName
		current.StoreEmail = input.StoreEmail
		current.ContactNumber = input.ContactNumber
		current.Address = input.Address
		if err := s.settingsRepo.Update(current); err != nil {
			return nil, err
		}
	}

	if s.cache != nil {
		s.cache.SetStoreSettings(current, s.cacheTTL)
	}
	return current, nil
}
