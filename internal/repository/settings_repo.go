package repository

import (
	"errors"

	"go-catalog-api/internal/model"

	"gorm.io/gorm"
)

type SettingsRepository interface {
	Get() (*model.GlobalSettings, error)
	Save(settings *model.GlobalSettings) error
}

type settingsRepo struct {
	db *gorm.DB
}

func NewSettingsRepo(db *gorm.DB) SettingsRepository {
	return &settingsRepo{db}
}

// Get mengembalikan baris setting tunggal, atau default kalau belum pernah disimpan.
func (r *settingsRepo) Get() (*model.GlobalSettings, error) {
	var settings model.GlobalSettings
	err := r.db.First(&settings).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		defaults := model.DefaultSettings
		return &defaults, nil
	}
	if err != nil {
		return nil, err
	}
	return &settings, nil
}

// Save replaces the singleton row (whole-record overwrite, no history).
func (r *settingsRepo) Save(settings *model.GlobalSettings) error {
	settings.ID = 1
	return r.db.Save(settings).Error
}
