package service

import (
	"go-catalog-api/internal/model"
	"go-catalog-api/internal/repository"
	"go-catalog-api/pkg/validator"
)

type SettingsService interface {
	Get(actor *model.User) (*model.GlobalSettings, error)
	Save(actor *model.User, settings *model.GlobalSettings) error
}

type settingsService struct {
	settingsRepo repository.SettingsRepository
}

func NewSettingsService(settingsRepo repository.SettingsRepository) SettingsService {
	return &settingsService{settingsRepo: settingsRepo}
}

func (s *settingsService) Get(actor *model.User) (*model.GlobalSettings, error) {
	if !actor.HasPermission(model.PermSettingsManage) {
		return nil, ErrPermissionDenied
	}
	return s.settingsRepo.Get()
}

// Save replaces the singleton settings row. Produk yang sudah tersimpan TIDAK
// dihitung ulang: harga turunannya tetap snapshot dari setting lama sampai
// produknya disimpan lagi.
func (s *settingsService) Save(actor *model.User, settings *model.GlobalSettings) error {
	if !actor.HasPermission(model.PermSettingsManage) {
		return ErrPermissionDenied
	}
	if errs := validator.ValidateStruct(settings); len(errs) > 0 {
		return structValidationError(errs)
	}
	return s.settingsRepo.Save(settings)
}
