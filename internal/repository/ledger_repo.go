package repository

import (
	"go-catalog-api/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type LedgerRepository interface {
	Create(entry *model.LedgerEntry) error
	FindByID(id uuid.UUID) (*model.LedgerEntry, error)
	Update(entry *model.LedgerEntry) error
	Delete(id uuid.UUID) error
	FindAll() ([]model.LedgerEntry, error)
	FindByDateRange(startDate, endDate string) ([]model.LedgerEntry, error)
}

type ledgerRepo struct {
	db *gorm.DB
}

func NewLedgerRepo(db *gorm.DB) LedgerRepository {
	return &ledgerRepo{db}
}

func (r *ledgerRepo) Create(entry *model.LedgerEntry) error {
	return r.db.Create(entry).Error
}

func (r *ledgerRepo) FindByID(id uuid.UUID) (*model.LedgerEntry, error) {
	var entry model.LedgerEntry
	if err := r.db.First(&entry, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *ledgerRepo) Update(entry *model.LedgerEntry) error {
	return r.db.Save(entry).Error
}

func (r *ledgerRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&model.LedgerEntry{}, "id = ?", id).Error
}

func (r *ledgerRepo) FindAll() ([]model.LedgerEntry, error) {
	var entries []model.LedgerEntry
	err := r.db.Order("date DESC, created_at ASC").Find(&entries).Error
	return entries, err
}

// FindByDateRange mengembalikan entry dengan startDate <= date <= endDate
// (inklusif dua sisi; string ISO, jadi perbandingan leksikografis valid).
// Urutan: tanggal menurun, tie di tanggal yang sama mengikuti urutan insert.
func (r *ledgerRepo) FindByDateRange(startDate, endDate string) ([]model.LedgerEntry, error) {
	var entries []model.LedgerEntry
	err := r.db.
		Where("date >= ? AND date <= ?", startDate, endDate).
		Order("date DESC, created_at ASC").
		Find(&entries).Error
	return entries, err
}
