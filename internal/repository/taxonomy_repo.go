package repository

import (
	"go-catalog-api/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CategoryRepository interface {
	FindAll() ([]model.Category, error)
	FindByID(id uuid.UUID) (*model.Category, error)
	Save(category *model.Category) error
	Delete(id uuid.UUID) error
}

type BrandRepository interface {
	FindAll() ([]model.Brand, error)
	FindByID(id uuid.UUID) (*model.Brand, error)
	Save(brand *model.Brand) error
	Delete(id uuid.UUID) error
}

type categoryRepo struct {
	db *gorm.DB
}

func NewCategoryRepo(db *gorm.DB) CategoryRepository {
	return &categoryRepo{db}
}

func (r *categoryRepo) FindAll() ([]model.Category, error) {
	var categories []model.Category
	err := r.db.Order("name ASC").Find(&categories).Error
	return categories, err
}

func (r *categoryRepo) FindByID(id uuid.UUID) (*model.Category, error) {
	var category model.Category
	if err := r.db.First(&category, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *categoryRepo) Save(category *model.Category) error {
	return r.db.Save(category).Error
}

func (r *categoryRepo) Delete(id uuid.UUID) error {
	// Brand dan product yang masih menunjuk ke sini dibiarkan dangling,
	// sisi baca yang menangani fallback-nya.
	return r.db.Delete(&model.Category{}, "id = ?", id).Error
}

type brandRepo struct {
	db *gorm.DB
}

func NewBrandRepo(db *gorm.DB) BrandRepository {
	return &brandRepo{db}
}

func (r *brandRepo) FindAll() ([]model.Brand, error) {
	var brands []model.Brand
	err := r.db.Order("name ASC").Find(&brands).Error
	return brands, err
}

func (r *brandRepo) FindByID(id uuid.UUID) (*model.Brand, error) {
	var brand model.Brand
	if err := r.db.First(&brand, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &brand, nil
}

func (r *brandRepo) Save(brand *model.Brand) error {
	return r.db.Save(brand).Error
}

func (r *brandRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&model.Brand{}, "id = ?", id).Error
}
