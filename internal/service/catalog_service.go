package service

import (
	"strings"

	"go-catalog-api/internal/ai"
	"go-catalog-api/internal/model"
	"go-catalog-api/internal/pricing"
	"go-catalog-api/internal/repository"
	"go-catalog-api/internal/ws"
	"go-catalog-api/pkg/validator"

	"github.com/google/uuid"
)

// ProductFilter is applied in-memory over the product list.
type ProductFilter struct {
	CategoryID uuid.UUID // uuid.Nil = semua kategori
	BrandID    uuid.UUID // uuid.Nil = semua merek
	Search     string    // substring match pada Type, case-insensitive
}

type CatalogService interface {
	ListProducts(actor *model.User, filter ProductFilter) ([]model.ProductView, error)
	GetProduct(actor *model.User, id uuid.UUID) (*model.ProductView, error)
	SaveProduct(actor *model.User, req *model.Product) (*model.Product, error)
	DeleteProduct(actor *model.User, id uuid.UUID) error
	GenerateDescription(actor *model.User, categoryID, brandID uuid.UUID, productType string) (string, error)

	ListCategories(actor *model.User) ([]model.Category, error)
	SaveCategory(actor *model.User, category *model.Category) error
	DeleteCategory(actor *model.User, id uuid.UUID) error
	ListBrands(actor *model.User) ([]model.Brand, error)
	SaveBrand(actor *model.User, brand *model.Brand) error
	DeleteBrand(actor *model.User, id uuid.UUID) error
}

type catalogService struct {
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
	brandRepo    repository.BrandRepository
	settingsRepo repository.SettingsRepository
	descGen      ai.DescriptionGenerator
	wsHub        *ws.Hub
}

func NewCatalogService(
	pRepo repository.ProductRepository,
	cRepo repository.CategoryRepository,
	bRepo repository.BrandRepository,
	sRepo repository.SettingsRepository,
	descGen ai.DescriptionGenerator,
	hub *ws.Hub,
) CatalogService {
	return &catalogService{
		productRepo:  pRepo,
		categoryRepo: cRepo,
		brandRepo:    bRepo,
		settingsRepo: sRepo,
		descGen:      descGen,
		wsHub:        hub,
	}
}

// ListProducts returns products with resolved taxonomy names, filtered in memory.
func (s *catalogService) ListProducts(actor *model.User, filter ProductFilter) ([]model.ProductView, error) {
	if !actor.HasPermission(model.PermCatalogView) {
		return nil, ErrPermissionDenied
	}

	products, err := s.productRepo.FindAll()
	if err != nil {
		return nil, err
	}

	categoryNames, brandNames, err := s.taxonomyNames()
	if err != nil {
		return nil, err
	}

	search := strings.ToLower(filter.Search)
	views := make([]model.ProductView, 0, len(products))
	for _, p := range products {
		if filter.CategoryID != uuid.Nil && p.CategoryID != filter.CategoryID {
			continue
		}
		if filter.BrandID != uuid.Nil && p.BrandID != filter.BrandID {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(p.Type), search) {
			continue
		}
		views = append(views, resolveProduct(p, categoryNames, brandNames))
	}
	return views, nil
}

func (s *catalogService) GetProduct(actor *model.User, id uuid.UUID) (*model.ProductView, error) {
	if !actor.HasPermission(model.PermCatalogView) {
		return nil, ErrPermissionDenied
	}

	product, err := s.productRepo.FindByID(id)
	if err != nil {
		return nil, ErrNotFound
	}

	categoryNames, brandNames, err := s.taxonomyNames()
	if err != nil {
		return nil, err
	}

	view := resolveProduct(*product, categoryNames, brandNames)
	return &view, nil
}

// SaveProduct upserts a product. Field harga turunan SELALU dihitung ulang dari
// HPP dan setting saat ini; produk lain tidak ikut dihitung ulang saat setting
// berubah (snapshot semantics).
func (s *catalogService) SaveProduct(actor *model.User, req *model.Product) (*model.Product, error) {
	if !actor.HasPermission(model.PermCatalogEdit) {
		return nil, ErrPermissionDenied
	}

	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return nil, structValidationError(errs)
	}

	settings, err := s.settingsRepo.Get()
	if err != nil {
		return nil, err
	}

	quote, err := pricing.Compute(req.HPP, *settings)
	if err != nil {
		return nil, validationError("%v", err)
	}
	req.PriceUp60 = quote.PriceUp
	req.Installment3 = quote.Installment3
	req.Installment6 = quote.Installment6
	req.Installment9 = quote.Installment9
	req.Installment12 = quote.Installment12

	if req.ID == uuid.Nil {
		req.CreatedBy = actor.Name
		req.UpdatedBy = actor.Name
		if err := s.productRepo.Create(req); err != nil {
			return nil, err
		}
		s.wsHub.Publish("product_created", actor.Name, req)
		return req, nil
	}

	existing, err := s.productRepo.FindByID(req.ID)
	if err != nil {
		// Id dikirim tapi belum ada: simpan sebagai record baru dengan id itu
		req.CreatedBy = actor.Name
		req.UpdatedBy = actor.Name
		if err := s.productRepo.Create(req); err != nil {
			return nil, err
		}
		s.wsHub.Publish("product_created", actor.Name, req)
		return req, nil
	}

	existing.CategoryID = req.CategoryID
	existing.BrandID = req.BrandID
	existing.Type = req.Type
	existing.HPP = req.HPP
	existing.PriceUp60 = req.PriceUp60
	existing.Installment3 = req.Installment3
	existing.Installment6 = req.Installment6
	existing.Installment9 = req.Installment9
	existing.Installment12 = req.Installment12
	existing.Description = req.Description
	existing.ProductImage = req.ProductImage
	existing.ExternalLink = req.ExternalLink
	existing.UpdatedBy = actor.Name

	if err := s.productRepo.Update(existing); err != nil {
		return nil, err
	}
	s.wsHub.Publish("product_updated", actor.Name, existing)
	return existing, nil
}

func (s *catalogService) DeleteProduct(actor *model.User, id uuid.UUID) error {
	if !actor.HasPermission(model.PermCatalogEdit) {
		return ErrPermissionDenied
	}
	if _, err := s.productRepo.FindByID(id); err != nil {
		return ErrNotFound
	}
	if err := s.productRepo.Delete(id); err != nil {
		return err
	}
	s.wsHub.Publish("product_deleted", actor.Name, map[string]interface{}{"id": id})
	return nil
}

// GenerateDescription memanggil generator AI. Kegagalan layanan eksternal
// sudah di-recover di bawah jadi string fallback, tidak pernah jadi hard error.
func (s *catalogService) GenerateDescription(actor *model.User, categoryID, brandID uuid.UUID, productType string) (string, error) {
	if !actor.HasPermission(model.PermCatalogEdit) {
		return "", ErrPermissionDenied
	}
	if productType == "" {
		return "", validationError("type is required")
	}

	categoryName := ""
	if c, err := s.categoryRepo.FindByID(categoryID); err == nil {
		categoryName = c.Name
	}
	brandName := ""
	if b, err := s.brandRepo.FindByID(brandID); err == nil {
		brandName = b.Name
	}

	return s.descGen.Generate(categoryName, brandName, productType), nil
}

func (s *catalogService) ListCategories(actor *model.User) ([]model.Category, error) {
	if !actor.HasPermission(model.PermCatalogView) {
		return nil, ErrPermissionDenied
	}
	return s.categoryRepo.FindAll()
}

func (s *catalogService) SaveCategory(actor *model.User, category *model.Category) error {
	if !actor.HasPermission(model.PermCatalogEdit) {
		return ErrPermissionDenied
	}
	if errs := validator.ValidateStruct(category); len(errs) > 0 {
		return structValidationError(errs)
	}
	category.UpdatedBy = actor.Name
	if err := s.categoryRepo.Save(category); err != nil {
		return err
	}
	s.wsHub.Publish("category_saved", actor.Name, category)
	return nil
}

func (s *catalogService) DeleteCategory(actor *model.User, id uuid.UUID) error {
	if !actor.HasPermission(model.PermCatalogEdit) {
		return ErrPermissionDenied
	}
	if _, err := s.categoryRepo.FindByID(id); err != nil {
		return ErrNotFound
	}
	return s.categoryRepo.Delete(id)
}

func (s *catalogService) ListBrands(actor *model.User) ([]model.Brand, error) {
	if !actor.HasPermission(model.PermCatalogView) {
		return nil, ErrPermissionDenied
	}
	return s.brandRepo.FindAll()
}

func (s *catalogService) SaveBrand(actor *model.User, brand *model.Brand) error {
	if !actor.HasPermission(model.PermCatalogEdit) {
		return ErrPermissionDenied
	}
	if errs := validator.ValidateStruct(brand); len(errs) > 0 {
		return structValidationError(errs)
	}
	brand.UpdatedBy = actor.Name
	if err := s.brandRepo.Save(brand); err != nil {
		return err
	}
	s.wsHub.Publish("brand_saved", actor.Name, brand)
	return nil
}

func (s *catalogService) DeleteBrand(actor *model.User, id uuid.UUID) error {
	if !actor.HasPermission(model.PermCatalogEdit) {
		return ErrPermissionDenied
	}
	if _, err := s.brandRepo.FindByID(id); err != nil {
		return ErrNotFound
	}
	return s.brandRepo.Delete(id)
}

func (s *catalogService) taxonomyNames() (map[uuid.UUID]string, map[uuid.UUID]string, error) {
	categories, err := s.categoryRepo.FindAll()
	if err != nil {
		return nil, nil, err
	}
	brands, err := s.brandRepo.FindAll()
	if err != nil {
		return nil, nil, err
	}

	categoryNames := make(map[uuid.UUID]string, len(categories))
	for _, c := range categories {
		categoryNames[c.ID] = c.Name
	}
	brandNames := make(map[uuid.UUID]string, len(brands))
	for _, b := range brands {
		brandNames[b.ID] = b.Name
	}
	return categoryNames, brandNames, nil
}

// resolveProduct mengisi nama kategori/merek; referensi dangling jadi
// UnknownReference, bukan error.
func resolveProduct(p model.Product, categoryNames, brandNames map[uuid.UUID]string) model.ProductView {
	view := model.ProductView{Product: p, CategoryName: model.UnknownReference, BrandName: model.UnknownReference}
	if name, ok := categoryNames[p.CategoryID]; ok {
		view.CategoryName = name
	}
	if name, ok := brandNames[p.BrandID]; ok {
		view.BrandName = name
	}
	return view
}
