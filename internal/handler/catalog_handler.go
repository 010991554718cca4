package handler

import (
	"go-catalog-api/internal/model"
	"go-catalog-api/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type CatalogHandler struct {
	service service.CatalogService
}

func NewCatalogHandler(s service.CatalogService) *CatalogHandler {
	return &CatalogHandler{service: s}
}

// GetProducts returns products with resolved category/brand names.
// Query params: category_id, brand_id, search (substring pada type)
func (h *CatalogHandler) GetProducts(c *fiber.Ctx) error {
	filter := service.ProductFilter{Search: c.Query("search")}
	if raw := c.Query("category_id"); raw != "" {
		id, err := parseUUID(raw)
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Invalid category_id"})
		}
		filter.CategoryID = id
	}
	if raw := c.Query("brand_id"); raw != "" {
		id, err := parseUUID(raw)
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Invalid brand_id"})
		}
		filter.BrandID = id
	}

	products, err := h.service.ListProducts(actor(c), filter)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(products)
}

// GetProduct returns a single product by ID
// GET /api/v1/products/:id
func (h *CatalogHandler) GetProduct(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid product ID"})
	}

	product, err := h.service.GetProduct(actor(c), id)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(product)
}

// SaveProduct upserts a product; harga turunan dihitung server-side dari HPP.
// POST /api/v1/products
func (h *CatalogHandler) SaveProduct(c *fiber.Ctx) error {
	var product model.Product
	if err := c.BodyParser(&product); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	saved, err := h.service.SaveProduct(actor(c), &product)
	if err != nil {
		return serviceError(c, err)
	}
	return c.Status(201).JSON(fiber.Map{"message": "Product saved", "data": saved})
}

// UpdateProduct upserts by path id
// PUT /api/v1/products/:id
func (h *CatalogHandler) UpdateProduct(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid product ID"})
	}

	var product model.Product
	if err := c.BodyParser(&product); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	product.ID = id

	saved, err := h.service.SaveProduct(actor(c), &product)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Product updated", "data": saved})
}

// DeleteProduct removes a product by ID
// DELETE /api/v1/products/:id
func (h *CatalogHandler) DeleteProduct(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid product ID"})
	}

	if err := h.service.DeleteProduct(actor(c), id); err != nil {
		return serviceError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Product deleted"})
}

// GenerateDescription asks the AI boundary for a sales description.
// POST /api/v1/products/generate-description
func (h *CatalogHandler) GenerateDescription(c *fiber.Ctx) error {
	var req struct {
		CategoryID string `json:"category_id"`
		BrandID    string `json:"brand_id"`
		Type       string `json:"type"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	categoryID, _ := uuid.Parse(req.CategoryID)
	brandID, _ := uuid.Parse(req.BrandID)

	description, err := h.service.GenerateDescription(actor(c), categoryID, brandID, req.Type)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(fiber.Map{"description": description})
}

// ============ Categories ============

func (h *CatalogHandler) GetCategories(c *fiber.Ctx) error {
	categories, err := h.service.ListCategories(actor(c))
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(categories)
}

func (h *CatalogHandler) SaveCategory(c *fiber.Ctx) error {
	var category model.Category
	if err := c.BodyParser(&category); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	if err := h.service.SaveCategory(actor(c), &category); err != nil {
		return serviceError(c, err)
	}
	return c.Status(201).JSON(fiber.Map{"message": "Category saved", "data": category})
}

func (h *CatalogHandler) DeleteCategory(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid category ID"})
	}

	if err := h.service.DeleteCategory(actor(c), id); err != nil {
		return serviceError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Category deleted"})
}

// ============ Brands ============

func (h *CatalogHandler) GetBrands(c *fiber.Ctx) error {
	brands, err := h.service.ListBrands(actor(c))
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(brands)
}

func (h *CatalogHandler) SaveBrand(c *fiber.Ctx) error {
	var brand model.Brand
	if err := c.BodyParser(&brand); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	if err := h.service.SaveBrand(actor(c), &brand); err != nil {
		return serviceError(c, err)
	}
	return c.Status(201).JSON(fiber.Map{"message": "Brand saved", "data": brand})
}

func (h *CatalogHandler) DeleteBrand(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid brand ID"})
	}

	if err := h.service.DeleteBrand(actor(c), id); err != nil {
		return serviceError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Brand deleted"})
}
