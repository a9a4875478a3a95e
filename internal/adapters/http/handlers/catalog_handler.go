package handlers

import (
	"shop-orders/internal/core/services"
	"shop-orders/internal/pkg/pagination"
	"shop-orders/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// defaultProductPageSize is the default page size for the catalog
const defaultProductPageSize = 20

// CatalogHandler handles public catalog endpoints
type CatalogHandler struct {
	catalogService *services.CatalogService
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(catalogService *services.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

// ListProducts handles GET /api/products
func (h *CatalogHandler) ListProducts(c *fiber.Ctx) error {
	params := pagination.GetParams(c, defaultProductPageSize)
	categoryID := c.QueryInt("category", 0)
	if categoryID < 0 {
		categoryID = 0
	}
	search := c.Query("search")

	result, err := h.catalogService.ListProducts(c.Context(), uint(categoryID), search, params)
	if err != nil {
		return response.InternalServerError(c, "Server error")
	}

	return c.JSON(result)
}

// ListCategories handles GET /api/categories
func (h *CatalogHandler) ListCategories(c *fiber.Ctx) error {
	categories, err := h.catalogService.ListCategories(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Server error")
	}

	return c.JSON(fiber.Map{"categories": categories})
}
