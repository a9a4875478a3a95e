package services

import (
	"context"
	"fmt"

	"shop-orders/internal/adapters/persistence/models"
	"shop-orders/internal/adapters/persistence/repositories"
	"shop-orders/internal/pkg/pagination"
)

// CatalogService serves the public product catalog
type CatalogService struct {
	productRepo repositories.ProductRepository
}

// NewCatalogService creates a new catalog service
func NewCatalogService(productRepo repositories.ProductRepository) *CatalogService {
	return &CatalogService{productRepo: productRepo}
}

// ListProductsOutput represents the paginated product listing
type ListProductsOutput struct {
	Products   []models.ProductRow `json:"products"`
	Pagination *pagination.Meta    `json:"pagination"`
}

// ListProducts lists alive, non-disabled products. categoryID 0 and an
// empty search term mean no filter.
func (s *CatalogService) ListProducts(ctx context.Context, categoryID uint, search string, params *pagination.Params) (*ListProductsOutput, error) {
	rows, total, err := s.productRepo.List(ctx, categoryID, search, params.Offset, params.Limit)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}

	return &ListProductsOutput{
		Products:   rows,
		Pagination: pagination.GetMeta(params, total),
	}, nil
}

// ListCategories lists alive, non-disabled categories
func (s *CatalogService) ListCategories(ctx context.Context) ([]models.CategoryRow, error) {
	categories, err := s.productRepo.ListCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return categories, nil
}
