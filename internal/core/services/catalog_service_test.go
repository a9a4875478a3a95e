package services

import (
	"context"
	"testing"

	"shop-orders/internal/adapters/persistence/models"
	"shop-orders/internal/adapters/persistence/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListProductsFiltersDeadAndDisabled(t *testing.T) {
	db := newTestDB(t)
	f := seedFixture(t, db)
	svc := NewCatalogService(repositories.NewProductRepository(db))

	// Neither a dead nor a disabled product may surface
	dead := models.Product{Name: "Dead", Price: 10, ProductClassID: f.Beverages.ID, Alive: false}
	disabled := models.Product{Name: "Disabled", Price: 10, ProductClassID: f.Beverages.ID, Alive: true, Disable: true}
	require.NoError(t, db.Create(&dead).Error)
	require.NoError(t, db.Create(&disabled).Error)

	out, err := svc.ListProducts(context.Background(), 0, "", pageParams(1, 20))
	require.NoError(t, err)
	assert.Equal(t, int64(3), out.Pagination.Total)
	for _, p := range out.Products {
		assert.NotContains(t, []string{"Dead", "Disabled"}, p.ProductName)
	}
}

func TestListProductsCategoryAndSearchFilters(t *testing.T) {
	db := newTestDB(t)
	f := seedFixture(t, db)
	svc := NewCatalogService(repositories.NewProductRepository(db))
	ctx := context.Background()

	// Exact category match
	out, err := svc.ListProducts(ctx, f.Bakery.ID, "", pageParams(1, 20))
	require.NoError(t, err)
	require.Len(t, out.Products, 1)
	assert.Equal(t, "Croissant", out.Products[0].ProductName)
	assert.Equal(t, f.Bakery.ID, out.Products[0].CategoryID)

	// Case-insensitive substring search
	out, err = svc.ListProducts(ctx, 0, "LAT", pageParams(1, 20))
	require.NoError(t, err)
	require.Len(t, out.Products, 1)
	assert.Equal(t, "Latte", out.Products[0].ProductName)

	// Both filters combined
	out, err = svc.ListProducts(ctx, f.Beverages.ID, "croissant", pageParams(1, 20))
	require.NoError(t, err)
	assert.Empty(t, out.Products)
	assert.Equal(t, int64(0), out.Pagination.Total)
}

func TestListProductsPagination(t *testing.T) {
	db := newTestDB(t)
	seedFixture(t, db)
	svc := NewCatalogService(repositories.NewProductRepository(db))
	ctx := context.Background()

	out, err := svc.ListProducts(ctx, 0, "", pageParams(1, 2))
	require.NoError(t, err)
	assert.Len(t, out.Products, 2)
	assert.Equal(t, int64(3), out.Pagination.Total)
	assert.Equal(t, 2, out.Pagination.TotalPages)

	// Name-ascending order: Americano, Croissant, Latte
	assert.Equal(t, "Americano", out.Products[0].ProductName)
	assert.Equal(t, "Croissant", out.Products[1].ProductName)

	out, err = svc.ListProducts(ctx, 0, "", pageParams(2, 2))
	require.NoError(t, err)
	require.Len(t, out.Products, 1)
	assert.Equal(t, "Latte", out.Products[0].ProductName)

	// Beyond the last page: empty, not an error
	out, err = svc.ListProducts(ctx, 0, "", pageParams(9, 2))
	require.NoError(t, err)
	assert.Empty(t, out.Products)
}

func TestListCategoriesSkipsDead(t *testing.T) {
	db := newTestDB(t)
	seedFixture(t, db)
	svc := NewCatalogService(repositories.NewProductRepository(db))

	dead := models.ProductCategory{Name: "Retired", Alive: false}
	disabled := models.ProductCategory{Name: "Hidden", Alive: true, Disable: true}
	require.NoError(t, db.Create(&dead).Error)
	require.NoError(t, db.Create(&disabled).Error)

	categories, err := svc.ListCategories(context.Background())
	require.NoError(t, err)
	require.Len(t, categories, 2)
	assert.Equal(t, "Bakery", categories[0].CategoryName)
	assert.Equal(t, "Beverages", categories[1].CategoryName)
}
