package repositories

import (
	"context"
	"strings"

	"shop-orders/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// productRepository implements ProductRepository interface
type productRepository struct {
	db *gorm.DB
}

// NewProductRepository creates a new product repository
func NewProductRepository(db *gorm.DB) ProductRepository {
	return &productRepository{db: db}
}

// listQuery builds the filtered catalog query. Optional filters are
// composed as parameterized clauses, never interpolated into SQL.
func (r *productRepository) listQuery(ctx context.Context, categoryID uint, search string) *gorm.DB {
	q := r.db.WithContext(ctx).Table("product AS p").
		Joins("JOIN product_class pc ON p.product_class_id = pc.id").
		Where("p.alive = ? AND p.disable = ?", true, false)

	if categoryID != 0 {
		q = q.Where("p.product_class_id = ?", categoryID)
	}
	if search != "" {
		q = q.Where("LOWER(p.name) LIKE ?", "%"+strings.ToLower(search)+"%")
	}

	return q
}

// List lists alive, non-disabled products with optional category and
// name filters, ordered by name
func (r *productRepository) List(ctx context.Context, categoryID uint, search string, offset, limit int) ([]models.ProductRow, int64, error) {
	var total int64
	if err := r.listQuery(ctx, categoryID, search).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	rows := []models.ProductRow{}
	err := r.listQuery(ctx, categoryID, search).
		Select(`p.id AS product_id,
			p.name AS product_name,
			p.price,
			p.picture,
			pc.id AS category_id,
			pc.name AS category_name`).
		Order("p.name ASC").
		Limit(limit).
		Offset(offset).
		Scan(&rows).Error
	if err != nil {
		return nil, 0, err
	}

	return rows, total, nil
}

// ListCategories lists alive, non-disabled categories ordered by name
func (r *productRepository) ListCategories(ctx context.Context) ([]models.CategoryRow, error) {
	rows := []models.CategoryRow{}
	err := r.db.WithContext(ctx).Table("product_class").
		Select("id AS category_id, name AS category_name").
		Where("alive = ? AND disable = ?", true, false).
		Order("name ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
