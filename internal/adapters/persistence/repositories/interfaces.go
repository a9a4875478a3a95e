package repositories

import (
	"context"

	"shop-orders/internal/adapters/persistence/models"
)

// MemberRepository defines member repository interface
type MemberRepository interface {
	GetByID(ctx context.Context, id uint) (*models.Member, error)
	GetByEmail(ctx context.Context, email string) (*models.Member, error)
	Create(ctx context.Context, member *models.Member) error
}

// ProductRepository defines the read-only catalog repository interface.
// Listings only ever see alive, non-disabled records.
type ProductRepository interface {
	List(ctx context.Context, categoryID uint, search string, offset, limit int) ([]models.ProductRow, int64, error)
	ListCategories(ctx context.Context) ([]models.CategoryRow, error)
}

// OrderRepository defines the order repository interface.
// A memberID of 0 means no ownership scoping (admin view).
type OrderRepository interface {
	ListSummaries(ctx context.Context, memberID uint, offset, limit int) ([]models.OrderSummaryRow, int64, error)
	GetHeader(ctx context.Context, id, memberID uint) (*models.OrderHeaderRow, error)
	GetLines(ctx context.Context, bookingID uint) ([]models.OrderLine, error)
	Exists(ctx context.Context, id uint) (bool, error)
	CreateWithDetails(ctx context.Context, booking *models.Booking, details []models.BookingDetail) error
	DeleteWithDetails(ctx context.Context, id uint) error
}
