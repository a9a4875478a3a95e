package repositories

import (
	"context"

	"shop-orders/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// orderRepository implements OrderRepository interface
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository creates a new order repository
func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepository{db: db}
}

// ListSummaries lists order headers with per-order totals computed by
// correlated subqueries, newest first (date DESC, id DESC tie-break).
// memberID 0 lists every member's orders.
func (r *orderRepository) ListSummaries(ctx context.Context, memberID uint, offset, limit int) ([]models.OrderSummaryRow, int64, error) {
	countQuery := r.db.WithContext(ctx).Table("booking AS b")
	if memberID != 0 {
		countQuery = countQuery.Where("b.member_id = ?", memberID)
	}

	var total int64
	if err := countQuery.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	q := r.db.WithContext(ctx).Table("booking AS b").
		Select(`b.id AS booking_id,
			b.date AS booking_date,
			m.name AS member_name,
			m.email AS member_email,
			m.vip AS member_vip,
			(SELECT COALESCE(SUM(bd.count), 0)
			   FROM booking_detail bd
			  WHERE bd.booking_id = b.id) AS total_items,
			(SELECT COALESCE(SUM(bd.count * p.price), 0)
			   FROM booking_detail bd
			   JOIN product p ON bd.product_id = p.id
			  WHERE bd.booking_id = b.id) AS total_amount`).
		Joins("JOIN member m ON b.member_id = m.id")

	if memberID != 0 {
		q = q.Where("m.id = ?", memberID)
	}

	rows := []models.OrderSummaryRow{}
	err := q.Order("b.date DESC, b.id DESC").
		Limit(limit).
		Offset(offset).
		Scan(&rows).Error
	if err != nil {
		return nil, 0, err
	}

	return rows, total, nil
}

// GetHeader fetches one order header joined with its member. When
// memberID is non-zero the ownership filter is folded into the query so
// a foreign order is indistinguishable from an absent one.
func (r *orderRepository) GetHeader(ctx context.Context, id, memberID uint) (*models.OrderHeaderRow, error) {
	q := r.db.WithContext(ctx).Table("booking AS b").
		Select(`b.id AS booking_id,
			b.date AS booking_date,
			b.created_at,
			b.created_by,
			b.updated_at,
			b.updated_by,
			m.id AS member_id,
			m.name AS member_name,
			m.email AS member_email,
			m.vip AS member_vip`).
		Joins("JOIN member m ON b.member_id = m.id").
		Where("b.id = ?", id)

	if memberID != 0 {
		q = q.Where("m.id = ?", memberID)
	}

	var row models.OrderHeaderRow
	if err := q.Take(&row).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

// GetLines fetches the line items of an order joined with product and
// category, ordered by priority
func (r *orderRepository) GetLines(ctx context.Context, bookingID uint) ([]models.OrderLine, error) {
	lines := []models.OrderLine{}
	err := r.db.WithContext(ctx).Table("booking_detail AS bd").
		Select(`bd.id AS detail_id,
			bd.count AS quantity,
			bd.priority,
			p.id AS product_id,
			p.name AS product_name,
			p.price AS unit_price,
			p.picture,
			(bd.count * p.price) AS subtotal,
			pc.name AS product_category`).
		Joins("JOIN product p ON bd.product_id = p.id").
		Joins("JOIN product_class pc ON p.product_class_id = pc.id").
		Where("bd.booking_id = ?", bookingID).
		Order("bd.priority ASC").
		Scan(&lines).Error
	if err != nil {
		return nil, err
	}
	return lines, nil
}

// Exists checks if an order exists
func (r *orderRepository) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Booking{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

// CreateWithDetails inserts the header and every line item in one
// transaction. Any failure rolls the whole order back.
func (r *orderRepository) CreateWithDetails(ctx context.Context, booking *models.Booking, details []models.BookingDetail) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(booking).Error; err != nil {
			return err
		}

		for i := range details {
			details[i].BookingID = booking.ID
			if err := tx.Create(&details[i]).Error; err != nil {
				return err
			}
		}

		return nil
	})
}

// DeleteWithDetails removes the line items and then the header in one
// transaction, so the foreign key holds at every point.
func (r *orderRepository) DeleteWithDetails(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("booking_id = ?", id).Delete(&models.BookingDetail{}).Error; err != nil {
			return err
		}
		if err := tx.Delete(&models.Booking{}, id).Error; err != nil {
			return err
		}
		return nil
	})
}
