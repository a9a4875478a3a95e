package services

import (
	"context"
	"fmt"

	"gorm.io/gorm"
)

// StatsService computes admin-only sales rollups. The aggregates are
// point-in-time reads built directly on the database handle.
type StatsService struct {
	db *gorm.DB
}

// NewStatsService creates a new stats service
func NewStatsService(db *gorm.DB) *StatsService {
	return &StatsService{db: db}
}

// OrderStats represents overall order totals
type OrderStats struct {
	TotalOrders int64   `json:"total_orders"`
	TotalItems  int64   `json:"total_items"`
	TotalSales  float64 `json:"total_sales"`
}

// CategorySalesRow represents per-category sales
type CategorySalesRow struct {
	CategoryName string  `json:"category_name"`
	ProductCount int64   `json:"product_count"`
	TotalSold    int64   `json:"total_sold"`
	TotalSales   float64 `json:"total_sales"`
}

// TopProductRow represents one of the best-selling products
type TopProductRow struct {
	ProductID    uint    `json:"product_id"`
	ProductName  string  `json:"product_name"`
	CategoryName string  `json:"category_name"`
	UnitPrice    float64 `json:"unit_price"`
	TotalSold    int64   `json:"total_sold"`
	TotalSales   float64 `json:"total_sales"`
	OrderCount   int64   `json:"order_count"`
}

// MemberStatsRow represents one of the top-spending members
type MemberStatsRow struct {
	MemberID    uint    `json:"member_id"`
	MemberName  string  `json:"member_name"`
	MemberEmail string  `json:"member_email"`
	MemberVIP   bool    `json:"member_vip"`
	OrderCount  int64   `json:"order_count"`
	TotalItems  int64   `json:"total_items"`
	TotalAmount float64 `json:"total_amount"`
}

// SalesStats represents the full sales statistics payload
type SalesStats struct {
	OrderStats    OrderStats         `json:"orderStats"`
	CategorySales []CategorySalesRow `json:"categorySales"`
	TopProducts   []TopProductRow    `json:"topProducts"`
	MemberStats   []MemberStatsRow   `json:"memberStats"`
}

// SalesStats returns the aggregate sales data for the admin console
func (s *StatsService) SalesStats(ctx context.Context) (*SalesStats, error) {
	stats := &SalesStats{
		CategorySales: []CategorySalesRow{},
		TopProducts:   []TopProductRow{},
		MemberStats:   []MemberStatsRow{},
	}

	// Overall order and sales totals
	err := s.db.WithContext(ctx).Table("booking AS b").
		Select(`COUNT(DISTINCT b.id) AS total_orders,
			COALESCE(SUM(bd.count), 0) AS total_items,
			COALESCE(SUM(bd.count * p.price), 0) AS total_sales`).
		Joins("JOIN booking_detail bd ON b.id = bd.booking_id").
		Joins("JOIN product p ON bd.product_id = p.id").
		Scan(&stats.OrderStats).Error
	if err != nil {
		return nil, fmt.Errorf("order stats: %w", err)
	}

	// Per-category sales (alive categories only)
	err = s.db.WithContext(ctx).Table("product_class AS pc").
		Select(`pc.name AS category_name,
			COUNT(DISTINCT p.id) AS product_count,
			SUM(bd.count) AS total_sold,
			SUM(bd.count * p.price) AS total_sales`).
		Joins("JOIN product p ON pc.id = p.product_class_id").
		Joins("JOIN booking_detail bd ON p.id = bd.product_id").
		Where("pc.alive = ?", true).
		Group("pc.id, pc.name").
		Order("total_sales DESC").
		Scan(&stats.CategorySales).Error
	if err != nil {
		return nil, fmt.Errorf("category sales: %w", err)
	}

	// Top 10 products by quantity sold
	err = s.db.WithContext(ctx).Table("product AS p").
		Select(`p.id AS product_id,
			p.name AS product_name,
			pc.name AS category_name,
			p.price AS unit_price,
			SUM(bd.count) AS total_sold,
			SUM(bd.count * p.price) AS total_sales,
			COUNT(DISTINCT b.id) AS order_count`).
		Joins("JOIN product_class pc ON p.product_class_id = pc.id").
		Joins("JOIN booking_detail bd ON p.id = bd.product_id").
		Joins("JOIN booking b ON bd.booking_id = b.id").
		Group("p.id, p.name, pc.name, p.price").
		Order("total_sold DESC").
		Limit(10).
		Scan(&stats.TopProducts).Error
	if err != nil {
		return nil, fmt.Errorf("top products: %w", err)
	}

	// Top 10 members by total spend
	err = s.db.WithContext(ctx).Table("member AS m").
		Select(`m.id AS member_id,
			m.name AS member_name,
			m.email AS member_email,
			m.vip AS member_vip,
			COUNT(DISTINCT b.id) AS order_count,
			SUM(bd.count) AS total_items,
			SUM(bd.count * p.price) AS total_amount`).
		Joins("JOIN booking b ON m.id = b.member_id").
		Joins("JOIN booking_detail bd ON b.id = bd.booking_id").
		Joins("JOIN product p ON bd.product_id = p.id").
		Group("m.id, m.name, m.email, m.vip").
		Order("total_amount DESC").
		Limit(10).
		Scan(&stats.MemberStats).Error
	if err != nil {
		return nil, fmt.Errorf("member stats: %w", err)
	}

	return stats, nil
}
