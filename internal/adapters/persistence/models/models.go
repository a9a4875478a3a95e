package models

import (
	"time"

	"gorm.io/gorm"
)

// AutoMigrate creates or updates all tables
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&Member{},
		&ProductCategory{},
		&Product{},
		&Booking{},
		&BookingDetail{},
	)
}

// ============================================================
// Core tables
// ============================================================

// Member represents the member table
type Member struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:100;not null" json:"name"`
	Email     string    `gorm:"uniqueIndex;size:100;not null" json:"email"`
	Password  string    `gorm:"size:255;not null" json:"-"`
	Role      string    `gorm:"size:20;default:'USER'" json:"role"`
	VIP       bool      `gorm:"column:vip;default:false" json:"vip"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Member) TableName() string {
	return "member"
}

// MemberResponse DTO (never carries the password hash)
type MemberResponse struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	VIP       bool      `json:"vip"`
	CreatedAt time.Time `json:"created_at"`
}

func (m *Member) ToResponse() *MemberResponse {
	return &MemberResponse{
		ID:        m.ID,
		Name:      m.Name,
		Email:     m.Email,
		Role:      m.Role,
		VIP:       m.VIP,
		CreatedAt: m.CreatedAt,
	}
}

// ProductCategory represents the product_class table
type ProductCategory struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	Name    string `gorm:"size:100;not null" json:"name"`
	Alive   bool   `gorm:"default:true" json:"-"`
	Disable bool   `gorm:"default:false" json:"-"`
}

func (ProductCategory) TableName() string {
	return "product_class"
}

// Product represents the product table. Read-only from the order
// workflow's perspective.
type Product struct {
	ID             uint            `gorm:"primaryKey" json:"id"`
	Name           string          `gorm:"size:100;not null" json:"name"`
	Price          float64         `gorm:"not null" json:"price"`
	Picture        string          `gorm:"size:255" json:"picture"`
	ProductClassID uint            `gorm:"index;not null" json:"product_class_id"`
	Category       ProductCategory `gorm:"foreignKey:ProductClassID" json:"-"`
	Alive          bool            `gorm:"default:true" json:"-"`
	Disable        bool            `gorm:"default:false" json:"-"`
}

func (Product) TableName() string {
	return "product"
}

// Booking represents the booking (order header) table
type Booking struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Date      time.Time `gorm:"not null" json:"date"`
	MemberID  uint      `gorm:"index;not null" json:"member_id"`
	Member    Member    `gorm:"foreignKey:MemberID" json:"-"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	CreatedBy string    `gorm:"size:100" json:"created_by"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
	UpdatedBy string    `gorm:"size:100" json:"updated_by"`
}

func (Booking) TableName() string {
	return "booking"
}

// BookingDetail represents the booking_detail (order line item) table.
// Priority is the 1-based display order within a booking, assigned at
// creation and never modified afterwards.
type BookingDetail struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	BookingID uint      `gorm:"not null;index:idx_booking_priority,unique" json:"booking_id"`
	Booking   Booking   `gorm:"foreignKey:BookingID" json:"-"`
	ProductID uint      `gorm:"index;not null" json:"product_id"`
	Product   Product   `gorm:"foreignKey:ProductID" json:"-"`
	Count     int       `gorm:"not null" json:"count"`
	Priority  int       `gorm:"not null;index:idx_booking_priority,unique" json:"priority"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	CreatedBy string    `gorm:"size:100" json:"created_by"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
	UpdatedBy string    `gorm:"size:100" json:"updated_by"`
}

func (BookingDetail) TableName() string {
	return "booking_detail"
}

// ============================================================
// Query row types (scanned from joined/aggregated selects)
// ============================================================

// OrderSummaryRow is one row of the order listing query
type OrderSummaryRow struct {
	BookingID   uint
	BookingDate time.Time
	MemberName  string
	MemberEmail string
	MemberVIP   bool
	TotalItems  int64
	TotalAmount float64
}

// OrderHeaderRow is the order detail header joined with its member
type OrderHeaderRow struct {
	BookingID   uint
	BookingDate time.Time
	CreatedAt   time.Time
	CreatedBy   string
	UpdatedAt   time.Time
	UpdatedBy   string
	MemberID    uint
	MemberName  string
	MemberEmail string
	MemberVIP   bool
}

// OrderLine is one line item joined with product and category,
// subtotal precomputed as count * unit price
type OrderLine struct {
	DetailID        uint    `json:"detail_id"`
	Quantity        int     `json:"quantity"`
	Priority        int     `json:"priority"`
	ProductID       uint    `json:"product_id"`
	ProductName     string  `json:"product_name"`
	UnitPrice       float64 `json:"unit_price"`
	Picture         string  `json:"picture"`
	Subtotal        float64 `json:"subtotal"`
	ProductCategory string  `json:"product_category"`
}

// ProductRow is one row of the public catalog listing
type ProductRow struct {
	ProductID    uint    `json:"product_id"`
	ProductName  string  `json:"product_name"`
	Price        float64 `json:"price"`
	Picture      string  `json:"picture"`
	CategoryID   uint    `json:"category_id"`
	CategoryName string  `json:"category_name"`
}

// CategoryRow is one row of the category listing
type CategoryRow struct {
	CategoryID   uint   `json:"category_id"`
	CategoryName string `json:"category_name"`
}
