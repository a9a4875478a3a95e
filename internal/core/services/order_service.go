package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"shop-orders/internal/adapters/persistence/models"
	"shop-orders/internal/adapters/persistence/repositories"
	"shop-orders/internal/core/domain"
	"shop-orders/internal/pkg/pagination"

	"gorm.io/gorm"
)

// bookingDateLayout is the wire format for booking dates
const bookingDateLayout = "2006-01-02"

// OrderService handles the order workflow: list, get, create, delete.
// Visibility is role-gated: non-admin members only ever see their own
// orders, and delete is strictly admin-only.
type OrderService struct {
	orderRepo repositories.OrderRepository
}

// NewOrderService creates a new order service
func NewOrderService(orderRepo repositories.OrderRepository) *OrderService {
	return &OrderService{orderRepo: orderRepo}
}

// OrderItemInput is one requested line item
type OrderItemInput struct {
	ProductID uint `json:"product_id" validate:"required,gt=0"`
	Quantity  int  `json:"quantity" validate:"required,gt=0"`
}

// CreateOrderInput represents create order input
type CreateOrderInput struct {
	Products []OrderItemInput `json:"products" validate:"min=1,dive"`
}

// OrderSummary is one row of the order listing
type OrderSummary struct {
	BookingID   uint    `json:"booking_id"`
	BookingDate string  `json:"booking_date"`
	MemberName  string  `json:"member_name"`
	MemberEmail string  `json:"member_email"`
	MemberVIP   bool    `json:"member_vip"`
	TotalItems  int64   `json:"total_items"`
	TotalAmount float64 `json:"total_amount"`
}

// ListOrdersOutput represents the paginated order listing
type ListOrdersOutput struct {
	Orders     []OrderSummary   `json:"orders"`
	Pagination *pagination.Meta `json:"pagination"`
}

// OrderDetail is the full order view: header, member, line items and
// computed totals
type OrderDetail struct {
	BookingID   uint               `json:"booking_id"`
	BookingDate string             `json:"booking_date"`
	CreatedAt   time.Time          `json:"created_at"`
	CreatedBy   string             `json:"created_by"`
	UpdatedAt   time.Time          `json:"updated_at"`
	UpdatedBy   string             `json:"updated_by"`
	MemberID    uint               `json:"member_id"`
	MemberName  string             `json:"member_name"`
	MemberEmail string             `json:"member_email"`
	MemberVIP   bool               `json:"member_vip"`
	Details     []models.OrderLine `json:"details"`
	TotalAmount float64            `json:"total_amount"`
	TotalItems  int                `json:"total_items"`
}

// visibilityScope returns the member id the queries must be scoped to,
// 0 for admins (unscoped).
func visibilityScope(identity domain.Identity) uint {
	if identity.Role.IsAdmin() {
		return 0
	}
	return identity.ID
}

// List lists orders visible to the caller, newest first
func (s *OrderService) List(ctx context.Context, identity domain.Identity, params *pagination.Params) (*ListOrdersOutput, error) {
	rows, total, err := s.orderRepo.ListSummaries(ctx, visibilityScope(identity), params.Offset, params.Limit)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}

	orders := make([]OrderSummary, len(rows))
	for i, row := range rows {
		orders[i] = OrderSummary{
			BookingID:   row.BookingID,
			BookingDate: row.BookingDate.Format(bookingDateLayout),
			MemberName:  row.MemberName,
			MemberEmail: row.MemberEmail,
			MemberVIP:   row.MemberVIP,
			TotalItems:  row.TotalItems,
			TotalAmount: row.TotalAmount,
		}
	}

	return &ListOrdersOutput{
		Orders:     orders,
		Pagination: pagination.GetMeta(params, total),
	}, nil
}

// Get fetches one order with its line items. A foreign order surfaces
// as ErrOrderNotFound, indistinguishable from a genuine absence.
func (s *OrderService) Get(ctx context.Context, identity domain.Identity, orderID uint) (*OrderDetail, error) {
	header, err := s.orderRepo.GetHeader(ctx, orderID, visibilityScope(identity))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrOrderNotFound
		}
		return nil, fmt.Errorf("get order header: %w", err)
	}

	lines, err := s.orderRepo.GetLines(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("get order lines: %w", err)
	}

	detail := &OrderDetail{
		BookingID:   header.BookingID,
		BookingDate: header.BookingDate.Format(bookingDateLayout),
		CreatedAt:   header.CreatedAt,
		CreatedBy:   header.CreatedBy,
		UpdatedAt:   header.UpdatedAt,
		UpdatedBy:   header.UpdatedBy,
		MemberID:    header.MemberID,
		MemberName:  header.MemberName,
		MemberEmail: header.MemberEmail,
		MemberVIP:   header.MemberVIP,
		Details:     lines,
	}

	for _, line := range lines {
		detail.TotalAmount += line.Subtotal
		detail.TotalItems += line.Quantity
	}

	return detail, nil
}

// Create validates the item list, then writes the header and all line
// items in one transaction. Priorities are assigned 1..N in submission
// order. Nothing persists if any insert fails.
func (s *OrderService) Create(ctx context.Context, identity domain.Identity, input *CreateOrderInput) (uint, error) {
	if len(input.Products) == 0 {
		return 0, domain.ErrEmptyOrder
	}
	if err := validate.Struct(input); err != nil {
		return 0, domain.ErrInvalidOrderItem
	}

	now := time.Now()
	booking := &models.Booking{
		Date:      now,
		MemberID:  identity.ID,
		CreatedBy: identity.Email,
		UpdatedBy: identity.Email,
	}

	details := make([]models.BookingDetail, len(input.Products))
	for i, item := range input.Products {
		details[i] = models.BookingDetail{
			ProductID: item.ProductID,
			Count:     item.Quantity,
			Priority:  i + 1,
			CreatedBy: identity.Email,
			UpdatedBy: identity.Email,
		}
	}

	if err := s.orderRepo.CreateWithDetails(ctx, booking, details); err != nil {
		log.Printf("❌ Failed to create order for member %d: %v", identity.ID, err)
		return 0, fmt.Errorf("create order: %w", err)
	}

	log.Printf("✅ Order %d created by %s (%d items)", booking.ID, identity.Email, len(details))
	return booking.ID, nil
}

// Delete removes an order and all its line items. The existence check
// runs before the role check so admins and members alike get a 404 for
// a missing order; ownership never grants delete rights.
func (s *OrderService) Delete(ctx context.Context, identity domain.Identity, orderID uint) error {
	exists, err := s.orderRepo.Exists(ctx, orderID)
	if err != nil {
		return fmt.Errorf("check order: %w", err)
	}
	if !exists {
		return domain.ErrOrderNotFound
	}

	if !identity.Role.IsAdmin() {
		return domain.ErrForbidden
	}

	if err := s.orderRepo.DeleteWithDetails(ctx, orderID); err != nil {
		log.Printf("❌ Failed to delete order %d: %v", orderID, err)
		return fmt.Errorf("delete order: %w", err)
	}

	log.Printf("✅ Order %d deleted by %s", orderID, identity.Email)
	return nil
}
