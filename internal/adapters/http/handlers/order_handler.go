package handlers

import (
	"errors"
	"strconv"

	"shop-orders/internal/adapters/http/middleware"
	"shop-orders/internal/core/domain"
	"shop-orders/internal/core/services"
	"shop-orders/internal/pkg/pagination"
	"shop-orders/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// defaultOrderPageSize is the default page size for order listings
const defaultOrderPageSize = 10

// OrderHandler handles order endpoints
type OrderHandler struct {
	orderService *services.OrderService
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(orderService *services.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

// List handles GET /api/orders
func (h *OrderHandler) List(c *fiber.Ctx) error {
	identity, ok := middleware.IdentityFromContext(c)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	params := pagination.GetParams(c, defaultOrderPageSize)

	result, err := h.orderService.List(c.Context(), identity, params)
	if err != nil {
		return response.InternalServerError(c, "Server error")
	}

	return c.JSON(result)
}

// Get handles GET /api/orders/:id
func (h *OrderHandler) Get(c *fiber.Ctx) error {
	identity, ok := middleware.IdentityFromContext(c)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	orderID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid order id")
	}

	detail, err := h.orderService.Get(c.Context(), identity, uint(orderID))
	if err != nil {
		if errors.Is(err, domain.ErrOrderNotFound) {
			return response.NotFound(c, "Order not found or not accessible")
		}
		return response.InternalServerError(c, "Server error")
	}

	return c.JSON(detail)
}

// Create handles POST /api/orders
func (h *OrderHandler) Create(c *fiber.Ctx) error {
	identity, ok := middleware.IdentityFromContext(c)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	var input services.CreateOrderInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	orderID, err := h.orderService.Create(c.Context(), identity, &input)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrEmptyOrder), errors.Is(err, domain.ErrInvalidOrderItem):
			return response.BadRequest(c, "Please provide a valid product list")
		default:
			return response.InternalServerError(c, "Server error")
		}
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":  "Order created successfully",
		"order_id": orderID,
	})
}

// Delete handles DELETE /api/orders/:id
func (h *OrderHandler) Delete(c *fiber.Ctx) error {
	identity, ok := middleware.IdentityFromContext(c)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	orderID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid order id")
	}

	if err := h.orderService.Delete(c.Context(), identity, uint(orderID)); err != nil {
		switch {
		case errors.Is(err, domain.ErrOrderNotFound):
			return response.NotFound(c, "Order not found")
		case errors.Is(err, domain.ErrForbidden):
			return response.Forbidden(c, "Not allowed to delete orders")
		default:
			return response.InternalServerError(c, "Server error")
		}
	}

	return response.Message(c, "Order deleted successfully")
}
