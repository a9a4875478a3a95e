package handlers

import (
	"errors"

	"shop-orders/internal/adapters/http/middleware"
	"shop-orders/internal/core/domain"
	"shop-orders/internal/core/services"
	"shop-orders/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// UserHandler handles member profile endpoints
type UserHandler struct {
	userService *services.UserService
}

// NewUserHandler creates a new user handler
func NewUserHandler(userService *services.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// Profile handles GET /api/user/profile
func (h *UserHandler) Profile(c *fiber.Ctx) error {
	identity, ok := middleware.IdentityFromContext(c)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	user, err := h.userService.Profile(c.Context(), identity.ID)
	if err != nil {
		if errors.Is(err, domain.ErrMemberNotFound) {
			return response.NotFound(c, "Member not found")
		}
		return response.InternalServerError(c, "Server error")
	}

	return c.JSON(fiber.Map{"user": user})
}
