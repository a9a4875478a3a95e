package middleware

import (
	"strings"

	"shop-orders/internal/config"
	"shop-orders/internal/core/domain"
	"shop-orders/internal/pkg/jwt"
	"shop-orders/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// identityKey is the fiber Locals key carrying the decoded identity
const identityKey = "identity"

// AuthMiddleware creates authentication middleware. It validates the
// bearer token and attaches the decoded identity for downstream
// handlers.
func AuthMiddleware(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var accessToken string

		// 1. Extract bearer token from Authorization header
		authHeader := c.Get("Authorization")
		if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
			accessToken = strings.TrimPrefix(authHeader, "Bearer ")
		}

		// 2. No token found
		if accessToken == "" {
			return response.Unauthorized(c, "Access token required")
		}

		// 3. Validate token
		claims, err := jwt.ValidateAccessToken(accessToken, cfg.JWT.Secret)
		if err != nil {
			if err == jwt.ErrTokenExpired {
				return response.Unauthorized(c, "Access token expired")
			}
			return response.Unauthorized(c, "Invalid access token")
		}

		// 4. Set identity in context
		c.Locals(identityKey, domain.Identity{
			ID:    claims.MemberID,
			Email: claims.Email,
			Name:  claims.Name,
			Role:  domain.ParseRole(claims.Role),
		})

		return c.Next()
	}
}

// IdentityFromContext returns the identity set by AuthMiddleware
func IdentityFromContext(c *fiber.Ctx) (domain.Identity, bool) {
	identity, ok := c.Locals(identityKey).(domain.Identity)
	return identity, ok
}

// RoleMiddleware creates role-based authorization middleware
func RoleMiddleware(allowedRoles ...domain.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		identity, ok := IdentityFromContext(c)
		if !ok {
			return response.Unauthorized(c, "Unauthorized")
		}

		for _, allowed := range allowedRoles {
			if identity.Role == allowed {
				return c.Next()
			}
		}

		return response.Forbidden(c, "You don't have permission to access this resource")
	}
}

// AdminOnly middleware allows only the ADMIN role
func AdminOnly() fiber.Handler {
	return RoleMiddleware(domain.RoleAdmin)
}
