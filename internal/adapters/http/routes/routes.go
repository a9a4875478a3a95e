package routes

import (
	"time"

	"shop-orders/internal/adapters/http/handlers"
	"shop-orders/internal/adapters/http/middleware"
	"shop-orders/internal/adapters/persistence/repositories"
	"shop-orders/internal/config"
	"shop-orders/internal/core/services"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Setup configures all routes for the application
func Setup(app *fiber.App, db *gorm.DB, cfg *config.Config) {
	// Initialize repositories
	memberRepo := repositories.NewMemberRepository(db)
	productRepo := repositories.NewProductRepository(db)
	orderRepo := repositories.NewOrderRepository(db)

	// Initialize services
	authService := services.NewAuthService(memberRepo, cfg)
	userService := services.NewUserService(memberRepo)
	catalogService := services.NewCatalogService(productRepo)
	orderService := services.NewOrderService(orderRepo)
	statsService := services.NewStatsService(db)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler()
	authHandler := handlers.NewAuthHandler(authService)
	userHandler := handlers.NewUserHandler(userService)
	catalogHandler := handlers.NewCatalogHandler(catalogService)
	orderHandler := handlers.NewOrderHandler(orderService)
	statsHandler := handlers.NewStatsHandler(statsService)

	// Health check & root routes
	app.Get("/", healthHandler.Root)
	app.Get("/health", healthHandler.HealthCheck)

	// API group
	api := app.Group("/api")

	// Login (public, stricter rate limit)
	api.Post("/login", middleware.AuthRateLimiter(), authHandler.Login)

	// Public catalog (cacheable, no auth)
	catalogRoutes := api.Group("", middleware.CacheControl(5*time.Minute))
	catalogRoutes.Get("/products", catalogHandler.ListProducts)
	catalogRoutes.Get("/categories", catalogHandler.ListCategories)

	// Orders (authenticated; delete is admin-gated in the service so a
	// missing order still answers 404 before the role check)
	orderRoutes := api.Group("/orders")
	orderRoutes.Use(middleware.AuthMiddleware(cfg), middleware.NoCacheHeaders())
	orderRoutes.Get("/", orderHandler.List)
	orderRoutes.Get("/:id", orderHandler.Get)
	orderRoutes.Post("/", orderHandler.Create)
	orderRoutes.Delete("/:id", orderHandler.Delete)

	// Profile (authenticated)
	api.Get("/user/profile", middleware.AuthMiddleware(cfg), middleware.NoCacheHeaders(), userHandler.Profile)

	// Reporting (admin only)
	statsRoutes := api.Group("/stats")
	statsRoutes.Use(middleware.AuthMiddleware(cfg), middleware.AdminOnly())
	statsRoutes.Get("/sales", statsHandler.SalesStats)
}
