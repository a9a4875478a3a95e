package config

import (
	"log"

	"shop-orders/internal/adapters/persistence/models"
	"shop-orders/internal/core/domain"
	"shop-orders/internal/pkg/password"

	"gorm.io/gorm"
)

// Seeder handles database seeding
type Seeder struct {
	db *gorm.DB
}

// NewSeeder creates a new seeder instance
func NewSeeder(db *gorm.DB) *Seeder {
	return &Seeder{db: db}
}

// Run executes all seeders
func (s *Seeder) Run() error {
	log.Println("🌱 Running database seeders...")

	if err := s.seedMembers(); err != nil {
		log.Printf("⚠️ Member seeder skipped: %v", err)
	}
	if err := s.seedCatalog(); err != nil {
		log.Printf("⚠️ Catalog seeder skipped: %v", err)
	}

	log.Println("✅ Database seeding completed")
	return nil
}

// seedMembers seeds a default admin and a demo member.
// This is for development/testing only; in production, create the admin
// through a secure process.
func (s *Seeder) seedMembers() error {
	var count int64
	s.db.Model(&models.Member{}).Where("role = ?", domain.RoleAdmin.String()).Count(&count)
	if count > 0 {
		return nil // Admin already exists
	}

	adminPass, err := password.Hash("admin123456")
	if err != nil {
		return err
	}
	userPass, err := password.Hash("user123456")
	if err != nil {
		return err
	}

	members := []models.Member{
		{
			Name:     "Admin",
			Email:    "admin@example.com",
			Password: adminPass,
			Role:     domain.RoleAdmin.String(),
			VIP:      false,
		},
		{
			Name:     "Demo Member",
			Email:    "member@example.com",
			Password: userPass,
			Role:     domain.RoleUser.String(),
			VIP:      true,
		},
	}

	if err := s.db.Create(&members).Error; err != nil {
		return err
	}

	log.Println("✅ Seeded admin and demo members")
	return nil
}

// seedCatalog seeds categories and products so a fresh database serves
// the admin console immediately.
func (s *Seeder) seedCatalog() error {
	var count int64
	s.db.Model(&models.ProductCategory{}).Count(&count)
	if count > 0 {
		return nil // Catalog already seeded
	}

	categories := []models.ProductCategory{
		{Name: "Beverages", Alive: true, Disable: false},
		{Name: "Bakery", Alive: true, Disable: false},
		{Name: "Snacks", Alive: true, Disable: false},
	}
	if err := s.db.Create(&categories).Error; err != nil {
		return err
	}

	products := []models.Product{
		{Name: "Americano", Price: 60, Picture: "/img/americano.jpg", ProductClassID: categories[0].ID, Alive: true},
		{Name: "Latte", Price: 80, Picture: "/img/latte.jpg", ProductClassID: categories[0].ID, Alive: true},
		{Name: "Croissant", Price: 55, Picture: "/img/croissant.jpg", ProductClassID: categories[1].ID, Alive: true},
		{Name: "Bagel", Price: 45, Picture: "/img/bagel.jpg", ProductClassID: categories[1].ID, Alive: true},
		{Name: "Potato Chips", Price: 35, Picture: "/img/chips.jpg", ProductClassID: categories[2].ID, Alive: true},
	}
	if err := s.db.Create(&products).Error; err != nil {
		return err
	}

	log.Println("✅ Seeded catalog data")
	return nil
}
