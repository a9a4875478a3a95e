package services

import (
	"testing"
	"time"

	"shop-orders/internal/adapters/persistence/models"
	"shop-orders/internal/core/domain"
	"shop-orders/internal/pkg/password"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens an isolated in-memory database with foreign keys
// enforced. MaxOpenConns is pinned to 1 so every statement sees the
// same memory database.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?_foreign_keys=1"), &gorm.Config{
		Logger:                 logger.Default.LogMode(logger.Silent),
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, models.AutoMigrate(db))
	return db
}

type fixture struct {
	Admin     models.Member
	Member    models.Member
	Beverages models.ProductCategory
	Bakery    models.ProductCategory
	Americano models.Product
	Latte     models.Product
	Croissant models.Product
}

// seedFixture loads a small catalog and two members (one admin, one
// regular) the service tests share.
func seedFixture(t *testing.T, db *gorm.DB) *fixture {
	t.Helper()

	adminPass, err := password.Hash("admin-pass")
	require.NoError(t, err)
	memberPass, err := password.Hash("member-pass")
	require.NoError(t, err)

	f := &fixture{
		Admin: models.Member{
			Name:     "Admin",
			Email:    "admin@example.com",
			Password: adminPass,
			Role:     domain.RoleAdmin.String(),
		},
		Member: models.Member{
			Name:     "Alice",
			Email:    "alice@example.com",
			Password: memberPass,
			Role:     domain.RoleUser.String(),
			VIP:      true,
		},
	}
	require.NoError(t, db.Create(&f.Admin).Error)
	require.NoError(t, db.Create(&f.Member).Error)

	f.Beverages = models.ProductCategory{Name: "Beverages", Alive: true}
	f.Bakery = models.ProductCategory{Name: "Bakery", Alive: true}
	require.NoError(t, db.Create(&f.Beverages).Error)
	require.NoError(t, db.Create(&f.Bakery).Error)

	f.Americano = models.Product{Name: "Americano", Price: 60, ProductClassID: f.Beverages.ID, Alive: true}
	f.Latte = models.Product{Name: "Latte", Price: 80, ProductClassID: f.Beverages.ID, Alive: true}
	f.Croissant = models.Product{Name: "Croissant", Price: 55, ProductClassID: f.Bakery.ID, Alive: true}
	require.NoError(t, db.Create(&f.Americano).Error)
	require.NoError(t, db.Create(&f.Latte).Error)
	require.NoError(t, db.Create(&f.Croissant).Error)

	return f
}

func (f *fixture) adminIdentity() domain.Identity {
	return domain.Identity{ID: f.Admin.ID, Email: f.Admin.Email, Name: f.Admin.Name, Role: domain.RoleAdmin}
}

func (f *fixture) memberIdentity() domain.Identity {
	return domain.Identity{ID: f.Member.ID, Email: f.Member.Email, Name: f.Member.Name, Role: domain.RoleUser}
}

// seedItem is one line item for insertBooking, in priority order
type seedItem struct {
	ProductID uint
	Count     int
}

// insertBooking writes a booking with details directly, bypassing the
// service, for read-path tests that need a known database state.
func insertBooking(t *testing.T, db *gorm.DB, memberID uint, date time.Time, items []seedItem) uint {
	t.Helper()

	booking := models.Booking{Date: date, MemberID: memberID, CreatedBy: "seed", UpdatedBy: "seed"}
	require.NoError(t, db.Create(&booking).Error)

	for i, item := range items {
		detail := models.BookingDetail{
			BookingID: booking.ID,
			ProductID: item.ProductID,
			Count:     item.Count,
			Priority:  i + 1,
			CreatedBy: "seed",
			UpdatedBy: "seed",
		}
		require.NoError(t, db.Create(&detail).Error)
	}

	return booking.ID
}
