package services

import (
	"context"
	"testing"
	"time"

	"shop-orders/internal/adapters/persistence/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSalesStatsAggregates(t *testing.T) {
	db := newTestDB(t)
	f := seedFixture(t, db)
	svc := NewStatsService(db)

	now := time.Now()
	// Alice: 2x Latte (160) + 1x Croissant (55); Admin: 3x Latte (240)
	insertBooking(t, db, f.Member.ID, now.AddDate(0, 0, -1), []seedItem{
		{f.Latte.ID, 2},
		{f.Croissant.ID, 1},
	})
	insertBooking(t, db, f.Admin.ID, now, []seedItem{{f.Latte.ID, 3}})

	stats, err := svc.SalesStats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(2), stats.OrderStats.TotalOrders)
	assert.Equal(t, int64(6), stats.OrderStats.TotalItems)
	assert.Equal(t, 2*80.0+1*55.0+3*80.0, stats.OrderStats.TotalSales)

	// Beverages outsell Bakery and come first
	require.Len(t, stats.CategorySales, 2)
	assert.Equal(t, "Beverages", stats.CategorySales[0].CategoryName)
	assert.Equal(t, int64(5), stats.CategorySales[0].TotalSold)
	assert.Equal(t, 400.0, stats.CategorySales[0].TotalSales)
	assert.Equal(t, "Bakery", stats.CategorySales[1].CategoryName)
	assert.Equal(t, int64(1), stats.CategorySales[1].ProductCount)

	// Latte tops the product ranking with two distinct orders
	require.NotEmpty(t, stats.TopProducts)
	assert.Equal(t, "Latte", stats.TopProducts[0].ProductName)
	assert.Equal(t, int64(5), stats.TopProducts[0].TotalSold)
	assert.Equal(t, int64(2), stats.TopProducts[0].OrderCount)

	// Admin spent 240, Alice 215; ranking is by spend
	require.Len(t, stats.MemberStats, 2)
	assert.Equal(t, f.Admin.Email, stats.MemberStats[0].MemberEmail)
	assert.Equal(t, 240.0, stats.MemberStats[0].TotalAmount)
	assert.Equal(t, f.Member.Email, stats.MemberStats[1].MemberEmail)
	assert.Equal(t, 215.0, stats.MemberStats[1].TotalAmount)
	assert.Equal(t, int64(3), stats.MemberStats[1].TotalItems)
}

func TestSalesStatsSkipsDeadCategories(t *testing.T) {
	db := newTestDB(t)
	f := seedFixture(t, db)
	svc := NewStatsService(db)

	dead := models.ProductCategory{Name: "Retired", Alive: false}
	require.NoError(t, db.Create(&dead).Error)
	relic := models.Product{Name: "Relic", Price: 100, ProductClassID: dead.ID, Alive: true}
	require.NoError(t, db.Create(&relic).Error)

	insertBooking(t, db, f.Member.ID, time.Now(), []seedItem{
		{f.Latte.ID, 1},
		{relic.ID, 1},
	})

	stats, err := svc.SalesStats(context.Background())
	require.NoError(t, err)

	for _, row := range stats.CategorySales {
		assert.NotEqual(t, "Retired", row.CategoryName)
	}
	// The dead category still counts toward the overall totals
	assert.Equal(t, 180.0, stats.OrderStats.TotalSales)
}

func TestSalesStatsEmptyDatabase(t *testing.T) {
	db := newTestDB(t)
	seedFixture(t, db)
	svc := NewStatsService(db)

	stats, err := svc.SalesStats(context.Background())
	require.NoError(t, err)

	assert.Zero(t, stats.OrderStats.TotalOrders)
	assert.Zero(t, stats.OrderStats.TotalSales)
	assert.Empty(t, stats.CategorySales)
	assert.Empty(t, stats.TopProducts)
	assert.Empty(t, stats.MemberStats)
}
