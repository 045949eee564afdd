package services

import (
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/cyber3201/foodApp/entity"
	"github.com/cyber3201/foodApp/repository"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var dbSeq int64

// setupDB opens a fresh in-memory database per test. The shared-cache name
// keeps gorm's connection pool on the same database.
func setupDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:svc_test_%d?mode=memory&cache=shared", atomic.AddInt64(&dbSeq, 1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&entity.User{}, &entity.Address{},
		&entity.Category{}, &entity.Restaurant{}, &entity.Product{},
		&entity.Cart{}, &entity.CartItem{},
		&entity.OrderStatus{}, &entity.Order{},
		&entity.PaymentStatus{}, &entity.Payment{},
		&entity.Message{},
	))
	return db
}

func seedStatuses(t *testing.T, db *gorm.DB) {
	t.Helper()
	for _, name := range []string{entity.OrderReceived, entity.OrderPreparing, entity.OrderOnTheWay, entity.OrderDelivered} {
		require.NoError(t, db.Create(&entity.OrderStatus{StatusName: name}).Error)
	}
	for _, name := range []string{entity.PaymentIdle, entity.PaymentProcessing, entity.PaymentSucceeded} {
		require.NoError(t, db.Create(&entity.PaymentStatus{StatusName: name}).Error)
	}
}

func seedCategory(t *testing.T, db *gorm.DB, id uint, name string) {
	t.Helper()
	row := entity.Category{Name: name, Icon: "utensils"}
	row.ID = id
	require.NoError(t, db.Create(&row).Error)
}

func seedRestaurant(t *testing.T, db *gorm.DB, id uint, name string) {
	t.Helper()
	row := entity.Restaurant{Name: name, CuisineType: "Moroccan", Rating: 4.8, IsOpen: true}
	row.ID = id
	require.NoError(t, db.Create(&row).Error)
}

func seedProduct(t *testing.T, db *gorm.DB, id, restID, catID uint, name, description, price string, rating float64) {
	t.Helper()
	row := entity.Product{
		Name:         name,
		Description:  description,
		Price:        decimal.RequireFromString(price),
		IsAvailable:  true,
		Rating:       rating,
		RestaurantID: restID,
		CategoryID:   catID,
	}
	row.ID = id
	require.NoError(t, db.Create(&row).Error)
}

// seedSmallCatalog is the shared browse fixture: two restaurants, two
// categories, four products with a rating spread around the popular cutoff.
func seedSmallCatalog(t *testing.T, db *gorm.DB) *repository.CatalogRepository {
	t.Helper()

	seedCategory(t, db, 1, "Tagine")
	seedCategory(t, db, 2, "Drinks")
	seedRestaurant(t, db, 1, "Dar Tajine")
	seedRestaurant(t, db, 2, "Ocean Délices")

	seedProduct(t, db, 1, 1, 1, "Royal Chicken Tagine", "Slow-cooked chicken in a clay pot.", "75.00", 4.9)
	seedProduct(t, db, 2, 2, 1, "Fish Tagine", "Fresh fish from the coast.", "80.00", 4.8)
	seedProduct(t, db, 3, 1, 1, "Kefta Skillet", "Meatballs in tomato sauce.", "60.00", 4.6)
	seedProduct(t, db, 4, 2, 2, "Mint Tea", "Hot tea with fresh mint.", "15.00", 4.5)

	return repository.NewCatalogRepository(db)
}
