package configs

import (
	"github.com/cyber3201/foodApp/entity"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var db *gorm.DB

func DB() *gorm.DB {
	return db
}

// ConnectionDB opens the session store. The default DSN is an in-memory
// sqlite database: nothing survives the process, which is exactly the
// lifetime this app wants.
func ConnectionDB(dsn string) {
	database, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		panic("failed to connect database")
	}
	db = database
}

func SetupDatabase() {

	// Migrate the schema
	db.AutoMigrate(
		&entity.User{}, &entity.Address{},
		&entity.Category{}, &entity.Restaurant{}, &entity.Product{},
		&entity.Cart{}, &entity.CartItem{},
		&entity.OrderStatus{}, &entity.Order{},
		&entity.PaymentStatus{}, &entity.Payment{},
		&entity.Message{},
	)
}
