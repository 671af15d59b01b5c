package configs

import (
	"github.com/INFINITECH-OJT2025/ecomdelivery-go/entity"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var db *gorm.DB

func DB() *gorm.DB {
	return db
}

func ConnectDB(source string) {
	database, err := gorm.Open(sqlite.Open(source), &gorm.Config{})
	if err != nil {
		panic("failed to connect database")
	}
	db = database
}

func SetupDatabase() {
	db.AutoMigrate(
		&entity.Restaurant{},
		&entity.ChatRoom{}, &entity.Message{},
		&entity.Order{}, &entity.OrderItem{},
		&entity.Cart{}, &entity.CartItem{},
		&entity.Address{}, &entity.Favorite{},
		&entity.Voucher{}, &entity.VoucherUsage{},
		&entity.Rider{}, &entity.RiderLocation{},
		&entity.Remittance{}, &entity.Refund{},
	)
}
