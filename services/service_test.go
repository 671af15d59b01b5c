package services

import (
	"testing"

	"github.com/INFINITECH-OJT2025/ecomdelivery-go/entity"
	"github.com/INFINITECH-OJT2025/ecomdelivery-go/repository"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.AutoMigrate(
		&entity.Restaurant{},
		&entity.ChatRoom{}, &entity.Message{},
		&entity.Order{}, &entity.OrderItem{},
		&entity.Cart{}, &entity.CartItem{},
		&entity.Rider{}, &entity.RiderLocation{},
		&entity.Remittance{}, &entity.Refund{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

type fixture struct {
	db     *gorm.DB
	orders *OrderService
	carts  *CartService
	remit  *RemittanceService
	refund *RefundService
	chat   *ChatService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db := newTestDB(t)
	orderRepo := repository.NewOrderRepository(db)
	cartRepo := repository.NewCartRepository(db)
	restRepo := repository.NewRestaurantRepository(db)
	return &fixture{
		db:     db,
		orders: NewOrderService(db, orderRepo, cartRepo, restRepo),
		carts:  NewCartService(db, cartRepo, restRepo),
		remit:  NewRemittanceService(repository.NewRemittanceRepository(db), orderRepo),
		refund: NewRefundService(repository.NewRefundRepository(db), orderRepo),
		chat:   NewChatService(repository.NewChatRepository(db), orderRepo),
	}
}

func (f *fixture) seedRestaurant(t *testing.T, name string) *entity.Restaurant {
	t.Helper()
	rest := &entity.Restaurant{Name: name, IsOpen: true}
	if err := f.db.Create(rest).Error; err != nil {
		t.Fatalf("seed restaurant: %v", err)
	}
	return rest
}
