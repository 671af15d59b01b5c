package configs

import (
	"time"

	"github.com/INFINITECH-OJT2025/ecomdelivery-go/entity"
	"github.com/INFINITECH-OJT2025/ecomdelivery-go/money"
)

// SeedLookups loads a small fixture set so a fresh database is usable
// right away in development.
func SeedLookups() error {
	db := DB()

	restaurants := []entity.Restaurant{
		{Name: "Mang Inasal Makati", CategoryID: 1, Rating: 4.6, Lat: 14.554, Lng: 121.024, IsOpen: true, HasOffers: true},
		{Name: "Jolly Lugawan", CategoryID: 2, Rating: 4.2, Lat: 14.561, Lng: 121.019, IsOpen: true},
		{Name: "Kuya Ben's Sisig House", CategoryID: 2, Rating: 4.8, Lat: 14.549, Lng: 121.031, IsOpen: false, HasOffers: true},
	}
	for i := range restaurants {
		if err := db.FirstOrCreate(&restaurants[i], entity.Restaurant{Name: restaurants[i].Name}).Error; err != nil {
			return err
		}
	}

	vouchers := []entity.Voucher{
		{Code: "WELCOME50", Description: "₱50 off your first order", DiscountAmount: money.Centavos(5000), MinSpend: money.Centavos(25000), ExpiresAt: time.Now().AddDate(0, 3, 0)},
		{Code: "FREESHIP", Description: "Free delivery", DiscountAmount: money.Centavos(4900), MinSpend: money.Centavos(30000), ExpiresAt: time.Now().AddDate(0, 1, 0)},
	}
	for i := range vouchers {
		if err := db.FirstOrCreate(&vouchers[i], entity.Voucher{Code: vouchers[i].Code}).Error; err != nil {
			return err
		}
	}

	riders := []entity.Rider{
		{Name: "Ramil D.", Status: entity.RiderAvailable},
		{Name: "Joanna P.", Status: entity.RiderOffline},
	}
	for i := range riders {
		if err := db.FirstOrCreate(&riders[i], entity.Rider{Name: riders[i].Name}).Error; err != nil {
			return err
		}
	}

	return nil
}
