package entity

import (
	"time"

	"github.com/INFINITECH-OJT2025/ecomdelivery-go/money"
)

// Cart is locked to a single restaurant; adding an item from another
// restaurant is rejected until the cart is cleared.
type Cart struct {
	ID             uint       `json:"id" gorm:"primaryKey"`
	UserID         uint       `json:"user_id" gorm:"uniqueIndex"`
	RestaurantID   uint       `json:"restaurant_id"`
	RestaurantName string     `json:"restaurant_name"`
	Items          []CartItem `json:"cart_items" gorm:"foreignKey:CartID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// Subtotal is what the cart page displays; the server stays the source
// of truth for the final order total (delivery fee, vouchers).
func (c *Cart) Subtotal() money.Centavos {
	var total money.Centavos
	for _, it := range c.Items {
		total += it.Subtotal
	}
	return total
}
