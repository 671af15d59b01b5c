package entity

import (
	"time"

	"github.com/INFINITECH-OJT2025/ecomdelivery-go/money"
)

const (
	OrderPlaced         = "placed"
	OrderPreparing      = "preparing"
	OrderOutForDelivery = "out_for_delivery"
	OrderDelivered      = "delivered"
	OrderCancelled      = "cancelled"
)

type Order struct {
	ID           uint `json:"id" gorm:"primaryKey"`
	CustomerID   uint `json:"customer_id" gorm:"index"`
	RestaurantID uint `json:"restaurant_id"`

	Status         string         `json:"order_status"`
	Subtotal       money.Centavos `json:"subtotal"`
	DeliveryFee    money.Centavos `json:"delivery_fee"`
	TotalPrice     money.Centavos `json:"total_price"`
	DeliveryStatus string         `json:"delivery_status,omitempty"`
	PaymentMethod  string         `json:"payment,omitempty"`

	Items  []OrderItem `json:"order_items" gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	Refund *Refund     `json:"refund,omitempty" gorm:"foreignKey:OrderID"`

	// rider assignment; zero until a rider accepts
	RiderID uint `json:"rider_id,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
