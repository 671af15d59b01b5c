package entity

import "github.com/INFINITECH-OJT2025/ecomdelivery-go/money"

type OrderItem struct {
	ID         uint           `json:"id" gorm:"primaryKey"`
	OrderID    uint           `json:"order_id" gorm:"index"`
	MenuItemID uint           `json:"menu_item_id"`
	Name       string         `json:"name"`
	Quantity   int            `json:"quantity"`
	UnitPrice  money.Centavos `json:"unit_price"`
	Subtotal   money.Centavos `json:"subtotal"`
}
