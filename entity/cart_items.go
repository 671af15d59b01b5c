package entity

import "github.com/INFINITECH-OJT2025/ecomdelivery-go/money"

type CartItem struct {
	ID         uint           `json:"id" gorm:"primaryKey"`
	CartID     uint           `json:"cart_id" gorm:"index"`
	MenuItemID uint           `json:"menu_item_id"`
	Name       string         `json:"name"`
	Quantity   int            `json:"quantity"`
	UnitPrice  money.Centavos `json:"unit_price"`
	Subtotal   money.Centavos `json:"subtotal"`
	Note       string         `json:"note,omitempty"`
}
