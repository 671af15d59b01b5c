package entity

import "time"

// ChatRoom links a customer and the rider working their order. Support
// chats have a zero OrderID.
type ChatRoom struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	OrderID    uint      `json:"order_id" gorm:"index"`
	CustomerID uint      `json:"customer_id"`
	RiderID    uint      `json:"rider_id"`
	CreatedAt  time.Time `json:"created_at"`

	Messages []Message `json:"-" gorm:"foreignKey:ChatID"`
}
