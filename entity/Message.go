package entity

import "time"

// DeliveryState tracks a message the client has sent but the server has
// not confirmed yet. It never goes over the wire; the zero value means
// the message came from the server.
type DeliveryState int

const (
	DeliveryConfirmed DeliveryState = iota
	DeliveryPending
	DeliveryFailed
)

type Message struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	ChatID    uint      `json:"chat_id" gorm:"index"`
	SenderID  uint      `json:"sender_id"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`

	// client-side only
	Delivery DeliveryState `json:"-" gorm:"-"`
	LocalID  string        `json:"-" gorm:"-"`
}
