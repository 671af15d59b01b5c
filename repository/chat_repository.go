package repository

import (
	"github.com/INFINITECH-OJT2025/ecomdelivery-go/entity"
	"gorm.io/gorm"
)

type ChatRepository struct {
	db *gorm.DB
}

func NewChatRepository(db *gorm.DB) *ChatRepository {
	return &ChatRepository{db}
}

// GetOrCreateRoom finds the room for an order, creating it on first
// contact. orderID 0 is the customer's support room.
func (r *ChatRepository) GetOrCreateRoom(orderID, customerID uint) (*entity.ChatRoom, error) {
	var room entity.ChatRoom
	err := r.db.Where("order_id = ? AND customer_id = ?", orderID, customerID).First(&room).Error
	if err == gorm.ErrRecordNotFound {
		room = entity.ChatRoom{OrderID: orderID, CustomerID: customerID}
		err = r.db.Create(&room).Error
	}
	if err != nil {
		return nil, err
	}
	return &room, nil
}

func (r *ChatRepository) FindRoom(id uint) (*entity.ChatRoom, error) {
	var room entity.ChatRoom
	if err := r.db.First(&room, id).Error; err != nil {
		return nil, err
	}
	return &room, nil
}

func (r *ChatRepository) FindMessages(chatID uint) ([]entity.Message, error) {
	msgs := make([]entity.Message, 0)
	err := r.db.
		Where("chat_id = ?", chatID).
		Order("created_at ASC, id ASC").
		Find(&msgs).Error
	return msgs, err
}

func (r *ChatRepository) CreateMessage(msg *entity.Message) error {
	return r.db.Create(msg).Error
}
