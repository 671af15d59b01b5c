package services

import (
	"errors"

	"github.com/INFINITECH-OJT2025/ecomdelivery-go/entity"
	"github.com/INFINITECH-OJT2025/ecomdelivery-go/repository"
)

type ChatService struct {
	repo      *repository.ChatRepository
	orderRepo *repository.OrderRepository
}

func NewChatService(repo *repository.ChatRepository, orderRepo *repository.OrderRepository) *ChatService {
	return &ChatService{repo: repo, orderRepo: orderRepo}
}

// OpenConversation returns the room for an order, creating it if
// needed. orderID 0 opens the customer's support room.
func (s *ChatService) OpenConversation(userID, orderID uint) (*entity.ChatRoom, error) {
	if orderID == 0 {
		return s.repo.GetOrCreateRoom(0, userID)
	}
	order, err := s.orderRepo.Get(orderID)
	if err != nil {
		return nil, err
	}
	room, err := s.repo.GetOrCreateRoom(orderID, order.CustomerID)
	if err != nil {
		return nil, err
	}
	if room.RiderID == 0 && order.RiderID != 0 {
		room.RiderID = order.RiderID
	}
	return room, nil
}

// CanAccess allows only the order's customer or assigned rider into a
// room.
func (s *ChatService) CanAccess(userID, roomID uint) (*entity.ChatRoom, error) {
	room, err := s.repo.FindRoom(roomID)
	if err != nil {
		return nil, err
	}
	if room.CustomerID == userID {
		return room, nil
	}
	if room.OrderID != 0 {
		order, err := s.orderRepo.Get(room.OrderID)
		if err != nil {
			return nil, err
		}
		if order.RiderID == userID {
			return room, nil
		}
	}
	return nil, errors.New("no access")
}

func (s *ChatService) Messages(roomID uint) ([]entity.Message, error) {
	return s.repo.FindMessages(roomID)
}

func (s *ChatService) Send(roomID, senderID uint, body string) (*entity.Message, error) {
	if body == "" {
		return nil, errors.New("message is required")
	}
	msg := &entity.Message{ChatID: roomID, SenderID: senderID, Message: body}
	if err := s.repo.CreateMessage(msg); err != nil {
		return nil, err
	}
	return msg, nil
}
