package services

import (
	"errors"

	"github.com/INFINITECH-OJT2025/ecomdelivery-go/entity"
	"github.com/INFINITECH-OJT2025/ecomdelivery-go/repository"
)

type RefundService struct {
	Repo      *repository.RefundRepository
	OrderRepo *repository.OrderRepository
}

func NewRefundService(repo *repository.RefundRepository, orderRepo *repository.OrderRepository) *RefundService {
	return &RefundService{Repo: repo, OrderRepo: orderRepo}
}

// Request files a refund for a delivered order. One refund per order;
// adjudication is an admin concern, the request just lands as
// "requested".
func (s *RefundService) Request(userID, orderID uint, reason, proofPath string) (*entity.Refund, error) {
	if reason == "" {
		return nil, errors.New("refund reason is required")
	}
	if proofPath == "" {
		return nil, errors.New("proof image is required")
	}

	order, err := s.OrderRepo.Get(orderID)
	if err != nil {
		return nil, errors.New("order not found")
	}
	if order.CustomerID != userID {
		return nil, errors.New("forbidden")
	}
	if order.Status != entity.OrderDelivered {
		return nil, errors.New("only delivered orders can be refunded")
	}
	if _, err := s.Repo.FindByOrder(orderID); err == nil {
		return nil, errors.New("refund already requested")
	}

	refund := &entity.Refund{
		OrderID:    orderID,
		CustomerID: userID,
		Reason:     reason,
		ProofPath:  proofPath,
		Amount:     order.TotalPrice,
		Status:     entity.RefundRequested,
	}
	if err := s.Repo.Create(refund); err != nil {
		return nil, err
	}
	return refund, nil
}

func (s *RefundService) ListForCustomer(userID uint) ([]entity.Refund, error) {
	return s.Repo.ListByCustomer(userID)
}
