package services

import (
	"errors"

	"github.com/INFINITECH-OJT2025/ecomdelivery-go/entity"
	"github.com/INFINITECH-OJT2025/ecomdelivery-go/money"
	"github.com/INFINITECH-OJT2025/ecomdelivery-go/repository"
	"github.com/google/uuid"
)

type RemittanceService struct {
	Repo      *repository.RemittanceRepository
	OrderRepo *repository.OrderRepository
}

func NewRemittanceService(repo *repository.RemittanceRepository, orderRepo *repository.OrderRepository) *RemittanceService {
	return &RemittanceService{Repo: repo, OrderRepo: orderRepo}
}

// Summary compares cash the rider collected (delivered COD orders)
// against what they have deposited.
func (s *RemittanceService) Summary(riderID uint) (*entity.RemittanceSummary, error) {
	collected, err := s.OrderRepo.SumDeliveredCOD(riderID)
	if err != nil {
		return nil, err
	}
	remitted, err := s.Repo.SumRemitted(riderID)
	if err != nil {
		return nil, err
	}
	return &entity.RemittanceSummary{
		Expected:    money.Centavos(collected),
		Remitted:    remitted,
		Outstanding: money.Centavos(collected) - remitted,
	}, nil
}

func (s *RemittanceService) History(riderID uint) ([]entity.Remittance, error) {
	return s.Repo.ListByRider(riderID)
}

// Submit records a deposit with its slip image, pending admin review.
func (s *RemittanceService) Submit(riderID uint, amount money.Centavos, slipPath string) (*entity.Remittance, error) {
	if amount <= 0 {
		return nil, errors.New("amount is required")
	}
	if slipPath == "" {
		return nil, errors.New("deposit slip is required")
	}
	rem := &entity.Remittance{
		RiderID:     riderID,
		ReferenceNo: uuid.NewString(),
		Amount:      amount,
		SlipPath:    slipPath,
		Status:      entity.RemittancePending,
	}
	if err := s.Repo.Create(rem); err != nil {
		return nil, err
	}
	return rem, nil
}
