package services

import (
	"time"

	"github.com/INFINITECH-OJT2025/ecomdelivery-go/entity"
	"github.com/INFINITECH-OJT2025/ecomdelivery-go/repository"
)

type RiderService struct {
	OrderRepo *repository.OrderRepository
	RiderRepo *repository.RiderRepository
}

func NewRiderService(orderRepo *repository.OrderRepository, riderRepo *repository.RiderRepository) *RiderService {
	return &RiderService{OrderRepo: orderRepo, RiderRepo: riderRepo}
}

// OrderFeed is what the rider home screen polls: claimable orders plus
// the rider's active deliveries.
func (s *RiderService) OrderFeed(riderID uint) ([]entity.Order, error) {
	return s.OrderRepo.ListForRider(riderID)
}

func (s *RiderService) ReportLocation(riderID uint, lat, lng float64) (*entity.RiderLocation, error) {
	loc := &entity.RiderLocation{
		RiderID:    riderID,
		Lat:        lat,
		Lng:        lng,
		RecordedAt: time.Now(),
	}
	if err := s.RiderRepo.SaveLocation(loc); err != nil {
		return nil, err
	}
	return loc, nil
}
