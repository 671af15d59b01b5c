package services

import (
	"errors"

	"github.com/INFINITECH-OJT2025/ecomdelivery-go/entity"
	"gorm.io/gorm"
)

// Status flow: placed → preparing → out_for_delivery → delivered.
// Cancellation is only possible while still placed. Every transition is
// a guarded update so a lost race surfaces as ErrInvalidTransition
// instead of a silent overwrite.

// CustomerCancel cancels an order that the restaurant has not started
// preparing yet.
func (s *OrderService) CustomerCancel(userID, orderID uint) (*entity.Order, error) {
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		o, err := s.Repo.Get(orderID)
		if err != nil {
			return err
		}
		if o.CustomerID != userID {
			return errors.New("forbidden")
		}
		affected, err := s.Repo.UpdateStatusGuard(tx, orderID, entity.OrderPlaced, entity.OrderCancelled)
		if err != nil {
			return err
		}
		if affected == 0 {
			return ErrInvalidTransition
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.Repo.Get(orderID)
}

// VendorAccept moves a placed order into preparation.
func (s *OrderService) VendorAccept(orderID uint) error {
	return s.guarded(orderID, entity.OrderPlaced, entity.OrderPreparing)
}

// RiderAccept claims a preparing order for delivery; first accept wins.
func (s *OrderService) RiderAccept(riderID, orderID uint) (*entity.Order, error) {
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		affected, err := s.Repo.AssignRiderGuard(tx, orderID, riderID)
		if err != nil {
			return err
		}
		if affected == 0 {
			return ErrInvalidTransition
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.Repo.Get(orderID)
}

// RiderComplete marks the drop-off done.
func (s *OrderService) RiderComplete(riderID, orderID uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		o, err := s.Repo.Get(orderID)
		if err != nil {
			return err
		}
		if o.RiderID != riderID {
			return errors.New("forbidden")
		}
		affected, err := s.Repo.UpdateStatusGuard(tx, orderID, entity.OrderOutForDelivery, entity.OrderDelivered)
		if err != nil {
			return err
		}
		if affected == 0 {
			return ErrInvalidTransition
		}
		return nil
	})
}

func (s *OrderService) guarded(orderID uint, from, to string) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		affected, err := s.Repo.UpdateStatusGuard(tx, orderID, from, to)
		if err != nil {
			return err
		}
		if affected == 0 {
			return ErrInvalidTransition
		}
		return nil
	})
}
