package services

import (
	"errors"

	"github.com/INFINITECH-OJT2025/ecomdelivery-go/entity"
	"github.com/INFINITECH-OJT2025/ecomdelivery-go/money"
	"github.com/INFINITECH-OJT2025/ecomdelivery-go/repository"
	"gorm.io/gorm"
)

var (
	ErrEmptyCart         = errors.New("cart is empty")
	ErrInvalidTransition = errors.New("invalid_or_conflict")
)

// flat ₱49.00 fee; the real backend computes this from distance
const deliveryFee = money.Centavos(4900)

type OrderService struct {
	DB       *gorm.DB
	Repo     *repository.OrderRepository
	CartRepo *repository.CartRepository
	RestRepo *repository.RestaurantRepository
}

func NewOrderService(db *gorm.DB, repo *repository.OrderRepository, cartRepo *repository.CartRepository, restRepo *repository.RestaurantRepository) *OrderService {
	return &OrderService{DB: db, Repo: repo, CartRepo: cartRepo, RestRepo: restRepo}
}

type PlaceOrderIn struct {
	RestaurantID  uint   `json:"restaurant_id"`
	AddressID     uint   `json:"address_id" binding:"required"`
	PaymentMethod string `json:"payment"`
	VoucherCode   string `json:"voucher_code"`
}

// Place converts the user's cart into an order and clears the cart, all
// in one transaction.
func (s *OrderService) Place(userID uint, in *PlaceOrderIn) (*entity.Order, error) {
	cart, err := s.CartRepo.GetOrCreate(userID)
	if err != nil {
		return nil, err
	}
	if len(cart.Items) == 0 {
		return nil, ErrEmptyCart
	}

	payment := in.PaymentMethod
	if payment == "" {
		payment = "cod"
	}

	order := &entity.Order{
		CustomerID:    userID,
		RestaurantID:  cart.RestaurantID,
		Status:        entity.OrderPlaced,
		DeliveryFee:   deliveryFee,
		PaymentMethod: payment,
	}
	for _, it := range cart.Items {
		order.Subtotal += it.Subtotal
		order.Items = append(order.Items, entity.OrderItem{
			MenuItemID: it.MenuItemID,
			Name:       it.Name,
			Quantity:   it.Quantity,
			UnitPrice:  it.UnitPrice,
			Subtotal:   it.Subtotal,
		})
	}
	order.TotalPrice = order.Subtotal + order.DeliveryFee

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.Repo.Create(tx, order); err != nil {
			return err
		}
		return s.CartRepo.Clear(tx, userID)
	})
	if err != nil {
		return nil, err
	}
	return order, nil
}

func (s *OrderService) Get(userID, orderID uint) (*entity.Order, error) {
	order, err := s.Repo.Get(orderID)
	if err != nil {
		return nil, err
	}
	if order.CustomerID != userID && order.RiderID != userID {
		return nil, errors.New("forbidden")
	}
	return order, nil
}

func (s *OrderService) ListForCustomer(userID uint) ([]entity.Order, error) {
	return s.Repo.ListByCustomer(userID)
}
