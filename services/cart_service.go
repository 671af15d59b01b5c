package services

import (
	"errors"

	"github.com/INFINITECH-OJT2025/ecomdelivery-go/entity"
	"github.com/INFINITECH-OJT2025/ecomdelivery-go/money"
	"github.com/INFINITECH-OJT2025/ecomdelivery-go/repository"
	"gorm.io/gorm"
)

var ErrCartLocked = errors.New("cart has another restaurant")

type CartService struct {
	DB       *gorm.DB
	CartRepo *repository.CartRepository
	RestRepo *repository.RestaurantRepository
}

func NewCartService(db *gorm.DB, cartRepo *repository.CartRepository, restRepo *repository.RestaurantRepository) *CartService {
	return &CartService{DB: db, CartRepo: cartRepo, RestRepo: restRepo}
}

type AddItemIn struct {
	RestaurantID uint           `json:"restaurant_id" binding:"required"`
	MenuItemID   uint           `json:"menu_item_id" binding:"required"`
	Name         string         `json:"name"`
	UnitPrice    money.Centavos `json:"unit_price"`
	Quantity     int            `json:"quantity"`
	Note         string         `json:"note"`
}

func (s *CartService) Get(userID uint) (*entity.Cart, error) {
	return s.CartRepo.GetOrCreate(userID)
}

// Add puts a line in the cart. The cart is locked to one restaurant;
// items from anywhere else are rejected until it is cleared.
func (s *CartService) Add(userID uint, in *AddItemIn) (*entity.Cart, error) {
	if in.Quantity <= 0 {
		in.Quantity = 1
	}

	cart, err := s.CartRepo.GetOrCreate(userID)
	if err != nil {
		return nil, err
	}
	if cart.RestaurantID != 0 && cart.RestaurantID != in.RestaurantID {
		return nil, ErrCartLocked
	}

	rest, err := s.RestRepo.Get(in.RestaurantID)
	if err != nil {
		return nil, errors.New("restaurant not found")
	}

	line := &entity.CartItem{
		MenuItemID: in.MenuItemID,
		Name:       in.Name,
		Quantity:   in.Quantity,
		UnitPrice:  in.UnitPrice,
		Subtotal:   in.UnitPrice * money.Centavos(in.Quantity),
		Note:       in.Note,
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if cart.RestaurantID == 0 {
			cart.RestaurantID = rest.ID
			cart.RestaurantName = rest.Name
			if err := s.CartRepo.Save(tx, cart); err != nil {
				return err
			}
		}
		return s.CartRepo.UpsertItem(tx, cart.ID, line)
	})
	if err != nil {
		return nil, err
	}
	return s.CartRepo.GetOrCreate(userID)
}

func (s *CartService) UpdateQty(userID, itemID uint, qty int) (*entity.Cart, error) {
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		return s.CartRepo.UpdateQty(tx, userID, itemID, qty)
	})
	if err != nil {
		return nil, err
	}
	return s.CartRepo.GetOrCreate(userID)
}

func (s *CartService) RemoveItem(userID, itemID uint) (*entity.Cart, error) {
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		return s.CartRepo.RemoveItem(tx, userID, itemID)
	})
	if err != nil {
		return nil, err
	}
	return s.CartRepo.GetOrCreate(userID)
}

func (s *CartService) Clear(userID uint) (*entity.Cart, error) {
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		return s.CartRepo.Clear(tx, userID)
	})
	if err != nil {
		return nil, err
	}
	return s.CartRepo.GetOrCreate(userID)
}
