package repository

import (
	"github.com/INFINITECH-OJT2025/ecomdelivery-go/entity"
	"github.com/INFINITECH-OJT2025/ecomdelivery-go/money"
	"gorm.io/gorm"
)

type CartRepository struct {
	db *gorm.DB
}

func NewCartRepository(db *gorm.DB) *CartRepository {
	return &CartRepository{db}
}

func (r *CartRepository) GetOrCreate(userID uint) (*entity.Cart, error) {
	var cart entity.Cart
	err := r.db.Preload("Items").Where("user_id = ?", userID).First(&cart).Error
	if err == gorm.ErrRecordNotFound {
		cart = entity.Cart{UserID: userID}
		err = r.db.Create(&cart).Error
	}
	if err != nil {
		return nil, err
	}
	return &cart, nil
}

func (r *CartRepository) Save(tx *gorm.DB, cart *entity.Cart) error {
	return tx.Save(cart).Error
}

// UpsertItem merges quantity into an existing line for the same menu
// item, otherwise appends a new line.
func (r *CartRepository) UpsertItem(tx *gorm.DB, cartID uint, line *entity.CartItem) error {
	var existing entity.CartItem
	err := tx.Where("cart_id = ? AND menu_item_id = ?", cartID, line.MenuItemID).First(&existing).Error
	if err == nil {
		existing.Quantity += line.Quantity
		existing.Subtotal = existing.UnitPrice * money.Centavos(existing.Quantity)
		return tx.Save(&existing).Error
	}
	if err != gorm.ErrRecordNotFound {
		return err
	}
	line.CartID = cartID
	return tx.Create(line).Error
}

func (r *CartRepository) UpdateQty(tx *gorm.DB, userID, itemID uint, qty int) error {
	var item entity.CartItem
	err := tx.Joins("JOIN carts ON carts.id = cart_items.cart_id").
		Where("cart_items.id = ? AND carts.user_id = ?", itemID, userID).
		First(&item).Error
	if err != nil {
		return err
	}
	if qty <= 0 {
		return tx.Delete(&item).Error
	}
	item.Quantity = qty
	item.Subtotal = item.UnitPrice * money.Centavos(qty)
	return tx.Save(&item).Error
}

func (r *CartRepository) RemoveItem(tx *gorm.DB, userID, itemID uint) error {
	return tx.
		Where("id = ? AND cart_id IN (?)", itemID,
			tx.Model(&entity.Cart{}).Select("id").Where("user_id = ?", userID)).
		Delete(&entity.CartItem{}).Error
}

// Clear empties the cart and unlocks the restaurant.
func (r *CartRepository) Clear(tx *gorm.DB, userID uint) error {
	var cart entity.Cart
	if err := tx.Where("user_id = ?", userID).First(&cart).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil
		}
		return err
	}
	if err := tx.Where("cart_id = ?", cart.ID).Delete(&entity.CartItem{}).Error; err != nil {
		return err
	}
	cart.RestaurantID = 0
	cart.RestaurantName = ""
	return tx.Save(&cart).Error
}
