package repository

import (
	"github.com/INFINITECH-OJT2025/ecomdelivery-go/entity"
	"gorm.io/gorm"
)

type RestaurantRepository struct {
	db *gorm.DB
}

func NewRestaurantRepository(db *gorm.DB) *RestaurantRepository {
	return &RestaurantRepository{db}
}

type RestaurantQuery struct {
	SortBy       string
	Categories   []uint
	FreeDelivery bool
	HasPromos    bool
	OpenNow      bool
}

func (r *RestaurantRepository) List(q RestaurantQuery) ([]entity.Restaurant, error) {
	tx := r.db.Model(&entity.Restaurant{})
	if len(q.Categories) > 0 {
		tx = tx.Where("category_id IN ?", q.Categories)
	}
	if q.HasPromos || q.FreeDelivery {
		tx = tx.Where("has_offers = ?", true)
	}
	if q.OpenNow {
		tx = tx.Where("is_open = ?", true)
	}
	switch q.SortBy {
	case "rating":
		tx = tx.Order("rating DESC")
	default:
		tx = tx.Order("name ASC")
	}
	list := make([]entity.Restaurant, 0)
	err := tx.Find(&list).Error
	return list, err
}

func (r *RestaurantRepository) Get(id uint) (*entity.Restaurant, error) {
	var rest entity.Restaurant
	if err := r.db.First(&rest, id).Error; err != nil {
		return nil, err
	}
	return &rest, nil
}
