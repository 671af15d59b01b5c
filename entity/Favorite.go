package entity

import "time"

type Favorite struct {
	ID           uint       `json:"id" gorm:"primaryKey"`
	UserID       uint       `json:"user_id" gorm:"index:idx_fav_user_rest,unique"`
	RestaurantID uint       `json:"restaurant_id" gorm:"index:idx_fav_user_rest,unique"`
	Restaurant   Restaurant `json:"restaurant" gorm:"foreignKey:RestaurantID"`
	CreatedAt    time.Time  `json:"created_at"`
}
