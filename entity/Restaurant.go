package entity

type Restaurant struct {
	ID         uint    `json:"id" gorm:"primaryKey"`
	Name       string  `json:"name"`
	CategoryID uint    `json:"category_id"`
	Rating     float64 `json:"rating"`
	Lat        float64 `json:"lat"`
	Lng        float64 `json:"lng"`
	IsOpen     bool    `json:"is_open"`
	HasOffers  bool    `json:"has_offers"`
}
