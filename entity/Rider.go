package entity

import "time"

const (
	RiderOffline    = "offline"
	RiderAvailable  = "available"
	RiderDelivering = "delivering"
)

type Rider struct {
	ID     uint   `json:"id" gorm:"primaryKey"`
	Name   string `json:"name"`
	Status string `json:"status"`
}

// RiderLocation is the last reported GPS fix; also cached client-side
// so the map has a starting point before the first live update.
type RiderLocation struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	RiderID    uint      `json:"rider_id" gorm:"index"`
	Lat        float64   `json:"lat"`
	Lng        float64   `json:"lng"`
	RecordedAt time.Time `json:"recorded_at"`
}
