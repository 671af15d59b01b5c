package repository

import (
	"github.com/INFINITECH-OJT2025/ecomdelivery-go/entity"
	"gorm.io/gorm"
)

type RiderRepository struct {
	db *gorm.DB
}

func NewRiderRepository(db *gorm.DB) *RiderRepository {
	return &RiderRepository{db}
}

func (r *RiderRepository) SaveLocation(loc *entity.RiderLocation) error {
	return r.db.Create(loc).Error
}

func (r *RiderRepository) LastLocation(riderID uint) (*entity.RiderLocation, error) {
	var loc entity.RiderLocation
	err := r.db.Where("rider_id = ?", riderID).
		Order("recorded_at DESC").
		First(&loc).Error
	if err != nil {
		return nil, err
	}
	return &loc, nil
}
