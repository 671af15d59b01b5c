package repository

import (
	"github.com/INFINITECH-OJT2025/ecomdelivery-go/entity"
	"github.com/INFINITECH-OJT2025/ecomdelivery-go/money"
	"gorm.io/gorm"
)

type RemittanceRepository struct {
	db *gorm.DB
}

func NewRemittanceRepository(db *gorm.DB) *RemittanceRepository {
	return &RemittanceRepository{db}
}

func (r *RemittanceRepository) Create(rem *entity.Remittance) error {
	return r.db.Create(rem).Error
}

func (r *RemittanceRepository) ListByRider(riderID uint) ([]entity.Remittance, error) {
	list := make([]entity.Remittance, 0)
	err := r.db.Where("rider_id = ?", riderID).Order("created_at DESC").Find(&list).Error
	return list, err
}

// SumRemitted counts pending and confirmed deposits; only rejected
// slips don't reduce the outstanding balance.
func (r *RemittanceRepository) SumRemitted(riderID uint) (money.Centavos, error) {
	var total int64
	err := r.db.Model(&entity.Remittance{}).
		Where("rider_id = ? AND status != ?", riderID, entity.RemittanceRejected).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&total).Error
	return money.Centavos(total), err
}
