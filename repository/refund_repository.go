package repository

import (
	"github.com/INFINITECH-OJT2025/ecomdelivery-go/entity"
	"gorm.io/gorm"
)

type RefundRepository struct {
	db *gorm.DB
}

func NewRefundRepository(db *gorm.DB) *RefundRepository {
	return &RefundRepository{db}
}

func (r *RefundRepository) Create(refund *entity.Refund) error {
	return r.db.Create(refund).Error
}

func (r *RefundRepository) FindByOrder(orderID uint) (*entity.Refund, error) {
	var refund entity.Refund
	if err := r.db.Where("order_id = ?", orderID).First(&refund).Error; err != nil {
		return nil, err
	}
	return &refund, nil
}

func (r *RefundRepository) ListByCustomer(customerID uint) ([]entity.Refund, error) {
	list := make([]entity.Refund, 0)
	err := r.db.Where("customer_id = ?", customerID).Order("created_at DESC").Find(&list).Error
	return list, err
}
