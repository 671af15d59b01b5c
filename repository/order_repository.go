package repository

import (
	"github.com/INFINITECH-OJT2025/ecomdelivery-go/entity"
	"gorm.io/gorm"
)

type OrderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{db}
}

func (r *OrderRepository) Create(tx *gorm.DB, order *entity.Order) error {
	return tx.Create(order).Error
}

func (r *OrderRepository) Get(id uint) (*entity.Order, error) {
	var o entity.Order
	err := r.db.Preload("Items").Preload("Refund").First(&o, id).Error
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) ListByCustomer(customerID uint) ([]entity.Order, error) {
	orders := make([]entity.Order, 0)
	err := r.db.Preload("Items").
		Where("customer_id = ?", customerID).
		Order("created_at DESC").
		Find(&orders).Error
	return orders, err
}

// ListForRider returns unclaimed orders ready for pickup plus the
// rider's own active deliveries.
func (r *OrderRepository) ListForRider(riderID uint) ([]entity.Order, error) {
	orders := make([]entity.Order, 0)
	err := r.db.Preload("Items").
		Where("(status = ? AND rider_id = 0) OR (rider_id = ? AND status = ?)",
			entity.OrderPreparing, riderID, entity.OrderOutForDelivery).
		Order("created_at ASC").
		Find(&orders).Error
	return orders, err
}

// UpdateStatusGuard flips status only when the order is still in the
// expected state; returns affected rows so callers can detect a lost
// race.
func (r *OrderRepository) UpdateStatusGuard(tx *gorm.DB, id uint, from, to string) (int64, error) {
	res := tx.Model(&entity.Order{}).
		Where("id = ? AND status = ?", id, from).
		Update("status", to)
	return res.RowsAffected, res.Error
}

// AssignRiderGuard claims an order for a rider. First accept wins: the
// WHERE clause fails for everyone after the first.
func (r *OrderRepository) AssignRiderGuard(tx *gorm.DB, orderID, riderID uint) (int64, error) {
	res := tx.Model(&entity.Order{}).
		Where("id = ? AND rider_id = 0 AND status = ?", orderID, entity.OrderPreparing).
		Updates(map[string]any{
			"rider_id":        riderID,
			"status":          entity.OrderOutForDelivery,
			"delivery_status": "rider_assigned",
		})
	return res.RowsAffected, res.Error
}

// SumDeliveredCOD totals what a rider has collected in cash; the
// remittance summary compares this with what they deposited.
func (r *OrderRepository) SumDeliveredCOD(riderID uint) (int64, error) {
	var total int64
	err := r.db.Model(&entity.Order{}).
		Where("rider_id = ? AND status = ? AND payment_method = ?", riderID, entity.OrderDelivered, "cod").
		Select("COALESCE(SUM(total_price), 0)").
		Scan(&total).Error
	return total, err
}
