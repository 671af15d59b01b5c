package entity

import (
	"time"

	"github.com/INFINITECH-OJT2025/ecomdelivery-go/money"
)

type Voucher struct {
	ID             uint           `json:"id" gorm:"primaryKey"`
	Code           string         `json:"code" gorm:"uniqueIndex"`
	Description    string         `json:"description"`
	DiscountAmount money.Centavos `json:"discount_amount"`
	MinSpend       money.Centavos `json:"min_spend"`
	ExpiresAt      time.Time      `json:"expires_at"`
}

type VoucherUsage struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	VoucherID uint      `json:"voucher_id"`
	Voucher   Voucher   `json:"voucher" gorm:"foreignKey:VoucherID"`
	UserID    uint      `json:"user_id" gorm:"index"`
	OrderID   uint      `json:"order_id"`
	UsedAt    time.Time `json:"used_at"`
}
