package entity

import (
	"time"

	"github.com/INFINITECH-OJT2025/ecomdelivery-go/money"
)

const (
	RefundRequested = "requested"
	RefundApproved  = "approved"
	RefundRejected  = "rejected"
)

type Refund struct {
	ID         uint           `json:"id" gorm:"primaryKey"`
	OrderID    uint           `json:"order_id" gorm:"index"`
	CustomerID uint           `json:"customer_id"`
	Reason     string         `json:"reason"`
	ProofPath  string         `json:"proof_path"`
	Amount     money.Centavos `json:"amount"`
	Status     string         `json:"status"`
	CreatedAt  time.Time      `json:"created_at"`
}
