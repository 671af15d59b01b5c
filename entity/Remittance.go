package entity

import (
	"time"

	"github.com/INFINITECH-OJT2025/ecomdelivery-go/money"
)

const (
	RemittancePending   = "pending"
	RemittanceConfirmed = "confirmed"
	RemittanceRejected  = "rejected"
)

// Remittance is a rider's cash deposit against collected COD payments,
// submitted with a photo of the deposit slip.
type Remittance struct {
	ID          uint           `json:"id" gorm:"primaryKey"`
	RiderID     uint           `json:"rider_id" gorm:"index"`
	ReferenceNo string         `json:"reference_no" gorm:"uniqueIndex"`
	Amount      money.Centavos `json:"amount"`
	SlipPath    string         `json:"slip_path"`
	Status      string         `json:"status"`
	CreatedAt   time.Time      `json:"created_at"`
}

// RemittanceSummary is computed, never stored.
type RemittanceSummary struct {
	Expected    money.Centavos `json:"expected"`
	Remitted    money.Centavos `json:"remitted"`
	Outstanding money.Centavos `json:"outstanding"`
}
