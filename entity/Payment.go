package entity

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Payment struct {
	gorm.Model
	Amount decimal.Decimal `gorm:"type:decimal(10,2)" json:"amount"`
	PaidAt *time.Time      `json:"paidAt,omitempty"`

	OrderID uint  `gorm:"index" json:"orderId"`
	Order   Order `json:"-"`

	PaymentStatusID uint          `json:"paymentStatusId"`
	PaymentStatus   PaymentStatus `json:"paymentStatus"`
}
