package entity

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Order struct {
	gorm.Model
	Subtotal    decimal.Decimal `gorm:"type:decimal(10,2)" json:"subtotal"`
	DeliveryFee decimal.Decimal `gorm:"type:decimal(10,2)" json:"deliveryFee"`
	Total       decimal.Decimal `gorm:"type:decimal(10,2)" json:"total"`
	PlacedAt    time.Time       `json:"placedAt"`

	UserID uint `gorm:"index" json:"userId"`
	User   User `json:"-"`

	OrderStatusID uint        `json:"orderStatusId"`
	OrderStatus   OrderStatus `json:"orderStatus"`

	Payments []Payment `json:"-"`
}
