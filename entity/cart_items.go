package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CartItem is unique per (cart, product); adding the same product again
// bumps Quantity instead of inserting a second line.
type CartItem struct {
	gorm.Model
	CartID uint `gorm:"index" json:"cartId"`

	ProductID uint    `json:"productId"`
	Product   Product `json:"product"`

	Quantity  int             `json:"quantity"` // always >= 1
	UnitPrice decimal.Decimal `gorm:"type:decimal(10,2)" json:"unitPrice"`
}
