package entity

import (
	"gorm.io/gorm"
)

// Cart holds the user's pending order lines. One cart per user.
type Cart struct {
	gorm.Model
	UserID uint `gorm:"index" json:"userId"`
	User   User `json:"-"`

	Items []CartItem `json:"items"`
}
