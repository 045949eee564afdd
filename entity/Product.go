package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Product struct {
	gorm.Model
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2)" json:"price"`
	IsAvailable bool            `json:"isAvailable"`
	Image       string          `json:"image"`
	Rating      float64         `json:"rating"`
	PrepTime    string          `json:"prepTime"`
	Calories    int             `json:"calories"`
	Ingredients []string        `gorm:"serializer:json" json:"ingredients"`

	RestaurantID uint       `json:"restaurantId"`
	Restaurant   Restaurant `json:"-"` // preload when the view needs the name

	CategoryID uint     `json:"categoryId"`
	Category   Category `json:"-"`
}
