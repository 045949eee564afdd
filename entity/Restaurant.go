package entity

import (
	"gorm.io/gorm"
)

type Restaurant struct {
	gorm.Model
	Name        string  `json:"name"`
	Description string  `json:"description"`
	CuisineType string  `json:"cuisineType"`
	Rating      float64 `json:"rating"`
	IsOpen      bool    `json:"isOpen"`

	// delivery window in minutes
	MinDeliveryTime int `json:"minDeliveryTime"`
	MaxDeliveryTime int `json:"maxDeliveryTime"`

	Products []Product `json:"-"`
}
