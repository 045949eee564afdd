package entity

import (
	"gorm.io/gorm"
)

type Address struct {
	gorm.Model
	Street    string `json:"street"`
	City      string `json:"city"`
	ZipCode   string `json:"zipCode"`
	Country   string `json:"country"`
	IsDefault bool   `json:"isDefault"`

	UserID uint `gorm:"index" json:"userId"`
	User   User `json:"-"`
}
