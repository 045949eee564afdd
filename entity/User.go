package entity

import (
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `gorm:"uniqueIndex" json:"email"`
	Phone     string `json:"phone"`
	Avatar    string `json:"avatar"`

	Addresses []Address `json:"addresses"`
	Orders    []Order   `json:"-"`
	Messages  []Message `json:"-"`
}
