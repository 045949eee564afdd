package entity

import (
	"gorm.io/gorm"
)

type Category struct {
	gorm.Model
	Name        string `json:"name"`
	Description string `json:"description"`
	// Icon is one of the closed tag set resolved at seed time (see configs).
	Icon string `json:"icon"`

	Products []Product `json:"-"`
}
