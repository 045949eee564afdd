package entity

import (
	"gorm.io/gorm"
)

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is one chat turn with the assistant. Assistant turns may carry up
// to three recommended product ids, already filtered against the catalogue.
type Message struct {
	gorm.Model
	Role               string  `json:"role"`
	Body               string  `json:"body"`
	RecommendedItemIDs []int64 `gorm:"serializer:json" json:"recommendedItemIds"`

	UserID uint `gorm:"index" json:"userId"`
	User   User `json:"-"`
}
