package entity

import (
	"gorm.io/gorm"
)

// Fixed tracking sequence; the scheduler only ever moves forward through it.
const (
	OrderReceived  = "received"
	OrderPreparing = "preparing"
	OrderOnTheWay  = "on_the_way"
	OrderDelivered = "delivered"
)

type OrderStatus struct {
	gorm.Model
	StatusName string `json:"statusName"`

	Orders []Order `json:"-"`
}
