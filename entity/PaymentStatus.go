package entity

import (
	"gorm.io/gorm"
)

// Simulated payment pipeline: idle -> processing -> succeeded.
// There is no failure state in this flow.
const (
	PaymentIdle       = "idle"
	PaymentProcessing = "processing"
	PaymentSucceeded  = "succeeded"
)

type PaymentStatus struct {
	gorm.Model
	StatusName string `json:"statusName"`

	Payments []Payment `json:"-"`
}
