package models

import "time"

type Payment struct {
	ID        uint `gorm:"primaryKey" json:"id"`
	BookingID uint `gorm:"uniqueIndex" json:"booking_id"`

	Amount     float64 `json:"amount"`
	ExternalID string  `gorm:"size:100;index" json:"external_id"`
	Gateway    string  `gorm:"size:30" json:"gateway"`
	Status     string  `gorm:"size:20;default:'pending'" json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
