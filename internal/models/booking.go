package models

import "time"

// Agendamento. Data e hora de início são separadas: a data é o dia
// civil e o início é o offset em minutos desde a meia-noite, o que
// permite a constraint de exclusão por int4range no Postgres.
type Booking struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ProviderID uint     `gorm:"index:idx_bookings_provider_date" json:"provider_id"`
	Provider   Provider `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"provider"`

	CustomerID uint     `gorm:"index" json:"customer_id"`
	Customer   Customer `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"customer"`

	Date            time.Time `gorm:"type:date;index:idx_bookings_provider_date" json:"date"`
	StartMinutes    int       `json:"start_minutes"`
	DurationMinutes int       `json:"duration_minutes"`

	TotalAmount float64 `json:"total_amount"`

	Status string `gorm:"size:20;default:'pending'" json:"status"`

	CancelReason string     `gorm:"size:255" json:"cancel_reason"`
	ConfirmedAt  *time.Time `json:"confirmed_at"`
	CancelledAt  *time.Time `json:"cancelled_at"`
	CompletedAt  *time.Time `json:"completed_at"`

	Items   []BookingLineItem `json:"items"`
	Payment *Payment          `json:"payment"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Item do agendamento com preço e duração congelados no momento da
// criação (edições posteriores do serviço não afetam o histórico).
type BookingLineItem struct {
	ID        uint `gorm:"primaryKey" json:"id"`
	BookingID uint `gorm:"index" json:"booking_id"`

	ServiceOfferingID uint            `json:"service_offering_id"`
	ServiceOffering   ServiceOffering `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"service_offering"`

	Price       float64 `json:"price"`
	DurationMin int     `json:"duration_min"`

	CreatedAt time.Time `json:"created_at"`
}
