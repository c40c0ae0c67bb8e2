package models

import "time"

// Profissional (barbeiro) dono dos serviços e dos agendamentos.
// O acesso de escrita é controlado pelo estado da assinatura.
type Provider struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name         string `gorm:"size:100;not null" json:"name"`
	Email        string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`
	Phone        string `gorm:"size:20" json:"phone"`

	Timezone    string `gorm:"size:50" json:"timezone"`
	IsAvailable bool   `gorm:"default:true" json:"is_available"`

	SubscriptionState      string     `gorm:"size:20;default:'pending_mandate'" json:"subscription_state"`
	ExternalSubscriptionID string     `gorm:"size:100;index" json:"external_subscription_id"`
	SubscriptionEventAt    *time.Time `json:"subscription_event_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
