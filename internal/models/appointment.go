package models

import (
	"time"

	"gorm.io/gorm"
)

// Appointment keeps both the absolute timestamp and the salon-local day and
// slot it occupies. Day and SlotTime back the partial unique index that keeps
// one live booking per professional slot.
type Appointment struct {
	ID string `gorm:"type:varchar(36);primaryKey" json:"id"`

	SalonID string `gorm:"type:varchar(36);index;not null" json:"salon_id"`

	ClientID string `gorm:"type:varchar(36);index;not null" json:"client_id"`
	Client   Client `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"client"`

	ProfessionalID string       `gorm:"type:varchar(36);not null" json:"professional_id"`
	Professional   Professional `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"professional"`

	Date     time.Time `gorm:"not null" json:"date"`
	Day      string    `gorm:"size:10;not null" json:"day"`
	SlotTime string    `gorm:"column:slot_time;size:8;not null" json:"time"`

	PriceInCents int    `gorm:"not null" json:"appointment_price_in_cents"`
	Status       string `gorm:"size:20;not null;default:'confirmado'" json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (a *Appointment) BeforeCreate(tx *gorm.DB) error {
	ensureID(&a.ID)
	return nil
}
