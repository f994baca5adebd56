package models

import (
	"time"

	"gorm.io/gorm"
)

// Professional carries its own weekly schedule: an inclusive weekday range
// (0 = Sunday) and a daily wall-clock window stored as HH:MM:SS.
type Professional struct {
	ID      string `gorm:"type:varchar(36);primaryKey" json:"id"`
	SalonID string `gorm:"type:varchar(36);index;not null" json:"salon_id"`

	Name           string `gorm:"size:100;not null" json:"name"`
	AvatarImageURL string `gorm:"size:255" json:"avatar_image_url"`
	Specialty      string `gorm:"size:100;not null" json:"specialty"`

	AvailableFromWeekDay int    `gorm:"not null" json:"available_from_week_day"`
	AvailableToWeekDay   int    `gorm:"not null" json:"available_to_week_day"`
	AvailableFromTime    string `gorm:"size:8;not null" json:"available_from_time"`
	AvailableToTime      string `gorm:"size:8;not null" json:"available_to_time"`

	AppointmentPriceInCents int `gorm:"not null" json:"appointment_price_in_cents"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (p *Professional) BeforeCreate(tx *gorm.DB) error {
	ensureID(&p.ID)
	return nil
}
