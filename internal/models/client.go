package models

import (
	"time"

	"gorm.io/gorm"
)

// Cliente simples, sem login, vinculado ao salão
type Client struct {
	ID      string `gorm:"type:varchar(36);primaryKey" json:"id"`
	SalonID string `gorm:"type:varchar(36);index;not null" json:"salon_id"`

	Name        string `gorm:"size:100;not null" json:"name"`
	Email       string `gorm:"size:100" json:"email"`
	PhoneNumber string `gorm:"size:20" json:"phone_number"`
	Sex         string `gorm:"size:10" json:"sex"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (c *Client) BeforeCreate(tx *gorm.DB) error {
	ensureID(&c.ID)
	return nil
}
