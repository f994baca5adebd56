package models

import (
	"time"

	"gorm.io/gorm"
)

type AuditLog struct {
	ID string `gorm:"type:varchar(36);primaryKey" json:"id"`

	SalonID string `gorm:"type:varchar(36);index" json:"salon_id"`
	UserID  string `gorm:"type:varchar(36)" json:"user_id,omitempty"`
	Action  string `gorm:"size:50;not null" json:"action"`

	Entity   string `gorm:"size:50" json:"entity"`
	EntityID string `gorm:"type:varchar(36)" json:"entity_id,omitempty"`
	Metadata string `gorm:"type:text" json:"metadata"`

	CreatedAt time.Time `json:"created_at"`
}

func (l *AuditLog) BeforeCreate(tx *gorm.DB) error {
	ensureID(&l.ID)
	return nil
}
