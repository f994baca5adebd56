package models

import (
	"time"

	"gorm.io/gorm"
)

// Salon is the tenant boundary. Every professional, client and appointment
// belongs to exactly one salon.
type Salon struct {
	ID           string `gorm:"type:varchar(36);primaryKey" json:"id"`
	Name         string `gorm:"size:100;not null" json:"name"`
	Street       string `gorm:"size:150" json:"street"`
	Number       string `gorm:"size:20" json:"number"`
	Complement   string `gorm:"size:100" json:"complement"`
	Neighborhood string `gorm:"size:100" json:"neighborhood"`
	City         string `gorm:"size:100" json:"city"`
	State        string `gorm:"size:2" json:"state"`
	ZipCode      string `gorm:"size:9" json:"zip_code"`
	Phone        string `gorm:"size:20" json:"phone"`
	Timezone     string `gorm:"size:64" json:"timezone"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (s *Salon) BeforeCreate(tx *gorm.DB) error {
	ensureID(&s.ID)
	return nil
}
