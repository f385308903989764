package models

import (
	"time"

	"gorm.io/gorm"
)

type APIToken struct {
	gorm.Model
	FarmerID  uint      `gorm:"not null;index" json:"farmer_id"`
	Farmer    Farmer    `gorm:"foreignKey:FarmerID" json:"-"`
	Token     string    `gorm:"uniqueIndex;not null" json:"-"`
	ExpiresAt time.Time `gorm:"not null;index" json:"expires_at"`
}
