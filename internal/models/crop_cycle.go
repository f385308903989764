package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type CycleStatus string

const (
	StatusActive    CycleStatus = "ACTIVE"
	StatusHarvested CycleStatus = "HARVESTED"
)

type CropCycle struct {
	gorm.Model
	FarmerID  uint            `gorm:"not null;index" json:"farmer_id"`
	Farmer    Farmer          `gorm:"foreignKey:FarmerID" json:"-"`
	CropName  string          `gorm:"not null;size:100;index" json:"crop_name"`
	AreaUsed  decimal.Decimal `gorm:"type:decimal(7,2);not null" json:"area_used"`
	StartDate time.Time       `gorm:"not null" json:"start_date"`
	Status    CycleStatus     `gorm:"size:20;not null;default:ACTIVE;index" json:"status"`
	Notes     string          `gorm:"type:text" json:"notes,omitempty"`
	Expenses  []Expense       `gorm:"foreignKey:CycleID" json:"-"`
	Yield     *Yield          `gorm:"foreignKey:CycleID" json:"-"`
}

func (c *CropCycle) IsActive() bool {
	return c.Status == StatusActive
}
