package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Expense struct {
	gorm.Model
	CycleID    uint            `gorm:"not null;index" json:"cycle_id"`
	Cycle      CropCycle       `gorm:"foreignKey:CycleID" json:"-"`
	ItemName   string          `gorm:"not null;size:100" json:"item_name"`
	Cost       decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"cost"`
	Date       time.Time       `gorm:"not null;index" json:"date"`
	ReceiptRef string          `gorm:"" json:"receipt_ref,omitempty"`
}
