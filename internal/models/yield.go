package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Yield is the sale record that closes a crop cycle. One per cycle.
type Yield struct {
	gorm.Model
	CycleID          uint            `gorm:"not null;uniqueIndex" json:"cycle_id"`
	QuantityProduced decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"quantity_produced"`
	SellingPrice     decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"selling_price"`
	DateSold         time.Time       `gorm:"not null" json:"date_sold"`
	ReceiptRef       string          `gorm:"" json:"receipt_ref,omitempty"`
}
