package models

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Category string

const (
	CategoryGeneral Category = "GENERAL"
	CategorySC      Category = "SC"
	CategoryST      Category = "ST"
	CategoryOBC     Category = "OBC"
)

func (c Category) Valid() bool {
	switch c {
	case CategoryGeneral, CategorySC, CategoryST, CategoryOBC:
		return true
	}
	return false
}

// DisplayName is the long form used in prompts and reports.
func (c Category) DisplayName() string {
	switch c {
	case CategorySC:
		return "Scheduled Caste"
	case CategoryST:
		return "Scheduled Tribe"
	case CategoryOBC:
		return "Other Backward Class"
	default:
		return "General"
	}
}

type Farmer struct {
	gorm.Model
	FarmerCode      string                 `gorm:"uniqueIndex;not null;size:10" json:"farmer_code"`
	RegistrationKey string                 `gorm:"uniqueIndex;not null" json:"-"`
	Name            string                 `gorm:"" json:"name"`
	TotalLandArea   decimal.Decimal        `gorm:"type:decimal(8,2);not null" json:"total_land_area"`
	State           string                 `gorm:"size:100" json:"state"`
	District        string                 `gorm:"size:100" json:"district"`
	Category        Category               `gorm:"size:20;not null;default:GENERAL" json:"category"`
	HasKCC          bool                   `gorm:"default:false" json:"has_kcc"`
	Language        string                 `gorm:"size:10;default:en" json:"language"`
	CropCycles      []CropCycle            `gorm:"foreignKey:FarmerID" json:"-"`
	Schemes         []SchemeRecommendation `gorm:"foreignKey:FarmerID" json:"-"`
	APITokens       []APIToken             `gorm:"foreignKey:FarmerID" json:"-"`
}
