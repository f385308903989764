package models

import "gorm.io/gorm"

type SchemeRecommendation struct {
	gorm.Model
	FarmerID            uint   `gorm:"not null;index" json:"farmer_id"`
	Farmer              Farmer `gorm:"foreignKey:FarmerID" json:"-"`
	SchemeName          string `gorm:"not null;size:200" json:"scheme_name"`
	Description         string `gorm:"type:text" json:"description"`
	Benefits            string `gorm:"type:text" json:"benefits"`
	EligibilityCriteria string `gorm:"type:text" json:"eligibility_criteria"`
	Link                string `gorm:"size:500" json:"link"`
	Active              bool   `gorm:"default:true;index" json:"active"`
}
