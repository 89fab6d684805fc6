package models

import (
	"gorm.io/gorm"
)

const (
	BMICategoryUnderWeight = "under-weight"
	BMICategoryNormal      = "normal"
	BMICategoryOverWeight  = "over-weight"
	BMICategoryObese       = "obese"
)

// BMILog is one timestamped BMI observation. Bmi and Category are computed
// from the same row's weight/height at write time and persisted alongside
// them; they are never re-derived on read.
type BMILog struct {
	gorm.Model
	UserID    uint    `gorm:"index;not null" json:"userId"`
	WeightKg  float64 `gorm:"not null" json:"weightKg"`
	HeightCm  float64 `gorm:"not null" json:"heightCm"`
	Bmi       float64 `gorm:"not null" json:"bmi"` // rounded to one decimal
	Category  string  `gorm:"not null" json:"category"`
	CreatedBy uint    `json:"createdBy,omitempty"`
	UpdatedBy uint    `json:"updatedBy,omitempty"`
}
