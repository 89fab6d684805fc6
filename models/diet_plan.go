package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// DietPlan pins daily and weekly meal selections for a user over a date range.
type DietPlan struct {
	gorm.Model
	UserID    uint           `gorm:"index;not null" json:"userId"`
	Daily     datatypes.JSON `json:"daily"`  // JSON array of meal ids
	Weekly    datatypes.JSON `json:"weekly"` // JSON array of meal ids
	StartDate time.Time      `gorm:"not null" json:"startDate"`
	EndDate   time.Time      `gorm:"not null" json:"endDate"`
	CreatedBy uint           `json:"createdBy,omitempty"`
	UpdatedBy uint           `json:"updatedBy,omitempty"`
}
