package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	DietLogTaken   = "taken"
	DietLogSkipped = "skipped"
	DietLogPartial = "partial"
)

// DietLog records whether a planned meal was actually consumed.
type DietLog struct {
	gorm.Model
	UserID     uint      `gorm:"index;not null" json:"userId"`
	DietPlanID uint      `gorm:"not null" json:"dietPlanId"`
	MealID     uint      `gorm:"not null" json:"mealId"`
	Date       time.Time `gorm:"not null" json:"date"`
	Status     string    `gorm:"not null" json:"status"` // "taken" | "skipped" | "partial"
	LoggedAt   time.Time `gorm:"not null" json:"loggedAt"`
	Comments   string    `json:"comments"`
	CreatedBy  uint      `json:"createdBy,omitempty"`
	UpdatedBy  uint      `json:"updatedBy,omitempty"`
}
