package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// UserProfile holds per-user health data. At most one row exists per user;
// creation fails if one is already present and rows are never hard-deleted.
type UserProfile struct {
	gorm.Model
	UserID             uint           `gorm:"uniqueIndex;not null" json:"userId"`
	HeightCm           float64        `gorm:"not null" json:"heightCm"`
	WeightKg           float64        `gorm:"not null" json:"weightKg"`
	DietaryPreferences string         `gorm:"not null" json:"dietaryPreferences"` // "veg" | "non veg"
	Allergies          datatypes.JSON `json:"allergies"`                          // JSON array of strings
	ActivityLevel      string         `gorm:"not null" json:"activityLevel"`      // "sedentary" | "light" | "moderate" | "active" | "very active"
	HealthGoals        string         `gorm:"not null" json:"healthGoals"`        // "weightLoss" | "weightGain" | "maintenance"
	CreatedBy          uint           `json:"createdBy,omitempty"`
	UpdatedBy          uint           `json:"updatedBy,omitempty"`
}
