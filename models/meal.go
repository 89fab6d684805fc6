package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	MealStatusActive   = "active"
	MealStatusInActive = "in active"
	MealStatusDeleted  = "deleted" // soft delete; rows stay addressable by id
)

// Meal is a catalog entry maintained by admins, independent of any user.
type Meal struct {
	gorm.Model
	Title       string         `gorm:"uniqueIndex;not null" json:"title"`
	Type        string         `gorm:"not null" json:"type"`     // "veg" | "non veg"
	MealType    string         `gorm:"not null" json:"mealType"` // "breakfast" | "lunch" | "dinner" | "snacks"
	MealInGrams float64        `gorm:"not null" json:"mealInGrams"`
	Description string         `gorm:"not null" json:"description"`
	Calories    float64        `json:"calories"`
	Protein     float64        `json:"protein"`
	Carbs       float64        `json:"carbs"`
	Fats        float64        `json:"fats"`
	Tags        string         `gorm:"not null" json:"tags"` // "weightLoss" | "weightGain" | "maintenance"
	Ingredients datatypes.JSON `json:"ingredients"`          // JSON array of strings, ordered
	Status      string         `gorm:"not null;default:active" json:"status"`
	CreatedBy   uint           `json:"createdBy,omitempty"`
	UpdatedBy   uint           `json:"updatedBy,omitempty"`
}
