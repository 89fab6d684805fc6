package services

import (
	"encoding/json"
	"errors"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/nikhilpktcr/dietPlanner/config"
	"github.com/nikhilpktcr/dietPlanner/models"
)

type CreateDietPlanInput struct {
	Daily     []uint
	Weekly    []uint
	StartDate time.Time
	EndDate   time.Time
}

type UpdateDietPlanInput struct {
	Daily     []uint // nil means unchanged
	Weekly    []uint
	StartDate *time.Time
	EndDate   *time.Time
}

func mealIDsJSON(ids []uint) (datatypes.JSON, error) {
	if ids == nil {
		ids = []uint{}
	}
	b, err := json.Marshal(ids)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(b), nil
}

func CreateDietPlan(userID uint, in CreateDietPlanInput) (*models.DietPlan, error) {
	daily, err := mealIDsJSON(in.Daily)
	if err != nil {
		return nil, err
	}
	weekly, err := mealIDsJSON(in.Weekly)
	if err != nil {
		return nil, err
	}

	plan := models.DietPlan{
		UserID:    userID,
		Daily:     daily,
		Weekly:    weekly,
		StartDate: in.StartDate,
		EndDate:   in.EndDate,
		CreatedBy: userID,
	}
	if err := config.DB.Create(&plan).Error; err != nil {
		return nil, err
	}
	return &plan, nil
}

// GetDietPlanByUser returns the user's most recent plan.
func GetDietPlanByUser(userID uint) (*models.DietPlan, error) {
	var plan models.DietPlan
	err := config.DB.Where("user_id = ?", userID).Order("created_at DESC").First(&plan).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDietPlanNotFound
		}
		return nil, err
	}
	return &plan, nil
}

func getOwnedDietPlan(id, userID uint) (*models.DietPlan, error) {
	if id == 0 {
		return nil, ErrInvalidReference
	}
	var plan models.DietPlan
	err := config.DB.Where("id = ? AND user_id = ?", id, userID).First(&plan).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDietPlanNotFound
		}
		return nil, err
	}
	return &plan, nil
}

func UpdateDietPlan(id, userID uint, in UpdateDietPlanInput) (*models.DietPlan, error) {
	plan, err := getOwnedDietPlan(id, userID)
	if err != nil {
		return nil, err
	}

	if in.Daily != nil {
		daily, err := mealIDsJSON(in.Daily)
		if err != nil {
			return nil, err
		}
		plan.Daily = daily
	}
	if in.Weekly != nil {
		weekly, err := mealIDsJSON(in.Weekly)
		if err != nil {
			return nil, err
		}
		plan.Weekly = weekly
	}
	if in.StartDate != nil {
		plan.StartDate = *in.StartDate
	}
	if in.EndDate != nil {
		plan.EndDate = *in.EndDate
	}
	plan.UpdatedBy = userID

	if err := config.DB.Save(plan).Error; err != nil {
		return nil, err
	}
	return plan, nil
}

func DeleteDietPlan(id, userID uint) error {
	plan, err := getOwnedDietPlan(id, userID)
	if err != nil {
		return err
	}
	return config.DB.Delete(plan).Error
}
