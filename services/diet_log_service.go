package services

import (
	"time"

	"github.com/nikhilpktcr/dietPlanner/config"
	"github.com/nikhilpktcr/dietPlanner/models"
)

type CreateDietLogInput struct {
	DietPlanID uint
	MealID     uint
	Date       time.Time
	Status     string
	Comments   string
}

// loggableMeal gates which catalog rows a consumption entry may reference.
// Soft-deleted meals read as not-found, same as in listings.
func loggableMeal(meal *models.Meal) error {
	if meal.Status == models.MealStatusDeleted {
		return ErrMealNotFound
	}
	return nil
}

// CreateDietLog records a consumption entry against one of the user's own
// plans; referencing another user's plan reads as not-found.
func CreateDietLog(userID uint, in CreateDietLogInput) (*models.DietLog, error) {
	if _, err := getOwnedDietPlan(in.DietPlanID, userID); err != nil {
		return nil, err
	}
	meal, err := GetMeal(in.MealID)
	if err != nil {
		return nil, err
	}
	if err := loggableMeal(meal); err != nil {
		return nil, err
	}

	logRow := models.DietLog{
		UserID:     userID,
		DietPlanID: in.DietPlanID,
		MealID:     in.MealID,
		Date:       in.Date,
		Status:     in.Status,
		LoggedAt:   time.Now(),
		Comments:   in.Comments,
		CreatedBy:  userID,
	}
	if err := config.DB.Create(&logRow).Error; err != nil {
		return nil, err
	}
	return &logRow, nil
}

// GetDietLogs lists the user's consumption entries newest-first, optionally
// bounded to a [from, to) date window.
func GetDietLogs(userID uint, from, to *time.Time) ([]models.DietLog, error) {
	q := config.DB.Where("user_id = ?", userID)
	if from != nil {
		q = q.Where("date >= ?", *from)
	}
	if to != nil {
		q = q.Where("date < ?", *to)
	}

	var logs []models.DietLog
	err := q.Order("logged_at DESC").Find(&logs).Error
	return logs, err
}
