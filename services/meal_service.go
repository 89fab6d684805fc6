// services/meal_service.go
package services

import (
	"encoding/json"
	"errors"
	"strings"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/nikhilpktcr/dietPlanner/config"
	"github.com/nikhilpktcr/dietPlanner/models"
)

type CreateMealInput struct {
	Title       string
	Type        string
	MealType    string
	MealInGrams float64
	Description string
	Calories    float64
	Protein     float64
	Carbs       float64
	Fats        float64
	Tags        string
	Ingredients []string
	Status      string
}

type UpdateMealInput struct {
	Title       *string
	Type        *string
	MealType    *string
	MealInGrams *float64
	Description *string
	Calories    *float64
	Protein     *float64
	Carbs       *float64
	Fats        *float64
	Tags        *string
	Ingredients []string // nil means unchanged
	Status      *string
}

type MealQueryParams struct {
	Search    string
	SortBy    string
	SortOrder string
	Limit     int
	Offset    int
	MealType  string
	Type      string
	Tags      string
	Status    string
}

type UserSummary struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// MealWithUsers is a list row enriched with creator/updater summaries.
type MealWithUsers struct {
	models.Meal
	CreatedByUser *UserSummary `json:"createdByUser,omitempty"`
	UpdatedByUser *UserSummary `json:"updatedByUser,omitempty"`
}

// sortColumns whitelists client-supplied sort fields against real columns.
var sortColumns = map[string]string{
	"createdAt":   "created_at",
	"updatedAt":   "updated_at",
	"title":       "title",
	"calories":    "calories",
	"protein":     "protein",
	"carbs":       "carbs",
	"fats":        "fats",
	"mealInGrams": "meal_in_grams",
}

// orderClause maps client sort params onto a safe ORDER BY fragment.
// Unknown fields fall back to created_at, unknown orders to DESC.
func orderClause(sortBy, sortOrder string) string {
	column, ok := sortColumns[sortBy]
	if !ok {
		column = "created_at"
	}
	dir := "DESC"
	if strings.EqualFold(sortOrder, "asc") {
		dir = "ASC"
	}
	return column + " " + dir
}

func CreateMeal(in CreateMealInput, userID uint) (*models.Meal, error) {
	// exact, case-sensitive title match
	var existing models.Meal
	err := config.DB.Where("title = ?", in.Title).First(&existing).Error
	if err == nil {
		return nil, ErrDuplicateTitle
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	ingredients, err := json.Marshal(in.Ingredients)
	if err != nil {
		return nil, err
	}

	meal := models.Meal{
		Title:       in.Title,
		Type:        in.Type,
		MealType:    in.MealType,
		MealInGrams: in.MealInGrams,
		Description: in.Description,
		Calories:    in.Calories,
		Protein:     in.Protein,
		Carbs:       in.Carbs,
		Fats:        in.Fats,
		Tags:        in.Tags,
		Ingredients: datatypes.JSON(ingredients),
		Status:      in.Status,
		CreatedBy:   userID,
	}
	if err := config.DB.Create(&meal).Error; err != nil {
		return nil, err
	}
	return &meal, nil
}

func UpdateMeal(mealID uint, in UpdateMealInput, userID uint) (*models.Meal, error) {
	if mealID == 0 {
		return nil, ErrInvalidReference
	}

	var meal models.Meal
	if err := config.DB.First(&meal, mealID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMealNotFound
		}
		return nil, err
	}

	// A title change is checked against the new title only, so updating a
	// meal to its own current title passes.
	if in.Title != nil && *in.Title != meal.Title {
		var duplicate models.Meal
		err := config.DB.Where("title = ?", *in.Title).First(&duplicate).Error
		if err == nil {
			return nil, ErrDuplicateTitle
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		meal.Title = *in.Title
	}

	if in.Type != nil {
		meal.Type = *in.Type
	}
	if in.MealType != nil {
		meal.MealType = *in.MealType
	}
	if in.MealInGrams != nil {
		meal.MealInGrams = *in.MealInGrams
	}
	if in.Description != nil {
		meal.Description = *in.Description
	}
	if in.Calories != nil {
		meal.Calories = *in.Calories
	}
	if in.Protein != nil {
		meal.Protein = *in.Protein
	}
	if in.Carbs != nil {
		meal.Carbs = *in.Carbs
	}
	if in.Fats != nil {
		meal.Fats = *in.Fats
	}
	if in.Tags != nil {
		meal.Tags = *in.Tags
	}
	if in.Ingredients != nil {
		ingredients, err := json.Marshal(in.Ingredients)
		if err != nil {
			return nil, err
		}
		meal.Ingredients = datatypes.JSON(ingredients)
	}
	if in.Status != nil {
		meal.Status = *in.Status
	}
	meal.UpdatedBy = userID

	if err := config.DB.Save(&meal).Error; err != nil {
		return nil, err
	}
	return &meal, nil
}

// DeleteMeal flips status to "deleted". The row survives and stays
// reachable via GetMeal, but list/count stop returning it.
func DeleteMeal(mealID uint, userID uint) (*models.Meal, error) {
	if mealID == 0 {
		return nil, ErrInvalidReference
	}

	var meal models.Meal
	if err := config.DB.First(&meal, mealID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMealNotFound
		}
		return nil, err
	}

	meal.Status = models.MealStatusDeleted
	meal.UpdatedBy = userID
	if err := config.DB.Save(&meal).Error; err != nil {
		return nil, err
	}
	return &meal, nil
}

func GetMeal(mealID uint) (*models.Meal, error) {
	if mealID == 0 {
		return nil, ErrInvalidReference
	}

	var meal models.Meal
	if err := config.DB.First(&meal, mealID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMealNotFound
		}
		return nil, err
	}
	return &meal, nil
}

// mealFilter builds the shared WHERE chain for list and count. The status
// filter defaults to "active", so soft-deleted rows drop out unless a caller
// asks for them by name.
func mealFilter(p MealQueryParams) *gorm.DB {
	q := config.DB.Model(&models.Meal{})

	if p.Search != "" {
		like := "%" + p.Search + "%"
		q = q.Where("title ILIKE ? OR description ILIKE ? OR ingredients::text ILIKE ?", like, like, like)
	}
	if p.MealType != "" {
		q = q.Where("meal_type = ?", p.MealType)
	}
	if p.Type != "" {
		q = q.Where("type = ?", p.Type)
	}
	if p.Tags != "" {
		q = q.Where("tags = ?", p.Tags)
	}

	status := p.Status
	if status == "" {
		status = models.MealStatusActive
	}
	return q.Where("status = ?", status)
}

func GetAllMeals(p MealQueryParams) ([]MealWithUsers, error) {
	limit := p.Limit
	if limit <= 0 {
		limit = 10
	}
	offset := p.Offset
	if offset < 0 {
		offset = 0
	}

	var meals []models.Meal
	err := mealFilter(p).
		Order(orderClause(p.SortBy, p.SortOrder)).
		Offset(offset).
		Limit(limit).
		Find(&meals).Error
	if err != nil {
		return nil, err
	}

	return attachUserSummaries(meals)
}

func GetMealsCount(p MealQueryParams) (int64, error) {
	var count int64
	err := mealFilter(p).Count(&count).Error
	return count, err
}

// attachUserSummaries batches one users query for all creator/updater ids on
// the page and denormalizes name/email onto each row.
func attachUserSummaries(meals []models.Meal) ([]MealWithUsers, error) {
	ids := make([]uint, 0, len(meals)*2)
	seen := make(map[uint]struct{})
	for _, m := range meals {
		for _, id := range [2]uint{m.CreatedBy, m.UpdatedBy} {
			if id == 0 {
				continue
			}
			if _, ok := seen[id]; ok {
				continue
			}
			seen[id] = struct{}{}
			ids = append(ids, id)
		}
	}

	users := make(map[uint]*UserSummary)
	if len(ids) > 0 {
		var rows []models.User
		if err := config.DB.Where("id IN ?", ids).Find(&rows).Error; err != nil {
			return nil, err
		}
		for _, u := range rows {
			users[u.ID] = &UserSummary{ID: u.ID, Name: u.Name, Email: u.Email}
		}
	}

	out := make([]MealWithUsers, 0, len(meals))
	for _, m := range meals {
		out = append(out, MealWithUsers{
			Meal:          m,
			CreatedByUser: users[m.CreatedBy],
			UpdatedByUser: users[m.UpdatedBy],
		})
	}
	return out, nil
}
