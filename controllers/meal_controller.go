package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/nikhilpktcr/dietPlanner/services"
	"github.com/nikhilpktcr/dietPlanner/utils"
)

type CreateMealRequest struct {
	Title       string   `json:"title" binding:"required"`
	Type        string   `json:"type" binding:"required,oneof='veg' 'non veg'"`
	MealType    string   `json:"mealType" binding:"required,oneof=breakfast lunch dinner snacks"`
	MealInGrams float64  `json:"mealInGrams" binding:"required,gt=0"`
	Description string   `json:"description" binding:"required"`
	Calories    float64  `json:"calories" binding:"required,gte=0"`
	Protein     float64  `json:"protein" binding:"gte=0"`
	Carbs       float64  `json:"carbs" binding:"gte=0"`
	Fats        float64  `json:"fats" binding:"gte=0"`
	Tags        string   `json:"tags" binding:"required,oneof=weightLoss weightGain maintenance"`
	Ingredients []string `json:"ingredients" binding:"required"`
	Status      string   `json:"status" binding:"required,oneof=active 'in active' deleted"`
}

type UpdateMealRequest struct {
	Title       *string  `json:"title"`
	Type        *string  `json:"type" binding:"omitempty,oneof='veg' 'non veg'"`
	MealType    *string  `json:"mealType" binding:"omitempty,oneof=breakfast lunch dinner snacks"`
	MealInGrams *float64 `json:"mealInGrams" binding:"omitempty,gt=0"`
	Description *string  `json:"description"`
	Calories    *float64 `json:"calories" binding:"omitempty,gte=0"`
	Protein     *float64 `json:"protein" binding:"omitempty,gte=0"`
	Carbs       *float64 `json:"carbs" binding:"omitempty,gte=0"`
	Fats        *float64 `json:"fats" binding:"omitempty,gte=0"`
	Tags        *string  `json:"tags" binding:"omitempty,oneof=weightLoss weightGain maintenance"`
	Ingredients []string `json:"ingredients"`
	Status      *string  `json:"status" binding:"omitempty,oneof=active 'in active' deleted"`
}

func CreateMeal(c *gin.Context) {
	userID := c.GetUint("userID")

	var input CreateMealRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.SendError(c, http.StatusBadRequest, err.Error())
		return
	}

	meal, err := services.CreateMeal(services.CreateMealInput{
		Title:       input.Title,
		Type:        input.Type,
		MealType:    input.MealType,
		MealInGrams: input.MealInGrams,
		Description: input.Description,
		Calories:    input.Calories,
		Protein:     input.Protein,
		Carbs:       input.Carbs,
		Fats:        input.Fats,
		Tags:        input.Tags,
		Ingredients: input.Ingredients,
		Status:      input.Status,
	}, userID)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SendSuccess(c, http.StatusCreated, "meal created successfully", meal)
}

func UpdateMeal(c *gin.Context) {
	userID := c.GetUint("userID")
	mealID, ok := uintParam(c, "mealId")
	if !ok {
		return
	}

	var input UpdateMealRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.SendError(c, http.StatusBadRequest, err.Error())
		return
	}

	meal, err := services.UpdateMeal(mealID, services.UpdateMealInput{
		Title:       input.Title,
		Type:        input.Type,
		MealType:    input.MealType,
		MealInGrams: input.MealInGrams,
		Description: input.Description,
		Calories:    input.Calories,
		Protein:     input.Protein,
		Carbs:       input.Carbs,
		Fats:        input.Fats,
		Tags:        input.Tags,
		Ingredients: input.Ingredients,
		Status:      input.Status,
	}, userID)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SendSuccess(c, http.StatusOK, "meal updated successfully", meal)
}

func DeleteMeal(c *gin.Context) {
	userID := c.GetUint("userID")
	mealID, ok := uintParam(c, "mealId")
	if !ok {
		return
	}

	meal, err := services.DeleteMeal(mealID, userID)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SendSuccess(c, http.StatusOK, "meal deleted successfully", meal)
}

func GetMeal(c *gin.Context) {
	mealID, ok := uintParam(c, "mealId")
	if !ok {
		return
	}

	meal, err := services.GetMeal(mealID)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SendSuccess(c, http.StatusOK, "meal fetched successfully", meal)
}

func mealQueryParams(c *gin.Context) services.MealQueryParams {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	return services.MealQueryParams{
		Search:    c.Query("search"),
		SortBy:    c.DefaultQuery("sortBy", "createdAt"),
		SortOrder: c.DefaultQuery("sortOrder", "desc"),
		Limit:     limit,
		Offset:    offset,
		MealType:  c.Query("mealType"),
		Type:      c.Query("type"),
		Tags:      c.Query("tags"),
		Status:    c.Query("status"),
	}
}

func GetAllMeals(c *gin.Context) {
	meals, err := services.GetAllMeals(mealQueryParams(c))
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SendSuccess(c, http.StatusOK, "meals fetched successfully", meals)
}

func GetMealsCount(c *gin.Context) {
	count, err := services.GetMealsCount(mealQueryParams(c))
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SendSuccess(c, http.StatusOK, "meals count fetched successfully", gin.H{"count": count})
}
