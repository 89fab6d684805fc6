package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nikhilpktcr/dietPlanner/services"
	"github.com/nikhilpktcr/dietPlanner/utils"
)

type CreateProfileRequest struct {
	UserID             uint     `json:"userId" binding:"required"`
	HeightCm           float64  `json:"heightCm" binding:"required,gte=100,lte=250"`
	WeightKg           float64  `json:"weightKg" binding:"required,gte=30,lte=300"`
	DietaryPreferences string   `json:"dietaryPreferences" binding:"required,oneof='veg' 'non veg'"`
	Allergies          []string `json:"allergies" binding:"required"`
	ActivityLevel      string   `json:"activityLevel" binding:"required,oneof=sedentary light moderate active 'very active'"`
	HealthGoals        string   `json:"healthGoals" binding:"required,oneof=weightLoss weightGain maintenance"`
}

type UpdateProfileRequest struct {
	HeightCm           *float64 `json:"heightCm" binding:"omitempty,gte=100,lte=250"`
	WeightKg           *float64 `json:"weightKg" binding:"omitempty,gte=30,lte=300"`
	DietaryPreferences *string  `json:"dietaryPreferences" binding:"omitempty,oneof='veg' 'non veg'"`
	Allergies          []string `json:"allergies"`
	ActivityLevel      *string  `json:"activityLevel" binding:"omitempty,oneof=sedentary light moderate active 'very active'"`
	HealthGoals        *string  `json:"healthGoals" binding:"omitempty,oneof=weightLoss weightGain maintenance"`
}

func CreateProfile(c *gin.Context) {
	var input CreateProfileRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.SendError(c, http.StatusBadRequest, err.Error())
		return
	}

	profile, err := services.CreateProfile(services.CreateProfileInput{
		UserID:             input.UserID,
		HeightCm:           input.HeightCm,
		WeightKg:           input.WeightKg,
		DietaryPreferences: input.DietaryPreferences,
		Allergies:          input.Allergies,
		ActivityLevel:      input.ActivityLevel,
		HealthGoals:        input.HealthGoals,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SendSuccess(c, http.StatusCreated, "profile created successfully", profile)
}

func UpdateProfile(c *gin.Context) {
	userID, ok := uintParam(c, "userId")
	if !ok {
		return
	}

	var input UpdateProfileRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.SendError(c, http.StatusBadRequest, err.Error())
		return
	}

	profile, err := services.UpdateProfile(userID, services.UpdateProfileInput{
		HeightCm:           input.HeightCm,
		WeightKg:           input.WeightKg,
		DietaryPreferences: input.DietaryPreferences,
		Allergies:          input.Allergies,
		ActivityLevel:      input.ActivityLevel,
		HealthGoals:        input.HealthGoals,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SendSuccess(c, http.StatusOK, "profile updated successfully", profile)
}

func GetProfile(c *gin.Context) {
	userID, ok := uintParam(c, "userId")
	if !ok {
		return
	}

	profile, err := services.GetProfile(userID)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SendSuccess(c, http.StatusOK, "profile fetched successfully", profile)
}
