package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/nikhilpktcr/dietPlanner/services"
	"github.com/nikhilpktcr/dietPlanner/utils"
)

type CreateDietPlanRequest struct {
	Daily     []uint    `json:"daily" binding:"required"`
	Weekly    []uint    `json:"weekly" binding:"required"`
	StartDate time.Time `json:"startDate" binding:"required"`
	EndDate   time.Time `json:"endDate" binding:"required,gtfield=StartDate"`
}

type UpdateDietPlanRequest struct {
	Daily     []uint     `json:"daily"`
	Weekly    []uint     `json:"weekly"`
	StartDate *time.Time `json:"startDate"`
	EndDate   *time.Time `json:"endDate"`
}

func CreateDietPlan(c *gin.Context) {
	userID := c.GetUint("userID")

	var input CreateDietPlanRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.SendError(c, http.StatusBadRequest, err.Error())
		return
	}

	plan, err := services.CreateDietPlan(userID, services.CreateDietPlanInput{
		Daily:     input.Daily,
		Weekly:    input.Weekly,
		StartDate: input.StartDate,
		EndDate:   input.EndDate,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SendSuccess(c, http.StatusCreated, "diet plan created successfully", plan)
}

func GetMyDietPlan(c *gin.Context) {
	userID := c.GetUint("userID")

	plan, err := services.GetDietPlanByUser(userID)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SendSuccess(c, http.StatusOK, "diet plan fetched successfully", plan)
}

func UpdateDietPlan(c *gin.Context) {
	userID := c.GetUint("userID")
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}

	var input UpdateDietPlanRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.SendError(c, http.StatusBadRequest, err.Error())
		return
	}

	plan, err := services.UpdateDietPlan(id, userID, services.UpdateDietPlanInput{
		Daily:     input.Daily,
		Weekly:    input.Weekly,
		StartDate: input.StartDate,
		EndDate:   input.EndDate,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SendSuccess(c, http.StatusOK, "diet plan updated successfully", plan)
}

func DeleteDietPlan(c *gin.Context) {
	userID := c.GetUint("userID")
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}

	if err := services.DeleteDietPlan(id, userID); err != nil {
		respondError(c, err)
		return
	}

	utils.SendSuccess(c, http.StatusOK, "diet plan deleted successfully", gin.H{})
}
