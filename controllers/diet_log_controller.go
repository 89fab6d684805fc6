package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/nikhilpktcr/dietPlanner/services"
	"github.com/nikhilpktcr/dietPlanner/utils"
)

type CreateDietLogRequest struct {
	DietPlanID uint      `json:"dietPlanId" binding:"required"`
	MealID     uint      `json:"mealId" binding:"required"`
	Date       time.Time `json:"date" binding:"required"`
	Status     string    `json:"status" binding:"required,oneof=taken skipped partial"`
	Comments   string    `json:"comments"`
}

func CreateDietLog(c *gin.Context) {
	userID := c.GetUint("userID")

	var input CreateDietLogRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.SendError(c, http.StatusBadRequest, err.Error())
		return
	}

	logRow, err := services.CreateDietLog(userID, services.CreateDietLogInput{
		DietPlanID: input.DietPlanID,
		MealID:     input.MealID,
		Date:       input.Date,
		Status:     input.Status,
		Comments:   input.Comments,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SendSuccess(c, http.StatusCreated, "diet log created successfully", logRow)
}

func GetDietLogs(c *gin.Context) {
	userID := c.GetUint("userID")

	var from, to *time.Time
	if v := c.Query("from"); v != "" {
		t, err := time.Parse("2006-01-02", v)
		if err != nil {
			utils.SendError(c, http.StatusBadRequest, "invalid from date, expected YYYY-MM-DD")
			return
		}
		from = &t
	}
	if v := c.Query("to"); v != "" {
		t, err := time.Parse("2006-01-02", v)
		if err != nil {
			utils.SendError(c, http.StatusBadRequest, "invalid to date, expected YYYY-MM-DD")
			return
		}
		to = &t
	}

	logs, err := services.GetDietLogs(userID, from, to)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SendSuccess(c, http.StatusOK, "diet logs fetched successfully", logs)
}
