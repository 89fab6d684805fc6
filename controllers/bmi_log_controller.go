package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/nikhilpktcr/dietPlanner/services"
	"github.com/nikhilpktcr/dietPlanner/utils"
)

type CreateBmiLogRequest struct {
	WeightKg float64 `json:"weightKg" binding:"required,gte=30,lte=300"`
	HeightCm float64 `json:"heightCm" binding:"required,gte=100,lte=250"`
}

type UpdateBmiLogRequest struct {
	WeightKg *float64 `json:"weightKg" binding:"omitempty,gte=30,lte=300"`
	HeightCm *float64 `json:"heightCm" binding:"omitempty,gte=100,lte=250"`
}

func GetBmiLogs(c *gin.Context) {
	userID := c.GetUint("userID")

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	category := c.Query("searchCategory")

	result, err := services.GetBmiLogs(userID, page, limit, category)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SendSuccess(c, http.StatusOK, "BMI logs fetched successfully", result)
}

func GetBmiLogByID(c *gin.Context) {
	userID := c.GetUint("userID")
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}

	logRow, err := services.GetBmiLogByID(id, userID)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SendSuccess(c, http.StatusOK, "BMI log fetched successfully", logRow)
}

func CreateBmiLog(c *gin.Context) {
	userID := c.GetUint("userID")

	var input CreateBmiLogRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.SendError(c, http.StatusBadRequest, err.Error())
		return
	}

	logRow, err := services.CreateBmiLog(userID, input.WeightKg, input.HeightCm)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SendSuccess(c, http.StatusCreated, "BMI log created successfully", logRow)
}

func UpdateBmiLog(c *gin.Context) {
	userID := c.GetUint("userID")
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}

	var input UpdateBmiLogRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.SendError(c, http.StatusBadRequest, err.Error())
		return
	}

	logRow, err := services.UpdateBmiLog(id, userID, services.UpdateBmiLogInput{
		WeightKg: input.WeightKg,
		HeightCm: input.HeightCm,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SendSuccess(c, http.StatusOK, "BMI log updated successfully", logRow)
}

func DeleteBmiLog(c *gin.Context) {
	userID := c.GetUint("userID")
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}

	if err := services.DeleteBmiLog(id, userID); err != nil {
		respondError(c, err)
		return
	}

	utils.SendSuccess(c, http.StatusOK, "BMI log deleted successfully", gin.H{})
}
