package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nikhilpktcr/dietPlanner/services"
	"github.com/nikhilpktcr/dietPlanner/utils"
)

type RegisterInput struct {
	Name     string `json:"name" binding:"required,min=2"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Age      int    `json:"age" binding:"required,gte=1"`
	Gender   string `json:"gender" binding:"required,oneof=male female other"`
}

type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

func Register(c *gin.Context) {
	var input RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.SendError(c, http.StatusBadRequest, err.Error())
		return
	}

	result, err := services.RegisterUser(input.Name, input.Email, input.Password, input.Age, input.Gender)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SendSuccess(c, http.StatusCreated, "user registered successfully", result)
}

func Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.SendError(c, http.StatusBadRequest, err.Error())
		return
	}

	result, err := services.AuthenticateUser(input.Email, input.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SendSuccess(c, http.StatusCreated, "login successful", result)
}
