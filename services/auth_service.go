package services

import (
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/nikhilpktcr/dietPlanner/config"
	"github.com/nikhilpktcr/dietPlanner/models"
	"github.com/nikhilpktcr/dietPlanner/utils"
)

type RegisterResult struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

type LoginResult struct {
	Token  string `json:"token"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	Name   string `json:"name"`
	UserID uint   `json:"userId"`
}

// RegisterUser creates a credential record. Self-registration always gets
// the "user" role; admins are provisioned out of band.
func RegisterUser(name, email, password string, age int, gender string) (*RegisterResult, error) {
	var existing models.User
	err := config.DB.Where("email = ?", email).First(&existing).Error
	if err == nil {
		return nil, ErrDuplicateEmail
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := models.User{
		Name:         name,
		Email:        email,
		Age:          age,
		Gender:       gender,
		PasswordHash: hash,
		Role:         models.RoleUser,
		Status:       models.UserStatusActive,
	}
	if err := config.DB.Create(&user).Error; err != nil {
		return nil, err
	}

	// best effort; registration never fails on mail
	if err := utils.SendWelcomeEmail(user.Email, user.Name); err != nil {
		config.Logger().Warn("welcome email failed", zap.String("email", user.Email), zap.Error(err))
	}

	return &RegisterResult{Name: user.Name, Email: user.Email, Role: user.Role}, nil
}

// AuthenticateUser checks credentials and issues a token. Unknown email and
// wrong password return the same error so callers can't tell which emails
// have accounts.
func AuthenticateUser(email, password string) (*LoginResult, error) {
	var user models.User
	err := config.DB.Where("email = ? AND status = ?", email, models.UserStatusActive).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	token, err := utils.GenerateJWT(&user)
	if err != nil {
		return nil, err
	}

	return &LoginResult{
		Token:  token,
		Email:  user.Email,
		Role:   user.Role,
		Name:   user.Name,
		UserID: user.ID,
	}, nil
}
