package models

import (
	"gorm.io/gorm"
)

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

const (
	UserStatusActive   = "active"
	UserStatusInActive = "in active"
)

type User struct {
	gorm.Model
	Name         string `gorm:"not null" json:"name"`
	Email        string `gorm:"uniqueIndex;not null" json:"email"`
	Age          int    `gorm:"not null" json:"age"`
	Gender       string `gorm:"not null" json:"gender"` // "male" | "female" | "other"
	PasswordHash string `gorm:"not null" json:"-"`
	Role         string `gorm:"not null" json:"role"` // "admin" | "user"
	Status       string `gorm:"not null;default:active" json:"status"`
	CreatedBy    uint   `json:"createdBy,omitempty"`
	UpdatedBy    uint   `json:"updatedBy,omitempty"`
}
