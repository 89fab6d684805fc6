package config

import (
	"fmt"
	"os"

	"github.com/nikhilpktcr/dietPlanner/models"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func InitDB() {
	if err := godotenv.Load(); err != nil {
		Logger().Warn("no .env file found, using system env")
	}

	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
	)

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		Logger().Fatal("failed to connect to database", zap.Error(err))
	}

	err = DB.AutoMigrate(
		&models.User{},
		&models.UserProfile{},
		&models.BMILog{},
		&models.Meal{},
		&models.DietPlan{},
		&models.DietLog{},
	)
	if err != nil {
		Logger().Fatal("auto migrate failed", zap.Error(err))
	}
}
