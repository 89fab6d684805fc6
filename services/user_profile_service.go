package services

import (
	"encoding/json"
	"errors"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/nikhilpktcr/dietPlanner/config"
	"github.com/nikhilpktcr/dietPlanner/models"
)

type CreateProfileInput struct {
	UserID             uint
	HeightCm           float64
	WeightKg           float64
	DietaryPreferences string
	Allergies          []string
	ActivityLevel      string
	HealthGoals        string
}

type UpdateProfileInput struct {
	HeightCm           *float64
	WeightKg           *float64
	DietaryPreferences *string
	Allergies          []string // nil means unchanged
	ActivityLevel      *string
	HealthGoals        *string
}

// CreateProfile persists the profile and its first BMI log in one
// transaction, so a profile row always has a matching log row.
func CreateProfile(in CreateProfileInput) (*models.UserProfile, error) {
	if in.UserID == 0 {
		return nil, ErrInvalidReference
	}

	var existing models.UserProfile
	err := config.DB.Where("user_id = ?", in.UserID).First(&existing).Error
	if err == nil {
		return nil, ErrDuplicateProfile
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	allergies, err := json.Marshal(in.Allergies)
	if err != nil {
		return nil, err
	}

	profile := models.UserProfile{
		UserID:             in.UserID,
		HeightCm:           in.HeightCm,
		WeightKg:           in.WeightKg,
		DietaryPreferences: in.DietaryPreferences,
		Allergies:          datatypes.JSON(allergies),
		ActivityLevel:      in.ActivityLevel,
		HealthGoals:        in.HealthGoals,
		CreatedBy:          in.UserID,
	}

	var logRow *models.BMILog
	err = config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&profile).Error; err != nil {
			return err
		}
		logRow = newBMILog(in.UserID, in.WeightKg, in.HeightCm)
		return tx.Create(logRow).Error
	})
	if err != nil {
		return nil, err
	}

	emitBMILogCreated(logRow)
	return &profile, nil
}

// applyProfileUpdate merges a partial update into the profile in place and
// reports whether height or weight was part of the update. Presence in the
// input is what counts, not whether the value differs.
func applyProfileUpdate(profile *models.UserProfile, in UpdateProfileInput) (bool, error) {
	if in.HeightCm != nil {
		profile.HeightCm = *in.HeightCm
	}
	if in.WeightKg != nil {
		profile.WeightKg = *in.WeightKg
	}
	if in.DietaryPreferences != nil {
		profile.DietaryPreferences = *in.DietaryPreferences
	}
	if in.Allergies != nil {
		allergies, err := json.Marshal(in.Allergies)
		if err != nil {
			return false, err
		}
		profile.Allergies = datatypes.JSON(allergies)
	}
	if in.ActivityLevel != nil {
		profile.ActivityLevel = *in.ActivityLevel
	}
	if in.HealthGoals != nil {
		profile.HealthGoals = *in.HealthGoals
	}

	return in.HeightCm != nil || in.WeightKg != nil, nil
}

// UpdateProfile applies a partial update. When height or weight is present
// in the input it appends a fresh BMI log computed from the merged values;
// existing logs are never touched.
func UpdateProfile(userID uint, in UpdateProfileInput) (*models.UserProfile, error) {
	if userID == 0 {
		return nil, ErrInvalidReference
	}

	var profile models.UserProfile
	if err := config.DB.Where("user_id = ?", userID).First(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}

	bodyChanged, err := applyProfileUpdate(&profile, in)
	if err != nil {
		return nil, err
	}
	profile.UpdatedBy = userID

	var logRow *models.BMILog
	err = config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&profile).Error; err != nil {
			return err
		}
		if bodyChanged {
			logRow = newBMILog(userID, profile.WeightKg, profile.HeightCm)
			return tx.Create(logRow).Error
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	emitBMILogCreated(logRow)
	return &profile, nil
}

func GetProfile(userID uint) (*models.UserProfile, error) {
	if userID == 0 {
		return nil, ErrInvalidReference
	}

	var profile models.UserProfile
	if err := config.DB.Where("user_id = ?", userID).First(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}
