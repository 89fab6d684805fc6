package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/nikhilpktcr/dietPlanner/config"
	"github.com/nikhilpktcr/dietPlanner/models"
	"github.com/nikhilpktcr/dietPlanner/utils"
)

type BMILogPage struct {
	Logs       []models.BMILog `json:"logs"`
	Total      int64           `json:"total"`
	Page       int             `json:"page"`
	TotalPages int             `json:"totalPages"`
}

type UpdateBmiLogInput struct {
	WeightKg *float64
	HeightCm *float64
}

// newBMILog stamps a log row with bmi/category derived from its own
// weight/height, keeping the row self-consistent by construction.
func newBMILog(userID uint, weightKg, heightCm float64) *models.BMILog {
	bmi := utils.CalculateBMI(weightKg, heightCm)
	return &models.BMILog{
		UserID:    userID,
		WeightKg:  weightKg,
		HeightCm:  heightCm,
		Bmi:       bmi,
		Category:  utils.BMICategory(bmi),
		CreatedBy: userID,
	}
}

func bmiLogFilter(userID uint, category string) *gorm.DB {
	q := config.DB.Model(&models.BMILog{}).Where("user_id = ?", userID)
	if category != "" {
		q = q.Where("category = ?", category)
	}
	return q
}

func totalPages(total int64, limit int) int {
	return int((total + int64(limit) - 1) / int64(limit))
}

// GetBmiLogs returns one newest-first page of the user's logs, optionally
// narrowed to an exact category.
func GetBmiLogs(userID uint, page, limit int, category string) (*BMILogPage, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	var total int64
	if err := bmiLogFilter(userID, category).Count(&total).Error; err != nil {
		return nil, err
	}

	var logs []models.BMILog
	err := bmiLogFilter(userID, category).
		Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&logs).Error
	if err != nil {
		return nil, err
	}

	return &BMILogPage{
		Logs:       logs,
		Total:      total,
		Page:       page,
		TotalPages: totalPages(total, limit),
	}, nil
}

func GetBmiLogByID(id, userID uint) (*models.BMILog, error) {
	if id == 0 {
		return nil, ErrInvalidReference
	}

	var logRow models.BMILog
	err := config.DB.Where("id = ? AND user_id = ?", id, userID).First(&logRow).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBMILogNotFound
		}
		return nil, err
	}
	return &logRow, nil
}

func CreateBmiLog(userID uint, weightKg, heightCm float64) (*models.BMILog, error) {
	logRow := newBMILog(userID, weightKg, heightCm)
	if err := config.DB.Create(logRow).Error; err != nil {
		return nil, err
	}
	emitBMILogCreated(logRow)
	return logRow, nil
}

// applyBmiLogUpdate merges the partial input into the row. If weight or
// height is present, bmi/category are recomputed from the merged pair, the
// stored value standing in for whichever field the input left out.
func applyBmiLogUpdate(logRow *models.BMILog, in UpdateBmiLogInput) {
	if in.WeightKg != nil {
		logRow.WeightKg = *in.WeightKg
	}
	if in.HeightCm != nil {
		logRow.HeightCm = *in.HeightCm
	}
	if in.WeightKg != nil || in.HeightCm != nil {
		logRow.Bmi = utils.CalculateBMI(logRow.WeightKg, logRow.HeightCm)
		logRow.Category = utils.BMICategory(logRow.Bmi)
	}
}

func UpdateBmiLog(id, userID uint, in UpdateBmiLogInput) (*models.BMILog, error) {
	logRow, err := GetBmiLogByID(id, userID)
	if err != nil {
		return nil, err
	}

	applyBmiLogUpdate(logRow, in)
	logRow.UpdatedBy = userID

	if err := config.DB.Save(logRow).Error; err != nil {
		return nil, err
	}
	return logRow, nil
}

func DeleteBmiLog(id, userID uint) error {
	logRow, err := GetBmiLogByID(id, userID)
	if err != nil {
		return err
	}
	return config.DB.Delete(logRow).Error
}
