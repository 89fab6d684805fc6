package utils

import (
	"math"

	"github.com/nikhilpktcr/dietPlanner/models"
)

// CalculateBMI expects weight in kilograms and height in centimeters.
// The result is rounded to one decimal place, which is what gets persisted
// on BMI log rows and fed into BMICategory. Range checks (30–300 kg,
// 100–250 cm) live in the request validators, not here.
func CalculateBMI(weightKg, heightCm float64) float64 {
	h := heightCm / 100.0 // to meters
	bmi := weightKg / (h * h)
	return math.Round(bmi*10) / 10
}

// BMICategory buckets a BMI value. Lower bounds are inclusive:
// 18.5 is "normal", 25 is "over-weight", 30 is "obese".
func BMICategory(bmi float64) string {
	switch {
	case bmi < 18.5:
		return models.BMICategoryUnderWeight
	case bmi < 25.0:
		return models.BMICategoryNormal
	case bmi < 30.0:
		return models.BMICategoryOverWeight
	default:
		return models.BMICategoryObese
	}
}
