package utils

import (
	"testing"

	"github.com/nikhilpktcr/dietPlanner/models"
)

// TestCalculateBMI verifies the formula and the one-decimal rounding.
// Derivations: 70/(1.75²)=22.857→22.9; 50/(1.80²)=15.43→15.4;
// 68/(1.65²)=24.977→25.0 (rounding crosses the over-weight threshold);
// 59.9/(1.80²)=18.487→18.5 (rounding crosses the normal threshold).
func TestCalculateBMI(t *testing.T) {
	cases := []struct {
		name     string
		weightKg float64
		heightCm float64
		want     float64
	}{
		{"typical normal", 70, 175, 22.9},
		{"underweight", 50, 180, 15.4},
		{"rounds up across threshold", 68, 165, 25.0},
		{"rounds up to 18.5", 59.9, 180, 18.5},
		{"exact 25", 81, 180, 25.0},
		{"exact 30", 97.2, 180, 30.0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := CalculateBMI(tc.weightKg, tc.heightCm)
			if got != tc.want {
				t.Errorf("CalculateBMI(%v, %v) = %v, want %v", tc.weightKg, tc.heightCm, got, tc.want)
			}
		})
	}
}

// TestBMICategory pins the four buckets and their half-open boundaries:
// 18.5 and 25.0 and 30.0 each belong to the bucket above the line.
func TestBMICategory(t *testing.T) {
	cases := []struct {
		bmi  float64
		want string
	}{
		{12.0, models.BMICategoryUnderWeight},
		{18.4, models.BMICategoryUnderWeight},
		{18.5, models.BMICategoryNormal},
		{22.9, models.BMICategoryNormal},
		{24.9, models.BMICategoryNormal},
		{25.0, models.BMICategoryOverWeight},
		{29.9, models.BMICategoryOverWeight},
		{30.0, models.BMICategoryObese},
		{45.0, models.BMICategoryObese},
	}

	for _, tc := range cases {
		if got := BMICategory(tc.bmi); got != tc.want {
			t.Errorf("BMICategory(%v) = %q, want %q", tc.bmi, got, tc.want)
		}
	}
}

// TestBMIEndToEnd walks the documented examples through both functions.
func TestBMIEndToEnd(t *testing.T) {
	bmi := CalculateBMI(70, 175)
	if bmi != 22.9 || BMICategory(bmi) != models.BMICategoryNormal {
		t.Errorf("70kg/175cm: got bmi=%v category=%q, want 22.9/normal", bmi, BMICategory(bmi))
	}

	bmi = CalculateBMI(50, 180)
	if bmi != 15.4 || BMICategory(bmi) != models.BMICategoryUnderWeight {
		t.Errorf("50kg/180cm: got bmi=%v category=%q, want 15.4/under-weight", bmi, BMICategory(bmi))
	}
}
