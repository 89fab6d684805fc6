package services

import (
	"testing"

	"github.com/nikhilpktcr/dietPlanner/models"
	"github.com/nikhilpktcr/dietPlanner/utils"
)

// newBMILog must stamp bmi/category consistent with the row's own
// weight/height — the invariant the read path relies on.
func TestNewBMILogConsistency(t *testing.T) {
	cases := []struct {
		name         string
		weightKg     float64
		heightCm     float64
		wantBmi      float64
		wantCategory string
	}{
		{"normal", 70, 175, 22.9, models.BMICategoryNormal},
		{"under-weight", 50, 180, 15.4, models.BMICategoryUnderWeight},
		{"over-weight boundary", 81, 180, 25.0, models.BMICategoryOverWeight},
		{"obese boundary", 97.2, 180, 30.0, models.BMICategoryObese},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			row := newBMILog(9, tc.weightKg, tc.heightCm)
			if row.UserID != 9 || row.CreatedBy != 9 {
				t.Errorf("ownership: UserID=%d CreatedBy=%d, want 9/9", row.UserID, row.CreatedBy)
			}
			if row.Bmi != tc.wantBmi {
				t.Errorf("Bmi = %v, want %v", row.Bmi, tc.wantBmi)
			}
			if row.Category != tc.wantCategory {
				t.Errorf("Category = %q, want %q", row.Category, tc.wantCategory)
			}
			if row.Category != utils.BMICategory(row.Bmi) {
				t.Errorf("category %q inconsistent with persisted bmi %v", row.Category, row.Bmi)
			}
		})
	}
}

// Partial updates recompute bmi/category from the merged weight/height pair,
// with the stored value filling in for whichever field the input omits.
func TestApplyBmiLogUpdate(t *testing.T) {
	base := func() models.BMILog {
		// 70kg at 175cm → 22.9, normal
		return models.BMILog{UserID: 9, WeightKg: 70, HeightCm: 175, Bmi: 22.9, Category: models.BMICategoryNormal}
	}

	cases := []struct {
		name         string
		in           UpdateBmiLogInput
		wantWeightKg float64
		wantHeightCm float64
		wantBmi      float64
		wantCategory string
	}{
		// 90/1.75² = 29.4 — recompute uses the stored height
		{"weight only", UpdateBmiLogInput{WeightKg: f64(90)}, 90, 175, 29.4, models.BMICategoryOverWeight},
		// 70/1.95² = 18.4 — recompute uses the stored weight
		{"height only", UpdateBmiLogInput{HeightCm: f64(195)}, 70, 195, 18.4, models.BMICategoryUnderWeight},
		// 100/1.8² = 30.9
		{"both", UpdateBmiLogInput{WeightKg: f64(100), HeightCm: f64(180)}, 100, 180, 30.9, models.BMICategoryObese},
		{"empty input leaves row alone", UpdateBmiLogInput{}, 70, 175, 22.9, models.BMICategoryNormal},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			row := base()
			applyBmiLogUpdate(&row, tc.in)
			if row.WeightKg != tc.wantWeightKg || row.HeightCm != tc.wantHeightCm {
				t.Errorf("merged weight/height = %v/%v, want %v/%v",
					row.WeightKg, row.HeightCm, tc.wantWeightKg, tc.wantHeightCm)
			}
			if row.Bmi != tc.wantBmi {
				t.Errorf("Bmi = %v, want %v", row.Bmi, tc.wantBmi)
			}
			if row.Category != tc.wantCategory {
				t.Errorf("Category = %q, want %q", row.Category, tc.wantCategory)
			}
		})
	}
}

func TestTotalPages(t *testing.T) {
	cases := []struct {
		total int64
		limit int
		want  int
	}{
		{0, 10, 0},
		{1, 10, 1},
		{10, 10, 1},
		{11, 10, 2},
		{25, 10, 3},
		{3, 1, 3},
	}

	for _, tc := range cases {
		if got := totalPages(tc.total, tc.limit); got != tc.want {
			t.Errorf("totalPages(%d, %d) = %d, want %d", tc.total, tc.limit, got, tc.want)
		}
	}
}
